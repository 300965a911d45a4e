package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/radtidy/tidy"
)

func TestParseConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "genlight.toml")
	if err := os.WriteFile(configPath, []byte("tidy = \"batch_1.vcf.gz\"\nout = \"batch_1\"\nbiallelic = \"true\"\nhwe_cutoff = 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", configPath, "-biallelic", "false"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tidy != "batch_1.vcf.gz" || cfg.Out != "batch_1" || cfg.HWECutoff != 0.05 {
		t.Fatalf("Unexpected config %+v", cfg)
	}
	b, err := cfg.BiallelicFlag()
	if err != nil {
		t.Fatal(err)
	}
	if b == nil || *b {
		t.Fatalf("Expected the command line to set biallelic to false, got %v", b)
	}

	if b, err := (Config{}).BiallelicFlag(); err != nil || b != nil {
		t.Fatalf("Expected a blank biallelic setting to mean detection, got %v %v", b, err)
	}
	if _, err := (Config{Biallelic: "maybe"}).BiallelicFlag(); err == nil {
		t.Fatal("Expected an error for an invalid biallelic setting")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tidy.tsv")
	if err := os.WriteFile(input, []byte(strings.Join([]string{
		"MARKERS\tCHROM\tLOCUS\tPOS\tINDIVIDUALS\tPOP_ID\tGT_VCF",
		"M2\t2\tL2\t20\tI2\tP1\t0/1",
		"M1\t1\tL1\t10\tI2\tP1\t1/1",
		"M2\t2\tL2\t20\tI1\tP1\t0/0",
		"M1\t1\tL1\t10\tI1\tP1\t./.",
	}, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "result")
	if err := run(Config{Tidy: input, Out: out, Delimiter: "tab", HWECutoff: 1e-3}); err != nil {
		t.Fatal(err)
	}

	for suffix, expected := range map[string]string{
		".dosage.tsv": "INDIVIDUALS\tPOP_ID\tM1\tM2\nI1\tP1\tNA\t0\nI2\tP1\t2\t1\n",
		".bim":        "1\tM1\t0\t10\t0\t0\n2\tM2\t0\t20\t0\t0\n",
	} {
		got, err := os.ReadFile(out + suffix)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != expected {
			t.Fatalf("%s:\nGot:\n%q\nExpected:\n%q", suffix, got, expected)
		}
	}

	if _, err := os.Stat(out + ".summary.tsv"); err != nil {
		t.Fatal(err)
	}

	err := run(Config{Tidy: input, Out: out, Delimiter: "tab", Biallelic: "false"})
	if !errors.Is(err, tidy.ErrInvalidGenotypeEncoding) {
		t.Fatalf("Expected ErrInvalidGenotypeEncoding, got %v", err)
	}
}
