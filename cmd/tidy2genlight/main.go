// tidy2genlight converts a tidy genotype table into an individual by marker
// dosage matrix. Alongside the matrix it writes a PLINK-style marker map and a
// per-marker summary with Hardy-Weinberg P values.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/radtidy"
	_ "github.com/carbocation/radtidy/compileinfoprint"
	"github.com/carbocation/radtidy/genomatrix"
	"github.com/carbocation/radtidy/tidy"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg Config) error {
	delim, err := radtidy.ParseDelimiter(cfg.Delimiter)
	if err != nil {
		return err
	}
	biallelic, err := cfg.BiallelicFlag()
	if err != nil {
		return err
	}

	var client *storage.Client
	if strings.HasPrefix(cfg.Tidy, "gs://") || strings.HasPrefix(cfg.Strata, "gs://") {
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	t, err := tidy.Load(cfg.Tidy, client, tidy.LoadOptions{
		Delimiter:  delim,
		StrataPath: cfg.Strata,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return err
	}

	m, err := genomatrix.Build(t, genomatrix.Options{
		Biallelic: biallelic,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".dosage.tsv", func(w io.Writer) error {
		return genomatrix.WriteDosage(w, m, '\t')
	}); err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".bim", func(w io.Writer) error {
		return radtidy.WriteBIM(w, m.MarkerMap())
	}); err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".summary.tsv", func(w io.Writer) error {
		return genomatrix.WriteSummary(w, genomatrix.Summarize(m, cfg.HWECutoff), '\t')
	}); err != nil {
		return err
	}

	nrow, ncol := m.Dims()
	log.Printf("Wrote %d individuals by %d markers to %s.*\n", nrow, ncol, cfg.Out)

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(radtidy.ExpandHome(path))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return pfx.Err(err)
	}

	return f.Close()
}
