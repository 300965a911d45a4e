// filtermonomorphic removes markers at which all individuals share a single
// allele. It writes the filtered tidy table, the list of removed markers, and
// a whitelist of the markers that remain.
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
	"github.com/carbocation/radtidy/monomorphic"
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

	res, err := monomorphic.Filter(t, cfg.Verbose)
	if err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".tidy.tsv", func(w io.Writer) error {
		return tidy.WriteTable(w, res.Filtered, '\t')
	}); err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".monomorphic.tsv", func(w io.Writer) error {
		return tidy.WriteMarkers(w, res.Removed, res.WithCoordinates, '\t')
	}); err != nil {
		return err
	}

	if err := writeFile(cfg.Out+".whitelist.tsv", func(w io.Writer) error {
		return tidy.WriteMarkers(w, res.Whitelist, res.WithCoordinates, '\t')
	}); err != nil {
		return err
	}

	log.Printf("Removed %d monomorphic markers; %d markers remain\n", len(res.Removed), len(res.Whitelist))

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
