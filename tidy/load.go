package tidy

import (
	"bytes"
	"io/ioutil"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/radtidy"
)

// LoadOptions controls how Load reads its input.
type LoadOptions struct {
	// Delimiter of the tidy table. Zero means detect it.
	Delimiter rune

	// StrataPath optionally names an INDIVIDUALS / STRATA file.
	StrataPath string

	Verbose bool
}

// Load reads a tidy table, or a VCF when the path says so, from a local path
// or a gs:// object. Compressed inputs are detected from their contents. The
// client may be nil when no gs:// path is involved.
func Load(path string, client *storage.Client, opts LoadOptions) (*Table, error) {
	var strata map[string]string
	if opts.StrataPath != "" {
		b, err := readAll(opts.StrataPath, client)
		if err != nil {
			return nil, err
		}
		delim := radtidy.DetermineDelimiter(bytes.NewReader(b))
		if strata, err = ReadStrata(bytes.NewReader(b), delim); err != nil {
			return nil, err
		}
		if opts.Verbose {
			log.Printf("Read strata for %d individuals from %s\n", len(strata), opts.StrataPath)
		}
	}

	b, err := readAll(path, client)
	if err != nil {
		return nil, err
	}

	if IsVCFPath(path) {
		t, err := ReadVCF(bytes.NewReader(b), strata)
		if err != nil {
			return nil, err
		}
		if opts.Verbose {
			log.Printf("Read %d genotypes from VCF %s\n", len(t.Rows), path)
		}
		return t, nil
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = radtidy.DetermineDelimiter(bytes.NewReader(b))
		if opts.Verbose {
			log.Printf("Detected delimiter %q in %s\n", delim, path)
		}
	}

	t, err := ReadTable(bytes.NewReader(b), delim)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if strata != nil {
		t = ApplyStrata(t, strata)
	}
	if opts.Verbose {
		log.Printf("Read %d genotypes from %s\n", len(t.Rows), path)
	}

	return t, nil
}

// IsVCFPath reports whether path names a VCF, ignoring any compression
// suffix.
func IsVCFPath(path string) bool {
	p := strings.ToLower(path)
	for _, suffix := range []string{".gz", ".bgz", ".bz2", ".xz", ".zip", ".z"} {
		p = strings.TrimSuffix(p, suffix)
	}

	return strings.HasSuffix(p, ".vcf")
}

func readAll(path string, client *storage.Client) ([]byte, error) {
	src, err := radtidy.OpenSource(path, client)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rc, err := radtidy.MaybeDecompress(src)
	if err != nil {
		src.Close()
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	return ioutil.ReadAll(rc)
}
