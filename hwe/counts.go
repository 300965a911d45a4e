package hwe

// GenotypeCounts holds the number of homozygous reference (AA), heterozygous
// (Aa) and homozygous alternate (aa) individuals observed at a marker.
type GenotypeCounts struct {
	homRef int64
	het    int64
	homAlt int64
}

// NewGenotypeCounts builds counts from the three genotype classes.
func NewGenotypeCounts(AA, Aa, aa int64) GenotypeCounts {
	return GenotypeCounts{homRef: AA, het: Aa, homAlt: aa}
}

// FromDosage tallies 0/1/2 dosages. Any other value, including missing
// genotypes, is ignored.
func FromDosage(dosages []float64) GenotypeCounts {
	c := GenotypeCounts{}
	for _, d := range dosages {
		switch d {
		case 0:
			c.homRef++
		case 1:
			c.het++
		case 2:
			c.homAlt++
		}
	}
	return c
}

// HomRef, Het and HomAlt return the individual class counts.
func (c GenotypeCounts) HomRef() int64 { return c.homRef }
func (c GenotypeCounts) Het() int64    { return c.het }
func (c GenotypeCounts) HomAlt() int64 { return c.homAlt }

// N is the number of genotyped individuals.
func (c GenotypeCounts) N() int64 {
	return c.homRef + c.het + c.homAlt
}
