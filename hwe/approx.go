package hwe

import (
	"math"

	"github.com/tokenme/probab/dst"
)

// Approximate returns the P value of a 1 degree of freedom chi square test of
// Hardy-Weinberg equilibrium.
func (c GenotypeCounts) Approximate() (p float64) {
	// The CDF panics on some degenerate inputs. P stays at 1 in that case.
	p = 1.0
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(1)(c.ChiSquare())

	return
}

// ChiSquare is the difference between observed genotype counts and those
// expected from the observed allele frequencies.
func (c GenotypeCounts) ChiSquare() float64 {
	AA, Aa, aa := float64(c.homRef), float64(c.het), float64(c.homAlt)

	A := AA*2 + Aa
	a := aa*2 + Aa

	// A site that is not biallelic in this sample is trivially at
	// equilibrium. Without this we would divide by zero.
	if A == 0 || a == 0 {
		return 0.0
	}

	N := AA + Aa + aa
	alleleCount := A + a

	p := A / alleleCount
	q := a / alleleCount

	eAA := p * p * N
	eAa := 2.0 * p * q * N
	eaa := q * q * N

	return math.Pow(eAA-AA, 2)/eAA +
		math.Pow(eAa-Aa, 2)/eAa +
		math.Pow(eaa-aa, 2)/eaa
}
