package hwe

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
)

var memoizedExactFor = memoize.Memoize(exactFor)
var memoizedFactorial = memoize.Memoize(factorial)

// Exact computes the exact Hardy-Weinberg equilibrium P value described by
// Wigginton, Cutler and Abecasis (2005), summing the probabilities of every
// heterozygote count at least as extreme as the observed one. Safe for
// concurrent use.
func (c GenotypeCounts) Exact() float64 {
	AA, Aa, aa := c.homRef, c.het, c.homAlt

	// Enforce AA common, aa rare
	if aa > AA {
		AA, aa = aa, AA
	}

	exact := memoizedExactFor.(func(int64, int64, int64) float64)

	baseP := exact(AA, Aa, aa)
	sumP := baseP

	// More heterozygotes
	for hAA, hAa, haa := AA-1, Aa+2, aa-1; haa >= 0; hAA, hAa, haa = hAA-1, hAa+2, haa-1 {
		next := exact(hAA, hAa, haa)
		if next > baseP {
			continue
		}
		if next <= math.SmallestNonzeroFloat64 {
			break
		}
		sumP += next
	}

	// Fewer heterozygotes
	for hAA, hAa, haa := AA+1, Aa-2, aa+1; hAa >= 0; hAA, hAa, haa = hAA+1, hAa-2, haa+1 {
		next := exact(hAA, hAa, haa)
		if next > baseP {
			continue
		}
		if next <= math.SmallestNonzeroFloat64 {
			break
		}
		sumP += next
	}

	return sumP
}

// exactFor yields the probability of observing exactly Aa heterozygotes in a
// sample of AA+Aa+aa individuals with Aa+2*aa minor alleles.
func exactFor(AA, Aa, aa int64) float64 {
	A := AA*2 + Aa
	a := aa*2 + Aa
	N := AA + Aa + aa

	fact := memoizedFactorial.(func(int64, int64) *big.Int)

	var num, denom big.Int

	num.Exp(big.NewInt(2), big.NewInt(Aa), nil)
	num.Mul(&num, fact(1, A))
	num.Mul(&num, fact(1, a))

	denom.Set(fact(N+1, 2*N))
	denom.Mul(&denom, fact(1, AA))
	denom.Mul(&denom, fact(1, Aa))
	denom.Mul(&denom, fact(1, aa))

	final, _ := new(big.Rat).SetFrac(&num, &denom).Float64()

	return final
}

func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
