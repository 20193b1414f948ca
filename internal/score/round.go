package score

import (
	"math"
	"math/big"
)

// roundTo rounds x to places decimals, ties away from zero, deciding on the
// exact binary value of x rather than a scaled approximation.
func roundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil))
	r := new(big.Rat).SetFloat64(x)
	r.Mul(r, scale)

	half := big.NewRat(1, 2)
	if r.Sign() < 0 {
		r.Sub(r, half)
	} else {
		r.Add(r, half)
	}
	// Quo truncates toward zero, which with the half added is round half away.
	n := new(big.Int).Quo(r.Num(), r.Denom())

	out, _ := new(big.Rat).SetFrac(n, scale.Num()).Float64()
	return out
}

func roundInt(x float64) int64 {
	return int64(math.Round(x))
}
