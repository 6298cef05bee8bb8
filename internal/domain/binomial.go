package domain

import "math"

// Coefficient returns C(n, k) = n! / (k! (n-k)!) without building factorials.
// Out-of-domain arguments (k outside [0, n], negative n) yield 0.
func Coefficient(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n/2 {
		k = n - k // C(n, k) = C(n, n-k)
	}

	// Every partial product is itself C(n, i), so nothing grows past the result.
	r := 1.0
	for i := 1; i <= k; i++ {
		r *= float64(n-i+1) / float64(i)
	}
	return r
}

// Probability returns P(X=k) = C(n, k) p^k (1-p)^(n-k) for a binomial variable.
// Out-of-domain arguments yield 0. 0^0 is taken as 1 on both terms.
func Probability(n, k int, p float64) float64 {
	if k < 0 || k > n || n < 0 || !(p >= 0 && p <= 1) {
		return 0
	}

	coef := Coefficient(n, k)
	if coef == 0 && !(n == 0 && k == 0) {
		return 0
	}

	if math.IsInf(coef, 1) {
		return logProbability(n, k, p)
	}
	return coef * powTerm(p, k) * powTerm(1-p, n-k)
}

// logProbability evaluates the mass in log space once C(n, k) no longer fits
// in a float64 (n above roughly 1029).
func logProbability(n, k int, p float64) float64 {
	if (p == 0 && k > 0) || (p == 1 && k < n) {
		return 0
	}

	lgN, _ := math.Lgamma(float64(n + 1))
	lgK, _ := math.Lgamma(float64(k + 1))
	lgNK, _ := math.Lgamma(float64(n - k + 1))
	lp := lgN - lgK - lgNK
	if k > 0 {
		lp += float64(k) * math.Log(p)
	}
	if n-k > 0 {
		lp += float64(n-k) * math.Log1p(-p)
	}
	return math.Exp(lp)
}

func powTerm(base float64, exp int) float64 {
	if base == 0 {
		if exp == 0 {
			return 1
		}
		return 0
	}
	return math.Pow(base, float64(exp))
}
