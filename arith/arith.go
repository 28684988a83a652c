// Package arith has the small number-theoretic helpers used by the point
// locator and by rational angle arithmetic.
package arith

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Divisors returns the positive divisors of n in increasing order.
// Divisors of a nonpositive n is nil.
func Divisors(n int) []int {
	if n <= 0 {
		return nil
	}
	var small, large []int
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			small = append(small, d)
			if q := n / d; q != d {
				large = append(large, q)
			}
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

// Moebius returns the Möbius function of n: 0 when n has a squared prime
// factor, otherwise (-1)^k for n a product of k distinct primes.
// Moebius of a nonpositive n is 0.
func Moebius(n int) int {
	if n <= 0 {
		return 0
	}
	mu := 1
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			n /= p
			if n%p == 0 {
				return 0
			}
			mu = -mu
		}
	}
	if n > 1 {
		mu = -mu
	}
	return mu
}
