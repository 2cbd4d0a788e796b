package stegopix

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ExtendedGCD returns g = gcd(a, b) along with Bézout coefficients x and y
// such that a·x + b·y = g. The arguments are not modified.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// Iterate with running remainder and coefficient pairs rather than
	// recursing, which keeps the stack flat for large moduli.
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)

	for r1.Sign() != 0 {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))

		r0, r1 = r1, r
		x0, x1 = x1, new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))
		y0, y1 = y1, new(big.Int).Sub(y0, new(big.Int).Mul(q, y1))
	}

	return r0, x0, y0
}

// GCD returns the greatest common divisor of a and b. The arguments are not
// modified.
func GCD(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Set(a), new(big.Int).Set(b)

	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}

	return x
}

// ModInverse returns the multiplicative inverse of e modulo m. The caller
// must ensure gcd(e, m) = 1; the result is meaningless otherwise.
func ModInverse(e, m *big.Int) *big.Int {
	_, x, _ := ExtendedGCD(e, m)
	return x.Mod(x, m)
}

// ModExp returns base^exp mod m via square-and-multiply. All operands are
// arbitrary-precision; exponent and modulus may be hundreds of bits.
func ModExp(base, exp, m *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b).Mod(result, m)
		}

		b.Mul(b, b).Mod(b, m)
		e.Rsh(e, 1)
	}

	return result
}
