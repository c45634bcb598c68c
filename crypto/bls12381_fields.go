package crypto

// BLS12-381 field arithmetic: the base field F_p and its quadratic
// extension F_p^2 = F_p[u]/(u^2+1), used for G2 coordinates on the twist
// curve.
//
//   p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab

import "math/big"

// ---- curve parameters ----

var (
	// blsP is the base field modulus.
	blsP, _ = new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	// blsR is the subgroup order.
	blsR, _ = new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	// blsB is the curve coefficient b = 4 for G1: y^2 = x^3 + 4.
	blsB = big.NewInt(4)
)

// ---- F_p ----

func blsFpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, blsP)
}

func blsFpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, blsP)
}

func blsFpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, blsP)
}

func blsFpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(blsP, new(big.Int).Mod(a, blsP))
}

func blsFpInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, blsP)
}

func blsFpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, blsP)
}

func blsFpExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, blsP)
}

// blsFpSqrt returns a square root of a mod p, or nil if a is not a
// quadratic residue. p = 3 mod 4, so sqrt(a) = a^((p+1)/4).
func blsFpSqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	exp := new(big.Int).Add(blsP, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := blsFpExp(a, exp)
	if blsFpSqr(r).Cmp(new(big.Int).Mod(a, blsP)) != 0 {
		return nil
	}
	return r
}

// blsFpIsSquare checks a via Euler's criterion: a^((p-1)/2) == 1 mod p.
func blsFpIsSquare(a *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(blsP, big.NewInt(1))
	exp.Rsh(exp, 1)
	return blsFpExp(a, exp).Cmp(big.NewInt(1)) == 0
}

// blsFpSgn0 is the hash-to-curve sign convention: 1 if a mod 2 == 1.
func blsFpSgn0(a *big.Int) int {
	t := new(big.Int).Mod(a, blsP)
	return int(t.Bit(0))
}

// ---- F_p^2 = F_p[u]/(u^2+1) ----

// blsFp2 represents c0 + c1*u.
type blsFp2 struct {
	c0, c1 *big.Int
}

func newBlsFp2(c0, c1 *big.Int) *blsFp2 {
	return &blsFp2{c0: new(big.Int).Set(c0), c1: new(big.Int).Set(c1)}
}

func blsFp2Zero() *blsFp2 { return &blsFp2{c0: new(big.Int), c1: new(big.Int)} }
func blsFp2One() *blsFp2  { return &blsFp2{c0: big.NewInt(1), c1: new(big.Int)} }

func (e *blsFp2) isZero() bool {
	return e.c0.Sign() == 0 && e.c1.Sign() == 0
}

func (e *blsFp2) equal(f *blsFp2) bool {
	a0 := new(big.Int).Mod(e.c0, blsP)
	a1 := new(big.Int).Mod(e.c1, blsP)
	b0 := new(big.Int).Mod(f.c0, blsP)
	b1 := new(big.Int).Mod(f.c1, blsP)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

func blsFp2Add(e, f *blsFp2) *blsFp2 {
	return &blsFp2{c0: blsFpAdd(e.c0, f.c0), c1: blsFpAdd(e.c1, f.c1)}
}

func blsFp2Sub(e, f *blsFp2) *blsFp2 {
	return &blsFp2{c0: blsFpSub(e.c0, f.c0), c1: blsFpSub(e.c1, f.c1)}
}

// blsFp2Mul: (a0+a1*u)(b0+b1*u) = (a0*b0 - a1*b1) + (a0*b1 + a1*b0)*u.
func blsFp2Mul(e, f *blsFp2) *blsFp2 {
	v0 := blsFpMul(e.c0, f.c0)
	v1 := blsFpMul(e.c1, f.c1)
	return &blsFp2{
		c0: blsFpSub(v0, v1),
		c1: blsFpSub(blsFpMul(blsFpAdd(e.c0, e.c1), blsFpAdd(f.c0, f.c1)), blsFpAdd(v0, v1)),
	}
}

func blsFp2Sqr(e *blsFp2) *blsFp2 {
	ab := blsFpMul(e.c0, e.c1)
	return &blsFp2{
		c0: blsFpMul(blsFpAdd(e.c0, e.c1), blsFpSub(e.c0, e.c1)),
		c1: blsFpAdd(ab, ab),
	}
}

func blsFp2Neg(e *blsFp2) *blsFp2 {
	return &blsFp2{c0: blsFpNeg(e.c0), c1: blsFpNeg(e.c1)}
}

// blsFp2Conj returns the conjugate c0 - c1*u.
func blsFp2Conj(e *blsFp2) *blsFp2 {
	return &blsFp2{c0: new(big.Int).Set(e.c0), c1: blsFpNeg(e.c1)}
}

// blsFp2Inv: (a+b*u)^(-1) = (a-b*u) / (a^2+b^2).
func blsFp2Inv(e *blsFp2) *blsFp2 {
	t := blsFpAdd(blsFpSqr(e.c0), blsFpSqr(e.c1))
	inv := blsFpInv(t)
	return &blsFp2{c0: blsFpMul(e.c0, inv), c1: blsFpMul(blsFpNeg(e.c1), inv)}
}

func blsFp2MulScalar(e *blsFp2, s *big.Int) *blsFp2 {
	return &blsFp2{c0: blsFpMul(e.c0, s), c1: blsFpMul(e.c1, s)}
}

// blsFp2Sgn0: sign_0(x) = sgn0(x_0) || (x_0 == 0 && sgn0(x_1)).
func blsFp2Sgn0(e *blsFp2) int {
	sign0 := blsFpSgn0(e.c0)
	zero0 := 0
	if new(big.Int).Mod(e.c0, blsP).Sign() == 0 {
		zero0 = 1
	}
	sign1 := blsFpSgn0(e.c1)
	return sign0 | (zero0 & sign1)
}

// blsFp2Sqrt returns a square root of e, or nil if none exists. Tries both
// candidate real parts x0 = (c0 ± sqrt(norm))/2 and verifies by squaring,
// since the direct formula doesn't determine the sign up front.
func blsFp2Sqrt(e *blsFp2) *blsFp2 {
	if e.isZero() {
		return blsFp2Zero()
	}

	norm := blsFpAdd(blsFpSqr(e.c0), blsFpSqr(e.c1))
	if !blsFpIsSquare(norm) {
		return nil
	}

	sqrtNorm := blsFpSqrt(norm)
	if sqrtNorm == nil {
		return nil
	}

	two := big.NewInt(2)
	twoInv := blsFpInv(two)

	for _, sign := range [2]int{1, -1} {
		var x0 *big.Int
		if sign > 0 {
			x0 = blsFpMul(blsFpAdd(e.c0, sqrtNorm), twoInv)
		} else {
			x0 = blsFpMul(blsFpSub(e.c0, sqrtNorm), twoInv)
		}
		if !blsFpIsSquare(x0) {
			continue
		}
		sqrtX0 := blsFpSqrt(x0)
		if sqrtX0 == nil {
			continue
		}
		x1 := blsFpMul(e.c1, blsFpInv(blsFpAdd(sqrtX0, sqrtX0)))
		result := &blsFp2{c0: sqrtX0, c1: x1}
		if blsFp2Sqr(result).equal(e) {
			return result
		}
	}

	return nil
}

// blsFp2IsSquare: with p = 3 mod 4, e is a QR iff norm(e) = c0^2+c1^2 is a
// QR in F_p.
func blsFp2IsSquare(e *blsFp2) bool {
	if e.isZero() {
		return true
	}
	return blsFpIsSquare(blsFpAdd(blsFpSqr(e.c0), blsFpSqr(e.c1)))
}

// blsFp2MulByU: u*(c0+c1*u) = -c1 + c0*u, since u^2 = -1.
func blsFp2MulByU(e *blsFp2) *blsFp2 {
	return &blsFp2{c0: blsFpNeg(e.c1), c1: new(big.Int).Set(e.c0)}
}
