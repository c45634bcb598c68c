package crypto

// BN254 (alt_bn128) tower field arithmetic: the base field F_p and its
// extensions F_p^2, F_p^6, and F_p^12 used to implement G1/G2 point
// operations and the optimal-ate pairing.
//
//   F_p    base field, p = 21888242871839275222246405745257275088696311157297823662689037894645226208583
//   F_p^2  = F_p[i]   / (i^2 + 1),        elements (a0 + a1*i)
//   F_p^6  = F_p^2[v]  / (v^3 - (9+i)),   elements (c0 + c1*v + c2*v^2)
//   F_p^12 = F_p^6[w]  / (w^2 - v),       elements (c0 + c1*w)
//
// F_p^12 is the pairing target group G_T.

import "math/big"

// ---- F_p -------------------------------------------------------------

var (
	bn254P, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	bn254N, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	bn254B    = big.NewInt(3)
)

func fpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, bn254P)
}

func fpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, bn254P)
}

func fpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, bn254P)
}

func fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(bn254P, new(big.Int).Mod(a, bn254P))
}

// fpInv returns a^(-1) mod p via big.Int.ModInverse.
func fpInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, bn254P)
}

func fpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, bn254P)
}

// ---- F_p^2 -------------------------------------------------------------

// fp2 is an element (a0 + a1*i) of F_p^2.
type fp2 struct {
	a0, a1 *big.Int
}

func newFp2(a0, a1 *big.Int) *fp2 {
	return &fp2{a0: new(big.Int).Set(a0), a1: new(big.Int).Set(a1)}
}

func fp2Zero() *fp2 { return &fp2{a0: new(big.Int), a1: new(big.Int)} }
func fp2One() *fp2  { return &fp2{a0: big.NewInt(1), a1: new(big.Int)} }

func (e *fp2) isZero() bool { return e.a0.Sign() == 0 && e.a1.Sign() == 0 }

func (e *fp2) equal(f *fp2) bool {
	a0 := new(big.Int).Mod(e.a0, bn254P)
	a1 := new(big.Int).Mod(e.a1, bn254P)
	b0 := new(big.Int).Mod(f.a0, bn254P)
	b1 := new(big.Int).Mod(f.a1, bn254P)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

func fp2Add(e, f *fp2) *fp2 {
	return &fp2{a0: fpAdd(e.a0, f.a0), a1: fpAdd(e.a1, f.a1)}
}

func fp2Sub(e, f *fp2) *fp2 {
	return &fp2{a0: fpSub(e.a0, f.a0), a1: fpSub(e.a1, f.a1)}
}

// fp2Mul computes (a0+a1*i)(b0+b1*i) via the Karatsuba identity
// real = a0*b0 - a1*b1, imag = (a0+a1)(b0+b1) - a0*b0 - a1*b1.
func fp2Mul(e, f *fp2) *fp2 {
	v0 := fpMul(e.a0, f.a0)
	v1 := fpMul(e.a1, f.a1)
	return &fp2{
		a0: fpSub(v0, v1),
		a1: fpSub(fpMul(fpAdd(e.a0, e.a1), fpAdd(f.a0, f.a1)), fpAdd(v0, v1)),
	}
}

// fp2Sqr computes (a+b*i)^2 = (a^2-b^2) + 2ab*i via (a+b)(a-b) for the real part.
func fp2Sqr(e *fp2) *fp2 {
	ab := fpMul(e.a0, e.a1)
	return &fp2{
		a0: fpMul(fpAdd(e.a0, e.a1), fpSub(e.a0, e.a1)),
		a1: fpAdd(ab, ab),
	}
}

func fp2Neg(e *fp2) *fp2 {
	return &fp2{a0: fpNeg(e.a0), a1: fpNeg(e.a1)}
}

// fp2Inv computes (a+b*i)^(-1) = (a-b*i) / (a^2+b^2).
func fp2Inv(e *fp2) *fp2 {
	t := fpAdd(fpSqr(e.a0), fpSqr(e.a1))
	inv := fpInv(t)
	return &fp2{a0: fpMul(e.a0, inv), a1: fpMul(fpNeg(e.a1), inv)}
}

// fp2Conj returns the conjugate (a0 - a1*i).
func fp2Conj(e *fp2) *fp2 {
	return &fp2{a0: new(big.Int).Set(e.a0), a1: fpNeg(e.a1)}
}

// fp2MulScalar returns e * s where s is a scalar in F_p.
func fp2MulScalar(e *fp2, s *big.Int) *fp2 {
	return &fp2{a0: fpMul(e.a0, s), a1: fpMul(e.a1, s)}
}

// fp2MulByNonResidue multiplies by the non-residue xi=(9+i) used as the
// F_p^6 twist coefficient: (a+b*i)(9+i) = (9a-b) + (a+9b)*i.
func fp2MulByNonResidue(e *fp2) *fp2 {
	nine := big.NewInt(9)
	return &fp2{
		a0: fpSub(fpMul(e.a0, nine), e.a1),
		a1: fpAdd(fpMul(e.a1, nine), e.a0),
	}
}

// ---- F_p^6 -------------------------------------------------------------

// fp6 is an element (c0 + c1*v + c2*v^2) of F_p^6, where v^3 = xi = (9+i).
type fp6 struct {
	c0, c1, c2 *fp2
}

func fp6Zero() *fp6 { return &fp6{c0: fp2Zero(), c1: fp2Zero(), c2: fp2Zero()} }
func fp6One() *fp6  { return &fp6{c0: fp2One(), c1: fp2Zero(), c2: fp2Zero()} }

func (e *fp6) isZero() bool {
	return e.c0.isZero() && e.c1.isZero() && e.c2.isZero()
}

func fp6Add(e, f *fp6) *fp6 {
	return &fp6{c0: fp2Add(e.c0, f.c0), c1: fp2Add(e.c1, f.c1), c2: fp2Add(e.c2, f.c2)}
}

func fp6Sub(e, f *fp6) *fp6 {
	return &fp6{c0: fp2Sub(e.c0, f.c0), c1: fp2Sub(e.c1, f.c1), c2: fp2Sub(e.c2, f.c2)}
}

func fp6Neg(e *fp6) *fp6 {
	return &fp6{c0: fp2Neg(e.c0), c1: fp2Neg(e.c1), c2: fp2Neg(e.c2)}
}

// fp6Mul multiplies two degree-2 polynomials over F_p^2 via Karatsuba,
// reducing v^3 overflow terms through the xi non-residue.
func fp6Mul(e, f *fp6) *fp6 {
	t0 := fp2Mul(e.c0, f.c0)
	t1 := fp2Mul(e.c1, f.c1)
	t2 := fp2Mul(e.c2, f.c2)

	c0 := fp2Add(t0, fp2MulByNonResidue(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c1, e.c2), fp2Add(f.c1, f.c2)), t1), t2)))

	c1 := fp2Add(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c0, e.c1), fp2Add(f.c0, f.c1)), t0), t1),
		fp2MulByNonResidue(t2))

	c2 := fp2Add(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c0, e.c2), fp2Add(f.c0, f.c2)), t0), t2),
		t1)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

func fp6Sqr(e *fp6) *fp6 {
	s0 := fp2Sqr(e.c0)
	ab := fp2Mul(e.c0, e.c1)
	s1 := fp2Add(ab, ab)
	s2 := fp2Sqr(fp2Sub(fp2Add(e.c0, e.c2), e.c1))
	bc := fp2Mul(e.c1, e.c2)
	s3 := fp2Add(bc, bc)
	s4 := fp2Sqr(e.c2)

	c0 := fp2Add(s0, fp2MulByNonResidue(s3))
	c1 := fp2Add(s1, fp2MulByNonResidue(s4))
	c2 := fp2Sub(fp2Sub(fp2Add(fp2Add(s1, s2), s3), s0), s4)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6Inv inverts e via A=c0^2-xi*c1*c2, B=xi*c2^2-c0*c1, C=c1^2-c0*c2,
// inv = 1/(c0*A + xi*(c2*B + c1*C)).
func fp6Inv(e *fp6) *fp6 {
	a := fp2Sub(fp2Sqr(e.c0), fp2MulByNonResidue(fp2Mul(e.c1, e.c2)))
	b := fp2Sub(fp2MulByNonResidue(fp2Sqr(e.c2)), fp2Mul(e.c0, e.c1))
	c := fp2Sub(fp2Sqr(e.c1), fp2Mul(e.c0, e.c2))

	f := fp2Add(fp2Mul(e.c0, a),
		fp2MulByNonResidue(fp2Add(fp2Mul(e.c2, b), fp2Mul(e.c1, c))))
	fInv := fp2Inv(f)

	return &fp6{c0: fp2Mul(a, fInv), c1: fp2Mul(b, fInv), c2: fp2Mul(c, fInv)}
}

// fp6MulByFp2 scales an fp6 element by an fp2 scalar (applied to each
// coefficient independently, i.e. treating the scalar as (s,0,0)).
func fp6MulByFp2(e *fp6, s *fp2) *fp6 {
	return &fp6{c0: fp2Mul(e.c0, s), c1: fp2Mul(e.c1, s), c2: fp2Mul(e.c2, s)}
}

// fp6MulByV multiplies e by v: (c0+c1*v+c2*v^2)*v = c2*xi + c0*v + c1*v^2.
func fp6MulByV(e *fp6) *fp6 {
	return &fp6{
		c0: fp2MulByNonResidue(e.c2),
		c1: newFp2(e.c0.a0, e.c0.a1),
		c2: newFp2(e.c1.a0, e.c1.a1),
	}
}

// ---- F_p^12 ------------------------------------------------------------

// fp12 is an element (c0 + c1*w) of F_p^12, where w^2 = v.
type fp12 struct {
	c0, c1 *fp6
}

func fp12Zero() *fp12 { return &fp12{c0: fp6Zero(), c1: fp6Zero()} }
func fp12One() *fp12  { return &fp12{c0: fp6One(), c1: fp6Zero()} }

func (e *fp12) isOne() bool {
	return !e.c0.c0.isZero() &&
		e.c0.c0.a0.Cmp(big.NewInt(1)) == 0 &&
		e.c0.c0.a1.Sign() == 0 &&
		e.c0.c1.isZero() && e.c0.c2.isZero() &&
		e.c1.isZero()
}

// fp12Mul computes (a+b*w)(c+d*w) = (ac+bd*v) + (ad+bc)*w, where
// multiplying by v shifts an F_p^6 element's coefficients per fp6MulByV.
func fp12Mul(e, f *fp12) *fp12 {
	t1 := fp6Mul(e.c0, f.c0)
	t2 := fp6Mul(e.c1, f.c1)

	c0 := fp6Add(t1, fp6MulByV(t2))
	c1 := fp6Sub(fp6Sub(fp6Mul(fp6Add(e.c0, e.c1), fp6Add(f.c0, f.c1)), t1), t2)

	return &fp12{c0: c0, c1: c1}
}

func fp12Sqr(e *fp12) *fp12 {
	ab := fp6Mul(e.c0, e.c1)

	t := fp6Add(e.c0, e.c1)
	u := fp6Add(e.c0, fp6MulByV(e.c1))
	c0 := fp6Sub(fp6Sub(fp6Mul(t, u), ab), fp6MulByV(ab))
	c1 := fp6Add(ab, ab)

	return &fp12{c0: c0, c1: c1}
}

// fp12Inv computes (a+b*w)^(-1) = (a-b*w) / (a^2-b^2*v).
func fp12Inv(e *fp12) *fp12 {
	t := fp6Sub(fp6Sqr(e.c0), fp6MulByV(fp6Sqr(e.c1)))
	tInv := fp6Inv(t)
	return &fp12{c0: fp6Mul(e.c0, tInv), c1: fp6Neg(fp6Mul(e.c1, tInv))}
}

// fp12Conj returns e.c0 - e.c1*w, which equals the inverse for unitary
// (norm-1) elements produced mid-pairing.
func fp12Conj(e *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: newFp2(e.c0.c0.a0, e.c0.c0.a1),
			c1: newFp2(e.c0.c1.a0, e.c0.c1.a1),
			c2: newFp2(e.c0.c2.a0, e.c0.c2.a1),
		},
		c1: fp6Neg(e.c1),
	}
}

// fp12Exp raises e to the power k by square-and-multiply, most significant
// bit first.
func fp12Exp(e *fp12, k *big.Int) *fp12 {
	if k.Sign() == 0 {
		return fp12One()
	}
	r := fp12One()
	base := &fp12{
		c0: &fp6{
			c0: newFp2(e.c0.c0.a0, e.c0.c0.a1),
			c1: newFp2(e.c0.c1.a0, e.c0.c1.a1),
			c2: newFp2(e.c0.c2.a0, e.c0.c2.a1),
		},
		c1: &fp6{
			c0: newFp2(e.c1.c0.a0, e.c1.c0.a1),
			c1: newFp2(e.c1.c1.a0, e.c1.c1.a1),
			c2: newFp2(e.c1.c2.a0, e.c1.c2.a1),
		},
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = fp12Sqr(r)
		if k.Bit(i) == 1 {
			r = fp12Mul(r, base)
		}
	}
	return r
}
