package crypto

// BLS12-381 optimal ate pairing: the F_p6/F_p12 tower built on blsFp2, the
// Miller loop over the BLS parameter x = -0xd201000000010000, and final
// exponentiation.
//
// Tower: F_p6 = F_p2[v]/(v^3-(1+u)), F_p12 = F_p6[w]/(w^2-v). Unlike
// bn254_ate.go's Frobenius-accelerated final exponentiation, the hard part
// here is computed by direct exponentiation to hardExp = (p^4-p^2+1)/r —
// correct but not optimized with an addition chain over the BLS x
// parameter, which go-ethereum's bls12381 package does use.

import "math/big"

// blsX is the BLS12-381 curve parameter (negative; the sign is handled by
// conjugating the Miller loop output rather than negating x itself).
var blsX, _ = new(big.Int).SetString("d201000000010000", 16)

// ---- F_p^6 = F_p2[v]/(v^3-(1+u)) ----

type blsFp6 struct {
	c0, c1, c2 *blsFp2
}

func blsFp6Zero() *blsFp6 { return &blsFp6{c0: blsFp2Zero(), c1: blsFp2Zero(), c2: blsFp2Zero()} }
func blsFp6One() *blsFp6  { return &blsFp6{c0: blsFp2One(), c1: blsFp2Zero(), c2: blsFp2Zero()} }

func blsFp6Add(a, b *blsFp6) *blsFp6 {
	return &blsFp6{c0: blsFp2Add(a.c0, b.c0), c1: blsFp2Add(a.c1, b.c1), c2: blsFp2Add(a.c2, b.c2)}
}

func blsFp6Sub(a, b *blsFp6) *blsFp6 {
	return &blsFp6{c0: blsFp2Sub(a.c0, b.c0), c1: blsFp2Sub(a.c1, b.c1), c2: blsFp2Sub(a.c2, b.c2)}
}

// blsFp2MulByNonResidue: (1+u)*(a+b*u) = (a-b) + (a+b)*u.
func blsFp2MulByNonResidue(e *blsFp2) *blsFp2 {
	return &blsFp2{c0: blsFpSub(e.c0, e.c1), c1: blsFpAdd(e.c0, e.c1)}
}

// blsFp6Mul uses Karatsuba multiplication over the F_p2 coefficients.
func blsFp6Mul(a, b *blsFp6) *blsFp6 {
	t0 := blsFp2Mul(a.c0, b.c0)
	t1 := blsFp2Mul(a.c1, b.c1)
	t2 := blsFp2Mul(a.c2, b.c2)

	c0 := blsFp2Add(t0, blsFp2MulByNonResidue(
		blsFp2Sub(blsFp2Mul(blsFp2Add(a.c1, a.c2), blsFp2Add(b.c1, b.c2)), blsFp2Add(t1, t2))))
	c1 := blsFp2Add(blsFp2Sub(blsFp2Mul(blsFp2Add(a.c0, a.c1), blsFp2Add(b.c0, b.c1)), blsFp2Add(t0, t1)),
		blsFp2MulByNonResidue(t2))
	c2 := blsFp2Add(blsFp2Sub(blsFp2Mul(blsFp2Add(a.c0, a.c2), blsFp2Add(b.c0, b.c2)), blsFp2Add(t0, t2)), t1)

	return &blsFp6{c0: c0, c1: c1, c2: c2}
}

func blsFp6Sqr(a *blsFp6) *blsFp6 {
	s0 := blsFp2Sqr(a.c0)
	ab := blsFp2Mul(a.c0, a.c1)
	s1 := blsFp2Add(ab, ab)
	s2 := blsFp2Sqr(blsFp2Sub(blsFp2Add(a.c0, a.c2), a.c1))
	bc := blsFp2Mul(a.c1, a.c2)
	s3 := blsFp2Add(bc, bc)
	s4 := blsFp2Sqr(a.c2)

	c0 := blsFp2Add(s0, blsFp2MulByNonResidue(s3))
	c1 := blsFp2Add(s1, blsFp2MulByNonResidue(s4))
	c2 := blsFp2Add(blsFp2Add(blsFp2Add(s1, s2), s3), blsFp2Sub(blsFp2Neg(s0), s4))

	return &blsFp6{c0: c0, c1: c1, c2: c2}
}

func blsFp6Neg(a *blsFp6) *blsFp6 {
	return &blsFp6{c0: blsFp2Neg(a.c0), c1: blsFp2Neg(a.c1), c2: blsFp2Neg(a.c2)}
}

func blsFp6Inv(a *blsFp6) *blsFp6 {
	t0 := blsFp2Sqr(a.c0)
	t1 := blsFp2Sqr(a.c1)
	t2 := blsFp2Sqr(a.c2)
	t3 := blsFp2Mul(a.c0, a.c1)
	t4 := blsFp2Mul(a.c0, a.c2)
	t5 := blsFp2Mul(a.c1, a.c2)

	c0 := blsFp2Sub(t0, blsFp2MulByNonResidue(t5))
	c1 := blsFp2Sub(blsFp2MulByNonResidue(t2), t3)
	c2 := blsFp2Sub(t1, t4)

	t6 := blsFp2Mul(a.c0, c0)
	t6 = blsFp2Add(t6, blsFp2MulByNonResidue(blsFp2Add(blsFp2Mul(a.c2, c1), blsFp2Mul(a.c1, c2))))
	t6 = blsFp2Inv(t6)

	return &blsFp6{c0: blsFp2Mul(c0, t6), c1: blsFp2Mul(c1, t6), c2: blsFp2Mul(c2, t6)}
}

// blsFp6MulByV: v*(c0+c1*v+c2*v^2) = c2*(1+u) + c0*v + c1*v^2.
func blsFp6MulByV(a *blsFp6) *blsFp6 {
	return &blsFp6{
		c0: blsFp2MulByNonResidue(a.c2),
		c1: newBlsFp2(a.c0.c0, a.c0.c1),
		c2: newBlsFp2(a.c1.c0, a.c1.c1),
	}
}

// ---- F_p^12 = F_p6[w]/(w^2-v) ----

type blsFp12 struct {
	c0, c1 *blsFp6
}

func blsFp12Zero() *blsFp12 { return &blsFp12{c0: blsFp6Zero(), c1: blsFp6Zero()} }
func blsFp12One() *blsFp12  { return &blsFp12{c0: blsFp6One(), c1: blsFp6Zero()} }

func blsFp12Mul(a, b *blsFp12) *blsFp12 {
	t0 := blsFp6Mul(a.c0, b.c0)
	t1 := blsFp6Mul(a.c1, b.c1)

	c0 := blsFp6Add(t0, blsFp6MulByV(t1))
	c1 := blsFp6Sub(blsFp6Sub(blsFp6Mul(blsFp6Add(a.c0, a.c1), blsFp6Add(b.c0, b.c1)), t0), t1)

	return &blsFp12{c0: c0, c1: c1}
}

func blsFp12Sqr(a *blsFp12) *blsFp12 {
	ab := blsFp6Mul(a.c0, a.c1)
	c0 := blsFp6Add(blsFp6Mul(blsFp6Add(a.c0, a.c1), blsFp6Add(a.c0, blsFp6MulByV(a.c1))),
		blsFp6Neg(blsFp6Add(ab, blsFp6MulByV(ab))))
	c1 := blsFp6Add(ab, ab)
	return &blsFp12{c0: c0, c1: c1}
}

func blsFp12Inv(a *blsFp12) *blsFp12 {
	t := blsFp6Sub(blsFp6Sqr(a.c0), blsFp6MulByV(blsFp6Sqr(a.c1)))
	t = blsFp6Inv(t)
	return &blsFp12{c0: blsFp6Mul(a.c0, t), c1: blsFp6Neg(blsFp6Mul(a.c1, t))}
}

func blsFp12Conj(a *blsFp12) *blsFp12 {
	return &blsFp12{
		c0: &blsFp6{
			c0: newBlsFp2(a.c0.c0.c0, a.c0.c0.c1),
			c1: newBlsFp2(a.c0.c1.c0, a.c0.c1.c1),
			c2: newBlsFp2(a.c0.c2.c0, a.c0.c2.c1),
		},
		c1: blsFp6Neg(a.c1),
	}
}

// blsFp12Exp computes f^k by square-and-multiply.
func blsFp12Exp(f *blsFp12, k *big.Int) *blsFp12 {
	if k.Sign() == 0 {
		return blsFp12One()
	}
	result := blsFp12One()
	base := &blsFp12{
		c0: &blsFp6{
			c0: newBlsFp2(f.c0.c0.c0, f.c0.c0.c1),
			c1: newBlsFp2(f.c0.c1.c0, f.c0.c1.c1),
			c2: newBlsFp2(f.c0.c2.c0, f.c0.c2.c1),
		},
		c1: &blsFp6{
			c0: newBlsFp2(f.c1.c0.c0, f.c1.c0.c1),
			c1: newBlsFp2(f.c1.c1.c0, f.c1.c1.c1),
			c2: newBlsFp2(f.c1.c2.c0, f.c1.c2.c1),
		},
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = blsFp12Sqr(result)
		if k.Bit(i) == 1 {
			result = blsFp12Mul(result, base)
		}
	}
	return result
}

func (f *blsFp12) isOne() bool {
	return f.c0.c0.equal(blsFp2One()) &&
		f.c0.c1.isZero() &&
		f.c0.c2.isZero() &&
		f.c1.c0.isZero() &&
		f.c1.c1.isZero() &&
		f.c1.c2.isZero()
}

// ---- Miller loop ----

// blsLineFunctionAdd evaluates the line through untwisted R and Q at
// P = (px, py) and returns R+Q. For the D-twist the untwist map sends
// (x',y') -> (x'/w^2, y'/w^3); clearing denominators by w^3 gives the
// sparse line element (λ·rx-ry) + (-λ·px)·v + py·v·w, where
// λ = (qy-ry)/(qx-rx).
func blsLineFunctionAdd(r *BlsG2Point, qx, qy *blsFp2, px, py *big.Int) (*blsFp12, *BlsG2Point) {
	if r.blsG2IsInfinity() {
		return blsFp12One(), blsG2FromAffine(qx, qy)
	}

	rx, ry := r.blsG2ToAffine()
	if rx.equal(qx) && ry.equal(qy) {
		return blsLineFunctionDouble(r, px, py)
	}

	num := blsFp2Sub(qy, ry)
	den := blsFp2Sub(qx, rx)
	if den.isZero() {
		// Same x, different y: vertical line, killed by final exponentiation.
		return blsFp12One(), BlsG2Infinity()
	}

	lambda := blsFp2Mul(num, blsFp2Inv(den))
	ell0 := blsFp2Sub(blsFp2Mul(lambda, rx), ry)
	ell1 := blsFp2Neg(blsFp2MulScalar(lambda, px))

	f := &blsFp12{
		c0: &blsFp6{c0: ell0, c1: ell1, c2: blsFp2Zero()},
		c1: &blsFp6{c0: blsFp2Zero(), c1: &blsFp2{c0: new(big.Int).Set(py), c1: new(big.Int)}, c2: blsFp2Zero()},
	}

	return f, blsG2Add(r, blsG2FromAffine(qx, qy))
}

// blsLineFunctionDouble evaluates the tangent line at untwisted R and
// returns 2R. λ = 3·rx^2/(2·ry) (a=0 for the twist curve).
func blsLineFunctionDouble(r *BlsG2Point, px, py *big.Int) (*blsFp12, *BlsG2Point) {
	if r.blsG2IsInfinity() {
		return blsFp12One(), BlsG2Infinity()
	}

	rx, ry := r.blsG2ToAffine()
	if ry.isZero() {
		return blsFp12One(), BlsG2Infinity()
	}

	rxSq := blsFp2Sqr(rx)
	three := &blsFp2{c0: big.NewInt(3), c1: new(big.Int)}
	two := &blsFp2{c0: big.NewInt(2), c1: new(big.Int)}
	lambda := blsFp2Mul(blsFp2Mul(three, rxSq), blsFp2Inv(blsFp2Mul(two, ry)))

	ell0 := blsFp2Sub(blsFp2Mul(lambda, rx), ry)
	ell1 := blsFp2Neg(blsFp2MulScalar(lambda, px))

	f := &blsFp12{
		c0: &blsFp6{c0: ell0, c1: ell1, c2: blsFp2Zero()},
		c1: &blsFp6{c0: blsFp2Zero(), c1: &blsFp2{c0: new(big.Int).Set(py), c1: new(big.Int)}, c2: blsFp2Zero()},
	}

	return f, blsG2Double(r)
}

// blsMillerLoop runs the Miller loop over the bits of blsX. x is negative,
// so the output is conjugated rather than negating x directly.
func blsMillerLoop(p *BlsG1Point, q *BlsG2Point) *blsFp12 {
	if p.blsG1IsInfinity() || q.blsG2IsInfinity() {
		return blsFp12One()
	}

	px, py := p.blsG1ToAffine()
	qx, qy := q.blsG2ToAffine()

	f := blsFp12One()
	r := blsG2FromAffine(qx, qy)

	for i := blsX.BitLen() - 2; i >= 0; i-- {
		var lineF *blsFp12
		lineF, r = blsLineFunctionDouble(r, px, py)
		f = blsFp12Sqr(f)
		f = blsFp12Mul(f, lineF)

		if blsX.Bit(i) == 1 {
			lineF, r = blsLineFunctionAdd(r, qx, qy, px, py)
			f = blsFp12Mul(f, lineF)
		}
	}

	return blsFp12Conj(f)
}

// blsFinalExponentiation computes f^((p^12-1)/r), split into the easy part
// f^((p^6-1)*(p^2+1)) and the hard part f^((p^4-p^2+1)/r). The hard part
// here is a direct exponentiation to hardExp rather than an addition chain
// over blsX.
func blsFinalExponentiation(f *blsFp12) *blsFp12 {
	fInv := blsFp12Inv(f)
	f1 := blsFp12Mul(blsFp12Conj(f), fInv) // f^(p^6-1), since f^(p^6) = conj(f)

	f1p2 := blsFp12Exp(f1, new(big.Int).Mul(blsP, blsP))
	f2 := blsFp12Mul(f1p2, f1) // f1^(p^2+1)

	p2 := new(big.Int).Mul(blsP, blsP)
	p4 := new(big.Int).Mul(p2, p2)
	hardExp := new(big.Int).Sub(p4, p2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, blsR)

	return blsFp12Exp(f2, hardExp)
}

// blsMultiPairing checks prod_i e(G1_i, G2_i) == 1 in G_T.
func blsMultiPairing(g1Points []*BlsG1Point, g2Points []*BlsG2Point) bool {
	f := blsFp12One()
	for i := range g1Points {
		if g1Points[i].blsG1IsInfinity() || g2Points[i].blsG2IsInfinity() {
			continue
		}
		f = blsFp12Mul(f, blsMillerLoop(g1Points[i], g2Points[i]))
	}
	return blsFinalExponentiation(f).isOne()
}
