package crypto

// BN254 G1/G2 point operations, both in Jacobian coordinates.
//
// G1 lives on y^2 = x^3 + 3 over F_p; G2 lives on the twisted curve
// y^2 = x^3 + 3/(9+i) over F_p^2. A Jacobian point (X, Y, Z) represents
// the affine point (X/Z^2, Y/Z^3); Z=0 is the point at infinity.

import "math/big"

// ---- G1 -----------------------------------------------------------------

// G1Point is a BN254 G1 point in Jacobian coordinates.
type G1Point struct {
	x, y, z *big.Int
}

// G1Generator returns the generator of G1: (1, 2).
func G1Generator() *G1Point {
	return &G1Point{x: big.NewInt(1), y: big.NewInt(2), z: big.NewInt(1)}
}

// G1Infinity returns the point at infinity.
func G1Infinity() *G1Point {
	return &G1Point{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

// Marshal serializes the G1 point to uncompressed affine bytes (64 bytes: X || Y).
func (p *G1Point) Marshal() []byte {
	if p.g1IsInfinity() {
		return make([]byte, 64)
	}
	ax, ay := p.g1ToAffine()
	out := make([]byte, 64)
	axBytes := ax.Bytes()
	ayBytes := ay.Bytes()
	copy(out[32-len(axBytes):32], axBytes)
	copy(out[64-len(ayBytes):64], ayBytes)
	return out
}

func (p *G1Point) g1IsInfinity() bool { return p.z.Sign() == 0 }

// g1FromAffine builds a Jacobian point from affine coordinates; (0,0) is
// the point-at-infinity convention used throughout the ECADD/ECMUL/
// ECPAIRING precompiles.
func g1FromAffine(x, y *big.Int) *G1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Infinity()
	}
	return &G1Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

func (p *G1Point) g1ToAffine() (x, y *big.Int) {
	if p.g1IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	zInv := fpInv(p.z)
	zInv2 := fpSqr(zInv)
	zInv3 := fpMul(zInv2, zInv)
	return fpMul(p.x, zInv2), fpMul(p.y, zInv3)
}

// g1IsOnCurve checks y^2 = x^3 + 3; (0,0) (the identity) is always valid.
func g1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(bn254P) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(bn254P) >= 0 {
		return false
	}
	lhs := fpSqr(y)
	rhs := fpAdd(fpMul(fpSqr(x), x), bn254B)
	return lhs.Cmp(rhs) == 0
}

func g1Add(a, b *G1Point) *G1Point {
	if a.g1IsInfinity() {
		return &G1Point{new(big.Int).Set(b.x), new(big.Int).Set(b.y), new(big.Int).Set(b.z)}
	}
	if b.g1IsInfinity() {
		return &G1Point{new(big.Int).Set(a.x), new(big.Int).Set(a.y), new(big.Int).Set(a.z)}
	}

	z1sq := fpSqr(a.z)
	z2sq := fpSqr(b.z)
	u1 := fpMul(a.x, z2sq)
	u2 := fpMul(b.x, z1sq)
	s1 := fpMul(a.y, fpMul(b.z, z2sq))
	s2 := fpMul(b.y, fpMul(a.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return g1Double(a)
		}
		return G1Infinity()
	}

	h := fpSub(u2, u1)
	i := fpSqr(fpAdd(h, h))
	j := fpMul(h, i)
	r := fpSub(s2, s1)
	r = fpAdd(r, r)
	v := fpMul(u1, i)

	x3 := fpSub(fpSub(fpSqr(r), j), fpAdd(v, v))
	y3 := fpSub(fpMul(r, fpSub(v, x3)), fpAdd(fpMul(s1, j), fpMul(s1, j)))
	z3 := fpMul(fpSub(fpSub(fpSqr(fpAdd(a.z, b.z)), z1sq), z2sq), h)

	return &G1Point{x: x3, y: y3, z: z3}
}

func g1Double(a *G1Point) *G1Point {
	if a.g1IsInfinity() {
		return G1Infinity()
	}

	A := fpSqr(a.x)
	B := fpSqr(a.y)
	C := fpSqr(B)

	D := fpSub(fpSub(fpSqr(fpAdd(a.x, B)), A), C)
	D = fpAdd(D, D)

	E := fpAdd(fpAdd(A, A), A)

	x3 := fpSub(fpSqr(E), fpAdd(D, D))

	eightC := fpAdd(fpAdd(fpAdd(C, C), fpAdd(C, C)), fpAdd(fpAdd(C, C), fpAdd(C, C)))
	y3 := fpSub(fpMul(E, fpSub(D, x3)), eightC)

	z3 := fpMul(fpAdd(a.y, a.y), a.z)

	return &G1Point{x: x3, y: y3, z: z3}
}

// G1ScalarMul computes k*P by double-and-add, most significant bit first.
func G1ScalarMul(p *G1Point, k *big.Int) *G1Point {
	if k.Sign() == 0 || p.g1IsInfinity() {
		return G1Infinity()
	}

	kMod := new(big.Int).Mod(k, bn254N)
	if kMod.Sign() == 0 {
		return G1Infinity()
	}

	r := G1Infinity()
	base := &G1Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), z: new(big.Int).Set(p.z)}

	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = g1Double(r)
		if kMod.Bit(i) == 1 {
			r = g1Add(r, base)
		}
	}
	return r
}

func g1Neg(p *G1Point) *G1Point {
	if p.g1IsInfinity() {
		return G1Infinity()
	}
	return &G1Point{x: new(big.Int).Set(p.x), y: fpNeg(p.y), z: new(big.Int).Set(p.z)}
}

// ---- G2 -----------------------------------------------------------------

// G2Point is a BN254 G2 point on the sextic twist, in Jacobian coordinates
// over F_p^2.
type G2Point struct {
	x, y, z *fp2
}

// twistB is the twist curve coefficient b' = 3 * (9+i)^(-1).
var (
	twistBa0, _ = new(big.Int).SetString("19485874751759354771024239261021720505790618469301721065564631296452457478373", 10)
	twistBa1, _ = new(big.Int).SetString("266929791119991161246907387137283842545076965332900288569378510910307636690", 10)
	twistB      = &fp2{a0: twistBa0, a1: twistBa1}
)

var (
	g2GenXa0, _ = new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	g2GenXa1, _ = new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	g2GenYa0, _ = new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	g2GenYa1, _ = new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)
)

// G2Generator returns the generator of G2.
func G2Generator() *G2Point {
	return &G2Point{
		x: &fp2{a0: new(big.Int).Set(g2GenXa0), a1: new(big.Int).Set(g2GenXa1)},
		y: &fp2{a0: new(big.Int).Set(g2GenYa0), a1: new(big.Int).Set(g2GenYa1)},
		z: fp2One(),
	}
}

// G2Infinity returns the point at infinity for G2.
func G2Infinity() *G2Point {
	return &G2Point{x: fp2One(), y: fp2One(), z: fp2Zero()}
}

func (p *G2Point) g2IsInfinity() bool { return p.z.isZero() }

func g2FromAffine(x, y *fp2) *G2Point {
	if x.isZero() && y.isZero() {
		return G2Infinity()
	}
	return &G2Point{x: newFp2(x.a0, x.a1), y: newFp2(y.a0, y.a1), z: fp2One()}
}

func (p *G2Point) g2ToAffine() (x, y *fp2) {
	if p.g2IsInfinity() {
		return fp2Zero(), fp2Zero()
	}
	zInv := fp2Inv(p.z)
	zInv2 := fp2Sqr(zInv)
	zInv3 := fp2Mul(zInv2, zInv)
	return fp2Mul(p.x, zInv2), fp2Mul(p.y, zInv3)
}

// g2IsOnCurve checks y^2 = x^3 + b' after verifying both coordinates are
// already-reduced elements of F_p^2.
func g2IsOnCurve(x, y *fp2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	xr0 := new(big.Int).Mod(x.a0, bn254P)
	xr1 := new(big.Int).Mod(x.a1, bn254P)
	yr0 := new(big.Int).Mod(y.a0, bn254P)
	yr1 := new(big.Int).Mod(y.a1, bn254P)
	if xr0.Cmp(x.a0) != 0 || xr1.Cmp(x.a1) != 0 {
		return false
	}
	if yr0.Cmp(y.a0) != 0 || yr1.Cmp(y.a1) != 0 {
		return false
	}
	lhs := fp2Sqr(y)
	rhs := fp2Add(fp2Mul(fp2Sqr(x), x), twistB)
	return lhs.equal(rhs)
}

func g2Add(a, b *G2Point) *G2Point {
	if a.g2IsInfinity() {
		return &G2Point{newFp2(b.x.a0, b.x.a1), newFp2(b.y.a0, b.y.a1), newFp2(b.z.a0, b.z.a1)}
	}
	if b.g2IsInfinity() {
		return &G2Point{newFp2(a.x.a0, a.x.a1), newFp2(a.y.a0, a.y.a1), newFp2(a.z.a0, a.z.a1)}
	}

	z1sq := fp2Sqr(a.z)
	z2sq := fp2Sqr(b.z)
	u1 := fp2Mul(a.x, z2sq)
	u2 := fp2Mul(b.x, z1sq)
	s1 := fp2Mul(a.y, fp2Mul(b.z, z2sq))
	s2 := fp2Mul(b.y, fp2Mul(a.z, z1sq))

	if u1.equal(u2) {
		if s1.equal(s2) {
			return g2Double(a)
		}
		return G2Infinity()
	}

	h := fp2Sub(u2, u1)
	i := fp2Sqr(fp2Add(h, h))
	j := fp2Mul(h, i)
	r := fp2Sub(s2, s1)
	r = fp2Add(r, r)
	v := fp2Mul(u1, i)

	x3 := fp2Sub(fp2Sub(fp2Sqr(r), j), fp2Add(v, v))
	y3 := fp2Sub(fp2Mul(r, fp2Sub(v, x3)), fp2Add(fp2Mul(s1, j), fp2Mul(s1, j)))
	z3 := fp2Mul(fp2Sub(fp2Sub(fp2Sqr(fp2Add(a.z, b.z)), z1sq), z2sq), h)

	return &G2Point{x: x3, y: y3, z: z3}
}

func g2Double(a *G2Point) *G2Point {
	if a.g2IsInfinity() {
		return G2Infinity()
	}

	A := fp2Sqr(a.x)
	B := fp2Sqr(a.y)
	C := fp2Sqr(B)

	D := fp2Sub(fp2Sub(fp2Sqr(fp2Add(a.x, B)), A), C)
	D = fp2Add(D, D)

	E := fp2Add(fp2Add(A, A), A)

	x3 := fp2Sub(fp2Sqr(E), fp2Add(D, D))

	eightC := fp2Add(fp2Add(fp2Add(C, C), fp2Add(C, C)), fp2Add(fp2Add(C, C), fp2Add(C, C)))
	y3 := fp2Sub(fp2Mul(E, fp2Sub(D, x3)), eightC)

	z3 := fp2Mul(fp2Add(a.y, a.y), a.z)

	return &G2Point{x: x3, y: y3, z: z3}
}

func g2Neg(p *G2Point) *G2Point {
	if p.g2IsInfinity() {
		return G2Infinity()
	}
	return &G2Point{x: newFp2(p.x.a0, p.x.a1), y: fp2Neg(p.y), z: newFp2(p.z.a0, p.z.a1)}
}
