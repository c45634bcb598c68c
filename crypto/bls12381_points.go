package crypto

// BLS12-381 point arithmetic for G1 (y^2 = x^3 + 4 over F_p) and G2
// (y^2 = x^3 + 4(1+u) over F_p^2), plus the map-to-curve routines EIP-2537
// needs to turn an arbitrary field element into a curve point. Points use
// Jacobian coordinates (X, Y, Z) with the point at infinity at Z=0.

import "math/big"

// ---- G1 ----

// BlsG1Point is a point on the BLS12-381 G1 curve in Jacobian coordinates.
type BlsG1Point struct {
	x, y, z *big.Int
}

var (
	blsG1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	blsG1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
)

func BlsG1Generator() *BlsG1Point {
	return &BlsG1Point{x: new(big.Int).Set(blsG1GenX), y: new(big.Int).Set(blsG1GenY), z: big.NewInt(1)}
}

func BlsG1Infinity() *BlsG1Point {
	return &BlsG1Point{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

func (p *BlsG1Point) blsG1IsInfinity() bool { return p.z.Sign() == 0 }

// blsG1FromAffine treats the all-zeros encoding as the point at infinity.
func blsG1FromAffine(x, y *big.Int) *BlsG1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return BlsG1Infinity()
	}
	return &BlsG1Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

// blsG1ToAffine returns (0,0) for infinity.
func (p *BlsG1Point) blsG1ToAffine() (x, y *big.Int) {
	if p.blsG1IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	zInv := blsFpInv(p.z)
	zInv2 := blsFpSqr(zInv)
	zInv3 := blsFpMul(zInv2, zInv)
	return blsFpMul(p.x, zInv2), blsFpMul(p.y, zInv3)
}

// blsG1IsOnCurve treats (0,0) as the identity and accepts it.
func blsG1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(blsP) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(blsP) >= 0 {
		return false
	}
	lhs := blsFpSqr(y)
	rhs := blsFpAdd(blsFpMul(blsFpSqr(x), x), blsB)
	return lhs.Cmp(rhs) == 0
}

func blsG1Add(a, b *BlsG1Point) *BlsG1Point {
	if a.blsG1IsInfinity() {
		return &BlsG1Point{new(big.Int).Set(b.x), new(big.Int).Set(b.y), new(big.Int).Set(b.z)}
	}
	if b.blsG1IsInfinity() {
		return &BlsG1Point{new(big.Int).Set(a.x), new(big.Int).Set(a.y), new(big.Int).Set(a.z)}
	}

	z1sq := blsFpSqr(a.z)
	z2sq := blsFpSqr(b.z)
	u1 := blsFpMul(a.x, z2sq)
	u2 := blsFpMul(b.x, z1sq)
	s1 := blsFpMul(a.y, blsFpMul(b.z, z2sq))
	s2 := blsFpMul(b.y, blsFpMul(a.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return blsG1Double(a)
		}
		return BlsG1Infinity()
	}

	h := blsFpSub(u2, u1)
	i := blsFpSqr(blsFpAdd(h, h))
	j := blsFpMul(h, i)
	r := blsFpSub(s2, s1)
	r = blsFpAdd(r, r)
	v := blsFpMul(u1, i)

	x3 := blsFpSub(blsFpSub(blsFpSqr(r), j), blsFpAdd(v, v))
	y3 := blsFpSub(blsFpMul(r, blsFpSub(v, x3)), blsFpAdd(blsFpMul(s1, j), blsFpMul(s1, j)))
	z3 := blsFpMul(blsFpSub(blsFpSub(blsFpSqr(blsFpAdd(a.z, b.z)), z1sq), z2sq), h)

	return &BlsG1Point{x: x3, y: y3, z: z3}
}

func blsG1Double(a *BlsG1Point) *BlsG1Point {
	if a.blsG1IsInfinity() {
		return BlsG1Infinity()
	}

	A := blsFpSqr(a.x)
	B := blsFpSqr(a.y)
	C := blsFpSqr(B)

	D := blsFpSub(blsFpSub(blsFpSqr(blsFpAdd(a.x, B)), A), C)
	D = blsFpAdd(D, D)

	E := blsFpAdd(blsFpAdd(A, A), A)

	x3 := blsFpSub(blsFpSqr(E), blsFpAdd(D, D))

	eightC := blsFpAdd(blsFpAdd(blsFpAdd(C, C), blsFpAdd(C, C)), blsFpAdd(blsFpAdd(C, C), blsFpAdd(C, C)))
	y3 := blsFpSub(blsFpMul(E, blsFpSub(D, x3)), eightC)

	z3 := blsFpMul(blsFpAdd(a.y, a.y), a.z)

	return &BlsG1Point{x: x3, y: y3, z: z3}
}

func blsG1ScalarMul(p *BlsG1Point, k *big.Int) *BlsG1Point {
	if k.Sign() == 0 || p.blsG1IsInfinity() {
		return BlsG1Infinity()
	}

	kMod := new(big.Int).Mod(k, blsR)
	if kMod.Sign() == 0 {
		return BlsG1Infinity()
	}

	r := BlsG1Infinity()
	base := &BlsG1Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), z: new(big.Int).Set(p.z)}

	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = blsG1Double(r)
		if kMod.Bit(i) == 1 {
			r = blsG1Add(r, base)
		}
	}
	return r
}

func blsG1Neg(p *BlsG1Point) *BlsG1Point {
	if p.blsG1IsInfinity() {
		return BlsG1Infinity()
	}
	return &BlsG1Point{x: new(big.Int).Set(p.x), y: blsFpNeg(p.y), z: new(big.Int).Set(p.z)}
}

// blsG1InSubgroup checks membership in the r-torsion subgroup via [r]*P == O.
func blsG1InSubgroup(p *BlsG1Point) bool {
	if p.blsG1IsInfinity() {
		return true
	}
	return blsG1ScalarMul(p, blsR).blsG1IsInfinity()
}

// ---- G2 ----

// BlsG2Point is a point on the BLS12-381 twist curve with F_p^2 coordinates.
type BlsG2Point struct {
	x, y, z *blsFp2
}

var blsTwistB = &blsFp2{c0: big.NewInt(4), c1: big.NewInt(4)}

var (
	blsG2GenXc0, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	blsG2GenXc1, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	blsG2GenYc0, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	blsG2GenYc1, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)
)

func BlsG2Generator() *BlsG2Point {
	return &BlsG2Point{
		x: &blsFp2{c0: new(big.Int).Set(blsG2GenXc0), c1: new(big.Int).Set(blsG2GenXc1)},
		y: &blsFp2{c0: new(big.Int).Set(blsG2GenYc0), c1: new(big.Int).Set(blsG2GenYc1)},
		z: blsFp2One(),
	}
}

func BlsG2Infinity() *BlsG2Point {
	return &BlsG2Point{x: blsFp2One(), y: blsFp2One(), z: blsFp2Zero()}
}

func (p *BlsG2Point) blsG2IsInfinity() bool { return p.z.isZero() }

func blsG2FromAffine(x, y *blsFp2) *BlsG2Point {
	if x.isZero() && y.isZero() {
		return BlsG2Infinity()
	}
	return &BlsG2Point{x: newBlsFp2(x.c0, x.c1), y: newBlsFp2(y.c0, y.c1), z: blsFp2One()}
}

func (p *BlsG2Point) blsG2ToAffine() (x, y *blsFp2) {
	if p.blsG2IsInfinity() {
		return blsFp2Zero(), blsFp2Zero()
	}
	zInv := blsFp2Inv(p.z)
	zInv2 := blsFp2Sqr(zInv)
	zInv3 := blsFp2Mul(zInv2, zInv)
	return blsFp2Mul(p.x, zInv2), blsFp2Mul(p.y, zInv3)
}

func blsG2IsOnCurve(x, y *blsFp2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	xr0 := new(big.Int).Mod(x.c0, blsP)
	xr1 := new(big.Int).Mod(x.c1, blsP)
	yr0 := new(big.Int).Mod(y.c0, blsP)
	yr1 := new(big.Int).Mod(y.c1, blsP)
	if xr0.Cmp(x.c0) != 0 || xr1.Cmp(x.c1) != 0 {
		return false
	}
	if yr0.Cmp(y.c0) != 0 || yr1.Cmp(y.c1) != 0 {
		return false
	}
	lhs := blsFp2Sqr(y)
	rhs := blsFp2Add(blsFp2Mul(blsFp2Sqr(x), x), blsTwistB)
	return lhs.equal(rhs)
}

func blsG2Add(a, b *BlsG2Point) *BlsG2Point {
	if a.blsG2IsInfinity() {
		return &BlsG2Point{newBlsFp2(b.x.c0, b.x.c1), newBlsFp2(b.y.c0, b.y.c1), newBlsFp2(b.z.c0, b.z.c1)}
	}
	if b.blsG2IsInfinity() {
		return &BlsG2Point{newBlsFp2(a.x.c0, a.x.c1), newBlsFp2(a.y.c0, a.y.c1), newBlsFp2(a.z.c0, a.z.c1)}
	}

	z1sq := blsFp2Sqr(a.z)
	z2sq := blsFp2Sqr(b.z)
	u1 := blsFp2Mul(a.x, z2sq)
	u2 := blsFp2Mul(b.x, z1sq)
	s1 := blsFp2Mul(a.y, blsFp2Mul(b.z, z2sq))
	s2 := blsFp2Mul(b.y, blsFp2Mul(a.z, z1sq))

	if u1.equal(u2) {
		if s1.equal(s2) {
			return blsG2Double(a)
		}
		return BlsG2Infinity()
	}

	h := blsFp2Sub(u2, u1)
	i := blsFp2Sqr(blsFp2Add(h, h))
	j := blsFp2Mul(h, i)
	r := blsFp2Sub(s2, s1)
	r = blsFp2Add(r, r)
	v := blsFp2Mul(u1, i)

	x3 := blsFp2Sub(blsFp2Sub(blsFp2Sqr(r), j), blsFp2Add(v, v))
	y3 := blsFp2Sub(blsFp2Mul(r, blsFp2Sub(v, x3)), blsFp2Add(blsFp2Mul(s1, j), blsFp2Mul(s1, j)))
	z3 := blsFp2Mul(blsFp2Sub(blsFp2Sub(blsFp2Sqr(blsFp2Add(a.z, b.z)), z1sq), z2sq), h)

	return &BlsG2Point{x: x3, y: y3, z: z3}
}

func blsG2Double(a *BlsG2Point) *BlsG2Point {
	if a.blsG2IsInfinity() {
		return BlsG2Infinity()
	}

	A := blsFp2Sqr(a.x)
	B := blsFp2Sqr(a.y)
	C := blsFp2Sqr(B)

	D := blsFp2Sub(blsFp2Sub(blsFp2Sqr(blsFp2Add(a.x, B)), A), C)
	D = blsFp2Add(D, D)

	E := blsFp2Add(blsFp2Add(A, A), A)

	x3 := blsFp2Sub(blsFp2Sqr(E), blsFp2Add(D, D))

	eightC := blsFp2Add(blsFp2Add(blsFp2Add(C, C), blsFp2Add(C, C)), blsFp2Add(blsFp2Add(C, C), blsFp2Add(C, C)))
	y3 := blsFp2Sub(blsFp2Mul(E, blsFp2Sub(D, x3)), eightC)

	z3 := blsFp2Mul(blsFp2Add(a.y, a.y), a.z)

	return &BlsG2Point{x: x3, y: y3, z: z3}
}

func blsG2Neg(p *BlsG2Point) *BlsG2Point {
	if p.blsG2IsInfinity() {
		return BlsG2Infinity()
	}
	return &BlsG2Point{x: newBlsFp2(p.x.c0, p.x.c1), y: blsFp2Neg(p.y), z: newBlsFp2(p.z.c0, p.z.c1)}
}

func blsG2ScalarMul(p *BlsG2Point, k *big.Int) *BlsG2Point {
	if k.Sign() == 0 || p.blsG2IsInfinity() {
		return BlsG2Infinity()
	}
	kMod := new(big.Int).Mod(k, blsR)
	if kMod.Sign() == 0 {
		return BlsG2Infinity()
	}

	r := BlsG2Infinity()
	base := &BlsG2Point{x: newBlsFp2(p.x.c0, p.x.c1), y: newBlsFp2(p.y.c0, p.y.c1), z: newBlsFp2(p.z.c0, p.z.c1)}
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = blsG2Double(r)
		if kMod.Bit(i) == 1 {
			r = blsG2Add(r, base)
		}
	}
	return r
}

// blsG2InSubgroup checks membership in the r-torsion subgroup via [r]*P == O.
func blsG2InSubgroup(p *BlsG2Point) bool {
	if p.blsG2IsInfinity() {
		return true
	}
	return blsG2ScalarMul(p, blsR).blsG2IsInfinity()
}

// ---- map-to-curve (EIP-2537) ----
//
// Both maps use try-and-increment (step x until x^3 + b is a square)
// rather than the Simplified SWU + isogeny map, so the points they return
// are valid subgroup points but differ from those the SWU-based mapping
// returns for the same input. The loop is not constant-time.

// blsMapFpToG1 maps u in F_p to a point on y^2 = x^3 + 4.
func blsMapFpToG1(u *big.Int) *BlsG1Point {
	x := new(big.Int).Mod(u, blsP)

	for i := 0; i < 256; i++ {
		x3 := blsFpMul(blsFpSqr(x), x)
		rhs := blsFpAdd(x3, blsB)

		y := blsFpSqrt(rhs)
		if y != nil {
			if blsFpSgn0(u) != blsFpSgn0(y) {
				y = blsFpNeg(y)
			}
			return blsG1FromAffine(x, y)
		}

		x = blsFpAdd(x, big.NewInt(1))
	}

	return BlsG1Infinity()
}

// blsMapFp2ToG2 maps u in F_p^2 to a point on y^2 = x^3 + 4(1+u).
func blsMapFp2ToG2(u *blsFp2) *BlsG2Point {
	x := newBlsFp2(u.c0, u.c1)

	for i := 0; i < 256; i++ {
		x3 := blsFp2Mul(blsFp2Sqr(x), x)
		rhs := blsFp2Add(x3, blsTwistB)

		y := blsFp2Sqrt(rhs)
		if y != nil && blsFp2Sqr(y).equal(rhs) {
			if blsFp2Sgn0(u) != blsFp2Sgn0(y) {
				y = blsFp2Neg(y)
			}
			return blsG2FromAffine(x, y)
		}

		x = blsFp2Add(x, blsFp2One())
	}

	return BlsG2Infinity()
}
