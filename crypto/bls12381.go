package crypto

// Entry points for the nine EIP-2537 BLS12-381 precompiles (0x0b-0x13):
// G1/G2 add, scalar mul, multi-scalar mul, pairing check, and the two
// map-to-curve operations. Wire codec lives in bls12381_codec.go, point
// arithmetic in bls12381_points.go, field towers and pairing in
// bls12381_fields.go/bls12381_ate.go.

import (
	"errors"
	"math/big"
)

var (
	errBLS12InvalidPoint  = errors.New("bls12-381: invalid point")
	errBLS12InvalidG2     = errors.New("bls12-381: invalid G2 point")
	errBLS12NotOnCurve    = errors.New("bls12-381: point not on curve")
	errBLS12NotInSubgroup = errors.New("bls12-381: point not in subgroup")
	errBLS12InvalidField  = errors.New("bls12-381: invalid field element")
)

// BLS12-381 cofactors for clearing a map-to-curve result into the
// prime-order subgroup: h1 = (x-1)^2/3 for G1, h2 the larger G2 cofactor.
var (
	blsG1Cofactor, _ = new(big.Int).SetString("396c8c005555e1568c00aaab0000aaab", 16)
	blsG2Cofactor, _ = new(big.Int).SetString(
		"5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5", 16)
)

// BLS12G1Add adds two G1 points (precompile 0x0b).
func BLS12G1Add(input []byte) ([]byte, error) {
	if len(input) != 2*blsG1EncSize {
		return nil, errBLS12InvalidPoint
	}

	p1, err := decodeG1(input[:blsG1EncSize])
	if err != nil {
		return nil, err
	}
	p2, err := decodeG1(input[blsG1EncSize:])
	if err != nil {
		return nil, err
	}

	return encodeG1(blsG1Add(p1, p2)), nil
}

// BLS12G1Mul multiplies a G1 point by a scalar (precompile 0x0c).
func BLS12G1Mul(input []byte) ([]byte, error) {
	if len(input) != blsG1EncSize+blsScalarSize {
		return nil, errBLS12InvalidPoint
	}

	p, err := decodeG1(input[:blsG1EncSize])
	if err != nil {
		return nil, err
	}

	scalar := new(big.Int).SetBytes(input[blsG1EncSize:])
	return encodeG1(blsG1ScalarMul(p, scalar)), nil
}

// BLS12G1MSM sums k independent G1 scalar multiplications (precompile 0x0d).
func BLS12G1MSM(input []byte) ([]byte, error) {
	pairSize := blsG1EncSize + blsScalarSize
	if len(input) == 0 || len(input)%pairSize != 0 {
		return nil, errBLS12InvalidPoint
	}

	k := len(input) / pairSize
	r := BlsG1Infinity()

	for i := 0; i < k; i++ {
		offset := i * pairSize
		p, err := decodeG1(input[offset : offset+blsG1EncSize])
		if err != nil {
			return nil, err
		}
		scalar := new(big.Int).SetBytes(input[offset+blsG1EncSize : offset+pairSize])
		r = blsG1Add(r, blsG1ScalarMul(p, scalar))
	}

	return encodeG1(r), nil
}

// BLS12G2Add adds two G2 points (precompile 0x0e).
func BLS12G2Add(input []byte) ([]byte, error) {
	if len(input) != 2*blsG2EncSize {
		return nil, errBLS12InvalidG2
	}

	p1, err := decodeG2(input[:blsG2EncSize])
	if err != nil {
		return nil, err
	}
	p2, err := decodeG2(input[blsG2EncSize:])
	if err != nil {
		return nil, err
	}

	return encodeG2(blsG2Add(p1, p2)), nil
}

// BLS12G2Mul multiplies a G2 point by a scalar (precompile 0x0f).
func BLS12G2Mul(input []byte) ([]byte, error) {
	if len(input) != blsG2EncSize+blsScalarSize {
		return nil, errBLS12InvalidG2
	}

	p, err := decodeG2(input[:blsG2EncSize])
	if err != nil {
		return nil, err
	}

	scalar := new(big.Int).SetBytes(input[blsG2EncSize:])
	return encodeG2(blsG2ScalarMul(p, scalar)), nil
}

// BLS12G2MSM sums k independent G2 scalar multiplications (precompile 0x10).
func BLS12G2MSM(input []byte) ([]byte, error) {
	pairSize := blsG2EncSize + blsScalarSize
	if len(input) == 0 || len(input)%pairSize != 0 {
		return nil, errBLS12InvalidG2
	}

	k := len(input) / pairSize
	r := BlsG2Infinity()

	for i := 0; i < k; i++ {
		offset := i * pairSize
		p, err := decodeG2(input[offset : offset+blsG2EncSize])
		if err != nil {
			return nil, err
		}
		scalar := new(big.Int).SetBytes(input[offset+blsG2EncSize : offset+pairSize])
		r = blsG2Add(r, blsG2ScalarMul(p, scalar))
	}

	return encodeG2(r), nil
}

// BLS12Pairing checks prod_i e(G1_i, G2_i) == 1 in G_T (precompile 0x11).
// Input is k*384-byte chunks, each a G1 point followed by a G2 point;
// output is 32 bytes, 1 for true. If every G1 or every G2 point is the
// identity the product is trivially 1, independent of the other side.
func BLS12Pairing(input []byte) ([]byte, error) {
	pairSize := blsG1EncSize + blsG2EncSize
	if len(input) == 0 || len(input)%pairSize != 0 {
		return nil, errBLS12InvalidPoint
	}

	k := len(input) / pairSize
	g1Points := make([]*BlsG1Point, k)
	g2Points := make([]*BlsG2Point, k)
	allG1Inf, allG2Inf := true, true

	for i := 0; i < k; i++ {
		offset := i * pairSize
		var err error
		g1Points[i], err = decodeG1(input[offset : offset+blsG1EncSize])
		if err != nil {
			return nil, err
		}
		g2Points[i], err = decodeG2(input[offset+blsG1EncSize : offset+pairSize])
		if err != nil {
			return nil, err
		}
		if !g1Points[i].blsG1IsInfinity() {
			allG1Inf = false
		}
		if !g2Points[i].blsG2IsInfinity() {
			allG2Inf = false
		}
	}

	if allG1Inf || allG2Inf {
		return blsPairingResult(true), nil
	}

	return blsPairingResult(blsMultiPairing(g1Points, g2Points)), nil
}

// BLS12MapFpToG1 maps a field element to a G1 point (precompile 0x12),
// clearing the cofactor so the result lands in the prime-order subgroup.
func BLS12MapFpToG1(input []byte) ([]byte, error) {
	if len(input) != blsFpEncSize {
		return nil, errBLS12InvalidField
	}

	u, err := decodeFp(input)
	if err != nil {
		return nil, err
	}

	p := blsG1ScalarMul(blsMapFpToG1(u), blsG1Cofactor)
	return encodeG1(p), nil
}

// BLS12MapFp2ToG2 maps an Fp2 element to a G2 point (precompile 0x13),
// clearing the cofactor so the result lands in the prime-order subgroup.
func BLS12MapFp2ToG2(input []byte) ([]byte, error) {
	if len(input) != 2*blsFpEncSize {
		return nil, errBLS12InvalidField
	}

	u, err := decodeFp2(input)
	if err != nil {
		return nil, err
	}

	p := blsG2ScalarMul(blsMapFp2ToG2(u), blsG2Cofactor)
	return encodeG2(p), nil
}
