package crypto

// Entry points for the three BN254 (alt_bn128) precompiles — ECADD (0x06),
// ECMUL (0x07) and ECPAIRING (0x08) under EIP-196/EIP-197 — built on the
// field tower in bn254_fields.go, the point arithmetic in bn254_points.go
// and the Ate pairing in bn254_ate.go. The vm package's dispatch layer
// handles gas accounting and hardfork gating; these functions only do
// field/curve work and return the raw precompile output bytes.

import (
	"errors"
	"math/big"
)

var (
	errBN254InvalidPoint  = errors.New("bn254: invalid point")
	errBN254InvalidG2     = errors.New("bn254: invalid G2 point")
	errBN254InvalidLength = errors.New("bn254: invalid input length")
)

// BN254Add adds two G1 points. Input is 128 bytes (x1, y1, x2, y2), each a
// 32-byte big-endian integer; short input is zero-padded on the right.
// Output is 64 bytes (x3, y3).
func BN254Add(input []byte) ([]byte, error) {
	input = bn254PadRight(input, 128)

	x1 := new(big.Int).SetBytes(input[0:32])
	y1 := new(big.Int).SetBytes(input[32:64])
	x2 := new(big.Int).SetBytes(input[64:96])
	y2 := new(big.Int).SetBytes(input[96:128])

	if !g1IsOnCurve(x1, y1) {
		return nil, errBN254InvalidPoint
	}
	if !g1IsOnCurve(x2, y2) {
		return nil, errBN254InvalidPoint
	}

	r := g1Add(g1FromAffine(x1, y1), g1FromAffine(x2, y2))
	rx, ry := r.g1ToAffine()
	return bn254EncodeG1(rx, ry), nil
}

// BN254ScalarMul multiplies a G1 point by a scalar. Input is 96 bytes
// (x, y, s); short input is zero-padded on the right. Output is 64 bytes
// (x', y').
func BN254ScalarMul(input []byte) ([]byte, error) {
	input = bn254PadRight(input, 96)

	x := new(big.Int).SetBytes(input[0:32])
	y := new(big.Int).SetBytes(input[32:64])
	s := new(big.Int).SetBytes(input[64:96])

	if !g1IsOnCurve(x, y) {
		return nil, errBN254InvalidPoint
	}

	r := G1ScalarMul(g1FromAffine(x, y), s)
	rx, ry := r.g1ToAffine()
	return bn254EncodeG1(rx, ry), nil
}

// BN254PairingCheck evaluates prod_i e(G1_i, G2_i) == 1. Input is a
// sequence of 192-byte chunks, each laid out as
// (G1_x, G1_y, G2_x_imag, G2_x_real, G2_y_imag, G2_y_real), 32 bytes per
// field element; a non-multiple-of-192 length is rejected outright, never
// padded. Output is 32 bytes: 1 if the product is the identity in G_T, 0
// otherwise. The empty input is trivially true (an empty product is the
// identity).
func BN254PairingCheck(input []byte) ([]byte, error) {
	if len(input)%192 != 0 {
		return nil, errBN254InvalidLength
	}

	k := len(input) / 192
	if k == 0 {
		return bn254PairingResult(true), nil
	}

	g1Points := make([]*G1Point, k)
	g2Points := make([]*G2Point, k)

	for i := 0; i < k; i++ {
		offset := i * 192

		g1x := new(big.Int).SetBytes(input[offset : offset+32])
		g1y := new(big.Int).SetBytes(input[offset+32 : offset+64])
		if !g1IsOnCurve(g1x, g1y) {
			return nil, errBN254InvalidPoint
		}
		g1Points[i] = g1FromAffine(g1x, g1y)

		// G2 layout is imag-before-real per field element, matching the
		// wire format EIP-197 specifies for Fp2 coordinates.
		g2xImag := new(big.Int).SetBytes(input[offset+64 : offset+96])
		g2xReal := new(big.Int).SetBytes(input[offset+96 : offset+128])
		g2yImag := new(big.Int).SetBytes(input[offset+128 : offset+160])
		g2yReal := new(big.Int).SetBytes(input[offset+160 : offset+192])

		if g2xImag.Cmp(bn254P) >= 0 || g2xReal.Cmp(bn254P) >= 0 ||
			g2yImag.Cmp(bn254P) >= 0 || g2yReal.Cmp(bn254P) >= 0 {
			return nil, errBN254InvalidG2
		}

		g2x := &fp2{a0: g2xReal, a1: g2xImag}
		g2y := &fp2{a0: g2yReal, a1: g2yImag}

		if g2x.isZero() && g2y.isZero() {
			g2Points[i] = G2Infinity()
			continue
		}
		if !g2IsOnCurve(g2x, g2y) {
			return nil, errBN254InvalidG2
		}
		g2Points[i] = g2FromAffine(g2x, g2y)
	}

	return bn254PairingResult(bn254MultiPairing(g1Points, g2Points)), nil
}

// ---- wire encoding helpers shared by all three entry points ----

func bn254EncodeG1(x, y *big.Int) []byte {
	out := make([]byte, 64)
	xBytes, yBytes := x.Bytes(), y.Bytes()
	copy(out[32-len(xBytes):32], xBytes)
	copy(out[64-len(yBytes):64], yBytes)
	return out
}

func bn254PairingResult(ok bool) []byte {
	out := make([]byte, 32)
	if ok {
		out[31] = 1
	}
	return out
}

// bn254PadRight zero-pads data on the right to minLen, truncating if
// already longer — the EVM's convention for precompile inputs shorter
// than their fixed size.
func bn254PadRight(data []byte, minLen int) []byte {
	if len(data) >= minLen {
		return data[:minLen]
	}
	padded := make([]byte, minLen)
	copy(padded, data)
	return padded
}
