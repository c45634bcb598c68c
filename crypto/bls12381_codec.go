package crypto

// EIP-2537 wire encoding: every field element is padded to 64 bytes
// (16 zero bytes then the 48-byte value), matching go-ethereum's
// bls12381 precompile encoding rather than the tighter 48-byte packing
// used internally by most pairing libraries.

import "math/big"

const (
	blsFpEncSize  = 64  // field element padded to 64 bytes
	blsG1EncSize  = 128 // G1 point: 2 * 64 bytes
	blsG2EncSize  = 256 // G2 point: 2 * 128 bytes
	blsScalarSize = 32  // Fr scalar
)

// decodeFp reads a 64-byte padded field element; the top 16 bytes must be
// zero and the value must be less than p.
func decodeFp(data []byte) (*big.Int, error) {
	if len(data) != blsFpEncSize {
		return nil, errBLS12InvalidField
	}
	for i := 0; i < 16; i++ {
		if data[i] != 0 {
			return nil, errBLS12InvalidField
		}
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(blsP) >= 0 {
		return nil, errBLS12InvalidField
	}
	return v, nil
}

func encodeFp(v *big.Int) []byte {
	out := make([]byte, blsFpEncSize)
	b := v.Bytes()
	copy(out[blsFpEncSize-len(b):], b)
	return out
}

// decodeG1 reads a 128-byte encoded G1 point. All-zeros means infinity;
// otherwise the point must be on-curve and in the prime-order subgroup.
func decodeG1(data []byte) (*BlsG1Point, error) {
	if len(data) != blsG1EncSize {
		return nil, errBLS12InvalidPoint
	}

	x, err := decodeFp(data[:blsFpEncSize])
	if err != nil {
		return nil, errBLS12InvalidPoint
	}
	y, err := decodeFp(data[blsFpEncSize:])
	if err != nil {
		return nil, errBLS12InvalidPoint
	}

	if x.Sign() == 0 && y.Sign() == 0 {
		return BlsG1Infinity(), nil
	}
	if !blsG1IsOnCurve(x, y) {
		return nil, errBLS12NotOnCurve
	}

	p := blsG1FromAffine(x, y)
	if !blsG1InSubgroup(p) {
		return nil, errBLS12NotInSubgroup
	}
	return p, nil
}

func encodeG1(p *BlsG1Point) []byte {
	out := make([]byte, blsG1EncSize)
	if p.blsG1IsInfinity() {
		return out
	}
	x, y := p.blsG1ToAffine()
	copy(out[:blsFpEncSize], encodeFp(x))
	copy(out[blsFpEncSize:], encodeFp(y))
	return out
}

// decodeFp2 reads a 128-byte encoded Fp2 element: c0 then c1 (c0 + c1*u).
func decodeFp2(data []byte) (*blsFp2, error) {
	if len(data) != 2*blsFpEncSize {
		return nil, errBLS12InvalidField
	}
	c0, err := decodeFp(data[:blsFpEncSize])
	if err != nil {
		return nil, err
	}
	c1, err := decodeFp(data[blsFpEncSize:])
	if err != nil {
		return nil, err
	}
	return &blsFp2{c0: c0, c1: c1}, nil
}

func encodeFp2(e *blsFp2) []byte {
	out := make([]byte, 2*blsFpEncSize)
	copy(out[:blsFpEncSize], encodeFp(e.c0))
	copy(out[blsFpEncSize:2*blsFpEncSize], encodeFp(e.c1))
	return out
}

// decodeG2 reads a 256-byte encoded G2 point.
func decodeG2(data []byte) (*BlsG2Point, error) {
	if len(data) != blsG2EncSize {
		return nil, errBLS12InvalidG2
	}

	x, err := decodeFp2(data[:2*blsFpEncSize])
	if err != nil {
		return nil, errBLS12InvalidG2
	}
	y, err := decodeFp2(data[2*blsFpEncSize:])
	if err != nil {
		return nil, errBLS12InvalidG2
	}

	if x.isZero() && y.isZero() {
		return BlsG2Infinity(), nil
	}
	if !blsG2IsOnCurve(x, y) {
		return nil, errBLS12NotOnCurve
	}

	p := blsG2FromAffine(x, y)
	if !blsG2InSubgroup(p) {
		return nil, errBLS12NotInSubgroup
	}
	return p, nil
}

func encodeG2(p *BlsG2Point) []byte {
	out := make([]byte, blsG2EncSize)
	if p.blsG2IsInfinity() {
		return out
	}
	x, y := p.blsG2ToAffine()
	copy(out[:2*blsFpEncSize], encodeFp2(x))
	copy(out[2*blsFpEncSize:], encodeFp2(y))
	return out
}

func blsPairingResult(ok bool) []byte {
	out := make([]byte, 32)
	if ok {
		out[31] = 1
	}
	return out
}
