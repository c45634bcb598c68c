package crypto

// 48-byte compressed G1 point serialization for KZG commitments and
// proofs, in the ZCash format EIP-4844 mandates:
//   - bit 7 of byte 0: compression flag (always 1 here)
//   - bit 6 of byte 0: infinity flag
//   - bit 5 of byte 0: sort flag (1 = lexicographically larger y)
//   - remaining bits: big-endian x coordinate

import "math/big"

const kzgCompressedG1Size = 48

// KZGDecompressG1 parses a 48-byte compressed point, rejecting anything
// not on-curve or outside the prime-order subgroup.
func KZGDecompressG1(data []byte) (*BlsG1Point, error) {
	if len(data) != kzgCompressedG1Size {
		return nil, errKZGInvalidPoint
	}

	buf := make([]byte, kzgCompressedG1Size)
	copy(buf, data)

	flags := buf[0] >> 5
	compressedFlag := (flags >> 2) & 1
	infinityFlag := (flags >> 1) & 1
	sortFlag := flags & 1

	if compressedFlag != 1 {
		return nil, errKZGInvalidPoint
	}

	buf[0] &= 0x1f

	if infinityFlag == 1 {
		// Per spec, every remaining bit (including the sort flag) must be
		// zero for the canonical infinity encoding.
		if sortFlag != 0 {
			return nil, errKZGInvalidPoint
		}
		for _, b := range buf {
			if b != 0 {
				return nil, errKZGInvalidPoint
			}
		}
		return BlsG1Infinity(), nil
	}

	x := new(big.Int).SetBytes(buf)
	if x.Cmp(blsP) >= 0 {
		return nil, errKZGInvalidPoint
	}

	x3 := blsFpMul(blsFpSqr(x), x)
	rhs := blsFpAdd(x3, blsB)
	y := blsFpSqrt(rhs)
	if y == nil {
		return nil, errKZGInvalidPoint
	}

	// The sort flag picks out the lexicographically larger root; in
	// BLS12-381 that means y > (p-1)/2.
	pMinus1Over2 := new(big.Int).Sub(blsP, big.NewInt(1))
	pMinus1Over2.Rsh(pMinus1Over2, 1)

	yIsLarger := y.Cmp(pMinus1Over2) > 0
	if yIsLarger != (sortFlag == 1) {
		y = blsFpNeg(y)
	}

	if !blsG1IsOnCurve(x, y) {
		return nil, errKZGInvalidPoint
	}

	p := blsG1FromAffine(x, y)
	if !blsG1InSubgroup(p) {
		return nil, errKZGInvalidPoint
	}

	return p, nil
}

// KZGCompressG1 serializes a G1 point to the 48-byte compressed format.
func KZGCompressG1(p *BlsG1Point) []byte {
	out := make([]byte, kzgCompressedG1Size)

	if p.blsG1IsInfinity() {
		out[0] = 0xc0 // compression + infinity flags
		return out
	}

	x, y := p.blsG1ToAffine()

	xBytes := x.Bytes()
	copy(out[kzgCompressedG1Size-len(xBytes):], xBytes)

	out[0] |= 0x80

	pMinus1Over2 := new(big.Int).Sub(blsP, big.NewInt(1))
	pMinus1Over2.Rsh(pMinus1Over2, 1)
	if y.Cmp(pMinus1Over2) > 0 {
		out[0] |= 0x20
	}

	return out
}
