package vm

// Per-precompile gas cost formulae (C3). Costs are pure functions of the
// input (and, for MODEXP, the active hardfork) and MUST be computed before
// any cryptographic work so OutOfGas is returned without side effects.

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/evmts/voltaire-sub010/params"
)

const gasOverflow = math.MaxUint64

// Fixed prices (§4.3).
const (
	gasEcrecover      uint64 = 3000
	gasIdentityBase   uint64 = 15
	gasIdentityWord   uint64 = 3
	gasSha256Base     uint64 = 60
	gasSha256Word     uint64 = 12
	gasRipemd160Base  uint64 = 600
	gasRipemd160Word  uint64 = 120
	gasBN254AddGas    uint64 = 150
	gasBN254MulGas    uint64 = 6000
	gasModexpMin      uint64 = 200
	gasBLS12G1Add     uint64 = 500
	gasBLS12G1Mul     uint64 = 12000
	gasBLS12G2Add     uint64 = 800
	gasBLS12G2Mul     uint64 = 45000
	gasBLS12MapFpToG1 uint64 = 5500
	gasBLS12MapFp2ToG2 uint64 = 75000
	gasPointEvaluation uint64 = 50000
)

// Pair-count-scaled (§4.3).
const (
	gasBN254PairingBase   uint64 = 45000
	gasBN254PairingPerPair uint64 = 34000
	gasBLS12PairingBase    uint64 = 65000
	gasBLS12PairingPerPair uint64 = 43000
)

// Discount-curve MSM (§4.3).
const (
	gasBLS12G1MSMBase uint64 = 12000
	gasBLS12G2MSMBase uint64 = 45000
)

// saturatingAdd returns a+b, or gasOverflow if that would overflow uint64.
func saturatingAdd(a, b uint64) uint64 {
	r := a + b
	if r < a {
		return gasOverflow
	}
	return r
}

// saturatingMul returns a*b, or gasOverflow if that would overflow uint64.
func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	r := a * b
	if r/a != b {
		return gasOverflow
	}
	return r
}

func gasIdentity(input []byte) uint64 {
	return saturatingAdd(gasIdentityBase, saturatingMul(gasIdentityWord, wordCount(len(input))))
}

func gasSha256(input []byte) uint64 {
	return saturatingAdd(gasSha256Base, saturatingMul(gasSha256Word, wordCount(len(input))))
}

func gasRipemd160(input []byte) uint64 {
	return saturatingAdd(gasRipemd160Base, saturatingMul(gasRipemd160Word, wordCount(len(input))))
}

// gasBlake2F: cost equals the 32-bit big-endian rounds field parsed from the
// first 4 bytes of input. A short input (caught as InvalidInput by Run) costs
// zero so the gas check never masks the length error.
func gasBlake2F(input []byte) uint64 {
	if len(input) < 4 {
		return 0
	}
	return uint64(input[0])<<24 | uint64(input[1])<<16 | uint64(input[2])<<8 | uint64(input[3])
}

func gasBN254Pairing(input []byte) uint64 {
	k := uint64(len(input)) / 192
	return saturatingAdd(gasBN254PairingBase, saturatingMul(gasBN254PairingPerPair, k))
}

func gasBLS12Pairing(input []byte) uint64 {
	k := uint64(len(input)) / 384
	return saturatingAdd(gasBLS12PairingBase, saturatingMul(gasBLS12PairingPerPair, k))
}

// msmDiscount is the EIP-2537 Pippenger discount table, expressed in
// thousandths: discount(k)/1000 is the multiplier applied to base*k. The
// table is monotonically decreasing from 1000 at k=1 down to a floor for
// large k, reflecting the amortized savings of batched scalar multiplication.
var msmDiscountTable = []uint64{
	0, 1200, 888, 764, 641, 594, 547, 500, 453, 438,
	423, 408, 394, 379, 364, 349, 334, 330, 326, 322,
	318, 314, 310, 306, 302, 298, 294, 289, 285, 281,
	277, 273, 269, 265, 261, 257, 253, 249, 245, 241,
	237, 234, 230, 226, 222, 218, 214, 210, 206, 202,
	199, 195, 191, 187, 183, 179, 176, 172, 168, 164,
	160, 157, 153, 149, 145, 141, 138, 134, 130, 126,
	123, 119, 115, 111, 107, 104, 100, 96, 92, 89,
	85, 81, 77, 73, 70, 66, 62, 58, 55, 51,
	47, 43, 39, 36, 32, 28, 24, 21, 17, 13,
	9, 6, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
}

func msmDiscount(k uint64) uint64 {
	if k == 0 {
		return 0
	}
	if k >= uint64(len(msmDiscountTable)) {
		return 2
	}
	return msmDiscountTable[k]
}

func gasBLS12MSM(base, pairSize uint64, input []byte) uint64 {
	k := uint64(len(input)) / pairSize
	if k == 0 {
		return 0
	}
	return saturatingMul(base, k) / 1000 * msmDiscount(k)
}

func gasBLS12G1MSM(input []byte) uint64 {
	return gasBLS12MSM(gasBLS12G1MSMBase, 128+32, input)
}

func gasBLS12G2MSM(input []byte) uint64 {
	return gasBLS12MSM(gasBLS12G2MSMBase, 256+32, input)
}

// gasModexp implements §4.3's MODEXP cost: mult(w) * max(adjE,1) / divisor,
// floored at 200, where divisor is 20 pre-Berlin and 3 from Berlin onward.
// modexpLenCap bounds a declared MODEXP length field. The specification
// calls for rejecting declared lengths too large for the platform's
// addressable integer (e.g. isize::MAX); RequiredGas has no error return, so
// an over-cap length instead saturates the cost to gasOverflow, which always
// loses to the caller's gas limit and so surfaces as OutOfGas. Run performs
// the authoritative InvalidInput check before doing any allocation.
const modexpLenCap = 1<<32 - 1

// declaredLen decodes a 32-byte declared length field, reporting ok=false if
// it exceeds modexpLenCap. MODEXP's three length fields are exactly 32 bytes
// each, the case uint256.Int is built for, so it is used here in place of
// math/big's arbitrary-precision arithmetic.
func declaredLen(b []byte) (v uint64, ok bool) {
	var n uint256.Int
	n.SetBytes(b)
	if n.BitLen() > 32 {
		return 0, false
	}
	return n.Uint64(), true
}

// gasModexp: a short input is caught as InvalidInput by Run, so it must cost
// zero here rather than gasOverflow — otherwise the gas check in Execute
// would reject it as OutOfGas before Run gets a chance to raise the correct
// error, the same concern gasBlake2F guards against.
func gasModexp(input []byte, fork params.Hardfork) uint64 {
	if len(input) < 96 {
		return 0
	}
	baseLen, ok1 := declaredLen(input[0:32])
	expLen, ok2 := declaredLen(input[32:64])
	modLen, ok3 := declaredLen(input[64:96])
	if !ok1 || !ok2 || !ok3 {
		return gasOverflow
	}

	w := baseLen
	if modLen > w {
		w = modLen
	}
	mult := modexpMultComplexity(w, fork)

	adjE := adjustedExpLen(expLen, baseLen, input[96:])
	if adjE < 1 {
		adjE = 1
	}

	divisor := uint64(20)
	if fork.AtLeast(params.Berlin) {
		divisor = 3
	}

	cost := saturatingMul(mult, adjE) / divisor
	if cost < gasModexpMin {
		cost = gasModexpMin
	}
	return cost
}

// modexpMultComplexity computes mult(w) per §4.3.
func modexpMultComplexity(w uint64, fork params.Hardfork) uint64 {
	if fork.AtLeast(params.Berlin) {
		words := (w + 7) / 8
		return saturatingMul(words, words)
	}
	switch {
	case w <= 64:
		return saturatingMul(w, w)
	case w <= 1024:
		return saturatingMul(w, w)/4 + 96*w - 3072
	default:
		return saturatingMul(w, w)/16 + 480*w - 199680
	}
}

// adjustedExpLen computes adjE per §4.3 from the declared exponent length and
// the head bytes of the exponent found after the base in data.
func adjustedExpLen(expLen, baseLen uint64, data []byte) uint64 {
	if expLen <= 32 {
		head := getDataSlice(data, baseLen, expLen)
		e := new(big.Int).SetBytes(head)
		if e.Sign() == 0 {
			return 0
		}
		return uint64(e.BitLen() - 1)
	}
	head := getDataSlice(data, baseLen, 32)
	e := new(big.Int).SetBytes(head)
	adj := uint64(0)
	if e.Sign() > 0 {
		adj = uint64(e.BitLen() - 1)
	}
	return adj + 8*(expLen-32)
}
