package vm

// MODEXP (C7): arbitrary-precision modular exponentiation, EIP-198/EIP-2565.
// The gas-formula variant (pre-Berlin vs Berlin+) is fixed at construction
// time by dispatch.go, one modexpContract per fork epoch.

import (
	"math/big"

	"github.com/evmts/voltaire-sub010/params"
)

const modexpHeaderLen = 96

type modexpContract struct {
	fork params.Hardfork
}

func (c *modexpContract) RequiredGas(input []byte) uint64 {
	return gasModexp(input, c.fork)
}

func (c *modexpContract) Run(input []byte) ([]byte, error) {
	if len(input) < modexpHeaderLen {
		return nil, ErrInvalidInput
	}

	baseLen, ok1 := declaredLen(input[0:32])
	expLen, ok2 := declaredLen(input[32:64])
	modLen, ok3 := declaredLen(input[64:96])
	if !ok1 || !ok2 || !ok3 {
		return nil, ErrInvalidInput
	}

	data := input[modexpHeaderLen:]
	base := getDataSlice(data, 0, baseLen)
	exp := getDataSlice(data, baseLen, expLen)
	mod := getDataSlice(data, baseLen+expLen, modLen)

	modVal := new(big.Int).SetBytes(mod)
	if modVal.Sign() == 0 {
		return make([]byte, modLen), nil
	}

	baseVal := new(big.Int).SetBytes(base)
	expVal := new(big.Int).SetBytes(exp)

	result := new(big.Int).Exp(baseVal, expVal, modVal)

	out := result.Bytes()
	if uint64(len(out)) >= modLen {
		return out[uint64(len(out))-modLen:], nil
	}
	padded := make([]byte, modLen)
	copy(padded[modLen-uint64(len(out)):], out)
	return padded, nil
}
