package vm

// Dispatch & gating (C4): the single entry point that routes an EVM CALL to
// a precompile, checks hardfork availability, enforces gas, and delegates.
// No state is shared between calls; Execute is re-entrant and safe to call
// concurrently from multiple EVM worker goroutines with disjoint arguments.

import (
	"github.com/evmts/voltaire-sub010/core/types"
	"github.com/evmts/voltaire-sub010/params"
)

// Contract is the interface every precompiled contract implements: a pure
// gas-cost function and a pure execution function. Neither may mutate world
// state, log, or make sub-calls.
type Contract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// Result is the dispatch entry point's output record (C1): a successful
// call's output bytes and the gas it consumed. A failed call produces no
// Result; it produces one of the Kind values in errors.go instead.
type Result struct {
	Output  []byte
	GasUsed uint64
}

// precompileSet is a fixed (address -> Contract) table, built once at
// package init and never mutated afterward. There is deliberately no
// registration API: dynamic precompile registration is out of scope.
type precompileSet map[types.Address]Contract

var (
	frontierSet  precompileSet
	byzantiumSet precompileSet
	istanbulSet  precompileSet
	berlinSet    precompileSet
	cancunSet    precompileSet
	pragueSet    precompileSet
)

func addr(b byte) types.Address { return types.BytesToAddress([]byte{b}) }

func init() {
	frontierSet = precompileSet{
		addr(0x01): &ecrecoverContract{},
		addr(0x02): &sha256Contract{},
		addr(0x03): &ripemd160Contract{},
		addr(0x04): &identityContract{},
	}

	byzantiumSet = extend(frontierSet, precompileSet{
		addr(0x05): &modexpContract{fork: params.Byzantium},
		addr(0x06): &bn254AddContract{},
		addr(0x07): &bn254MulContract{},
		addr(0x08): &bn254PairingContract{},
	})

	istanbulSet = extend(byzantiumSet, precompileSet{
		addr(0x05): &modexpContract{fork: params.Istanbul},
		addr(0x09): &blake2FContract{},
	})

	berlinSet = extend(istanbulSet, precompileSet{
		addr(0x05): &modexpContract{fork: params.Berlin},
	})

	cancunSet = extend(berlinSet, precompileSet{
		addr(0x05): &modexpContract{fork: params.Cancun},
		addr(0x0a): &kzgPointEvaluationContract{},
	})

	pragueSet = extend(cancunSet, precompileSet{
		addr(0x05): &modexpContract{fork: params.Prague},
		addr(0x0b): &bls12G1AddContract{},
		addr(0x0c): &bls12G1MulContract{},
		addr(0x0d): &bls12G1MSMContract{},
		addr(0x0e): &bls12G2AddContract{},
		addr(0x0f): &bls12G2MulContract{},
		addr(0x10): &bls12G2MSMContract{},
		addr(0x11): &bls12PairingContract{},
		addr(0x12): &bls12MapFpToG1Contract{},
		addr(0x13): &bls12MapFp2ToG2Contract{},
	})
}

// extend returns a new set containing base's entries overlaid with additions
// (additions win on address collision — used so MODEXP's gas-formula variant
// can be swapped in per fork without disturbing the rest of the set).
func extend(base precompileSet, additions precompileSet) precompileSet {
	out := make(precompileSet, len(base)+len(additions))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range additions {
		out[k] = v
	}
	return out
}

// activeSet returns the precompile table addressable under fork.
func activeSet(fork params.Hardfork) precompileSet {
	switch {
	case fork.AtLeast(params.Prague):
		return pragueSet
	case fork.AtLeast(params.Cancun):
		return cancunSet
	case fork.AtLeast(params.Berlin):
		return berlinSet
	case fork.AtLeast(params.Istanbul):
		return istanbulSet
	case fork.AtLeast(params.Byzantium):
		return byzantiumSet
	default:
		return frontierSet
	}
}

// IsActive reports whether addr names a precompile addressable under fork.
func IsActive(address types.Address, fork params.Hardfork) bool {
	_, ok := activeSet(fork)[address]
	return ok
}

// ActiveAddresses returns the precompile addresses addressable under fork,
// in ascending order.
func ActiveAddresses(fork params.Hardfork) []types.Address {
	set := activeSet(fork)
	out := make([]types.Address, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	// Insertion sort is fine: at most 19 entries.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b types.Address) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Execute is the single dispatch entry point (C4). It rejects addresses not
// active under fork, enforces the computed gas cost against gasLimit before
// any cryptographic work runs, and delegates to the selected precompile.
func Execute(address types.Address, input []byte, gasLimit uint64, fork params.Hardfork) (*Result, error) {
	if !address.HighBytesZero() {
		return nil, ErrNotImplemented
	}
	p, ok := activeSet(fork)[address]
	if !ok {
		return nil, ErrNotImplemented
	}

	cost := p.RequiredGas(input)
	if gasLimit < cost {
		return nil, ErrOutOfGas
	}

	output, err := p.Run(input)
	if err != nil {
		return nil, err
	}
	return &Result{Output: output, GasUsed: cost}, nil
}
