package vm

// BN254 (C8): alt_bn128 curve operations, EIP-196/197/1108. Point validation,
// field-arithmetic, and pairing all live in package crypto; this file only
// enforces the gas/dispatch contract and maps crypto's error taxonomy onto
// the closed vm.Kind set.

import "github.com/evmts/voltaire-sub010/crypto"

// --- ECADD (0x06) ---

type bn254AddContract struct{}

func (bn254AddContract) RequiredGas([]byte) uint64 { return gasBN254AddGas }

func (bn254AddContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BN254Add(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- ECMUL (0x07) ---

type bn254MulContract struct{}

func (bn254MulContract) RequiredGas([]byte) uint64 { return gasBN254MulGas }

func (bn254MulContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BN254ScalarMul(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- ECPAIRING (0x08) ---

type bn254PairingContract struct{}

func (bn254PairingContract) RequiredGas(input []byte) uint64 { return gasBN254Pairing(input) }

func (bn254PairingContract) Run(input []byte) ([]byte, error) {
	if len(input)%192 != 0 {
		return nil, ErrInvalidInput
	}
	out, err := crypto.BN254PairingCheck(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}
