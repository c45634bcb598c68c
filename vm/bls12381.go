package vm

// BLS12-381 (C9): EIP-2537 G1/G2 add, scalar mul, multi-scalar mul, pairing,
// and hash-to-curve maps. Strict-length checks, field-range validation, and
// cofactor clearing all live in package crypto; this file enforces the
// gas/dispatch contract and maps crypto's errors onto vm.Kind.

import "github.com/evmts/voltaire-sub010/crypto"

// --- G1 ADD (0x0b) ---

type bls12G1AddContract struct{}

func (bls12G1AddContract) RequiredGas([]byte) uint64 { return gasBLS12G1Add }

func (bls12G1AddContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G1Add(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- G1 MUL (0x0c) ---

type bls12G1MulContract struct{}

func (bls12G1MulContract) RequiredGas([]byte) uint64 { return gasBLS12G1Mul }

func (bls12G1MulContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G1Mul(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- G1 MSM (0x0d) ---

type bls12G1MSMContract struct{}

func (bls12G1MSMContract) RequiredGas(input []byte) uint64 { return gasBLS12G1MSM(input) }

func (bls12G1MSMContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G1MSM(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- G2 ADD (0x0e) ---

type bls12G2AddContract struct{}

func (bls12G2AddContract) RequiredGas([]byte) uint64 { return gasBLS12G2Add }

func (bls12G2AddContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G2Add(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- G2 MUL (0x0f) ---

type bls12G2MulContract struct{}

func (bls12G2MulContract) RequiredGas([]byte) uint64 { return gasBLS12G2Mul }

func (bls12G2MulContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G2Mul(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- G2 MSM (0x10) ---

type bls12G2MSMContract struct{}

func (bls12G2MSMContract) RequiredGas(input []byte) uint64 { return gasBLS12G2MSM(input) }

func (bls12G2MSMContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12G2MSM(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- PAIRING (0x11) ---

type bls12PairingContract struct{}

func (bls12PairingContract) RequiredGas(input []byte) uint64 { return gasBLS12Pairing(input) }

func (bls12PairingContract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12Pairing(input)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return out, nil
}

// --- MAP_FP_TO_G1 (0x12) ---

type bls12MapFpToG1Contract struct{}

func (bls12MapFpToG1Contract) RequiredGas([]byte) uint64 { return gasBLS12MapFpToG1 }

func (bls12MapFpToG1Contract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12MapFpToG1(input)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return out, nil
}

// --- MAP_FP2_TO_G2 (0x13) ---

type bls12MapFp2ToG2Contract struct{}

func (bls12MapFp2ToG2Contract) RequiredGas([]byte) uint64 { return gasBLS12MapFp2ToG2 }

func (bls12MapFp2ToG2Contract) Run(input []byte) ([]byte, error) {
	out, err := crypto.BLS12MapFp2ToG2(input)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return out, nil
}
