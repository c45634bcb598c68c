package vm

// ECRECOVER (C6): EIP-2-constrained ECDSA public key recovery and address
// derivation. The reference specification mandates that this precompile
// never surfaces an error: every validation or recovery failure produces a
// successful, gas-charged, 32-byte-zero result instead.

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/evmts/voltaire-sub010/crypto"
)

const ecrecoverInputLen = 128

// secp256k1N is the order of the secp256k1 curve group.
var secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
var secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)

type ecrecoverContract struct{}

func (ecrecoverContract) RequiredGas([]byte) uint64 { return gasEcrecover }

func (ecrecoverContract) Run(input []byte) ([]byte, error) {
	input = padRight(input, ecrecoverInputLen)

	hash := input[0:32]
	v := input[32:64]
	r := decodeUint256(input[64:96])
	s := decodeUint256(input[96:128])

	// The upper 31 bytes of the v field must be zero; otherwise this is not
	// a valid encoding and is treated the same as any other signature
	// rejection: success with a zero address.
	for _, b := range v[:31] {
		if b != 0 {
			return zeroAddress(), nil
		}
	}
	vByte := v[31]

	if !validSignatureValues(vByte, r, s) {
		return zeroAddress(), nil
	}

	addrBytes, err := recoverAddress(hash, vByte, r, s)
	if err != nil {
		return zeroAddress(), nil
	}
	return addrBytes, nil
}

func zeroAddress() []byte { return make([]byte, 32) }

// validSignatureValues implements the v/r/s checks of §4.6: v in {27,28}, r
// in [1,n-1], s in [1,n/2] (EIP-2 low-s).
func validSignatureValues(v byte, r, s *big.Int) bool {
	if v != 27 && v != 28 {
		return false
	}
	if r.Sign() <= 0 || r.Cmp(secp256k1N) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(secp256k1HalfN) > 0 {
		return false
	}
	return true
}

// recoverAddress recovers the secp256k1 public key and derives the
// Ethereum-style address Keccak256(pubkey[1:])[12:].
func recoverAddress(hash []byte, v byte, r, s *big.Int) ([]byte, error) {
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	var sigRS [64]byte
	copy(sigRS[32-len(rBytes):32], rBytes)
	copy(sigRS[64-len(sBytes):64], sBytes)

	pubKey, _, err := ecdsa.RecoverCompact(buildCompactSig(v-27, sigRS), hash)
	if err != nil {
		return nil, errInvalidSignature
	}

	pubBytes := pubKey.SerializeUncompressed() // 65 bytes: 0x04 || X || Y
	h := crypto.Keccak256(pubBytes[1:])

	out := make([]byte, 32)
	copy(out[12:], h[12:])
	return out, nil
}

// buildCompactSig assembles the 65-byte [recovery_id+27 || R || S] encoding
// ecdsa.RecoverCompact expects.
func buildCompactSig(recID byte, rs [64]byte) []byte {
	sig := make([]byte, 65)
	sig[0] = recID + 27
	copy(sig[1:], rs[:])
	return sig
}
