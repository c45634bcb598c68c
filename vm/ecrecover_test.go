package vm

import (
	"bytes"
	"math/big"
	"testing"
)

func TestEcrecoverInvalidVYieldsZeroAddress(t *testing.T) {
	input := make([]byte, 128)
	input[63] = 29 // v = 29, not 27 or 28
	out, err := (ecrecoverContract{}).Run(input)
	if err != nil {
		t.Fatalf("ECRECOVER must never return an error, got %v", err)
	}
	if !bytes.Equal(out, make([]byte, 32)) {
		t.Fatalf("out = %x, want 32 zero bytes", out)
	}
}

func TestEcrecoverHighSRejected(t *testing.T) {
	// s just above n/2 must be rejected (EIP-2 malleability check) even
	// though it is otherwise a well-formed field element.
	s := new(big.Int).Add(secp256k1HalfN, big.NewInt(1))
	if validSignatureValues(27, big.NewInt(1), s) {
		t.Fatal("high-s signature must be rejected")
	}
}

func TestEcrecoverZeroRRejected(t *testing.T) {
	if validSignatureValues(27, big.NewInt(0), big.NewInt(1)) {
		t.Fatal("r=0 must be rejected")
	}
}

func TestEcrecoverRequiredGasIsFixed(t *testing.T) {
	c := ecrecoverContract{}
	if c.RequiredGas(nil) != gasEcrecover {
		t.Fatalf("RequiredGas(nil) = %d, want %d", c.RequiredGas(nil), gasEcrecover)
	}
	if c.RequiredGas(make([]byte, 1000)) != gasEcrecover {
		t.Fatal("ECRECOVER gas must not depend on input length")
	}
}
