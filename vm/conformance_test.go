package vm

// Conformance vectors (C11) transcribed from the reference seed vector set.
// Each test supplies (address, input, gas limit, hardfork) and checks the
// exact output bytes and gas_used.

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/evmts/voltaire-sub010/core/types"
	"github.com/evmts/voltaire-sub010/crypto"
	"github.com/evmts/voltaire-sub010/params"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestConformanceIdentity(t *testing.T) {
	input := mustHex(t, "010203040506")
	res, err := Execute(addr(0x04), input, 1000, params.Frontier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(res.Output, input) {
		t.Fatalf("output = %x, want %x", res.Output, input)
	}
	if res.GasUsed != 18 {
		t.Fatalf("gas_used = %d, want 18", res.GasUsed)
	}
}

func TestConformanceSHA256(t *testing.T) {
	res, err := Execute(addr(0x02), []byte("abc"), 1000, params.Frontier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mustHex(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if !bytes.Equal(res.Output, want) {
		t.Fatalf("output = %x, want %x", res.Output, want)
	}
	if res.GasUsed != 72 {
		t.Fatalf("gas_used = %d, want 72", res.GasUsed)
	}
}

func TestConformanceModexp(t *testing.T) {
	// baseLen=expLen=modLen=1; base=2, exp=5, mod=7 -> 2^5 mod 7 = 4.
	input := append([]byte{}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000001")...)
	input = append(input, 0x02, 0x05, 0x07)

	res, err := Execute(addr(0x05), input, 100000, params.Berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mustHex(t, "04")
	if !bytes.Equal(res.Output, want) {
		t.Fatalf("output = %x, want %x", res.Output, want)
	}
	if res.GasUsed != 200 {
		t.Fatalf("gas_used = %d, want 200", res.GasUsed)
	}
}

func TestConformanceBN254Add(t *testing.T) {
	input := make([]byte, 128)
	res, err := Execute(addr(0x06), input, 200, params.Byzantium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(res.Output, make([]byte, 64)) {
		t.Fatalf("output = %x, want 64 zero bytes", res.Output)
	}
	if res.GasUsed != 150 {
		t.Fatalf("gas_used = %d, want 150", res.GasUsed)
	}
}

func TestConformanceBN254Pairing(t *testing.T) {
	res, err := Execute(addr(0x08), nil, 100000, params.Byzantium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Output) != 32 || res.Output[31] != 1 {
		t.Fatalf("output = %x, want 32 bytes ending in 0x01", res.Output)
	}
	if res.GasUsed != 45000 {
		t.Fatalf("gas_used = %d, want 45000", res.GasUsed)
	}
}

func TestConformanceKZGPointEvaluation(t *testing.T) {
	commitment := make([]byte, 48)
	commitment[0] = 0xc0 // compressed, infinity
	proof := make([]byte, 48)
	proof[0] = 0xc0

	versionedHash := crypto.Keccak256(commitment)
	versionedHash[0] = types.VersionedHashVersionKZG

	input := make([]byte, 0, 192)
	input = append(input, versionedHash...)
	input = append(input, make([]byte, 32)...) // z = 0
	input = append(input, make([]byte, 32)...) // y = 0
	input = append(input, commitment...)
	input = append(input, proof...)

	res, err := Execute(addr(0x0a), input, 50000, params.Cancun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Output) != 64 {
		t.Fatalf("output length = %d, want 64", len(res.Output))
	}
	if res.Output[30] != 0x10 || res.Output[31] != 0x00 {
		t.Fatalf("FIELD_ELEMENTS_PER_BLOB bytes = %x %x, want 10 00", res.Output[30], res.Output[31])
	}
	wantMod := mustHex(t, "73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")
	if !bytes.Equal(res.Output[32:], wantMod) {
		t.Fatalf("modulus bytes = %x, want %x", res.Output[32:], wantMod)
	}
	if res.GasUsed != 50000 {
		t.Fatalf("gas_used = %d, want 50000", res.GasUsed)
	}
}

// --- universal invariants ---

func TestDeterminism(t *testing.T) {
	input := []byte("repeatable")
	r1, err1 := Execute(addr(0x04), input, 1000, params.Frontier)
	r2, err2 := Execute(addr(0x04), input, 1000, params.Frontier)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !bytes.Equal(r1.Output, r2.Output) || r1.GasUsed != r2.GasUsed {
		t.Fatal("Execute is not deterministic for identical inputs")
	}
}

func TestHardforkGating(t *testing.T) {
	if IsActive(addr(0x05), params.Frontier) {
		t.Fatal("MODEXP must not be active under Frontier")
	}
	if !IsActive(addr(0x05), params.Byzantium) {
		t.Fatal("MODEXP must be active under Byzantium")
	}
	if IsActive(addr(0x0a), params.Istanbul) {
		t.Fatal("point evaluation must not be active under Istanbul")
	}
	if !IsActive(addr(0x0a), params.Cancun) {
		t.Fatal("point evaluation must be active under Cancun")
	}
	if IsActive(addr(0x0b), params.Cancun) {
		t.Fatal("BLS12 G1 add must not be active under Cancun")
	}
	if !IsActive(addr(0x0b), params.Prague) {
		t.Fatal("BLS12 G1 add must be active under Prague")
	}
}

func TestOutOfGas(t *testing.T) {
	_, err := Execute(addr(0x02), []byte("abc"), 10, params.Frontier)
	if !errIsKind(err, KindOutOfGas) {
		t.Fatalf("err = %v, want OutOfGas", err)
	}
}

func TestNotImplementedForUnknownAddress(t *testing.T) {
	_, err := Execute(addr(0x14), nil, 1_000_000, params.Prague)
	if !errIsKind(err, KindNotImplemented) {
		t.Fatalf("err = %v, want NotImplemented", err)
	}
}

func errIsKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
