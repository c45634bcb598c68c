package vm

import (
	"math/big"
	"testing"

	"github.com/evmts/voltaire-sub010/params"
)

// modexpInput builds a MODEXP call payload: three 32-byte length headers
// followed by base, exponent, and modulus, each exactly as long as declared.
func modexpInput(base, exp, mod []byte) []byte {
	lens := make([]byte, 96)
	putLen := func(off int, n int) {
		big.NewInt(int64(n)).FillBytes(lens[off : off+32])
	}
	putLen(0, len(base))
	putLen(32, len(exp))
	putLen(64, len(mod))
	out := append([]byte{}, lens...)
	out = append(out, base...)
	out = append(out, exp...)
	out = append(out, mod...)
	return out
}

func TestModexpRejectsShortInput(t *testing.T) {
	_, err := Execute(addr(0x05), []byte{0x01}, 100000, params.Berlin)
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}

func TestModexpRejectsEmptyInput(t *testing.T) {
	c := &modexpContract{fork: params.Berlin}
	_, err := c.Run(nil)
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}

func TestModexpBaseToZeroPowerModOne(t *testing.T) {
	c := &modexpContract{fork: params.Berlin}
	in := modexpInput([]byte{7}, []byte{}, []byte{1})
	out, err := c.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if new(big.Int).SetBytes(out).Sign() != 0 {
		t.Fatalf("a^0 mod 1 = %x, want 0", out)
	}
}

func TestModexpZeroBaseNonzeroExp(t *testing.T) {
	c := &modexpContract{fork: params.Berlin}
	in := modexpInput([]byte{0}, []byte{5}, []byte{13})
	out, err := c.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if new(big.Int).SetBytes(out).Sign() != 0 {
		t.Fatalf("0^e mod m = %x, want 0", out)
	}
}

func TestModexpFermatsLittleTheorem(t *testing.T) {
	c := &modexpContract{fork: params.Berlin}
	p := big.NewInt(65537) // prime modulus
	a := big.NewInt(3)     // coprime to p
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))

	in := modexpInput(a.Bytes(), pMinus1.Bytes(), p.Bytes())
	out, err := c.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if new(big.Int).SetBytes(out).Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("a^(p-1) mod p = %x, want 1", out)
	}
}
