package vm

import (
	"testing"

	"github.com/evmts/voltaire-sub010/params"
)

func TestSaturatingAddOverflow(t *testing.T) {
	if got := saturatingAdd(1, gasOverflow); got != gasOverflow {
		t.Fatalf("saturatingAdd overflow = %d, want %d", got, gasOverflow)
	}
}

func TestSaturatingMulOverflow(t *testing.T) {
	if got := saturatingMul(gasOverflow, 2); got != gasOverflow {
		t.Fatalf("saturatingMul overflow = %d, want %d", got, gasOverflow)
	}
	if got := saturatingMul(0, gasOverflow); got != 0 {
		t.Fatalf("saturatingMul(0, x) = %d, want 0", got)
	}
}

func TestMsmDiscountMonotonicDecreasing(t *testing.T) {
	prev := msmDiscount(1)
	for k := uint64(2); k <= 200; k++ {
		d := msmDiscount(k)
		if d > prev {
			t.Fatalf("discount increased at k=%d: %d > %d", k, d, prev)
		}
		prev = d
	}
}

func TestGasModexpFloor(t *testing.T) {
	// Tiny base/exp/mod lengths still floor at 200.
	input := make([]byte, 96+3)
	input[31] = 1 // baseLen = 1
	input[63] = 1 // expLen = 1
	input[95] = 1 // modLen = 1
	if got := gasModexp(input, params.Berlin); got != gasModexpMin {
		t.Fatalf("gasModexp = %d, want floor %d", got, gasModexpMin)
	}
}

func TestGasModexpOverflowOnOversizedLength(t *testing.T) {
	input := make([]byte, 96)
	for i := range input[0:32] {
		input[i] = 0xff // baseLen with BitLen > 32
	}
	if got := gasModexp(input, params.Berlin); got != gasOverflow {
		t.Fatalf("gasModexp = %d, want gasOverflow", got)
	}
}

func TestGasModexpShortInputIsZero(t *testing.T) {
	if got := gasModexp([]byte{0x01}, params.Berlin); got != 0 {
		t.Fatalf("gasModexp(short) = %d, want 0", got)
	}
}

func TestGasBlake2FShortInputIsZero(t *testing.T) {
	if got := gasBlake2F([]byte{0, 0}); got != 0 {
		t.Fatalf("gasBlake2F(short) = %d, want 0", got)
	}
}
