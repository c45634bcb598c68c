package vm

import "testing"

func TestBN254PairingRejectsNonMultipleOf192(t *testing.T) {
	c := bn254PairingContract{}
	_, err := c.Run(make([]byte, 191))
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}

func TestBN254AddRejectsOffCurvePoint(t *testing.T) {
	c := bn254AddContract{}
	input := make([]byte, 128)
	input[31] = 1 // x1 = 1, y1 = 0: not on curve unless y^2 = x^3+3 happens to hold
	_, err := c.Run(input)
	if !errIsKind(err, KindInvalidPoint) {
		t.Fatalf("err = %v, want InvalidPoint", err)
	}
}

func TestBN254MulGasIsFixed(t *testing.T) {
	c := bn254MulContract{}
	if c.RequiredGas(nil) != gasBN254MulGas {
		t.Fatalf("RequiredGas = %d, want %d", c.RequiredGas(nil), gasBN254MulGas)
	}
}
