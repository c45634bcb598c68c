package vm

import (
	"bytes"
	"testing"
)

func TestBLS12G1AddInfinityIsIdentity(t *testing.T) {
	c := bls12G1AddContract{}
	input := make([]byte, 256) // two 128-byte infinity points
	out, err := c.Run(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, make([]byte, 128)) {
		t.Fatalf("out = %x, want 128 zero bytes", out)
	}
}

func TestBLS12G1AddRejectsWrongLength(t *testing.T) {
	c := bls12G1AddContract{}
	_, err := c.Run(make([]byte, 100))
	if !errIsKind(err, KindInvalidPoint) {
		t.Fatalf("err = %v, want InvalidPoint", err)
	}
}

func TestBLS12PairingGasScalesWithPairCount(t *testing.T) {
	c := bls12PairingContract{}
	g0 := c.RequiredGas(nil)
	g1 := c.RequiredGas(make([]byte, 384))
	g2 := c.RequiredGas(make([]byte, 768))
	if g0 != gasBLS12PairingBase {
		t.Fatalf("RequiredGas(0 pairs) = %d, want base %d", g0, gasBLS12PairingBase)
	}
	if g1-g0 != gasBLS12PairingPerPair || g2-g1 != gasBLS12PairingPerPair {
		t.Fatalf("pairing gas did not scale linearly per pair: %d, %d, %d", g0, g1, g2)
	}
}

func TestBLS12MapFpToG1RejectsWrongLength(t *testing.T) {
	c := bls12MapFpToG1Contract{}
	_, err := c.Run(make([]byte, 63))
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}
