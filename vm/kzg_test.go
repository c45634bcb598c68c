package vm

import "testing"

func TestKZGWrongLengthInput(t *testing.T) {
	c := kzgPointEvaluationContract{}
	_, err := c.Run(make([]byte, 191))
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}

func TestKZGWrongVersionByteRejected(t *testing.T) {
	c := kzgPointEvaluationContract{}
	input := make([]byte, 192)
	input[0] = 0x02 // not the KZG version byte
	_, err := c.Run(input)
	if !errIsKind(err, KindInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
}

func TestSetKZGBackendResetsLifecycleState(t *testing.T) {
	defer SetKZGBackend(&placeholderKZGBackend{})

	if !ensureTrustedSetup() {
		t.Fatal("placeholder backend must initialise successfully")
	}
	if kzgSetupState(kzgState.Load()) != kzgReady {
		t.Fatal("state must be Ready before swapping backends")
	}

	SetKZGBackend(&placeholderKZGBackend{})
	if kzgSetupState(kzgState.Load()) != kzgUninitialised {
		t.Fatal("SetKZGBackend must reset state to Uninitialised")
	}
	if !ensureTrustedSetup() {
		t.Fatal("new placeholder backend must initialise successfully")
	}
}

func TestEnsureTrustedSetupReady(t *testing.T) {
	if !ensureTrustedSetup() {
		t.Fatal("embedded placeholder trusted setup must initialise successfully")
	}
	if kzgSetupState(kzgState.Load()) != kzgReady {
		t.Fatal("state must be Ready after a successful initialisation")
	}
}
