package vm

import (
	"math/big"
	"sync"

	"github.com/evmts/voltaire-sub010/crypto"
)

// KZGBackend abstracts the proof-verification half of the point evaluation
// precompile from the trusted setup it runs against, mirroring the backend
// split the upstream crypto package draws between its embedded placeholder
// ceremony and the real go-eth-kzg library: a cheap pure-Go implementation
// by default, with a pluggable real backend for production trusted-setup
// data. Load is the expensive, potentially-failing half (parsing or
// generating ceremony points); VerifyPointProof assumes Load already
// succeeded.
type KZGBackend interface {
	Name() string
	Load() error
	VerifyPointProof(commitment []byte, z, y *big.Int, proof []byte) error
}

var (
	activeKZGBackendMu sync.RWMutex
	activeKZGBackend   KZGBackend = &placeholderKZGBackend{}
)

// SetKZGBackend swaps the active KZG backend and resets the trusted-setup
// lifecycle to Uninitialised so the next point evaluation call re-runs Load
// against the new backend rather than reusing a stale Ready state.
func SetKZGBackend(b KZGBackend) {
	activeKZGBackendMu.Lock()
	activeKZGBackend = b
	activeKZGBackendMu.Unlock()

	kzgInitMu.Lock()
	kzgState.Store(int32(kzgUninitialised))
	kzgInitMu.Unlock()
}

func currentKZGBackend() KZGBackend {
	activeKZGBackendMu.RLock()
	defer activeKZGBackendMu.RUnlock()
	return activeKZGBackend
}

// placeholderKZGBackend is the default backend: the embedded toy ceremony
// (secret s=42) from the crypto package, verified by math/big pairing
// arithmetic. It always loads successfully, since its setup is baked in at
// init time rather than read from an external ceremony file.
type placeholderKZGBackend struct{}

func (placeholderKZGBackend) Name() string { return "placeholder-pure-go" }

func (placeholderKZGBackend) Load() error {
	if crypto.KZGGetTrustedSetupG2() == nil {
		return ErrInvalidInput
	}
	return nil
}

func (placeholderKZGBackend) VerifyPointProof(commitment []byte, z, y *big.Int, proof []byte) error {
	return crypto.KZGVerifyFromBytes(commitment, z, y, proof)
}
