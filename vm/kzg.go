package vm

// KZG point evaluation (C10): EIP-4844 precompile 0x0a, plus the trusted
// setup lifecycle state machine (§4.11): Uninitialised -> Initialising ->
// {Ready, Failed}. Ready stays until SetKZGBackend or SetKZGTrustedSetup
// resets the state to Uninitialised; Failed is not sticky and a later call
// may retry initialisation.
//
// Deliberate deviation from mainnet Ethereum: the versioned-hash binding
// check here uses Keccak-256 of the commitment, not SHA-256, and the
// embedded trusted setup is a placeholder (not the real Ethereum ceremony
// output) with an override hook for real data.

import (
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/evmts/voltaire-sub010/core/types"
	"github.com/evmts/voltaire-sub010/crypto"
)

type kzgSetupState int32

const (
	kzgUninitialised kzgSetupState = iota
	kzgInitialising
	kzgReady
	kzgFailed
)

var (
	kzgState  atomic.Int32
	kzgInitMu sync.Mutex

	blsModulus, _        = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
	fieldElementsPerBlob = big.NewInt(4096)
)

// ensureTrustedSetup drives the Uninitialised -> Initialising -> Ready/Failed
// transition. A single goroutine performs the (here, trivial) setup load
// under kzgInitMu; concurrent readers only ever observe Ready or Failed once
// the mutex is released. A prior Failed does not stick: the next caller
// retries from Uninitialised.
func ensureTrustedSetup() bool {
	for {
		switch kzgSetupState(kzgState.Load()) {
		case kzgReady:
			return true
		case kzgFailed:
			kzgState.Store(int32(kzgUninitialised))
			continue
		case kzgInitialising:
			kzgInitMu.Lock()
			kzgInitMu.Unlock()
			continue
		default: // kzgUninitialised
			kzgInitMu.Lock()
			if kzgSetupState(kzgState.Load()) != kzgUninitialised {
				kzgInitMu.Unlock()
				continue
			}
			kzgState.Store(int32(kzgInitialising))
			ok := loadTrustedSetup()
			if ok {
				kzgState.Store(int32(kzgReady))
			} else {
				kzgState.Store(int32(kzgFailed))
			}
			kzgInitMu.Unlock()
			return ok
		}
	}
}

// loadTrustedSetup runs Load on the active backend. The placeholder backend
// never fails; a real backend (e.g. the go-eth-kzg adapter in
// kzg_goeth.go) parses or memory-maps ceremony data here, so this is the
// step that can genuinely take time and genuinely fail.
func loadTrustedSetup() bool {
	return currentKZGBackend().Load() == nil
}

// SetKZGTrustedSetup overrides the embedded placeholder trusted setup with
// externally-provisioned ceremony data, keeping the active backend as the
// pure-Go placeholder. To switch to a different verification backend
// entirely (e.g. the real go-eth-kzg ceremony), use SetKZGBackend instead.
func SetKZGTrustedSetup(g2 *crypto.BlsG2Point) {
	kzgInitMu.Lock()
	defer kzgInitMu.Unlock()
	crypto.KZGSetTrustedSetupG2(g2)
	kzgState.Store(int32(kzgUninitialised))
}

const kzgPointEvaluationInputLen = 192

type kzgPointEvaluationContract struct{}

func (kzgPointEvaluationContract) RequiredGas([]byte) uint64 { return gasPointEvaluation }

func (kzgPointEvaluationContract) Run(input []byte) ([]byte, error) {
	if err := requireLength(input, kzgPointEvaluationInputLen); err != nil {
		return nil, err
	}

	versionedHash := input[0:32]
	z := decodeUint256(input[32:64])
	y := decodeUint256(input[64:96])
	commitment := input[96:144]
	proof := input[144:192]

	if z.Cmp(blsModulus) >= 0 || y.Cmp(blsModulus) >= 0 {
		return nil, ErrInvalidInput
	}

	if versionedHash[0] != types.VersionedHashVersionKZG {
		return nil, ErrInvalidInput
	}
	commitHash := crypto.Keccak256(commitment)
	commitHash[0] = types.VersionedHashVersionKZG
	if !bytesEqual(versionedHash, commitHash) {
		return nil, ErrInvalidInput
	}

	if !ensureTrustedSetup() {
		return nil, ErrInvalidInput
	}

	if err := currentKZGBackend().VerifyPointProof(commitment, z, y, proof); err != nil {
		return nil, ErrInvalidInput
	}

	out := make([]byte, 64)
	fieldBytes := fieldElementsPerBlob.Bytes()
	copy(out[32-len(fieldBytes):32], fieldBytes)
	modBytes := blsModulus.Bytes()
	copy(out[64-len(modBytes):64], modBytes)
	return out, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
