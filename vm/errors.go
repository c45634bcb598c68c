// Package vm implements the precompiled-contract dispatch and execution
// subsystem of the EVM: the address-to-precompile routing table, hardfork
// gating, gas accounting, and the individual precompile algorithms.
package vm

// Kind identifies one member of the closed error taxonomy that crosses the
// dispatch boundary. Precompiles never return a bare error outside this set.
type Kind int

const (
	// KindOutOfGas: computed cost exceeds the caller's gas limit.
	KindOutOfGas Kind = iota
	// KindInvalidInput: length violation, parse failure, MODEXP
	// division-by-zero, KZG versioned-hash mismatch.
	KindInvalidInput
	// KindInvalidPoint: curve/subgroup/field-range failure in a BN254 or
	// BLS12-381 operation. Pairing precompiles use this for any
	// point-level fault.
	KindInvalidPoint
	// KindInvalidPairing: pairing backend signals a non-point-level
	// failure. Reserved for backends that distinguish this from
	// KindInvalidPoint; the bundled backends do not.
	KindInvalidPairing
	// kindInvalidSignature is the reserved ECRECOVER kind. It is never
	// returned across the dispatch boundary: ECRECOVER encodes signature
	// and recovery failure as a successful zero-address result. It exists
	// only so internal helpers can express "this signature is bad"
	// before the precompile boundary converts that into a success.
	kindInvalidSignature
	// KindNotImplemented: address not in the active set for the given
	// hardfork.
	KindNotImplemented
	// KindAllocation: propagated from the memory allocator. Go's
	// allocator does not fail observably in the way a fallible allocator
	// would; this kind exists for taxonomy completeness and no precompile
	// in this package returns it (modexp's declared-length cap reports
	// InvalidInput).
	KindAllocation
)

func (k Kind) String() string {
	switch k {
	case KindOutOfGas:
		return "OutOfGas"
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidPoint:
		return "InvalidPoint"
	case KindInvalidPairing:
		return "InvalidPairing"
	case kindInvalidSignature:
		return "InvalidSignature"
	case KindNotImplemented:
		return "NotImplemented"
	case KindAllocation:
		return "Allocation"
	default:
		return "Unknown"
	}
}

// Error is the typed error value precompiles and the dispatcher return. It
// carries a Kind from the closed taxonomy plus a human-readable detail.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return "precompile: " + e.Kind.String() + ": " + e.msg }

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, vm.ErrOutOfGas) without caring about the detail string.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newErr(k Kind, msg string) *Error { return &Error{Kind: k, msg: msg} }

// Sentinel values for errors.Is comparisons. Detail strings are irrelevant
// for equality since *Error.Is compares Kind only.
var (
	ErrOutOfGas        = newErr(KindOutOfGas, "gas limit exceeded")
	ErrInvalidInput    = newErr(KindInvalidInput, "invalid input")
	ErrInvalidPoint    = newErr(KindInvalidPoint, "invalid point")
	ErrInvalidPairing  = newErr(KindInvalidPairing, "invalid pairing")
	ErrNotImplemented  = newErr(KindNotImplemented, "precompile not active for hardfork")
	ErrAllocation      = newErr(KindAllocation, "allocation failure")
	errInvalidSignature = newErr(kindInvalidSignature, "invalid signature")
)
