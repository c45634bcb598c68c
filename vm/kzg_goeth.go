//go:build goethkzg

package vm

// Real trusted-setup backend, built only with -tags goethkzg. Wraps the
// production go-eth-kzg library against the actual Ethereum KZG ceremony
// SRS, in place of the embedded secret-42 placeholder used by default.

import (
	"math/big"

	goethkzg "github.com/crate-crypto/go-eth-kzg"
)

// GoEthKZGBackend verifies point-evaluation proofs against the real
// Ethereum ceremony output via go-eth-kzg's Context.
type GoEthKZGBackend struct {
	ctx *goethkzg.Context
}

var _ KZGBackend = (*GoEthKZGBackend)(nil)

func (b *GoEthKZGBackend) Name() string { return "go-eth-kzg" }

// Load builds the go-eth-kzg context, which reads the embedded production
// SRS. Building the context is the expensive step the trusted-setup state
// machine exists to serialize and retry.
func (b *GoEthKZGBackend) Load() error {
	ctx, err := goethkzg.NewContext4096Secure()
	if err != nil {
		return err
	}
	b.ctx = ctx
	return nil
}

// VerifyPointProof adapts the EIP-4844 point evaluation precompile's
// (commitment, z, y, proof) arguments, already validated to 32/48-byte
// widths by kzgPointEvaluationContract.Run, into go-eth-kzg's fixed-size
// commitment/scalar/proof types.
func (b *GoEthKZGBackend) VerifyPointProof(commitment []byte, z, y *big.Int, proof []byte) error {
	var c goethkzg.KZGCommitment
	var p goethkzg.KZGProof
	copy(c[:], commitment)
	copy(p[:], proof)

	var zBytes, yBytes goethkzg.Scalar
	z.FillBytes(zBytes[:])
	y.FillBytes(yBytes[:])

	return b.ctx.VerifyKZGProof(c, zBytes, yBytes, p)
}
