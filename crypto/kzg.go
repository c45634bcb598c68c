package crypto

// KZG (Kate-Zaverucha-Goldberg) polynomial commitment verification for the
// EIP-4844 point evaluation precompile: proving a committed polynomial
// p(X) evaluates to y at z, given commitment C = [p(s)]_1 and proof
// pi = [(p(s)-y)/(s-z)]_1 from an unknown toxic-waste secret s.
//
// Verification reduces to the pairing equation
//
//	e(C - [y]G1, G2) == e(pi, [s]G2 - [z]G2)
//
// equivalently e(C-[y]G1, G2) * e(-pi, [s]G2-[z]G2) == 1, which
// blsMultiPairing checks directly without computing either pairing alone.
// Point (de)serialization lives in kzg_serialize.go.

import (
	"errors"
	"math/big"
)

var (
	errKZGInvalidProof      = errors.New("kzg: invalid proof")
	errKZGInvalidCommitment = errors.New("kzg: invalid commitment")
	errKZGInvalidPoint      = errors.New("kzg: point not on curve")
	errKZGInvalidFieldElem  = errors.New("kzg: invalid field element")
	errKZGVerifyFailed      = errors.New("kzg: proof verification failed")
)

// kzgTrustedSetupG2 holds [s]G2 from the trusted setup ceremony. The
// default here is [42]G2, a toy secret that lets tests construct valid
// proofs without needing the real Ethereum ceremony transcript; production
// use should call KZGSetTrustedSetupG2 with the real point before serving
// any traffic.
var kzgTrustedSetupG2 *BlsG2Point

func init() {
	kzgTrustedSetupG2 = blsG2ScalarMul(BlsG2Generator(), big.NewInt(42))
}

// KZGSetTrustedSetupG2 overrides the trusted setup G2 point.
func KZGSetTrustedSetupG2(p *BlsG2Point) {
	kzgTrustedSetupG2 = p
}

// KZGGetTrustedSetupG2 returns the current [s]G2 point.
func KZGGetTrustedSetupG2() *BlsG2Point {
	return kzgTrustedSetupG2
}

// KZGVerifyProof checks e(C-[y]G1, G2) == e(pi, [s]G2-[z]G2) given decoded
// points and scalars already reduced to the subgroup.
func KZGVerifyProof(commitment *BlsG1Point, z, y *big.Int, proof *BlsG1Point) bool {
	if z.Sign() < 0 || z.Cmp(blsR) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(blsR) >= 0 {
		return false
	}

	g1Gen := BlsG1Generator()
	g2Gen := BlsG2Generator()

	lhsG1 := blsG1Add(commitment, blsG1Neg(blsG1ScalarMul(g1Gen, y)))
	rhsG2 := blsG2Add(kzgTrustedSetupG2, blsG2Neg(blsG2ScalarMul(g2Gen, z)))

	return blsMultiPairing(
		[]*BlsG1Point{lhsG1, blsG1Neg(proof)},
		[]*BlsG2Point{g2Gen, rhsG2},
	)
}

// KZGVerifyFromBytes verifies a KZG proof from the raw wire format used by
// the point evaluation precompile: 48-byte compressed commitment and
// proof, 32-byte big-endian z and y scalars.
func KZGVerifyFromBytes(commitment []byte, z, y *big.Int, proof []byte) error {
	commitPoint, err := KZGDecompressG1(commitment)
	if err != nil {
		return errKZGInvalidCommitment
	}

	proofPoint, err := KZGDecompressG1(proof)
	if err != nil {
		return errKZGInvalidProof
	}

	if !KZGVerifyProof(commitPoint, z, y, proofPoint) {
		return errKZGVerifyFailed
	}

	return nil
}

// KZGCommit returns [p(s)]G1 given the polynomial's value at the trusted
// setup secret — a test helper, since a real prover never has s directly.
func KZGCommit(polyAtS *big.Int) *BlsG1Point {
	return blsG1ScalarMul(BlsG1Generator(), polyAtS)
}

// KZGComputeProof computes [(p(s)-y)/(s-z)]G1 given the secret, evaluation
// point, and polynomial values — again a test helper standing in for the
// prover-side computation a real implementation derives from polynomial
// coefficients instead.
func KZGComputeProof(secret, z, polyAtS, y *big.Int) *BlsG1Point {
	num := new(big.Int).Sub(polyAtS, y)
	num.Mod(num, blsR)
	den := new(big.Int).Sub(secret, z)
	den.Mod(den, blsR)
	denInv := new(big.Int).ModInverse(den, blsR)
	if denInv == nil {
		// s == z: the secret coincides with the evaluation point, which a
		// real ceremony makes computationally impossible to hit.
		return BlsG1Infinity()
	}
	quotient := new(big.Int).Mul(num, denInv)
	quotient.Mod(quotient, blsR)
	return blsG1ScalarMul(BlsG1Generator(), quotient)
}
