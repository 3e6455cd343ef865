// Package shamir implements threshold secret sharing over the ristretto255
// scalar field. A secret scalar becomes the constant term of a random
// polynomial; shares are evaluations of that polynomial at distinct
// non-zero points, and any threshold of them recovers it through a
// Vandermonde solve. Base-point commitments let a holder check a
// reconstructed secret without the dealer revealing it.
package shamir

import (
	"fmt"
	"math/big"

	"github.com/ethp2p/linalg/field"
	"github.com/ethp2p/linalg/matrix"
	"github.com/ethp2p/linalg/solve"

	"github.com/gtank/ristretto255"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("shamir")

var scalarField = field.NewRistretto255ScalarField()

// ScalarField returns the field secrets and shares live in: the prime
// field of the ristretto255 group order. All Split and Reconstruct
// arguments must be elements of this field.
func ScalarField() *field.PrimeField {
	return scalarField
}

// Share is one evaluation of the sharing polynomial: Y = p(X) for the
// non-zero point X.
type Share struct {
	X int
	Y field.Element
}

// Split splits secret into total shares, any threshold of which can
// reconstruct it. Fewer than threshold shares reveal nothing about the
// secret beyond its field.
func Split(secret field.Element, threshold, total int) ([]Share, error) {
	if secret == nil {
		return nil, fmt.Errorf("secret is required")
	}
	if threshold < 1 {
		return nil, fmt.Errorf("threshold must be at least 1")
	}
	if total < threshold {
		return nil, fmt.Errorf("total shares %d below threshold %d", total, threshold)
	}

	// Random polynomial with the secret as its constant term
	coeffs := matrix.New(scalarField, threshold, 1)
	coeffs.Set(0, 0, secret)
	for i := 1; i < threshold; i++ {
		c, err := scalarField.Random()
		if err != nil {
			return nil, err
		}
		coeffs.Set(i, 0, c)
	}

	// Evaluate at x = 1..total, i.e. the Vandermonde rows for those points.
	// Row 0 would evaluate at x = 0 and hand out the secret itself.
	points := matrix.NewVandermonde(scalarField, total+1, threshold).
		SubMatrix(1, 0, total+1, threshold)
	values := points.Multiply(coeffs)

	log.Debugf("split secret into %d shares with threshold %d", total, threshold)

	shares := make([]Share, total)
	for i := range shares {
		shares[i] = Share{X: i + 1, Y: values.At(i, 0)}
	}
	return shares, nil
}

// Reconstruct recovers the secret from any threshold shares with distinct
// points. Shares beyond the first threshold are ignored.
func Reconstruct(shares []Share, threshold int) (field.Element, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("threshold must be at least 1")
	}
	if len(shares) < threshold {
		return nil, fmt.Errorf("%d shares cannot meet threshold %d", len(shares), threshold)
	}

	subset := shares[:threshold]
	seen := make(map[int]bool, threshold)
	for _, s := range subset {
		if s.X <= 0 {
			return nil, fmt.Errorf("share point %d must be positive", s.X)
		}
		if seen[s.X] {
			return nil, fmt.Errorf("duplicate share point %d", s.X)
		}
		seen[s.X] = true
		if s.Y == nil {
			return nil, fmt.Errorf("share %d has no value", s.X)
		}
	}

	// A[i][j] = x_i^j with b[i] = y_i; the solution is the coefficient
	// vector and the secret its constant term
	a := matrix.New(scalarField, threshold, threshold)
	b := make([]field.Element, threshold)
	for i, s := range subset {
		x := scalarField.FromBytes(big.NewInt(int64(s.X)).Bytes())
		v := scalarField.One()
		for j := 0; j < threshold; j++ {
			a.Set(i, j, v)
			v = v.Mul(x)
		}
		b[i] = s.Y
	}

	coeffs, err := solve.SolveVector(a, b)
	if err != nil {
		return nil, fmt.Errorf("reconstruct from shares: %w", err)
	}

	log.Debugf("reconstructed secret from %d of %d shares", threshold, len(shares))
	return coeffs[0], nil
}

// Commitment returns the base-point commitment to the secret. A dealer can
// publish it next to the shares so that whoever reconstructs can check the
// result with VerifyCommitment.
func Commitment(secret field.Element) (*ristretto255.Element, error) {
	s, err := scalarFromElement(secret)
	if err != nil {
		return nil, err
	}
	return ristretto255.NewElement().ScalarBaseMult(s), nil
}

// VerifyCommitment reports whether secret matches the commitment.
func VerifyCommitment(secret field.Element, commitment *ristretto255.Element) (bool, error) {
	if commitment == nil {
		return false, fmt.Errorf("commitment is required")
	}
	c, err := Commitment(secret)
	if err != nil {
		return false, err
	}
	return c.Equal(commitment) == 1, nil
}

// scalarFromElement converts a scalar-field element to a ristretto255
// scalar. Field elements carry big-endian bytes while scalars decode from
// 32 little-endian bytes.
func scalarFromElement(e field.Element) (*ristretto255.Scalar, error) {
	pe, ok := e.(*field.PrimeFieldElement)
	if !ok {
		return nil, fmt.Errorf("element is not from the scalar field")
	}
	data := pe.Bytes()
	if len(data) > 32 {
		return nil, fmt.Errorf("element does not fit a scalar")
	}

	var buf [32]byte
	for i := 0; i < len(data); i++ {
		buf[i] = data[len(data)-1-i]
	}

	s := ristretto255.NewScalar()
	if err := s.Decode(buf[:]); err != nil {
		return nil, fmt.Errorf("decode element as scalar: %w", err)
	}
	return s, nil
}
