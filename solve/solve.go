// Package solve provides linear-system solving on top of the matrix
// engine: recovering unknowns from square coefficient systems and testing
// sets of vectors for linear independence. It is the layer consumers such
// as erasure decoders and secret-sharing reconstruction talk to.
package solve

import (
	"fmt"

	"github.com/ethp2p/linalg/field"
	"github.com/ethp2p/linalg/matrix"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("solve")

// Solve returns the matrix X satisfying A * X = B, where A is a square
// invertible coefficient matrix and each column of B is one right-hand
// side. The returned error satisfies errors.Is(err, matrix.ErrSingular)
// when A has no inverse; neither input is modified.
func Solve(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("both matrices are required")
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("coefficient matrix is %dx%d, want square", a.Rows(), a.Cols())
	}
	if b.Rows() != a.Rows() {
		return nil, fmt.Errorf("right-hand side has %d rows, want %d", b.Rows(), a.Rows())
	}

	log.Debugf("solving %dx%d system with %d right-hand sides", a.Rows(), a.Cols(), b.Cols())

	inv, err := a.Invert()
	if err != nil {
		return nil, fmt.Errorf("invert coefficient matrix: %w", err)
	}
	return inv.Multiply(b), nil
}

// SolveVector returns the vector x satisfying A * x = b for a single
// right-hand side.
func SolveVector(a *matrix.Matrix, b []field.Element) ([]field.Element, error) {
	if a == nil {
		return nil, fmt.Errorf("coefficient matrix is required")
	}
	if len(b) != a.Rows() {
		return nil, fmt.Errorf("right-hand side has %d entries, want %d", len(b), a.Rows())
	}

	col := matrix.NewFromFunction(a.Field(), len(b), 1, func(r, c int) field.Element {
		return b[r]
	})
	x, err := Solve(a, col)
	if err != nil {
		return nil, err
	}

	out := make([]field.Element, x.Rows())
	for i := range out {
		out[i] = x.At(i, 0)
	}
	return out, nil
}

// Independent reports whether the rows of m are linearly independent.
// The input is not modified.
func Independent(m *matrix.Matrix) bool {
	if m.Rows() > m.Cols() {
		// more vectors than dimensions
		return false
	}
	rank := m.Rank()
	log.Debugf("independence check: %d rows, rank %d", m.Rows(), rank)
	return rank == m.Rows()
}
