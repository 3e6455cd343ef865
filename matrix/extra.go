package matrix

import (
	"math/big"

	"github.com/ethp2p/linalg/field"
)

// Identity returns the n x n identity matrix over f.
func Identity(f field.Field, n int) *Matrix {
	m := New(f, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.Set(i, j, f.One())
			} else {
				m.Set(i, j, f.Zero())
			}
		}
	}
	return m
}

// NewFromFunction returns a rows x cols matrix whose cell (r, c) holds
// fn(r, c). It panics with ErrMissingArgument if fn is nil.
func NewFromFunction(f field.Field, rows, cols int, fn func(r, c int) field.Element) *Matrix {
	if fn == nil {
		panic(ErrMissingArgument)
	}
	m := New(f, rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, fn(r, c))
		}
	}
	return m
}

// NewVandermonde returns the rows x cols matrix whose cell (r, c) is
// e(r)^c, where e(r) is the field element built from the index r and
// e^0 is one for every e. As long as rows does not exceed the field's
// order the row points are distinct, and then every square submatrix
// formed from distinct rows is invertible, which is the property
// erasure-code style consumers rely on.
func NewVandermonde(f field.Field, rows, cols int) *Matrix {
	m := New(f, rows, cols)
	for r := 0; r < rows; r++ {
		base := f.FromBytes(big.NewInt(int64(r)).Bytes())
		v := f.One()
		for c := 0; c < cols; c++ {
			m.Set(r, c, v)
			v = v.Mul(base)
		}
	}
	return m
}

// Augment returns the matrix [m | other] as a new matrix. Both operands
// must have the same number of rows and are assumed to share a field.
// Unset cells carry over unset.
func (m *Matrix) Augment(other *Matrix) *Matrix {
	if other == nil {
		panic(ErrMissingArgument)
	}
	if m.rows != other.rows {
		panic(ErrIncompatibleDimensions)
	}

	result := New(m.f, m.rows, m.cols+other.cols)
	for i := 0; i < m.rows; i++ {
		copy(result.cells[i], m.cells[i])
		copy(result.cells[i][m.cols:], other.cells[i])
	}
	return result
}

// SubMatrix returns the rectangle [rmin, rmax) x [cmin, cmax) as a new
// matrix. It panics with ErrIndexOutOfRange if the ranges are empty or
// fall outside the extent. Unset cells carry over unset.
func (m *Matrix) SubMatrix(rmin, cmin, rmax, cmax int) *Matrix {
	if rmin < 0 || cmin < 0 || rmin >= rmax || cmin >= cmax || rmax > m.rows || cmax > m.cols {
		panic(ErrIndexOutOfRange)
	}

	result := New(m.f, rmax-rmin, cmax-cmin)
	for i := rmin; i < rmax; i++ {
		copy(result.cells[i-rmin], m.cells[i][cmin:cmax])
	}
	return result
}

// Rank returns the number of linearly independent rows. The receiver is
// not modified; reduction runs on a clone. Every cell must be set.
func (m *Matrix) Rank() int {
	r := m.Clone()
	r.ReducedRowEchelonForm()

	rank := 0
	for i := 0; i < r.rows; i++ {
		for j := 0; j < r.cols; j++ {
			if !r.At(i, j).IsZero() {
				rank++
				break
			}
		}
	}
	return rank
}

// Invert returns the inverse as a new matrix, computed by reducing the
// augmented matrix [m | I]. It panics with ErrIncompatibleDimensions if m
// is not square and returns ErrSingular if m has no inverse. Every cell
// must be set.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.rows != m.cols {
		panic(ErrIncompatibleDimensions)
	}

	aug := m.Augment(Identity(m.f, m.rows))
	aug.ReducedRowEchelonForm()

	// m is invertible iff the left block reduced to the identity
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.rows; j++ {
			want := m.f.Zero()
			if i == j {
				want = m.f.One()
			}
			if !aug.At(i, j).Equal(want) {
				return nil, ErrSingular
			}
		}
	}
	return aug.SubMatrix(0, m.rows, m.rows, 2*m.rows), nil
}
