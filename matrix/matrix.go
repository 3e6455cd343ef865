// Package matrix implements a mutable two-dimensional container of field
// elements together with the exact row-reduction toolkit: elementary row
// operations, multiplication, and in-place Gauss-Jordan elimination to
// reduced row echelon form. Every comparison is an exact field equality, so
// the same code is correct over the rationals, prime fields and binary
// extension fields alike.
//
// A matrix is not safe for concurrent mutation. Distinct matrices may be
// used concurrently, including matrices bound to the same field instance.
package matrix

import (
	"fmt"
	"strings"

	"github.com/ethp2p/linalg/field"
)

// Matrix is a rows x cols grid of field elements bound to a single field.
// Cells start unset and may be cleared back to unset; reading an unset cell
// panics with ErrUnsetElement. Dimensions are fixed for the lifetime of the
// instance.
type Matrix struct {
	f     field.Field
	rows  int
	cols  int
	cells [][]field.Element // nil entry means the cell is unset
}

// New creates a matrix with all cells unset. It panics with
// ErrInvalidDimensions if rows or cols is not positive, and with
// ErrMissingArgument if f is nil.
func New(f field.Field, rows, cols int) *Matrix {
	if f == nil {
		panic(ErrMissingArgument)
	}
	if rows <= 0 || cols <= 0 {
		panic(ErrInvalidDimensions)
	}

	cells := make([][]field.Element, rows)
	for i := range cells {
		cells[i] = make([]field.Element, cols)
	}
	return &Matrix{
		f:     f,
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns
func (m *Matrix) Cols() int {
	return m.cols
}

// Field returns the field the matrix is bound to
func (m *Matrix) Field() field.Field {
	return m.f
}

func (m *Matrix) checkRow(row int) {
	if row < 0 || row >= m.rows {
		panic(ErrIndexOutOfRange)
	}
}

func (m *Matrix) checkCol(col int) {
	if col < 0 || col >= m.cols {
		panic(ErrIndexOutOfRange)
	}
}

// At returns the element at (row, col). It panics with ErrIndexOutOfRange
// on a bad index and with ErrUnsetElement if the cell has no value.
func (m *Matrix) At(row, col int) field.Element {
	m.checkRow(row)
	m.checkCol(col)

	v := m.cells[row][col]
	if v == nil {
		panic(ErrUnsetElement)
	}
	return v
}

// Set stores v at (row, col). A nil v clears the cell back to unset. It
// panics with ErrIndexOutOfRange on a bad index.
func (m *Matrix) Set(row, col int, v field.Element) {
	m.checkRow(row)
	m.checkCol(col)
	m.cells[row][col] = v
}

// IsSet reports whether the cell at (row, col) holds a value. It panics
// with ErrIndexOutOfRange on a bad index.
func (m *Matrix) IsSet(row, col int) bool {
	m.checkRow(row)
	m.checkCol(col)
	return m.cells[row][col] != nil
}

// Clone returns an independent matrix with the same dimensions, the same
// field reference and a fresh copy of the cell grid. Elements themselves
// are shared; they are immutable by the field contract.
func (m *Matrix) Clone() *Matrix {
	cells := make([][]field.Element, m.rows)
	for i := range cells {
		cells[i] = make([]field.Element, m.cols)
		copy(cells[i], m.cells[i])
	}
	return &Matrix{
		f:     m.f,
		rows:  m.rows,
		cols:  m.cols,
		cells: cells,
	}
}

// String returns a bracketed rendering of the rows, for debugging. Unset
// cells render as <nil>. The format is not part of any contract.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.cells[i][j])
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// SwapRows exchanges the contents of rows a and b. Swapping a row with
// itself is a no-op. Unset cells move with their row.
func (m *Matrix) SwapRows(a, b int) {
	m.checkRow(a)
	m.checkRow(b)
	if a == b {
		return
	}
	m.cells[a], m.cells[b] = m.cells[b], m.cells[a]
}

// MultiplyRow scales every element of the row by factor, in place. Every
// cell in the row must be set, and factor must be non-nil.
func (m *Matrix) MultiplyRow(row int, factor field.Element) {
	m.checkRow(row)
	if factor == nil {
		panic(ErrMissingArgument)
	}
	for j := 0; j < m.cols; j++ {
		m.Set(row, j, m.At(row, j).Mul(factor))
	}
}

// AddRows adds factor times the src row to the dst row, in place: the
// elementary row operation dst += src * factor. Every cell read must be
// set, and factor must be non-nil.
func (m *Matrix) AddRows(src, dst int, factor field.Element) {
	m.checkRow(src)
	m.checkRow(dst)
	if factor == nil {
		panic(ErrMissingArgument)
	}
	for j := 0; j < m.cols; j++ {
		m.Set(dst, j, m.At(dst, j).Add(m.At(src, j).Mul(factor)))
	}
}

// Multiply returns the matrix product m x other as a new matrix; neither
// operand is modified. It panics with ErrMissingArgument if other is nil
// and with ErrIncompatibleDimensions unless m.Cols() == other.Rows().
// Every cell of both operands must be set.
func (m *Matrix) Multiply(other *Matrix) *Matrix {
	if other == nil {
		panic(ErrMissingArgument)
	}
	if m.cols != other.rows {
		panic(ErrIncompatibleDimensions)
	}

	result := New(m.f, m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := m.f.Zero()
			for k := 0; k < m.cols; k++ {
				sum = m.At(i, k).Mul(other.At(k, j)).Add(sum)
			}
			result.Set(i, j, sum)
		}
	}
	return result
}

// ReducedRowEchelonForm reduces the matrix, in place, to reduced row
// echelon form by Gauss-Jordan elimination. Every cell must be set. After
// the call each pivot equals one and is the only non-zero entry in its
// column, pivotless rows are entirely zero and sit below all pivot rows,
// and the rank is the number of non-zero rows.
//
// Pivot selection takes the first row, top down, with a non-zero entry in
// the column; fields have no magnitude ordering, so there is no pivoting
// by size. A column with no usable entry is skipped without consuming a
// pivot slot, which is how free variables and rank-deficient inputs are
// handled.
func (m *Matrix) ReducedRowEchelonForm() {
	// Forward elimination: fix one pivot row per usable column, top down.
	numPivots := 0
	for j := 0; j < m.cols && numPivots < m.rows; j++ {
		// Scan from the first unfixed row for a non-zero entry in column j
		pivotRow := numPivots
		for pivotRow < m.rows && m.At(pivotRow, j).IsZero() {
			pivotRow++
		}
		if pivotRow == m.rows {
			continue // no pivot in this column
		}
		m.SwapRows(numPivots, pivotRow)
		pivotRow = numPivots
		numPivots++

		// Normalize the pivot to one
		m.MultiplyRow(pivotRow, m.At(pivotRow, j).Inv())

		// Clear the entries below the pivot
		for i := pivotRow + 1; i < m.rows; i++ {
			m.AddRows(pivotRow, i, m.At(i, j).Neg())
		}
	}

	// Backward elimination: clear the entries above each pivot.
	for i := numPivots - 1; i >= 0; i-- {
		pivotCol := 0
		for pivotCol < m.cols && m.At(i, pivotCol).IsZero() {
			pivotCol++
		}
		if pivotCol == m.cols {
			continue // all-zero row
		}

		for j := i - 1; j >= 0; j-- {
			m.AddRows(i, j, m.At(j, pivotCol).Neg())
		}
	}
}
