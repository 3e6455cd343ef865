package matrix

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethp2p/linalg/field"
)

// newPrimeMatrix builds a matrix of small integers over GF(p)
func newPrimeMatrix(t *testing.T, p int64, rows [][]int64) *Matrix {
	t.Helper()
	f := field.NewPrimeField(big.NewInt(p))
	m := New(f, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, f.FromBytes(big.NewInt(v).Bytes()))
		}
	}
	return m
}

// TestReducedRowEchelonFormRational tests reduction of a full-rank wide
// matrix over the rationals
func TestReducedRowEchelonFormRational(t *testing.T) {
	f := field.NewRationalField()
	m := New(f, 2, 3)
	m.Set(0, 0, f.FromRat(2, 1))
	m.Set(0, 1, f.FromRat(4, 1))
	m.Set(0, 2, f.FromRat(6, 1))
	m.Set(1, 0, f.FromRat(1, 1))
	m.Set(1, 1, f.FromRat(1, 1))
	m.Set(1, 2, f.FromRat(1, 1))

	m.ReducedRowEchelonForm()

	expected := newRationalMatrix(t, [][]int64{{1, 0, -1}, {0, 1, 2}})
	if !matricesEqual(m, expected) {
		t.Errorf("Expected %s, got %s", expected, m)
	}
}

// TestReducedRowEchelonFormGF2 tests reduction over GF(2), where the inverse
// of every non-zero scalar is itself
func TestReducedRowEchelonFormGF2(t *testing.T) {
	m := newPrimeMatrix(t, 2, [][]int64{{1, 1}, {1, 0}})
	m.ReducedRowEchelonForm()

	expected := newPrimeMatrix(t, 2, [][]int64{{1, 0}, {0, 1}})
	if !matricesEqual(m, expected) {
		t.Errorf("Expected identity, got %s", m)
	}
}

// TestReducedRowEchelonFormRankDeficient tests that dependent rows reduce
// to zero rows at the bottom
func TestReducedRowEchelonFormRankDeficient(t *testing.T) {
	m := newRationalMatrix(t, [][]int64{{1, 2}, {2, 4}})
	m.ReducedRowEchelonForm()

	expected := newRationalMatrix(t, [][]int64{{1, 2}, {0, 0}})
	if !matricesEqual(m, expected) {
		t.Errorf("Expected %s, got %s", expected, m)
	}
}

// TestReducedRowEchelonFormZeroColumn tests that a column with no usable
// pivot is skipped without consuming a pivot row
func TestReducedRowEchelonFormZeroColumn(t *testing.T) {
	m := newRationalMatrix(t, [][]int64{{0, 1, 3}, {0, 2, 6}})
	m.ReducedRowEchelonForm()

	expected := newRationalMatrix(t, [][]int64{{0, 1, 3}, {0, 0, 0}})
	if !matricesEqual(m, expected) {
		t.Errorf("Expected %s, got %s", expected, m)
	}
}

// TestReducedRowEchelonFormTall tests reduction of a single-column matrix
func TestReducedRowEchelonFormTall(t *testing.T) {
	m := newRationalMatrix(t, [][]int64{{2}, {4}, {6}})
	m.ReducedRowEchelonForm()

	expected := newRationalMatrix(t, [][]int64{{1}, {0}, {0}})
	if !matricesEqual(m, expected) {
		t.Errorf("Expected %s, got %s", expected, m)
	}
}

// TestReducedRowEchelonFormFixedPoint tests that an already reduced matrix
// does not change
func TestReducedRowEchelonFormFixedPoint(t *testing.T) {
	f := field.NewRationalField()
	id := Identity(f, 4)
	m := id.Clone()

	m.ReducedRowEchelonForm()
	if !matricesEqual(m, id) {
		t.Errorf("Identity should be a fixed point, got %s", m)
	}
}

// TestReducedRowEchelonFormIdempotent tests that reducing twice equals
// reducing once, over random GF(2^8) matrices
func TestReducedRowEchelonFormIdempotent(t *testing.T) {
	f := field.NewDefaultGF256()

	for trial := 0; trial < 10; trial++ {
		m := newRandomMatrix(t, f, 4, 6)
		m.ReducedRowEchelonForm()
		once := m.Clone()

		m.ReducedRowEchelonForm()
		if !matricesEqual(m, once) {
			t.Errorf("Reduction is not idempotent on trial %d: %s vs %s", trial, once, m)
		}
	}
}

// TestReducedRowEchelonFormStructure tests the defining properties of the
// reduced form on random matrices: unit pivots, cleared pivot columns,
// strictly advancing pivot positions and zero rows at the bottom
func TestReducedRowEchelonFormStructure(t *testing.T) {
	f := field.NewDefaultGF256()

	for trial := 0; trial < 10; trial++ {
		m := newRandomMatrix(t, f, 5, 7)
		m.ReducedRowEchelonForm()

		lastPivotCol := -1
		sawZeroRow := false
		for i := 0; i < m.Rows(); i++ {
			pivotCol := -1
			for j := 0; j < m.Cols(); j++ {
				if !m.At(i, j).IsZero() {
					pivotCol = j
					break
				}
			}

			if pivotCol == -1 {
				sawZeroRow = true
				continue
			}
			if sawZeroRow {
				t.Fatalf("Non-zero row below a zero row on trial %d: %s", trial, m)
			}
			if pivotCol <= lastPivotCol {
				t.Fatalf("Pivot columns do not advance on trial %d: %s", trial, m)
			}
			lastPivotCol = pivotCol

			if !m.At(i, pivotCol).Equal(f.One()) {
				t.Fatalf("Pivot is not one on trial %d: %s", trial, m)
			}
			for r := 0; r < m.Rows(); r++ {
				if r != i && !m.At(r, pivotCol).IsZero() {
					t.Fatalf("Pivot column %d not cleared on trial %d: %s", pivotCol, trial, m)
				}
			}
		}
	}
}

// TestReducedRowEchelonFormUnsetCell tests that reduction refuses a matrix
// with an unset cell
func TestReducedRowEchelonFormUnsetCell(t *testing.T) {
	f := field.NewRationalField()
	m := New(f, 2, 2)
	m.Set(0, 0, f.One())
	m.Set(0, 1, f.Zero())
	m.Set(1, 0, f.Zero())
	// (1, 1) left unset

	expectPanic(t, ErrUnsetElement, func() {
		m.ReducedRowEchelonForm()
	})
}

func benchmarkMatrix(b *testing.B, f field.Field, rows, cols int) *Matrix {
	b.Helper()
	m := New(f, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := f.Random()
			if err != nil {
				b.Fatalf("Random failed: %v", err)
			}
			m.Set(i, j, v)
		}
	}
	return m
}

func BenchmarkReducedRowEchelonForm(b *testing.B) {
	f := field.NewDefaultGF256()

	for _, n := range []int{4, 8, 16, 32, 64} {
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			m := benchmarkMatrix(b, f, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := m.Clone()
				c.ReducedRowEchelonForm()
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	f := field.NewDefaultGF256()

	for _, n := range []int{4, 8, 16, 32, 64} {
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			x := benchmarkMatrix(b, f, n, n)
			y := benchmarkMatrix(b, f, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x.Multiply(y)
			}
		})
	}
}
