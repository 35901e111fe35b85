// Package dense: Dense is the concrete row-major matrix container, storing
// elements in a flat slice with an explicit row stride for performance and
// cache friendliness. Contiguous matrices have stride == cols; Submatrix
// views share the parent buffer and may carry a larger stride.
package dense

import (
	"fmt"

	"github.com/elsuizo/ndarray-linalg/scalar"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Scalar values.
// r is rows, c is columns, stride is the flat distance between the starts of
// consecutive rows (stride >= c; stride == c means contiguous), and data
// holds at least (r-1)*stride+c elements.
type Dense[T scalar.Scalar] struct {
	r, c   int // number of rows and columns
	stride int // row-to-row distance in the flat slice
	data   []T // flat backing storage (shared with the parent for views)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat contiguous backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Scalar](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, stride: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense from a slice of equally sized rows.
// Stage 1 (Validate): non-empty input, equal row lengths, finite entries.
// Stage 2 (Prepare): allocate and copy row by row into the flat slice.
// Errors: ErrBadShape on empty/ragged input, ErrNaNInf on non-finite entries.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows[T scalar.Scalar](rows [][]T) (*Dense[T], error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])

	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}

	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		// Reject ragged input before touching the backing slice.
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j = 0; j < c; j++ {
			// Numeric policy: ingestion rejects NaN/Inf outright.
			if scalar.IsNaN(rows[i][j]) || scalar.IsInf(rows[i][j]) {
				return nil, ErrNaNInf
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// Stride returns the flat row-to-row distance of the backing slice.
// Complexity: O(1).
func (m *Dense[T]) Stride() int {
	return m.stride
}

// IsContiguous reports whether the matrix occupies its backing slice without
// row gaps (stride == cols). This is the layout query the factorization
// entry points use to decide whether the backend can address the buffer.
// Complexity: O(1).
func (m *Dense[T]) IsContiguous() bool {
	return m.stride == m.c
}

// RawData exposes the flat backing slice starting at row 0, column 0.
// The slice is shared, not copied: writes through it are visible to the
// matrix (and to the parent, for Submatrix views). Interpret it together
// with Stride(); only the first (Rows()-1)*Stride()+Cols() elements belong
// to this matrix.
// Complexity: O(1).
func (m *Dense[T]) RawData() []T {
	return m.data
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.stride + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf("At", row, col, err)
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep, contiguous copy of the matrix. Cloning a strided
// view compacts it: the copy always has stride == cols and owns its buffer
// exclusively, so it is the canonical way to detach from a shared backing
// slice before a consuming operation.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	// Allocate a fresh contiguous slice
	out := make([]T, m.r*m.c)
	// Copy row by row: views may carry row gaps the copy must not inherit
	var i int
	for i = 0; i < m.r; i++ {
		copy(out[i*m.c:(i+1)*m.c], m.data[i*m.stride:i*m.stride+m.c])
	}

	return &Dense[T]{r: m.r, c: m.c, stride: m.c, data: out}
}

// Submatrix returns a rows×cols view of m starting at (r0, c0), sharing the
// backing slice with the parent (no copy). The view carries the parent's
// stride; unless it spans full parent rows it is therefore non-contiguous
// and IsContiguous reports false.
// Stage 1 (Validate): block must lie inside the parent.
// Stage 2 (Execute): reslice the parent buffer at the block origin.
// Errors: ErrBadShape (non-positive block), ErrOutOfRange (block escapes parent).
// Complexity: O(1); no allocation beyond the header.
func (m *Dense[T]) Submatrix(r0, c0, rows, cols int) (*Dense[T], error) {
	// Validate requested block shape
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Validate block placement inside the parent
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, ErrOutOfRange
	}

	// Reslice at the block origin; the last row needs only cols elements.
	start := r0*m.stride + c0
	end := start + (rows-1)*m.stride + cols

	return &Dense[T]{r: rows, c: cols, stride: m.stride, data: m.data[start:end]}, nil
}

// EqualApprox reports whether a and b have identical shape and elementwise
// |a[i,j]-b[i,j]| ≤ tol. Nil inputs are never equal.
// Complexity: O(r*c).
func EqualApprox[T scalar.Scalar](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil {
		return false
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if scalar.Abs(a.data[i*a.stride+j]-b.data[i*b.stride+j]) > tol {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.stride+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
