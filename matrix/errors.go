package matrix

import "errors"

// Sentinel errors for the matrix package. Contract violations (bad
// dimensions, bad indices, missing arguments, unset cells) are raised via
// panic with one of these values, so recovery sites can match them with
// errors.Is. ErrSingular is returned rather than panicked: singularity is a
// property of the data, not a mistake in the call.
var (
	// ErrInvalidDimensions is raised when constructing a matrix with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be positive")

	// ErrIndexOutOfRange is raised when a row or column index falls
	// outside the matrix extent.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrIncompatibleDimensions is raised when the shapes of two matrices
	// do not fit the requested operation.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions")

	// ErrMissingArgument is raised when a required field, matrix or
	// element argument is nil.
	ErrMissingArgument = errors.New("matrix: missing argument")

	// ErrUnsetElement is raised when reading a cell that has not been
	// assigned a value.
	ErrUnsetElement = errors.New("matrix: element is unset")

	// ErrSingular is returned when inverting a matrix that has no
	// inverse.
	ErrSingular = errors.New("matrix: matrix is singular")
)
