// Package field defines the element and field contract used by the matrix
// engine, together with concrete implementations: prime fields, binary
// extension fields GF(2^n), a table-driven GF(2^8), and the rational field.
package field

// Element represents an element of a field. Elements are immutable: every
// operation returns a new element and never mutates its receiver or
// operands, so elements may be shared freely between matrices and clones.
type Element interface {
	// Add returns a + b in the field
	Add(b Element) Element

	// Sub returns a - b in the field
	Sub(b Element) Element

	// Neg returns the additive inverse -a in the field
	Neg() Element

	// Mul returns a * b in the field
	Mul(b Element) Element

	// Inv returns the multiplicative inverse of a in the field.
	// It panics if a is the zero element.
	Inv() Element

	// IsZero returns true if the element is the zero element
	IsZero() bool

	// Equal returns true if two elements are equal. Equality is exact,
	// never approximate.
	Equal(b Element) bool

	// Clone returns a copy of the element
	Clone() Element

	// String returns the string representation of the element
	String() string
}

// Field represents a field: a set of values with exact addition and
// multiplication, where every element has an additive inverse and every
// non-zero element has a multiplicative inverse. Implementations must be
// safe for concurrent use; all their internal state is fixed at
// construction.
type Field interface {
	// Zero returns the zero element of the field
	Zero() Element

	// One returns the one element of the field
	One() Element

	// Random returns a random element of the field
	Random() (Element, error)

	// FromBytes creates a field element from the big-endian byte
	// representation of a non-negative integer
	FromBytes(data []byte) Element
}
