package field

import (
	"crypto/rand"
	"math/big"
)

// RationalField represents the field of rational numbers. Arithmetic is
// exact over big.Rat, with no rounding at any operand size, which makes it
// the reference field for checking elimination results by hand.
type RationalField struct{}

// NewRationalField creates the field of rational numbers
func NewRationalField() *RationalField {
	return &RationalField{}
}

// RationalFieldElement represents a rational number
type RationalFieldElement struct {
	value *big.Rat
}

// Field interface implementation for RationalField

// Zero returns the additive identity element (0)
func (f *RationalField) Zero() Element {
	return &RationalFieldElement{value: big.NewRat(0, 1)}
}

// One returns the multiplicative identity element (1)
func (f *RationalField) One() Element {
	return &RationalFieldElement{value: big.NewRat(1, 1)}
}

// Random returns a random element with numerator below 2^32 and denominator
// in [1, 2^16]
func (f *RationalField) Random() (Element, error) {
	num, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 32))
	if err != nil {
		return nil, err
	}
	denom, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 16))
	if err != nil {
		return nil, err
	}
	denom.Add(denom, big.NewInt(1))

	value := new(big.Rat).SetFrac(num, denom)
	return &RationalFieldElement{value: value}, nil
}

// FromBytes creates an integer-valued element from byte array
func (f *RationalField) FromBytes(data []byte) Element {
	val := new(big.Int).SetBytes(data)
	return &RationalFieldElement{value: new(big.Rat).SetInt(val)}
}

// FromRat creates the element num/denom. It panics if denom is zero.
func (f *RationalField) FromRat(num, denom int64) Element {
	return &RationalFieldElement{value: big.NewRat(num, denom)}
}

// RationalFieldElement methods implementing Element interface

// Add returns e + b
func (e *RationalFieldElement) Add(b Element) Element {
	other, ok := b.(*RationalFieldElement)
	if !ok {
		panic("incompatible field elements")
	}
	return &RationalFieldElement{value: new(big.Rat).Add(e.value, other.value)}
}

// Sub returns e - b
func (e *RationalFieldElement) Sub(b Element) Element {
	other, ok := b.(*RationalFieldElement)
	if !ok {
		panic("incompatible field elements")
	}
	return &RationalFieldElement{value: new(big.Rat).Sub(e.value, other.value)}
}

// Neg returns -e
func (e *RationalFieldElement) Neg() Element {
	return &RationalFieldElement{value: new(big.Rat).Neg(e.value)}
}

// Mul returns e * b
func (e *RationalFieldElement) Mul(b Element) Element {
	other, ok := b.(*RationalFieldElement)
	if !ok {
		panic("incompatible field elements")
	}
	return &RationalFieldElement{value: new(big.Rat).Mul(e.value, other.value)}
}

// Inv returns the multiplicative inverse of e
func (e *RationalFieldElement) Inv() Element {
	if e.IsZero() {
		panic("zero element is not invertible")
	}
	return &RationalFieldElement{value: new(big.Rat).Inv(e.value)}
}

// IsZero returns true if e equals zero
func (e *RationalFieldElement) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal returns true if e equals b
func (e *RationalFieldElement) Equal(b Element) bool {
	other, ok := b.(*RationalFieldElement)
	if !ok {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// Clone returns a copy of e
func (e *RationalFieldElement) Clone() Element {
	return &RationalFieldElement{value: new(big.Rat).Set(e.value)}
}

// String returns the string representation of e, without a denominator for
// integer values
func (e *RationalFieldElement) String() string {
	return e.value.RatString()
}

// Rat returns the underlying big.Rat value
func (e *RationalFieldElement) Rat() *big.Rat {
	return new(big.Rat).Set(e.value)
}
