package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// BinaryField represents a binary extension field GF(2^n). Elements are
// polynomials over GF(2) reduced modulo an irreducible polynomial, stored
// as big.Int bit patterns.
type BinaryField struct {
	n           int      // field extension degree
	irreducible *big.Int // irreducible polynomial
}

// NewBinaryField creates a new binary field GF(2^n) from an irreducible
// polynomial of degree n, given as a big.Int whose bits are the polynomial
// coefficients. It panics if the polynomial has degree below 1.
func NewBinaryField(irreducible *big.Int) *BinaryField {
	n := irreducible.BitLen() - 1
	if n < 1 {
		panic("irreducible polynomial must have degree at least 1")
	}
	return &BinaryField{
		n:           n,
		irreducible: new(big.Int).Set(irreducible),
	}
}

// NewBinaryFieldGF2_8 creates GF(2^8) with irreducible polynomial
// x^8 + x^4 + x^3 + x + 1
func NewBinaryFieldGF2_8() *BinaryField {
	// x^8 + x^4 + x^3 + x + 1 = 0x11B
	return NewBinaryField(big.NewInt(0x11B))
}

// NewBinaryFieldGF2_32 creates GF(2^32) with irreducible polynomial
// x^32 + x^7 + x^3 + x^2 + 1
func NewBinaryFieldGF2_32() *BinaryField {
	// x^32 + x^7 + x^3 + x^2 + 1 = 0x10000008D
	return NewBinaryField(big.NewInt(0x10000008D))
}

// BinaryFieldElement represents an element in a binary field
type BinaryFieldElement struct {
	value *big.Int     // polynomial representation
	field *BinaryField // reference to parent field
}

// Field interface implementation for BinaryField

// Zero returns the additive identity element (0)
func (f *BinaryField) Zero() Element {
	return &BinaryFieldElement{
		value: big.NewInt(0),
		field: f,
	}
}

// One returns the multiplicative identity element (1)
func (f *BinaryField) One() Element {
	return &BinaryFieldElement{
		value: big.NewInt(1),
		field: f,
	}
}

// Random returns a uniformly random field element
func (f *BinaryField) Random() (Element, error) {
	max := new(big.Int).Lsh(big.NewInt(1), uint(f.n))
	val, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	return &BinaryFieldElement{
		value: val,
		field: f,
	}, nil
}

// FromBytes creates a field element from byte array
func (f *BinaryField) FromBytes(data []byte) Element {
	val := new(big.Int).SetBytes(data)
	// Ensure the value fits in the field
	fieldMax := new(big.Int).Lsh(big.NewInt(1), uint(f.n))
	val.Mod(val, fieldMax)
	return &BinaryFieldElement{
		value: val,
		field: f,
	}
}

// Order returns the order (size) of the field, 2^n
func (f *BinaryField) Order() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(f.n))
}

// reduce performs polynomial reduction modulo the irreducible polynomial
func (f *BinaryField) reduce(val *big.Int) *big.Int {
	result := new(big.Int).Set(val)

	for result.BitLen() > f.n {
		// XOR with the irreducible polynomial aligned to the highest bit
		shift := result.BitLen() - f.irreducible.BitLen()
		temp := new(big.Int).Lsh(f.irreducible, uint(shift))
		result.Xor(result, temp)
	}

	return result
}

// polyMul performs carry-less polynomial multiplication over GF(2)
func polyMul(a, b *big.Int) *big.Int {
	result := big.NewInt(0)
	shifted := new(big.Int).Set(a)
	rest := new(big.Int).Set(b)

	for rest.Sign() > 0 {
		if rest.Bit(0) == 1 {
			result.Xor(result, shifted)
		}
		shifted.Lsh(shifted, 1)
		rest.Rsh(rest, 1)
	}

	return result
}

// polyDivMod performs polynomial division over GF(2)
func polyDivMod(a, b *big.Int) (*big.Int, *big.Int) {
	if b.Sign() == 0 {
		panic("division by zero polynomial")
	}

	quotient := big.NewInt(0)
	remainder := new(big.Int).Set(a)

	bDegree := b.BitLen() - 1

	for remainder.BitLen() > bDegree {
		shift := remainder.BitLen() - 1 - bDegree

		quotient.SetBit(quotient, shift, 1)
		temp := new(big.Int).Lsh(b, uint(shift))
		remainder.Xor(remainder, temp)
	}

	return quotient, remainder
}

// BinaryFieldElement methods implementing Element interface

// Add returns e + b in the field (XOR operation)
func (e *BinaryFieldElement) Add(b Element) Element {
	other, ok := b.(*BinaryFieldElement)
	if !ok {
		panic("incompatible field elements")
	}

	result := new(big.Int).Xor(e.value, other.value)

	return &BinaryFieldElement{
		value: result,
		field: e.field,
	}
}

// Sub returns e - b in the field (same as Add in GF(2^n))
func (e *BinaryFieldElement) Sub(b Element) Element {
	return e.Add(b)
}

// Neg returns the additive inverse of e, which is e itself in GF(2^n)
func (e *BinaryFieldElement) Neg() Element {
	return e.Clone()
}

// Mul returns e * b in the field using polynomial multiplication with
// reduction by the irreducible polynomial
func (e *BinaryFieldElement) Mul(b Element) Element {
	other, ok := b.(*BinaryFieldElement)
	if !ok {
		panic("incompatible field elements")
	}

	product := polyMul(e.value, other.value)

	return &BinaryFieldElement{
		value: e.field.reduce(product),
		field: e.field,
	}
}

// Inv returns the multiplicative inverse of e using the extended Euclidean
// algorithm over GF(2)[x]
func (e *BinaryFieldElement) Inv() Element {
	if e.IsZero() {
		panic("zero element is not invertible")
	}

	old_r := new(big.Int).Set(e.field.irreducible)
	r := new(big.Int).Set(e.value)
	old_s := big.NewInt(0)
	s := big.NewInt(1)

	for r.Sign() > 0 {
		q, remainder := polyDivMod(old_r, r)

		old_r.Set(r)
		r.Set(remainder)

		old_s, s = s, new(big.Int).Xor(old_s, polyMul(q, s))
	}

	return &BinaryFieldElement{
		value: e.field.reduce(old_s),
		field: e.field,
	}
}

// IsZero returns true if e equals zero
func (e *BinaryFieldElement) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal returns true if e equals b
func (e *BinaryFieldElement) Equal(b Element) bool {
	other, ok := b.(*BinaryFieldElement)
	if !ok {
		return false
	}

	return e.value.Cmp(other.value) == 0
}

// Clone returns a copy of e
func (e *BinaryFieldElement) Clone() Element {
	return &BinaryFieldElement{
		value: new(big.Int).Set(e.value),
		field: e.field,
	}
}

// String returns the string representation of e
func (e *BinaryFieldElement) String() string {
	return fmt.Sprintf("0x%x", e.value)
}

// Bytes returns the big-endian byte representation of e
func (e *BinaryFieldElement) Bytes() []byte {
	return e.value.Bytes()
}

// BigInt returns the underlying big.Int value
func (e *BinaryFieldElement) BigInt() *big.Int {
	return new(big.Int).Set(e.value)
}
