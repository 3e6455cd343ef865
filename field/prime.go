package field

import (
	"crypto/rand"
	"math/big"
)

// PrimeField represents a prime finite field F_p
type PrimeField struct {
	p *big.Int // the prime modulus
}

// NewPrimeField creates a new prime field
func NewPrimeField(p *big.Int) *PrimeField {
	return &PrimeField{p: new(big.Int).Set(p)}
}

// ristretto255GroupOrder is the prime order of the ristretto255 group,
// l = 2^252 + 27742317777372353535851937790883648493.
var ristretto255GroupOrder, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// NewRistretto255ScalarField creates the scalar field of the ristretto255
// group, i.e. the prime field of its group order. Matrices over this field
// operate on scalars compatible with ristretto255 point multiplication.
func NewRistretto255ScalarField() *PrimeField {
	return NewPrimeField(ristretto255GroupOrder)
}

// PrimeFieldElement represents an element in a prime field
type PrimeFieldElement struct {
	value *big.Int    // element value in range [0, p-1]
	field *PrimeField // reference to parent field
}

// Field interface implementation for PrimeField

// Zero returns the additive identity element (0)
func (f *PrimeField) Zero() Element {
	return &PrimeFieldElement{
		value: big.NewInt(0),
		field: f,
	}
}

// One returns the multiplicative identity element (1)
func (f *PrimeField) One() Element {
	return &PrimeFieldElement{
		value: big.NewInt(1),
		field: f,
	}
}

// Random returns a uniformly random field element
func (f *PrimeField) Random() (Element, error) {
	val, err := rand.Int(rand.Reader, f.p)
	if err != nil {
		return nil, err
	}
	return &PrimeFieldElement{
		value: val,
		field: f,
	}, nil
}

// FromBytes creates a field element from byte array, reduced modulo p
func (f *PrimeField) FromBytes(data []byte) Element {
	val := new(big.Int).SetBytes(data)
	val.Mod(val, f.p)
	return &PrimeFieldElement{
		value: val,
		field: f,
	}
}

// Order returns the order (size) of the field, which is p for a prime field
func (f *PrimeField) Order() *big.Int {
	return new(big.Int).Set(f.p)
}

// PrimeFieldElement methods implementing Element interface

// Add returns e + b in the field
func (e *PrimeFieldElement) Add(b Element) Element {
	other, ok := b.(*PrimeFieldElement)
	if !ok {
		panic("incompatible field elements")
	}

	result := new(big.Int).Add(e.value, other.value)
	result.Mod(result, e.field.p)

	return &PrimeFieldElement{
		value: result,
		field: e.field,
	}
}

// Sub returns e - b in the field
func (e *PrimeFieldElement) Sub(b Element) Element {
	other, ok := b.(*PrimeFieldElement)
	if !ok {
		panic("incompatible field elements")
	}

	result := new(big.Int).Sub(e.value, other.value)
	result.Mod(result, e.field.p)

	return &PrimeFieldElement{
		value: result,
		field: e.field,
	}
}

// Neg returns the additive inverse -e in the field
func (e *PrimeFieldElement) Neg() Element {
	result := new(big.Int).Neg(e.value)
	result.Mod(result, e.field.p)

	return &PrimeFieldElement{
		value: result,
		field: e.field,
	}
}

// Mul returns e * b in the field
func (e *PrimeFieldElement) Mul(b Element) Element {
	other, ok := b.(*PrimeFieldElement)
	if !ok {
		panic("incompatible field elements")
	}

	result := new(big.Int).Mul(e.value, other.value)
	result.Mod(result, e.field.p)

	return &PrimeFieldElement{
		value: result,
		field: e.field,
	}
}

// Inv returns the multiplicative inverse of e
func (e *PrimeFieldElement) Inv() Element {
	inv := new(big.Int).ModInverse(e.value, e.field.p)
	if inv == nil {
		panic("element is not invertible")
	}

	return &PrimeFieldElement{
		value: inv,
		field: e.field,
	}
}

// IsZero returns true if e equals zero
func (e *PrimeFieldElement) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal returns true if e equals b
func (e *PrimeFieldElement) Equal(b Element) bool {
	other, ok := b.(*PrimeFieldElement)
	if !ok {
		return false
	}

	return e.value.Cmp(other.value) == 0
}

// Clone returns a copy of e
func (e *PrimeFieldElement) Clone() Element {
	return &PrimeFieldElement{
		value: new(big.Int).Set(e.value),
		field: e.field,
	}
}

// String returns the string representation of e
func (e *PrimeFieldElement) String() string {
	return e.value.String()
}

// Bytes returns the big-endian byte representation of e
func (e *PrimeFieldElement) Bytes() []byte {
	return e.value.Bytes()
}

// BigInt returns the underlying big.Int value
func (e *PrimeFieldElement) BigInt() *big.Int {
	return new(big.Int).Set(e.value)
}
