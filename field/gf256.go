package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GF256 represents GF(2^8) with table-driven arithmetic. All products and
// inverses are precomputed at construction from a reduction polynomial and
// a generator, making it far faster than BinaryField for byte-oriented
// workloads such as erasure coding.
type GF256 struct {
	poly      uint16 // reduction polynomial including the x^8 term
	generator byte

	expTbl [255]byte      // expTbl[i] = generator^i
	logTbl [256]byte      // logTbl[x] = i such that generator^i = x, x != 0
	mulTbl [256][256]byte // mulTbl[a][b] = a * b
	invTbl [256]byte      // invTbl[x] = x^-1, x != 0
}

// NewGF256 creates a GF(2^8) field from a degree-8 reduction polynomial and
// a generator of the multiplicative group. It returns an error if the
// polynomial does not have degree 8 or if the generator does not cycle
// through all 255 non-zero elements, which also rules out reducible
// polynomials.
func NewGF256(poly uint16, generator byte) (*GF256, error) {
	if poly&0x100 == 0 || poly >= 0x200 {
		return nil, fmt.Errorf("reduction polynomial 0x%x must have degree 8", poly)
	}
	if generator == 0 {
		return nil, fmt.Errorf("generator must be non-zero")
	}

	f := &GF256{poly: poly, generator: generator}

	var seen [256]bool
	x := generator
	f.expTbl[0] = 1
	f.logTbl[1] = 0
	for i := 1; i < 255; i++ {
		if seen[x] || x == 1 {
			return nil, fmt.Errorf("0x%02x does not generate the multiplicative group of GF(2^8)", generator)
		}
		seen[x] = true
		f.expTbl[i] = x
		f.logTbl[x] = byte(i)
		x = mulGF256(x, generator, poly)
	}
	if x != 1 {
		return nil, fmt.Errorf("0x%02x does not generate the multiplicative group of GF(2^8)", generator)
	}

	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			logSum := (int(f.logTbl[a]) + int(f.logTbl[b])) % 255
			f.mulTbl[a][b] = f.expTbl[logSum]
		}
	}
	for a := 1; a < 256; a++ {
		f.invTbl[a] = f.expTbl[(255-int(f.logTbl[a]))%255]
	}

	return f, nil
}

// NewDefaultGF256 creates GF(2^8) with the reduction polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D) and generator 2, the parameters most
// erasure-code implementations use.
func NewDefaultGF256() *GF256 {
	f, err := NewGF256(0x11D, 0x02)
	if err != nil {
		panic(err)
	}
	return f
}

// mulGF256 multiplies two elements bit by bit, reducing on overflow. Used
// only to build the tables.
func mulGF256(a, b byte, poly uint16) byte {
	var prod uint16
	aa := uint16(a)
	for bb := uint16(b); bb > 0; bb >>= 1 {
		if bb&1 == 1 {
			prod ^= aa
		}
		aa <<= 1
		if aa&0x100 != 0 {
			aa ^= poly
		}
	}
	return byte(prod)
}

// GF256Element represents an element in a GF256 field
type GF256Element struct {
	value byte
	field *GF256
}

// Field interface implementation for GF256

// Zero returns the additive identity element (0)
func (f *GF256) Zero() Element {
	return &GF256Element{value: 0, field: f}
}

// One returns the multiplicative identity element (1)
func (f *GF256) One() Element {
	return &GF256Element{value: 1, field: f}
}

// Random returns a uniformly random field element
func (f *GF256) Random() (Element, error) {
	var buf [1]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, err
	}
	return &GF256Element{value: buf[0], field: f}, nil
}

// FromBytes creates a field element from byte array, reduced modulo 256
func (f *GF256) FromBytes(data []byte) Element {
	if len(data) == 0 {
		return f.Zero()
	}
	return &GF256Element{value: data[len(data)-1], field: f}
}

// FromByte creates a field element from a single byte
func (f *GF256) FromByte(v byte) Element {
	return &GF256Element{value: v, field: f}
}

// Exp returns generator^i. Indices may be any non-negative integer; the
// exponent is taken modulo 255.
func (f *GF256) Exp(i int) Element {
	return &GF256Element{value: f.expTbl[i%255], field: f}
}

// Order returns the order (size) of the field, 256
func (f *GF256) Order() *big.Int {
	return big.NewInt(256)
}

// GF256Element methods implementing Element interface

// Add returns e + b in the field (XOR operation)
func (e *GF256Element) Add(b Element) Element {
	other, ok := b.(*GF256Element)
	if !ok {
		panic("incompatible field elements")
	}
	return &GF256Element{value: e.value ^ other.value, field: e.field}
}

// Sub returns e - b in the field (same as Add in GF(2^8))
func (e *GF256Element) Sub(b Element) Element {
	return e.Add(b)
}

// Neg returns the additive inverse of e, which is e itself in GF(2^8)
func (e *GF256Element) Neg() Element {
	return e.Clone()
}

// Mul returns e * b in the field via table lookup
func (e *GF256Element) Mul(b Element) Element {
	other, ok := b.(*GF256Element)
	if !ok {
		panic("incompatible field elements")
	}
	return &GF256Element{value: e.field.mulTbl[e.value][other.value], field: e.field}
}

// Inv returns the multiplicative inverse of e
func (e *GF256Element) Inv() Element {
	if e.value == 0 {
		panic("zero element is not invertible")
	}
	return &GF256Element{value: e.field.invTbl[e.value], field: e.field}
}

// IsZero returns true if e equals zero
func (e *GF256Element) IsZero() bool {
	return e.value == 0
}

// Equal returns true if e equals b
func (e *GF256Element) Equal(b Element) bool {
	other, ok := b.(*GF256Element)
	if !ok {
		return false
	}
	return e.value == other.value
}

// Clone returns a copy of e
func (e *GF256Element) Clone() Element {
	return &GF256Element{value: e.value, field: e.field}
}

// String returns the string representation of e
func (e *GF256Element) String() string {
	return fmt.Sprintf("0x%02x", e.value)
}

// Byte returns the byte value of e
func (e *GF256Element) Byte() byte {
	return e.value
}
