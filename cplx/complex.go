package cplx

import "math"

// Complex is a complex number with float32 real and imaginary parts.
type Complex complex64

// I is the imaginary unit.
const I Complex = 1i

// New returns re + im·i.
func New(re, im float32) Complex { return Complex(complex(re, im)) }

// FromReal returns r + 0i.
func FromReal(r float32) Complex { return New(r, 0) }

func (z Complex) Real() float32 { return real(z) }
func (z Complex) Imag() float32 { return imag(z) }

// Products are converted to float32 before they are summed. The conversion
// forces rounding, so the compiler cannot fuse them into FMA instructions and
// every platform computes the same bits.

// Dot treats z and o as 2-vectors and returns their inner product.
func (z Complex) Dot(o Complex) float32 {
	return float32(real(z)*real(o)) + float32(imag(z)*imag(o))
}

func (z Complex) LengthSquared() float32 {
	return float32(real(z)*real(z)) + float32(imag(z)*imag(z))
}

func (z Complex) Length() float32 {
	return float32(math.Sqrt(float64(z.LengthSquared())))
}

// Angle returns the argument of z in radians, in (-Pi, Pi].
func (z Complex) Angle() float32 {
	return float32(math.Atan2(float64(imag(z)), float64(real(z))))
}

// Equal reports component-wise IEEE equality. It matches z == o.
func (z Complex) Equal(o Complex) bool {
	return real(z) == real(o) && imag(z) == imag(o)
}

// EqualReal reports whether z is the real number r.
func (z Complex) EqualReal(r float32) bool {
	return real(z) == r && imag(z) == 0
}

func (z Complex) Add(o Complex) Complex { return New(real(z)+real(o), imag(z)+imag(o)) }
func (z Complex) Sub(o Complex) Complex { return New(real(z)-real(o), imag(z)-imag(o)) }

func (z Complex) Mul(o Complex) Complex {
	return New(
		float32(real(z)*real(o))-float32(imag(z)*imag(o)),
		float32(real(z)*imag(o))+float32(imag(z)*real(o)),
	)
}

// Div divides component-wise by |o|². A zero o is not checked; the result
// carries whatever Inf or NaN the float division produces.
func (z Complex) Div(o Complex) Complex {
	d := o.LengthSquared()
	return New(
		(float32(real(z)*real(o))+float32(imag(z)*imag(o)))/d,
		(float32(imag(z)*real(o))-float32(real(z)*imag(o)))/d,
	)
}

func (z Complex) Neg() Complex { return New(-real(z), -imag(z)) }

// Swap exchanges the components: (re, im) becomes (im, re).
// It is not the conjugate.
func (z Complex) Swap() Complex { return New(imag(z), real(z)) }

// AddReal and SubReal only touch the real part.
func (z Complex) AddReal(s float32) Complex { return New(real(z)+s, imag(z)) }
func (z Complex) SubReal(s float32) Complex { return New(real(z)-s, imag(z)) }

func (z Complex) MulReal(s float32) Complex { return New(real(z)*s, imag(z)*s) }
func (z Complex) DivReal(s float32) Complex { return New(real(z)/s, imag(z)/s) }

func (z *Complex) AddAssign(o Complex) { *z = z.Add(o) }
func (z *Complex) SubAssign(o Complex) { *z = z.Sub(o) }

// MulAssign and DivAssign read both components of o before storing, so
// z.MulAssign(*z) squares z.
func (z *Complex) MulAssign(o Complex) { *z = z.Mul(o) }
func (z *Complex) DivAssign(o Complex) { *z = z.Div(o) }

func (z *Complex) AddRealAssign(s float32) { *z = z.AddReal(s) }
func (z *Complex) SubRealAssign(s float32) { *z = z.SubReal(s) }
func (z *Complex) MulRealAssign(s float32) { *z = z.MulReal(s) }
func (z *Complex) DivRealAssign(s float32) { *z = z.DivReal(s) }
