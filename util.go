package svg2vd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// snap rounds values within Epsilon of -1, 0, or 1, which removes the noise of trigonometric functions at multiples of 90 degrees.
func snap(f float64) float64 {
	if equal(f, 0.0) {
		return 0.0
	} else if equal(f, 1.0) {
		return 1.0
	} else if equal(f, -1.0) {
		return -1.0
	}
	return f
}

////////////////////////////////////////////////////////////////

// dec is a path data value. Values are written at single precision, which is what VectorDrawable stores, so that integral values lose their fraction and transformation noise disappears.
type dec float64

func (f dec) String() string {
	return string(f.AppendTo(nil, false))
}

// AppendTo appends the decimal representation, optionally minified so that leading zeros are dropped (0.5 becomes .5).
func (f dec) AppendTo(b []byte, minified bool) []byte {
	if math.Abs(float64(f)) < Epsilon {
		return append(b, '0')
	}
	n := len(b)
	if f32 := float32(f); math.IsInf(float64(f32), 0) {
		b = strconv.AppendFloat(b, float64(f), 'f', -1, 64)
	} else {
		b = strconv.AppendFloat(b, float64(f32), 'f', -1, 32)
	}
	if minified {
		num := minify.Decimal(b[n:], 0)
		b = append(b[:n], num...)
	}
	return b
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Rotate(30).Translate(20,0) will first translate 20 points horizontally and then rotate 30 degrees counter clockwise.
//
// In terms of the SVG coefficients (a,b,c,d,e,f) the matrix is laid out as {{a, c, e}, {b, d, f}}, so that (x,y) maps to (a*x + c*y + e, b*x + d*y + f).
type Matrix [2][3]float64

// Identity is the identity affine transformation matrix, i.e. transforms any point to itself.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// NewMatrix returns the matrix for the SVG coefficients matrix(a,b,c,d,e,f).
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
	}
}

// Coefficients returns the SVG coefficients (a,b,c,d,e,f).
func (m Matrix) Coefficients() (float64, float64, float64, float64, float64, float64) {
	return m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]
}

// Mul multiplies the current matrix by the given matrix, i.e. combine transformations.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot returns the dot product between the matrix and the given vector, i.e. applying the transformation.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Linear returns the matrix without its translation, which is how displacements transform.
func (m Matrix) Linear() Matrix {
	m[0][2], m[1][2] = 0.0, 0.0
	return m
}

// Translate adds a translation in x and y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate adds a rotation transformation with rot in degree counter clockwise.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	sintheta, costheta = snap(sintheta), snap(costheta)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// RotateAt adds a rotation transformation about (x,y) with rot in degree counter clockwise.
func (m Matrix) RotateAt(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

// Scale adds a scaling transformation in sx and sy. When scale is negative it will flip those axes.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{sx, 0.0, 0.0},
		{0.0, sy, 0.0},
	})
}

// Shear adds a shear transformation with sx the horizontal shear and sy the vertical shear.
func (m Matrix) Shear(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{1.0, sx, 0.0},
		{sy, 1.0, 0.0},
	})
}

// Det returns the matrix determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// IsIdentity is true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Equals returns true if both matrices are equal with a tolerance of Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if !equal(m[i][j], q[i][j]) {
				return false
			}
		}
	}
	return true
}

// IsTranslation is true if the matrix consists of only translational components, i.e. no rotation, scaling, or shear.
func (m Matrix) IsTranslation() bool {
	return m[0][0] == 1.0 && m[0][1] == 0.0 && m[1][0] == 0.0 && m[1][1] == 1.0
}

// String returns the SVG representation matrix(a,b,c,d,e,f).
func (m Matrix) String() string {
	a, b, c, d, e, f := m.Coefficients()
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", dec(a), dec(b), dec(c), dec(d), dec(e), dec(f))
}
