package svg2vd

import (
	"fmt"
	"math"
)

// Rect is a rectangle in 2D defined by a position and its width and height.
type Rect struct {
	X, Y, W, H float64
}

// Add returns a rect that encompasses both the current rect and the given rect.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AddPoint returns a rect that encompasses both the current rect and the given point.
func (r Rect) AddPoint(p Point) Rect {
	return r.Add(Rect{p.X, p.Y, 0.0, 0.0})
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v; %v]--[%v; %v]", dec(r.X), dec(r.Y), dec(r.X+r.W), dec(r.Y+r.H))
}

////////////////////////////////////////////////////////////////

// arcToCenter changes between the SVG arc format to the center and angles format. It returns the center, the radii corrected to reach the end point, and the start and end angles in degrees.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if x1 == x2 && y1 == y2 || rx == 0.0 || ry == 0.0 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2.0 + math.Sin(rot)*(y1-y2)/2.0
	y1p := -math.Sin(rot)*(x1-x2)/2.0 + math.Cos(rot)*(y1-y2)/2.0

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2.0
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos(max(-1.0, min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && delta > 0.0 {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, rx, ry, theta, theta + delta
}

// angleBetween is true when theta is in the range [lower,upper] modulo 360 degrees. The bounds may be in either order.
func angleBetween(theta, lower, upper float64) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	theta = lower + math.Mod(math.Mod(theta-lower, 360.0)+360.0, 360.0)
	return theta <= upper+Epsilon
}

// ellipsePos returns the position on the ellipse at angle theta in degrees.
func ellipsePos(cx, cy, rx, ry, rot, theta float64) Point {
	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	sintheta, costheta := math.Sincos(theta * math.Pi / 180.0)
	return Point{
		cx + rx*costheta*cosphi - ry*sintheta*sinphi,
		cy + rx*costheta*sinphi + ry*sintheta*cosphi,
	}
}

// arcBounds returns the bounding box of an arc from start to end, including its extreme points.
func arcBounds(start Point, rx, ry, rot float64, large, sweep bool, end Point) Rect {
	r := Rect{start.X, start.Y, 0.0, 0.0}.AddPoint(end)
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	if rx == 0.0 || ry == 0.0 || theta0 == theta1 {
		return r
	}

	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	tx := math.Atan2(-ry*sinphi, rx*cosphi) * 180.0 / math.Pi
	ty := math.Atan2(ry*cosphi, rx*sinphi) * 180.0 / math.Pi
	for _, theta := range []float64{tx, tx + 180.0, ty, ty + 180.0} {
		if angleBetween(theta, theta0, theta1) {
			r = r.AddPoint(ellipsePos(cx, cy, rx, ry, rot, theta))
		}
	}
	return r
}
