package svg2vd

import "math"

// PathBuilder builds path data text command by command. Values are separated by commas.
type PathBuilder struct {
	b []byte
}

func (pb *PathBuilder) cmd(cmd Command, vals ...float64) *PathBuilder {
	pb.b = append(pb.b, byte(cmd))
	for i, v := range vals {
		if 0 < i {
			pb.b = append(pb.b, ',')
		}
		pb.b = dec(v).AppendTo(pb.b, false)
	}
	return pb
}

func flag(f bool) float64 {
	if f {
		return 1.0
	}
	return 0.0
}

// MoveTo starts a new subpath at (x,y).
func (pb *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	return pb.cmd(MoveToCmd, x, y)
}

// RelMoveTo starts a new subpath at (dx,dy) from the current point.
func (pb *PathBuilder) RelMoveTo(dx, dy float64) *PathBuilder {
	return pb.cmd(MoveToCmd.Rel(), dx, dy)
}

// LineTo adds a line to (x,y).
func (pb *PathBuilder) LineTo(x, y float64) *PathBuilder {
	return pb.cmd(LineToCmd, x, y)
}

// RelLineTo adds a line to (dx,dy) from the current point.
func (pb *PathBuilder) RelLineTo(dx, dy float64) *PathBuilder {
	return pb.cmd(LineToCmd.Rel(), dx, dy)
}

// HLineTo adds a horizontal line to x.
func (pb *PathBuilder) HLineTo(x float64) *PathBuilder {
	return pb.cmd(HLineToCmd, x)
}

// RelHLineTo adds a horizontal line of length dx.
func (pb *PathBuilder) RelHLineTo(dx float64) *PathBuilder {
	return pb.cmd(HLineToCmd.Rel(), dx)
}

// VLineTo adds a vertical line to y.
func (pb *PathBuilder) VLineTo(y float64) *PathBuilder {
	return pb.cmd(VLineToCmd, y)
}

// RelVLineTo adds a vertical line of length dy.
func (pb *PathBuilder) RelVLineTo(dy float64) *PathBuilder {
	return pb.cmd(VLineToCmd.Rel(), dy)
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the rotation in degrees of the x-axis, to (x,y).
func (pb *PathBuilder) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *PathBuilder {
	return pb.cmd(ArcToCmd, rx, ry, rot, flag(large), flag(sweep), x, y)
}

// RelArcTo adds an elliptical arc to (dx,dy) from the current point.
func (pb *PathBuilder) RelArcTo(rx, ry, rot float64, large, sweep bool, dx, dy float64) *PathBuilder {
	return pb.cmd(ArcToCmd.Rel(), rx, ry, rot, flag(large), flag(sweep), dx, dy)
}

// Close closes the subpath.
func (pb *PathBuilder) Close() *PathBuilder {
	return pb.cmd(CloseCmd)
}

// RelClose closes the subpath using the lower case command.
func (pb *PathBuilder) RelClose() *PathBuilder {
	return pb.cmd(CloseCmd.Rel())
}

// String returns the path data.
func (pb *PathBuilder) String() string {
	return string(pb.b)
}

////////////////////////////////////////////////////////////////

// Rectangle returns the path data of a rectangle at (x,y) of width w and height h.
func Rectangle(x, y, w, h float64) string {
	pb := &PathBuilder{}
	pb.MoveTo(x, y).RelHLineTo(w).RelVLineTo(h).RelHLineTo(-w).RelClose()
	return pb.String()
}

// RoundedRectangle returns the path data of a rectangle at (x,y) of width w and height h with corners rounded by radii rx and ry. Radii are clamped to half the width and height.
func RoundedRectangle(x, y, w, h, rx, ry float64) string {
	rx = math.Min(math.Abs(rx), w/2.0)
	ry = math.Min(math.Abs(ry), h/2.0)
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return Rectangle(x, y, w, h)
	}

	pb := &PathBuilder{}
	pb.MoveTo(x+rx, y)
	pb.RelHLineTo(w-2.0*rx).RelArcTo(rx, ry, 0.0, false, true, rx, ry)
	pb.RelVLineTo(h-2.0*ry).RelArcTo(rx, ry, 0.0, false, true, -rx, ry)
	pb.RelHLineTo(-(w - 2.0*rx)).RelArcTo(rx, ry, 0.0, false, true, -rx, -ry)
	pb.RelVLineTo(-(h - 2.0*ry)).RelArcTo(rx, ry, 0.0, false, true, rx, -ry)
	pb.RelClose()
	return pb.String()
}

// Circle returns the path data of a circle of radius r around (cx,cy), drawn as two half arcs.
func Circle(cx, cy, r float64) string {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns the path data of an ellipse with radii rx and ry around (cx,cy), drawn as two half arcs.
func Ellipse(cx, cy, rx, ry float64) string {
	pb := &PathBuilder{}
	pb.MoveTo(cx, cy).RelMoveTo(-rx, 0.0)
	pb.RelArcTo(rx, ry, 0.0, true, true, 2.0*rx, 0.0)
	pb.RelArcTo(rx, ry, 0.0, true, true, -2.0*rx, 0.0)
	return pb.String()
}

// Line returns the path data of a line from (x1,y1) to (x2,y2).
func Line(x1, y1, x2, y2 float64) string {
	pb := &PathBuilder{}
	pb.MoveTo(x1, y1).LineTo(x2, y2)
	return pb.String()
}

// Polygon returns the path data of a closed polygon through the points. It returns an empty string for no points.
func Polygon(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	return polyline(points) + "z"
}

// Polyline returns the path data of an open polyline through the points. It returns an empty string for no points.
func Polyline(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	return polyline(points)
}

func polyline(points []Point) string {
	pb := &PathBuilder{}
	pb.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		d := points[i].Sub(points[i-1])
		pb.RelLineTo(d.X, d.Y)
	}
	return pb.String()
}
