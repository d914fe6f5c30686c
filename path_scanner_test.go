package svg2vd

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathScanner(t *testing.T) {
	p := MustParsePath("M1,2 3,4 5,6m1,1c1,1 2,2 3,3s4,4 5,5Q1,1 2,2t3,3h1v1a1,1 0,0 1,2,2z")
	var tts = []struct {
		cmd   Command
		start Point
		end   Point
	}{
		{MoveToCmd, Point{0, 0}, Point{1, 2}},
		{LineToCmd, Point{1, 2}, Point{3, 4}},
		{LineToCmd, Point{3, 4}, Point{5, 6}},
		{MoveToCmd, Point{5, 6}, Point{6, 7}},
		{CubeToCmd, Point{6, 7}, Point{9, 10}},
		{SmoothCubeToCmd, Point{9, 10}, Point{14, 15}},
		{QuadToCmd, Point{14, 15}, Point{2, 2}},
		{SmoothQuadToCmd, Point{2, 2}, Point{5, 5}},
		{HLineToCmd, Point{5, 5}, Point{6, 5}},
		{VLineToCmd, Point{6, 5}, Point{6, 6}},
		{ArcToCmd, Point{6, 6}, Point{8, 8}},
		{CloseCmd, Point{8, 8}, Point{6, 7}},
	}

	i := 0
	for s := p.Scanner(); s.Scan(); i++ {
		if len(tts) <= i {
			t.Fatal("too many segments")
		}
		test.T(t, s.Cmd(), tts[i].cmd, i)
		test.T(t, s.Start(), tts[i].start, i)
		test.T(t, s.End(), tts[i].end, i)

		switch s.Cmd() {
		case CubeToCmd:
			test.T(t, s.Values(), []float64{7, 8, 8, 9, 9, 10})
			test.T(t, s.CP1(), Point{7, 8})
			test.T(t, s.CP2(), Point{8, 9})
		case SmoothCubeToCmd:
			test.T(t, s.Values(), []float64{13, 14, 14, 15})
			test.T(t, s.CP1(), Point{10, 11})
			test.T(t, s.CP2(), Point{13, 14})
		case QuadToCmd:
			test.T(t, s.CP1(), Point{1, 1})
		case SmoothQuadToCmd:
			test.T(t, s.Values(), []float64{5, 5})
			test.T(t, s.CP1(), Point{3, 3})
		case HLineToCmd:
			test.T(t, s.Values(), []float64{6})
		case ArcToCmd:
			rx, ry, rot, large, sweep := s.Arc()
			test.T(t, []float64{rx, ry, rot}, []float64{1, 1, 0})
			test.T(t, large, false)
			test.T(t, sweep, true)
			test.T(t, s.Values()[5:], []float64{8, 8})
		}
	}
	test.T(t, i, len(tts))
}

func TestPathScannerSmoothWithoutPrevious(t *testing.T) {
	s := MustParsePath("M1,1S5,5 6,6").Scanner()
	s.Scan()
	s.Scan()
	test.T(t, s.CP1(), Point{1, 1})
}

func TestPathFastBounds(t *testing.T) {
	var tts = []struct {
		p string
		r Rect
	}{
		{"", Rect{}},
		{"M1,2", Rect{1, 2, 0, 0}},
		{"M10,20h30v40h-30z", Rect{10, 20, 30, 40}},
		{"M0,0C-5,10 15,10 10,0", Rect{-5, 0, 20, 10}},
		{"M0,0Q5,-10 10,0", Rect{0, -10, 10, 10}},
		{"M0,0A10,10 0,0 1,20 0", Rect{0, -10, 20, 10}},
		{"M0,0A10,10 0,0 0,20 0", Rect{0, 0, 20, 10}},
		{"M0,0A1,1 0,0 0,20 0", Rect{0, 0, 20, 10}},
		{"M0,0A0,10 0,0 0,20 0", Rect{0, 0, 20, 0}},
		{Circle(50.0, 50.0, 10.0), Rect{40, 40, 20, 20}},
		{Ellipse(0.0, 0.0, 10.0, 5.0), Rect{-10, -5, 20, 10}},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			r := MustParsePath(tt.p).FastBounds()
			test.Float(t, r.X, tt.r.X)
			test.Float(t, r.Y, tt.r.Y)
			test.Float(t, r.W, tt.r.W)
			test.Float(t, r.H, tt.r.H)
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 1, 1}.AddPoint(Point{-1, 2})
	test.T(t, r, Rect{-1, 0, 2, 2})
	test.String(t, r.String(), "[-1; 0]--[1; 2]")
}

func TestAngleBetween(t *testing.T) {
	test.That(t, angleBetween(90.0, 0.0, 180.0))
	test.That(t, angleBetween(450.0, 0.0, 180.0))
	test.That(t, angleBetween(-90.0, 180.0, 360.0))
	test.That(t, angleBetween(90.0, 180.0, 0.0))
	test.That(t, !angleBetween(270.0, 0.0, 180.0))
}

func TestArcToCenter(t *testing.T) {
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(0.0, 0.0, 1.0, 1.0, 0.0, false, true, 20.0, 0.0)
	test.Float(t, cx, 10.0)
	test.Float(t, cy, 0.0)
	test.Float(t, rx, 10.0)
	test.Float(t, ry, 10.0)
	test.Float(t, theta0, 180.0)
	test.Float(t, theta1, 360.0)
}

func BenchmarkScanner(b *testing.B) {
	p := RandomPath(1000, true)
	for i := 0; i < b.N; i++ {
		for s := p.Scanner(); s.Scan(); {
			_ = s.End()
		}
	}
}
