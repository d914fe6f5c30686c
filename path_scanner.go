package svg2vd

// PathScanner iterates over the segments of a path. Every implicit repetition of a command is a segment of its own and all values are absolute.
type PathScanner struct {
	p    Path
	i, j int

	cmd        Command
	vals       []float64
	start, end Cursor
	cp1, cp2   Point
}

// Scanner returns a path scanner.
func (p Path) Scanner() *PathScanner {
	return &PathScanner{p: p}
}

// Scan advances to the next segment, it returns false when there are no more segments.
func (s *PathScanner) Scan() bool {
	for s.i < len(s.p) {
		if n := s.p[s.i]; s.j < n.Repeats() {
			s.segment(n, s.j)
			s.j++
			return true
		}
		s.i++
		s.j = 0
	}
	return false
}

func (s *PathScanner) segment(n Node, j int) {
	prev, prevCP := s.cmd, s.cp2
	s.start = s.end

	cmd := n.Cmd
	if cmd.Abs() == MoveToCmd && 0 < j {
		// implicit lineto
		cmd = LineToCmd
		if n.Cmd.IsRel() {
			cmd = cmd.Rel()
		}
	}
	arity := cmd.Arity()
	group := n.Args[j*arity : (j+1)*arity]
	s.end = s.start.advance(Node{cmd, group})

	s.cmd = cmd.Abs()
	s.vals = append(s.vals[:0], group...)
	if cmd.IsRel() {
		pos := s.start.Pos
		switch s.cmd {
		case HLineToCmd:
			s.vals[0] += pos.X
		case VLineToCmd:
			s.vals[0] += pos.Y
		case ArcToCmd:
			s.vals[5] += pos.X
			s.vals[6] += pos.Y
		default:
			for k := 0; k+1 < len(s.vals); k += 2 {
				s.vals[k] += pos.X
				s.vals[k+1] += pos.Y
			}
		}
	}

	reflect := func(cmds ...Command) Point {
		for _, c := range cmds {
			if prev == c {
				return s.start.Pos.Mul(2.0).Sub(prevCP)
			}
		}
		return s.start.Pos
	}
	switch s.cmd {
	case CubeToCmd:
		s.cp1 = Point{s.vals[0], s.vals[1]}
		s.cp2 = Point{s.vals[2], s.vals[3]}
	case SmoothCubeToCmd:
		s.cp1 = reflect(CubeToCmd, SmoothCubeToCmd)
		s.cp2 = Point{s.vals[0], s.vals[1]}
	case QuadToCmd:
		s.cp1 = Point{s.vals[0], s.vals[1]}
		s.cp2 = s.cp1
	case SmoothQuadToCmd:
		s.cp1 = reflect(QuadToCmd, SmoothQuadToCmd)
		s.cp2 = s.cp1
	default:
		s.cp1, s.cp2 = s.end.Pos, s.end.Pos
	}
}

// Cmd returns the absolute command of the segment. Implicit repetitions of a moveto are linetos.
func (s *PathScanner) Cmd() Command {
	return s.cmd
}

// Values returns the absolute values of the segment.
func (s *PathScanner) Values() []float64 {
	return s.vals
}

// Start returns the start position of the segment.
func (s *PathScanner) Start() Point {
	return s.start.Pos
}

// End returns the end position of the segment.
func (s *PathScanner) End() Point {
	return s.end.Pos
}

// CP1 returns the first control point for quadratic and cubic Béziers, including reflected control points of smooth Béziers.
func (s *PathScanner) CP1() Point {
	switch s.cmd {
	case QuadToCmd, SmoothQuadToCmd, CubeToCmd, SmoothCubeToCmd:
		return s.cp1
	}
	panic("must be quadratic or cubic Bézier")
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.cmd != CubeToCmd && s.cmd != SmoothCubeToCmd {
		panic("must be cubic Bézier")
	}
	return s.cp2
}

// Arc returns the arguments for arcs (rx,ry,rot,large,sweep).
func (s *PathScanner) Arc() (float64, float64, float64, bool, bool) {
	if s.cmd != ArcToCmd {
		panic("must be arc")
	}
	return s.vals[0], s.vals[1], s.vals[2], s.vals[3] != 0.0, s.vals[4] != 0.0
}

// FastBounds returns the bounding box of the path including the control points of Béziers. Arcs are bounded exactly.
func (p Path) FastBounds() Rect {
	var r Rect
	first := true
	add := func(q Point) {
		if first {
			r = Rect{q.X, q.Y, 0.0, 0.0}
			first = false
		} else {
			r = r.AddPoint(q)
		}
	}
	for s := p.Scanner(); s.Scan(); {
		switch s.Cmd() {
		case QuadToCmd, SmoothQuadToCmd:
			add(s.CP1())
		case CubeToCmd, SmoothCubeToCmd:
			add(s.CP1())
			add(s.CP2())
		case ArcToCmd:
			rx, ry, rot, large, sweep := s.Arc()
			add(s.Start())
			b := arcBounds(s.Start(), rx, ry, rot, large, sweep, s.End())
			add(Point{b.X, b.Y})
			add(Point{b.X + b.W, b.Y + b.H})
		}
		add(s.End())
	}
	return r
}
