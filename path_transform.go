package svg2vd

import "math"

// Cursor is the current point and the start of the current subpath, both in the coordinates of the untransformed path data.
type Cursor struct {
	Pos, Start Point
}

// advance returns the cursor after drawing the node.
func (cur Cursor) advance(n Node) Cursor {
	cmd := n.Cmd.Abs()
	if cmd == CloseCmd {
		cur.Pos = cur.Start
		return cur
	}

	arity := cmd.Arity()
	for i := 0; i+arity <= len(n.Args); i += arity {
		group := n.Args[i : i+arity]
		switch cmd {
		case HLineToCmd:
			if n.Cmd.IsRel() {
				cur.Pos.X += group[0]
			} else {
				cur.Pos.X = group[0]
			}
		case VLineToCmd:
			if n.Cmd.IsRel() {
				cur.Pos.Y += group[0]
			} else {
				cur.Pos.Y = group[0]
			}
		default:
			end := Point{group[arity-2], group[arity-1]}
			if n.Cmd.IsRel() {
				cur.Pos = cur.Pos.Add(end)
			} else {
				cur.Pos = end
			}
		}
		if cmd == MoveToCmd && i == 0 {
			cur.Start = cur.Pos
		}
	}
	return cur
}

// Transform returns the node transformed by m together with the cursor after the node. Absolute nodes are transformed by the full matrix and relative nodes only by its linear part. Horizontal and vertical lines become lines when the matrix rotates or shears. Of an arc only the end point is transformed and the rotation of the matrix is added to its x-axis rotation, its radii are not scaled.
func (n Node) Transform(m Matrix, cur Cursor) (Node, Cursor) {
	next := cur.advance(n)
	rel := n.Cmd.IsRel()
	if rel {
		m = m.Linear()
	}
	a, b, c, d, e, f := m.Coefficients()

	cmd := n.Cmd.Abs()
	switch cmd {
	case CloseCmd:
		return Node{n.Cmd, []float64{}}, next
	case HLineToCmd, VLineToCmd:
		if b == 0.0 && c == 0.0 {
			args := make([]float64, len(n.Args))
			for i, v := range n.Args {
				if cmd == HLineToCmd {
					args[i] = a*v + e
				} else {
					args[i] = d*v + f
				}
			}
			return Node{n.Cmd, args}, next
		}

		args := make([]float64, 0, 2*len(n.Args))
		for _, v := range n.Args {
			var p Point
			if cmd == HLineToCmd {
				if rel {
					p = Point{v, 0.0}
				} else {
					p = Point{v, cur.Pos.Y}
				}
			} else {
				if rel {
					p = Point{0.0, v}
				} else {
					p = Point{cur.Pos.X, v}
				}
			}
			p = m.Dot(p)
			args = append(args, p.X, p.Y)
		}
		lcmd := LineToCmd
		if rel {
			lcmd = lcmd.Rel()
		}
		return Node{lcmd, args}, next
	case ArcToCmd:
		rot := math.Atan2(b, d) * 180.0 / math.Pi
		args := append([]float64(nil), n.Args...)
		for i := 0; i+7 <= len(args); i += 7 {
			args[i+2] += rot
			p := m.Dot(Point{args[i+5], args[i+6]})
			args[i+5], args[i+6] = p.X, p.Y
		}
		return Node{n.Cmd, args}, next
	}

	args := make([]float64, len(n.Args))
	for i := 0; i+1 < len(n.Args); i += 2 {
		p := m.Dot(Point{n.Args[i], n.Args[i+1]})
		args[i], args[i+1] = p.X, p.Y
	}
	return Node{n.Cmd, args}, next
}

// Transform returns the path transformed by m. The number of nodes is unchanged, and only horizontal and vertical lines may become lines. The identity matrix returns the path itself.
func (p Path) Transform(m Matrix) Path {
	if m.IsIdentity() {
		return p
	}

	cur := Cursor{}
	q := make(Path, len(p))
	for i, n := range p {
		q[i], cur = n.Transform(m, cur)
	}
	return q
}
