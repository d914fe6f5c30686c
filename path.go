package svg2vd

// Command is a path data command letter. Upper case letters are absolute, lower case letters are relative to the current point.
type Command byte

// Path data commands, in their absolute form. Use Rel to obtain the relative form.
const (
	MoveToCmd       Command = 'M'
	LineToCmd       Command = 'L'
	HLineToCmd      Command = 'H'
	VLineToCmd      Command = 'V'
	CubeToCmd       Command = 'C'
	SmoothCubeToCmd Command = 'S'
	QuadToCmd       Command = 'Q'
	SmoothQuadToCmd Command = 'T'
	ArcToCmd        Command = 'A'
	CloseCmd        Command = 'Z'
)

// Valid is true for the ten path commands in either case.
func (cmd Command) Valid() bool {
	switch cmd.Abs() {
	case MoveToCmd, LineToCmd, HLineToCmd, VLineToCmd, CubeToCmd, SmoothCubeToCmd, QuadToCmd, SmoothQuadToCmd, ArcToCmd, CloseCmd:
		return true
	}
	return false
}

// IsRel is true for relative commands.
func (cmd Command) IsRel() bool {
	return 'a' <= cmd && cmd <= 'z'
}

// Abs returns the absolute form of the command.
func (cmd Command) Abs() Command {
	if cmd.IsRel() {
		return cmd - 'a' + 'A'
	}
	return cmd
}

// Rel returns the relative form of the command.
func (cmd Command) Rel() Command {
	if 'A' <= cmd && cmd <= 'Z' {
		return cmd - 'A' + 'a'
	}
	return cmd
}

// Arity returns the number of values that one instance of the command takes.
func (cmd Command) Arity() int {
	switch cmd.Abs() {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		return 2
	case HLineToCmd, VLineToCmd:
		return 1
	case QuadToCmd, SmoothCubeToCmd:
		return 4
	case CubeToCmd:
		return 6
	case ArcToCmd:
		return 7
	}
	return 0
}

func (cmd Command) String() string {
	return string(rune(cmd))
}

////////////////////////////////////////////////////////////////

// Node is a single command together with its values. A node may hold several implicit repetitions of its command, so that the number of values is always a multiple of the command's arity.
type Node struct {
	Cmd  Command
	Args []float64
}

// Repeats returns the number of implicit repetitions of the command.
func (n Node) Repeats() int {
	if arity := n.Cmd.Arity(); arity != 0 {
		return len(n.Args) / arity
	}
	return 1
}

// Path is a sequence of path nodes. The order defines the drawing order.
type Path []Node

// Empty returns true if the path has no nodes.
func (p Path) Empty() bool {
	return len(p) == 0
}

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	q := make(Path, len(p))
	for i, n := range p {
		q[i] = Node{n.Cmd, append([]float64(nil), n.Args...)}
	}
	return q
}

// String returns the path data in canonical form.
func (p Path) String() string {
	return string(p.AppendTo(nil, false))
}

// Minify returns the path data in canonical form with leading zeros removed.
func (p Path) Minify() string {
	return string(p.AppendTo(nil, true))
}

// AppendTo appends the path data to b. Values are separated by a comma within a coordinate pair and by a space between pairs, and no separator follows the command letter.
func (p Path) AppendTo(b []byte, minified bool) []byte {
	for _, n := range p {
		b = append(b, byte(n.Cmd))
		for j, v := range n.Args {
			if 0 < j {
				if j%2 == 1 {
					b = append(b, ',')
				} else {
					b = append(b, ' ')
				}
			}
			b = dec(v).AppendTo(b, minified)
		}
	}
	return b
}
