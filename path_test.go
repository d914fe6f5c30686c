package svg2vd

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCommand(t *testing.T) {
	test.That(t, MoveToCmd.Valid())
	test.That(t, Command('z').Valid())
	test.That(t, !Command('x').Valid())
	test.That(t, !Command('1').Valid())
	test.That(t, Command('h').IsRel())
	test.That(t, !HLineToCmd.IsRel())
	test.T(t, Command('c').Abs(), CubeToCmd)
	test.T(t, CubeToCmd.Rel(), Command('c'))
	test.T(t, Command('c').Rel(), Command('c'))
	test.String(t, ArcToCmd.Rel().String(), "a")

	var tts = []struct {
		cmd   Command
		arity int
	}{
		{'M', 2}, {'l', 2}, {'T', 2},
		{'H', 1}, {'v', 1},
		{'Q', 4}, {'s', 4},
		{'C', 6},
		{'a', 7},
		{'Z', 0}, {'z', 0},
	}
	for _, tt := range tts {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			test.T(t, tt.cmd.Arity(), tt.arity)
		})
	}
}

func TestNodeRepeats(t *testing.T) {
	test.T(t, Node{MoveToCmd, []float64{1, 2, 3, 4, 5, 6}}.Repeats(), 3)
	test.T(t, Node{HLineToCmd, []float64{1, 2}}.Repeats(), 2)
	test.T(t, Node{CloseCmd, nil}.Repeats(), 1)
}

func TestPathString(t *testing.T) {
	var tts = []struct {
		p Path
		s string
	}{
		{Path{}, ""},
		{Path{{MoveToCmd, []float64{10, 20}}, {'h', []float64{30}}, {'v', []float64{40}}, {'h', []float64{-30}}, {'z', []float64{}}}, "M10,20h30v40h-30z"},
		{Path{{MoveToCmd, []float64{1, 2, 3, 4}}}, "M1,2 3,4"},
		{Path{{CubeToCmd, []float64{1, 2, 3, 4, 5, 6}}}, "C1,2 3,4 5,6"},
		{Path{{HLineToCmd, []float64{1, 2, 3}}}, "H1,2 3"},
		{Path{{'a', []float64{10, 10, 0, 1, 1, 20, 0}}}, "a10,10 0,1 1,20 0"},
		{Path{{LineToCmd, []float64{17.5, -0.25}}}, "L17.5,-0.25"},
		{Path{{LineToCmd, []float64{1e-11, 3}}}, "L0,3"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, tt.p.String(), tt.s)
		})
	}
}

func TestPathMinify(t *testing.T) {
	p := Path{{MoveToCmd, []float64{0.5, 1}}, {'l', []float64{-0.25, 10}}, {'z', []float64{}}}
	test.String(t, p.Minify(), "M.5,1l-.25,10z")
	test.String(t, p.String(), "M0.5,1l-0.25,10z")
}

func TestPathCopy(t *testing.T) {
	p := MustParsePath("M1,2L3,4z")
	q := p.Copy()
	q[0].Args[0] = 10
	test.String(t, p.String(), "M1,2L3,4z")
	test.String(t, q.String(), "M10,2L3,4z")
	test.That(t, !p.Empty())
	test.That(t, Path{}.Empty())
}
