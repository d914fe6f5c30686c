package svg2vd

import "math/rand/v2"

func RandomPath(n int, closed bool) Path {
	p := Path{}
	if 0 < n {
		p = append(p, Node{MoveToCmd, []float64{rand.NormFloat64(), rand.NormFloat64()}})
		for i := 1; i < n; i++ {
			cmd := LineToCmd
			switch rand.IntN(4) {
			case 1:
				cmd = QuadToCmd
			case 2:
				cmd = CubeToCmd
			case 3:
				cmd = ArcToCmd
			}
			args := make([]float64, cmd.Arity())
			for j := range args {
				args[j] = rand.NormFloat64()
			}
			if cmd == ArcToCmd {
				args[0], args[1] = 1.0+rand.Float64(), 1.0+rand.Float64()
				args[3], args[4] = float64(rand.IntN(2)), float64(rand.IntN(2))
			}
			if rand.IntN(2) == 0 {
				cmd = cmd.Rel()
			}
			p = append(p, Node{cmd, args})
		}
		if closed {
			p = append(p, Node{CloseCmd, []float64{}})
		}
	}
	return p
}
