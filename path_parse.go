package svg2vd

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// TokenizeError is returned when a token contains something that is not a number, or starts with an unknown command.
type TokenizeError struct {
	Fragment string // offending substring
	Token    string // token containing the fragment, including its command letter
}

func (err *TokenizeError) Error() string {
	return fmt.Sprintf("bad path data: %q in %q", err.Fragment, err.Token)
}

// ArityError is returned when the number of values of a token is not a multiple of the arity of its command.
type ArityError struct {
	Cmd   Command
	Token string
	Count int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("bad path data: %v takes a multiple of %d values, got %d in %q", err.Cmd, err.Cmd.Arity(), err.Count, err.Token)
}

////////////////////////////////////////////////////////////////

// Token is a command letter and the unparsed text of its values.
type Token struct {
	Cmd  Command
	Args string
}

func (tok Token) String() string {
	return string(rune(tok.Cmd)) + tok.Args
}

// Floats returns the values of the token.
func (tok Token) Floats() ([]float64, error) {
	if tok.Cmd.Abs() == CloseCmd {
		return []float64{}, nil
	}
	vals, frag, ok := parseFloats(tok.Args)
	if !ok {
		return nil, &TokenizeError{Fragment: frag, Token: tok.String()}
	}
	return vals, nil
}

// isCommand returns true for letters, except for e and E which are used by exponents.
func isCommand(c byte) bool {
	return ('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') && c != 'e' && c != 'E'
}

func nextCommand(s string, i int) int {
	for i < len(s) && !isCommand(s[i]) {
		i++
	}
	return i
}

// Tokenize splits path data into its commands. The first character of the path data must be a command. It never fails, the validity of the values is checked when they are parsed.
func Tokenize(s string) []Token {
	s = strings.TrimSpace(s)

	toks := []Token{}
	start, end := 0, 1
	for end < len(s) {
		end = nextCommand(s, end)
		toks = append(toks, Token{Command(s[start]), s[start+1 : end]})
		start = end
		end++
	}
	if end-start == 1 && start < len(s) {
		toks = append(toks, Token{Command(s[start]), ""})
	}
	return toks
}

// nextNumber returns the end of the number that starts at start, and whether the next number starts at that position. A minus sign or a second dot start the next number without a separator, except after an exponent marker.
func nextNumber(s string, start int) (int, bool) {
	dot := false
	exp := false
	for i := start; i < len(s); i++ {
		prevExp := exp
		exp = false
		switch s[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			return i, false
		case '-':
			if i != start && !prevExp {
				return i, true
			}
		case '.':
			if prevExp {
				break
			} else if dot {
				return i, true
			}
			dot = true
		case 'e', 'E':
			exp = true
		}
	}
	return len(s), false
}

// parseFloats returns the numbers in s, or the first fragment that is not a number.
func parseFloats(s string) ([]float64, string, bool) {
	vals := []float64{}
	for start := 0; start < len(s); {
		end, adjacent := nextNumber(s, start)
		if start < end {
			frag := s[start:end]
			f, n := strconv.ParseFloat([]byte(frag))
			if n == 0 || n != len(frag) || math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, frag, false
			}
			vals = append(vals, f)
		}
		if adjacent {
			start = end
		} else {
			start = end + 1
		}
	}
	return vals, "", true
}

// ParseFloats returns the numbers of the values of a path command, which may be separated by whitespace, commas, or nothing at all when the next number starts with a minus sign or a dot.
func ParseFloats(s string) ([]float64, error) {
	vals, frag, ok := parseFloats(s)
	if !ok {
		return nil, &TokenizeError{Fragment: frag, Token: s}
	}
	return vals, nil
}

// ParsePath parses path data into a path. It returns a *TokenizeError for unknown commands and bad numbers, and an *ArityError when a command has a wrong number of values.
func ParsePath(s string) (Path, error) {
	toks := Tokenize(s)
	p := make(Path, 0, len(toks))
	for _, tok := range toks {
		if !tok.Cmd.Valid() {
			return nil, &TokenizeError{Fragment: string(rune(tok.Cmd)), Token: tok.String()}
		}
		args, err := tok.Floats()
		if err != nil {
			return nil, err
		}
		if arity := tok.Cmd.Arity(); arity != 0 && (len(args) == 0 || len(args)%arity != 0) {
			return nil, &ArityError{Cmd: tok.Cmd, Token: tok.String(), Count: len(args)}
		}
		p = append(p, Node{tok.Cmd, args})
	}
	return p, nil
}

// MustParsePath parses path data and panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
