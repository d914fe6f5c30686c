package svg2vd

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor is returned for colors that cannot be converted.
var ErrBadColor = errors.New("bad color")

// transparent is the VectorDrawable color of none and transparent paints.
const transparent = "#00000000"

// hexColor formats a color as #RRGGBB when opaque and as #AARRGGBB otherwise.
func hexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return argbColor(c)
}

func argbColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

func isHex(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// parseColorComponent parses an integer in [0,255] or a percentage.
func parseColorComponent(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0, ErrBadColor
	} else if v[len(v)-1] == '%' {
		num, err := strconv.ParseFloat(strings.TrimSpace(v[:len(v)-1]), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadColor, err)
		}
		return uint8(math.Round(math.Max(0.0, math.Min(100.0, num)) * 255.0 / 100.0)), nil
	}
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	return uint8(max(0, min(255, num))), nil
}

// parseAlphaComponent parses a number in [0,1] or a percentage.
func parseAlphaComponent(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	scale := 1.0
	if 0 < len(v) && v[len(v)-1] == '%' {
		v = strings.TrimSpace(v[:len(v)-1])
		scale = 100.0
	}
	num, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	return uint8(math.Round(math.Max(0.0, math.Min(1.0, num/scale)) * 255.0)), nil
}

// SVGColor converts an SVG paint to a VectorDrawable color. It accepts none, hexadecimal colors, rgb() and rgba() functions, and the CSS color keywords including transparent.
func SVGColor(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "none" {
		return transparent, nil
	} else if 0 < len(v) && v[0] == '#' {
		if (len(v) == 4 || len(v) == 7) && isHex(v[1:]) {
			return v, nil
		}
		return "", fmt.Errorf("%w: %s", ErrBadColor, v)
	} else if col, ok := cssColors[v]; ok {
		return hexColor(col), nil
	}

	var col color.NRGBA
	var comps []string
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		if comps = strings.Split(v[4:len(v)-1], ","); len(comps) != 3 {
			return "", fmt.Errorf("%w: %s", ErrBadColor, v)
		}
		col.A = 0xff
	} else if strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")") {
		if comps = strings.Split(v[5:len(v)-1], ","); len(comps) != 4 {
			return "", fmt.Errorf("%w: %s", ErrBadColor, v)
		}
	} else {
		return "", fmt.Errorf("%w: %s", ErrBadColor, v)
	}

	var err error
	if col.R, err = parseColorComponent(comps[0]); err != nil {
		return "", err
	} else if col.G, err = parseColorComponent(comps[1]); err != nil {
		return "", err
	} else if col.B, err = parseColorComponent(comps[2]); err != nil {
		return "", err
	}
	if len(comps) == 4 {
		if col.A, err = parseAlphaComponent(comps[3]); err != nil {
			return "", err
		}
		return argbColor(col), nil
	}
	return hexColor(col), nil
}

// ParseColor parses a VectorDrawable color of the form #RGB, #ARGB, #RRGGBB, or #AARRGGBB.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' || !isHex(s[1:]) {
		return color.NRGBA{}, fmt.Errorf("%w: %s", ErrBadColor, s)
	}
	s = s[1:]
	if len(s) == 3 || len(s) == 4 {
		long := make([]byte, 0, 2*len(s))
		for i := 0; i < len(s); i++ {
			long = append(long, s[i], s[i])
		}
		s = string(long)
	}
	if len(s) == 6 {
		s = "ff" + s
	} else if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: #%s", ErrBadColor, s)
	}
	argb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	return color.NRGBA{uint8(argb >> 16), uint8(argb >> 8), uint8(argb), uint8(argb >> 24)}, nil
}

// cssColors are the CSS color keywords.
var cssColors = map[string]color.NRGBA{
	"aliceblue":            color.NRGBA{240, 248, 255, 255},
	"antiquewhite":         color.NRGBA{250, 235, 215, 255},
	"aqua":                 color.NRGBA{0, 255, 255, 255},
	"aquamarine":           color.NRGBA{127, 255, 212, 255},
	"azure":                color.NRGBA{240, 255, 255, 255},
	"beige":                color.NRGBA{245, 245, 220, 255},
	"bisque":               color.NRGBA{255, 228, 196, 255},
	"black":                color.NRGBA{0, 0, 0, 255},
	"blanchedalmond":       color.NRGBA{255, 235, 205, 255},
	"blue":                 color.NRGBA{0, 0, 255, 255},
	"blueviolet":           color.NRGBA{138, 43, 226, 255},
	"brown":                color.NRGBA{165, 42, 42, 255},
	"burlywood":            color.NRGBA{222, 184, 135, 255},
	"cadetblue":            color.NRGBA{95, 158, 160, 255},
	"chartreuse":           color.NRGBA{127, 255, 0, 255},
	"chocolate":            color.NRGBA{210, 105, 30, 255},
	"coral":                color.NRGBA{255, 127, 80, 255},
	"cornflowerblue":       color.NRGBA{100, 149, 237, 255},
	"cornsilk":             color.NRGBA{255, 248, 220, 255},
	"crimson":              color.NRGBA{220, 20, 60, 255},
	"cyan":                 color.NRGBA{0, 255, 255, 255},
	"darkblue":             color.NRGBA{0, 0, 139, 255},
	"darkcyan":             color.NRGBA{0, 139, 139, 255},
	"darkgoldenrod":        color.NRGBA{184, 134, 11, 255},
	"darkgray":             color.NRGBA{169, 169, 169, 255},
	"darkgreen":            color.NRGBA{0, 100, 0, 255},
	"darkgrey":             color.NRGBA{169, 169, 169, 255},
	"darkkhaki":            color.NRGBA{189, 183, 107, 255},
	"darkmagenta":          color.NRGBA{139, 0, 139, 255},
	"darkolivegreen":       color.NRGBA{85, 107, 47, 255},
	"darkorange":           color.NRGBA{255, 140, 0, 255},
	"darkorchid":           color.NRGBA{153, 50, 204, 255},
	"darkred":              color.NRGBA{139, 0, 0, 255},
	"darksalmon":           color.NRGBA{233, 150, 122, 255},
	"darkseagreen":         color.NRGBA{143, 188, 143, 255},
	"darkslateblue":        color.NRGBA{72, 61, 139, 255},
	"darkslategray":        color.NRGBA{47, 79, 79, 255},
	"darkslategrey":        color.NRGBA{47, 79, 79, 255},
	"darkturquoise":        color.NRGBA{0, 206, 209, 255},
	"darkviolet":           color.NRGBA{148, 0, 211, 255},
	"deeppink":             color.NRGBA{255, 20, 147, 255},
	"deepskyblue":          color.NRGBA{0, 191, 255, 255},
	"dimgray":              color.NRGBA{105, 105, 105, 255},
	"dimgrey":              color.NRGBA{105, 105, 105, 255},
	"dodgerblue":           color.NRGBA{30, 144, 255, 255},
	"firebrick":            color.NRGBA{178, 34, 34, 255},
	"floralwhite":          color.NRGBA{255, 250, 240, 255},
	"forestgreen":          color.NRGBA{34, 139, 34, 255},
	"fuchsia":              color.NRGBA{255, 0, 255, 255},
	"gainsboro":            color.NRGBA{220, 220, 220, 255},
	"ghostwhite":           color.NRGBA{248, 248, 255, 255},
	"gold":                 color.NRGBA{255, 215, 0, 255},
	"goldenrod":            color.NRGBA{218, 165, 32, 255},
	"gray":                 color.NRGBA{128, 128, 128, 255},
	"green":                color.NRGBA{0, 128, 0, 255},
	"greenyellow":          color.NRGBA{173, 255, 47, 255},
	"grey":                 color.NRGBA{128, 128, 128, 255},
	"honeydew":             color.NRGBA{240, 255, 240, 255},
	"hotpink":              color.NRGBA{255, 105, 180, 255},
	"indianred":            color.NRGBA{205, 92, 92, 255},
	"indigo":               color.NRGBA{75, 0, 130, 255},
	"ivory":                color.NRGBA{255, 255, 240, 255},
	"khaki":                color.NRGBA{240, 230, 140, 255},
	"lavender":             color.NRGBA{230, 230, 250, 255},
	"lavenderblush":        color.NRGBA{255, 240, 245, 255},
	"lawngreen":            color.NRGBA{124, 252, 0, 255},
	"lemonchiffon":         color.NRGBA{255, 250, 205, 255},
	"lightblue":            color.NRGBA{173, 216, 230, 255},
	"lightcoral":           color.NRGBA{240, 128, 128, 255},
	"lightcyan":            color.NRGBA{224, 255, 255, 255},
	"lightgoldenrodyellow": color.NRGBA{250, 250, 210, 255},
	"lightgray":            color.NRGBA{211, 211, 211, 255},
	"lightgreen":           color.NRGBA{144, 238, 144, 255},
	"lightgrey":            color.NRGBA{211, 211, 211, 255},
	"lightpink":            color.NRGBA{255, 182, 193, 255},
	"lightsalmon":          color.NRGBA{255, 160, 122, 255},
	"lightseagreen":        color.NRGBA{32, 178, 170, 255},
	"lightskyblue":         color.NRGBA{135, 206, 250, 255},
	"lightslategray":       color.NRGBA{119, 136, 153, 255},
	"lightslategrey":       color.NRGBA{119, 136, 153, 255},
	"lightsteelblue":       color.NRGBA{176, 196, 222, 255},
	"lightyellow":          color.NRGBA{255, 255, 224, 255},
	"lime":                 color.NRGBA{0, 255, 0, 255},
	"limegreen":            color.NRGBA{50, 205, 50, 255},
	"linen":                color.NRGBA{250, 240, 230, 255},
	"magenta":              color.NRGBA{255, 0, 255, 255},
	"maroon":               color.NRGBA{128, 0, 0, 255},
	"mediumaquamarine":     color.NRGBA{102, 205, 170, 255},
	"mediumblue":           color.NRGBA{0, 0, 205, 255},
	"mediumorchid":         color.NRGBA{186, 85, 211, 255},
	"mediumpurple":         color.NRGBA{147, 112, 219, 255},
	"mediumseagreen":       color.NRGBA{60, 179, 113, 255},
	"mediumslateblue":      color.NRGBA{123, 104, 238, 255},
	"mediumspringgreen":    color.NRGBA{0, 250, 154, 255},
	"mediumturquoise":      color.NRGBA{72, 209, 204, 255},
	"mediumvioletred":      color.NRGBA{199, 21, 133, 255},
	"midnightblue":         color.NRGBA{25, 25, 112, 255},
	"mintcream":            color.NRGBA{245, 255, 250, 255},
	"mistyrose":            color.NRGBA{255, 228, 225, 255},
	"moccasin":             color.NRGBA{255, 228, 181, 255},
	"navajowhite":          color.NRGBA{255, 222, 173, 255},
	"navy":                 color.NRGBA{0, 0, 128, 255},
	"oldlace":              color.NRGBA{253, 245, 230, 255},
	"olive":                color.NRGBA{128, 128, 0, 255},
	"olivedrab":            color.NRGBA{107, 142, 35, 255},
	"orange":               color.NRGBA{255, 165, 0, 255},
	"orangered":            color.NRGBA{255, 69, 0, 255},
	"orchid":               color.NRGBA{218, 112, 214, 255},
	"palegoldenrod":        color.NRGBA{238, 232, 170, 255},
	"palegreen":            color.NRGBA{152, 251, 152, 255},
	"paleturquoise":        color.NRGBA{175, 238, 238, 255},
	"palevioletred":        color.NRGBA{219, 112, 147, 255},
	"papayawhip":           color.NRGBA{255, 239, 213, 255},
	"peachpuff":            color.NRGBA{255, 218, 185, 255},
	"peru":                 color.NRGBA{205, 133, 63, 255},
	"pink":                 color.NRGBA{255, 192, 203, 255},
	"plum":                 color.NRGBA{221, 160, 221, 255},
	"powderblue":           color.NRGBA{176, 224, 230, 255},
	"purple":               color.NRGBA{128, 0, 128, 255},
	"red":                  color.NRGBA{255, 0, 0, 255},
	"rosybrown":            color.NRGBA{188, 143, 143, 255},
	"royalblue":            color.NRGBA{65, 105, 225, 255},
	"saddlebrown":          color.NRGBA{139, 69, 19, 255},
	"salmon":               color.NRGBA{250, 128, 114, 255},
	"sandybrown":           color.NRGBA{244, 164, 96, 255},
	"seagreen":             color.NRGBA{46, 139, 87, 255},
	"seashell":             color.NRGBA{255, 245, 238, 255},
	"sienna":               color.NRGBA{160, 82, 45, 255},
	"silver":               color.NRGBA{192, 192, 192, 255},
	"skyblue":              color.NRGBA{135, 206, 235, 255},
	"slateblue":            color.NRGBA{106, 90, 205, 255},
	"slategray":            color.NRGBA{112, 128, 144, 255},
	"slategrey":            color.NRGBA{112, 128, 144, 255},
	"snow":                 color.NRGBA{255, 250, 250, 255},
	"springgreen":          color.NRGBA{0, 255, 127, 255},
	"steelblue":            color.NRGBA{70, 130, 180, 255},
	"tan":                  color.NRGBA{210, 180, 140, 255},
	"teal":                 color.NRGBA{0, 128, 128, 255},
	"thistle":              color.NRGBA{216, 191, 216, 255},
	"tomato":               color.NRGBA{255, 99, 71, 255},
	"turquoise":            color.NRGBA{64, 224, 208, 255},
	"violet":               color.NRGBA{238, 130, 238, 255},
	"wheat":                color.NRGBA{245, 222, 179, 255},
	"white":                color.NRGBA{255, 255, 255, 255},
	"whitesmoke":           color.NRGBA{245, 245, 245, 255},
	"yellow":               color.NRGBA{255, 255, 0, 255},
	"yellowgreen":          color.NRGBA{154, 205, 50, 255},
	"transparent":          color.NRGBA{0, 0, 0, 0},
	"clear":                color.NRGBA{0, 0, 0, 0},
}
