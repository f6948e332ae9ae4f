package codec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/opt"
)

// Color is a 24-bit RGB color
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Named colors used by the default palette and accepted by ParseColor
var (
	Black      = RGB(0, 0, 0)
	White      = RGB(255, 255, 255)
	LightGray  = RGB(211, 211, 211)
	Gray       = RGB(128, 128, 128)
	SlateGray  = RGB(112, 128, 144)
	Red        = RGB(255, 0, 0)
	IndianRed  = RGB(205, 92, 92)
	Orange     = RGB(255, 165, 0)
	Yellow     = RGB(255, 255, 0)
	Green      = RGB(0, 128, 0)
	Cyan       = RGB(0, 255, 255)
	Blue       = RGB(0, 0, 255)
	Magenta    = RGB(255, 0, 255)
	BlueViolet = RGB(138, 43, 226)
)

var namedColors = map[string]Color{
	"black":      Black,
	"white":      White,
	"lightgray":  LightGray,
	"gray":       Gray,
	"slategray":  SlateGray,
	"red":        Red,
	"indianred":  IndianRed,
	"orange":     Orange,
	"yellow":     Yellow,
	"green":      Green,
	"cyan":       Cyan,
	"blue":       Blue,
	"magenta":    Magenta,
	"blueviolet": BlueViolet,
}

// Hex renders the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ColorOn returns the true-color fragment for c, or "" when unspecified
func ColorOn(isBackground bool, c opt.Value[Color]) string {
	v, ok := c.Get()
	if !ok {
		return ""
	}
	return Fragment(isBackground, v)
}

// Fragment returns the true-color fragment for c
func Fragment(isBackground bool, c Color) string {
	selector := "38"
	if isBackground {
		selector = "48"
	}
	return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, selector, c.R, c.G, c.B)
}

// ParseColor accepts #rrggbb, #rgb, "r,g,b" or a color name
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, errors.New(errors.ErrInvalidInput, "empty color")
	}

	if named, ok := namedColors[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return named, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, errors.Newf(errors.ErrInvalidInput, "unrecognized color %q", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid channel %q in color %q", p, s)
		}
		ch[i] = uint8(n)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

// ColorNames lists the names ParseColor accepts
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for n := range namedColors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MarshalText renders the color as #rrggbb
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything ParseColor does
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
