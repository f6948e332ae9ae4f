package codec

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/opt"
)

// Style is a set of font style flags
type Style uint8

const (
	Normal Style = 1 << iota
	Bold
	Underline
	Reverse
)

// Unset codes; the set codes come from termenv.
const (
	boldOffSeq      = "22"
	underlineOffSeq = "24"
	reverseOffSeq   = "27"
)

// Reset is the universal full reset used by the raw API
const Reset = termenv.CSI + termenv.ResetSeq + "m"

type fragments struct {
	on  string
	off string
}

var styleTable = buildStyleTable()

func sgr(codes ...string) string {
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(termenv.CSI)
		b.WriteString(c)
		b.WriteString("m")
	}
	return b.String()
}

func buildStyleTable() map[Style]fragments {
	return map[Style]fragments{
		Bold:      {sgr(termenv.BoldSeq), sgr(boldOffSeq)},
		Underline: {sgr(termenv.UnderlineSeq), sgr(underlineOffSeq)},
		Reverse:   {sgr(termenv.ReverseSeq), sgr(reverseOffSeq)},
		Normal:    {sgr(termenv.ResetSeq), sgr(termenv.ResetSeq)},

		Bold | Underline: {
			sgr(termenv.BoldSeq, termenv.UnderlineSeq),
			sgr(boldOffSeq, underlineOffSeq),
		},
		Bold | Reverse: {
			sgr(termenv.BoldSeq, termenv.ReverseSeq),
			sgr(boldOffSeq, reverseOffSeq),
		},
		Reverse | Underline: {
			sgr(termenv.ReverseSeq, termenv.UnderlineSeq),
			sgr(reverseOffSeq, underlineOffSeq),
		},
		Bold | Reverse | Underline: {
			sgr(termenv.BoldSeq, termenv.ReverseSeq, termenv.UnderlineSeq),
			sgr(boldOffSeq, reverseOffSeq, underlineOffSeq),
		},
	}
}

// Supported reports whether s has an escape mapping
func (s Style) Supported() bool {
	_, ok := styleTable[s]
	return ok
}

func (s Style) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, f := range []struct {
		flag Style
		name string
	}{{Normal, "normal"}, {Bold, "bold"}, {Reverse, "reverse"}, {Underline, "underline"}} {
		if s&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	if rest := s &^ (Normal | Bold | Underline | Reverse); rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(names, "|")
}

func lookup(s Style) (fragments, error) {
	f, ok := styleTable[s]
	if !ok {
		return fragments{}, errors.Newf(errors.ErrUnsupportedStyle, "unsupported style combination %s", s).
			WithDetail("style", uint8(s))
	}
	return f, nil
}

// StyleOn returns the set-attribute fragments for s, or "" when unspecified
func StyleOn(s opt.Value[Style]) (string, error) {
	v, ok := s.Get()
	if !ok {
		return "", nil
	}
	f, err := lookup(v)
	if err != nil {
		return "", err
	}
	return f.on, nil
}

// StyleOff returns the unset-attribute fragments for s, or "" when unspecified
func StyleOff(s opt.Value[Style]) (string, error) {
	v, ok := s.Get()
	if !ok {
		return "", nil
	}
	f, err := lookup(v)
	if err != nil {
		return "", err
	}
	return f.off, nil
}

// ParseStyle reads flag names joined by '|', '+' or ','. An empty string or
// "none" is unspecified.
func ParseStyle(s string) (opt.Value[Style], error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return opt.None[Style](), nil
	}
	var style Style
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == '+' || r == ',' }) {
		switch strings.TrimSpace(part) {
		case "normal":
			style |= Normal
		case "bold":
			style |= Bold
		case "underline":
			style |= Underline
		case "reverse":
			style |= Reverse
		default:
			return opt.None[Style](), errors.Newf(errors.ErrInvalidInput, "unknown style %q", part)
		}
	}
	if _, err := lookup(style); err != nil {
		return opt.None[Style](), err
	}
	return opt.Some(style), nil
}
