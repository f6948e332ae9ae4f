// Package compose turns a Message into a single escape-coded string.
//
// Only the attributes a message actually changes are restored afterwards: a
// foreground or background equal to the ambient color produces no restore
// fragment. When both differ the background is restored before the
// foreground.
package compose

import (
	"strings"

	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/opt"
)

// Message is one piece of text with optional style and colors
type Message struct {
	Text       string
	Style      opt.Value[codec.Style]
	Foreground opt.Value[codec.Color]
	Background opt.Value[codec.Color]
}

// Plain returns a message with nothing specified
func Plain(text string) Message {
	return Message{Text: text}
}

// Colored returns a message with an explicit foreground
func Colored(text string, fg codec.Color) Message {
	return Message{Text: text, Foreground: opt.Some(fg)}
}

// Styled returns a message with every field given
func Styled(text string, style opt.Value[codec.Style], fg, bg opt.Value[codec.Color]) Message {
	return Message{Text: text, Style: style, Foreground: fg, Background: bg}
}

// Ambient is the session color pair messages are restored to
type Ambient struct {
	Normal     codec.Color
	Background codec.Color
}

// Compose renders msg against the ambient colors
func Compose(msg Message, ambient Ambient) (string, error) {
	on, err := codec.StyleOn(msg.Style)
	if err != nil {
		return "", err
	}
	off, err := codec.StyleOff(msg.Style)
	if err != nil {
		return "", err
	}

	// An unspecified color equals the ambient one and needs no restore.
	restoreFg := msg.Foreground.Or(ambient.Normal) != ambient.Normal
	restoreBg := msg.Background.Or(ambient.Background) != ambient.Background

	var b strings.Builder
	b.WriteString(on)
	b.WriteString(codec.ColorOn(false, msg.Foreground))
	b.WriteString(codec.ColorOn(true, msg.Background))
	b.WriteString(msg.Text)
	if restoreBg {
		b.WriteString(codec.Fragment(true, ambient.Background))
	}
	if restoreFg {
		b.WriteString(codec.Fragment(false, ambient.Normal))
	}
	b.WriteString(off)
	return b.String(), nil
}
