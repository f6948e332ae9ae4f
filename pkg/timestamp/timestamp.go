// Package timestamp renders the "[...] " prefix written before leveled
// console messages.
package timestamp

import (
	"strings"
	"time"

	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/compose"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/opt"
)

// Mode selects one of the built-in layouts
type Mode int

const (
	// LocalDateTime renders the full local date and time
	LocalDateTime Mode = iota
	// DateOnly renders the short date
	DateOnly
	// TimeOnly renders the short time
	TimeOnly
)

// Built-in layouts (en-US short forms)
const (
	LayoutLocalDateTime = "1/2/2006 3:04:05 PM"
	LayoutDateOnly      = "1/2/2006"
	LayoutTimeOnly      = "3:04 PM"
)

func (m Mode) String() string {
	switch m {
	case LocalDateTime:
		return "datetime"
	case DateOnly:
		return "date"
	case TimeOnly:
		return "time"
	default:
		return "unknown"
	}
}

// Layout returns the time layout for the mode
func (m Mode) Layout() string {
	switch m {
	case DateOnly:
		return LayoutDateOnly
	case TimeOnly:
		return LayoutTimeOnly
	default:
		return LayoutLocalDateTime
	}
}

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "datetime", "local", "localdatetime":
		return LocalDateTime, nil
	case "date", "dateonly":
		return DateOnly, nil
	case "time", "timeonly":
		return TimeOnly, nil
	default:
		return LocalDateTime, errors.Newf(errors.ErrInvalidInput, "unknown timestamp mode: %s", s)
	}
}

// Config describes how the timestamp prefix looks. A non-empty Format is a
// Go time layout and takes precedence over Mode.
type Config struct {
	Mode       Mode
	Format     string
	Style      opt.Value[codec.Style]
	Foreground opt.Value[codec.Color]
	Background opt.Value[codec.Color]
}

// Default returns the process default: full local date and time, no style
// and no colors of its own.
func Default() *Config {
	return &Config{Mode: LocalDateTime}
}

// Layout returns the effective time layout
func (c *Config) Layout() string {
	if c.Format != "" {
		return c.Format
	}
	return c.Mode.Layout()
}

// Render returns the composed prefix for now, or "" when cfg is nil. The
// foreground falls back to timestampColor when the config leaves it unset.
func Render(cfg *Config, now time.Time, timestampColor codec.Color, ambient compose.Ambient) (string, error) {
	if cfg == nil {
		return "", nil
	}
	msg := compose.Message{
		Text:       "[" + now.Local().Format(cfg.Layout()) + "] ",
		Style:      cfg.Style,
		Foreground: cfg.Foreground.OrElse(opt.Some(timestampColor)),
		Background: cfg.Background,
	}
	return compose.Compose(msg, ambient)
}
