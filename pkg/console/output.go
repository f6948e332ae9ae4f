package console

import (
	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/compose"
	"github.com/tikotako/takonsole/pkg/opt"
	"github.com/tikotako/takonsole/pkg/timestamp"
)

// Level selects the semantic color of a leveled message
type Level int

const (
	LevelNormal Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (p Palette) forLevel(l Level) codec.Color {
	switch l {
	case LevelInfo:
		return p.Info
	case LevelWarn:
		return p.Warning
	case LevelError:
		return p.Error
	default:
		return p.Normal
	}
}

// Normal writes a timestamped line in the normal color
func (c *Console) Normal(text string) error { return c.Log(LevelNormal, text) }

// Info writes a timestamped line in the info color
func (c *Console) Info(text string) error { return c.Log(LevelInfo, text) }

// Warn writes a timestamped line in the warning color
func (c *Console) Warn(text string) error { return c.Log(LevelWarn, text) }

// Error writes a timestamped line in the error color
func (c *Console) Error(text string) error { return c.Log(LevelError, text) }

// Log writes a timestamped line colored for level. Leveled messages carry no
// style of their own.
func (c *Console) Log(level Level, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return nil
	}

	ambient := c.ambient()
	prefix, err := timestamp.Render(c.stamp, c.now(), c.palette.Timestamp, ambient)
	if err != nil {
		return err
	}
	body, err := compose.Compose(compose.Colored(text, c.palette.forLevel(level)), ambient)
	if err != nil {
		return err
	}
	return c.write(prefix + body + Newline)
}

// Write writes styled text without a timestamp or line terminator
func (c *Console) Write(text string, style opt.Value[codec.Style], fg, bg opt.Value[codec.Color]) error {
	return c.writeStyled(compose.Styled(text, style, fg, bg), "")
}

// WriteLine writes styled text without a timestamp, then a line terminator
func (c *Console) WriteLine(text string, style opt.Value[codec.Style], fg, bg opt.Value[codec.Color]) error {
	return c.writeStyled(compose.Styled(text, style, fg, bg), Newline)
}

// WriteMessage writes a composed message, optionally terminated
func (c *Console) WriteMessage(msg compose.Message, line bool) error {
	term := ""
	if line {
		term = Newline
	}
	return c.writeStyled(msg, term)
}

func (c *Console) writeStyled(msg compose.Message, term string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return nil
	}
	s, err := compose.Compose(msg, c.ambient())
	if err != nil {
		return err
	}
	return c.write(s + term)
}

// WriteString writes s untouched
func (c *Console) WriteString(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(s)
}

// Newline writes a bare line terminator
func (c *Console) Newline() error {
	return c.WriteString(Newline)
}

// Reset writes the full attribute reset
func (c *Console) Reset() error {
	return c.WriteString(codec.Reset)
}

// Clear wipes the surface; a no-op while inactive
func (c *Console) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clear()
}

func (c *Console) clear() error {
	if !c.active {
		return nil
	}
	return c.sink.Clear()
}
