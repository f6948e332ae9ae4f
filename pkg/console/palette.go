package console

import (
	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/timestamp"
)

// Palette holds the semantic colors of a console
type Palette struct {
	Normal     codec.Color
	Background codec.Color
	Info       codec.Color
	Warning    codec.Color
	Error      codec.Color
	Timestamp  codec.Color
}

// DefaultPalette returns the colors a new console starts with
func DefaultPalette() Palette {
	return Palette{
		Normal:     codec.LightGray,
		Background: codec.Black,
		Info:       codec.Cyan,
		Warning:    codec.Orange,
		Error:      codec.IndianRed,
		Timestamp:  codec.SlateGray,
	}
}

// Colors returns a copy of the current palette
func (c *Console) Colors() Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.palette
}

// SetNormalColor changes the ambient foreground and, while active, emits it
func (c *Console) SetNormalColor(col codec.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Normal = col
	return c.write(codec.Fragment(false, col))
}

// SetBackgroundColor changes the ambient background and, while active,
// emits it without clearing the surface
func (c *Console) SetBackgroundColor(col codec.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Background = col
	return c.write(codec.Fragment(true, col))
}

// SetConsoleBackground changes the ambient background and, while active,
// clears the surface so it is repainted in the new color
func (c *Console) SetConsoleBackground(col codec.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.palette.Background = col
	if !c.active {
		return nil
	}
	if err := c.write(codec.Fragment(true, col)); err != nil {
		return err
	}
	c.logger.Debug().Str("background", col.Hex()).Msg("Repainting console background")
	return c.clear()
}

// SetInfoColor changes the color used by Info
func (c *Console) SetInfoColor(col codec.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Info = col
}

// SetWarningColor changes the color used by Warn
func (c *Console) SetWarningColor(col codec.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Warning = col
}

// SetErrorColor changes the color used by Error
func (c *Console) SetErrorColor(col codec.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Error = col
}

// SetTimestampColor changes the fallback timestamp foreground
func (c *Console) SetTimestampColor(col codec.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette.Timestamp = col
}

// Timestamp returns a copy of the timestamp configuration, nil when disabled
func (c *Console) Timestamp() *timestamp.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stamp == nil {
		return nil
	}
	cfg := *c.stamp
	return &cfg
}

// SetTimestamp replaces the timestamp configuration; nil disables timestamps
func (c *Console) SetTimestamp(cfg *timestamp.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stamp = cfg
}

// UpdateTimestamp edits the timestamp configuration in place. A disabled
// configuration is re-enabled from the default first.
func (c *Console) UpdateTimestamp(fn func(cfg *timestamp.Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stamp == nil {
		c.stamp = timestamp.Default()
	}
	fn(c.stamp)
}
