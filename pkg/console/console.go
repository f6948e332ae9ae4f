package console

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tikotako/takonsole/pkg/compose"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/logging"
	"github.com/tikotako/takonsole/pkg/timestamp"
)

// Newline terminates leveled messages and WriteLine output
const Newline = "\n"

// Console is the handle to the output surface
type Console struct {
	mu       sync.Mutex
	active   bool
	platform Platform
	sink     Sink
	settings Settings
	palette  Palette
	stamp    *timestamp.Config
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures a Console at allocation
type Option func(*Console)

// WithPlatform replaces the default stdout platform
func WithPlatform(p Platform) Option {
	return func(c *Console) { c.platform = p }
}

// WithPalette sets the initial semantic colors
func WithPalette(p Palette) Option {
	return func(c *Console) { c.palette = p }
}

// WithTimestamp sets the initial timestamp configuration; nil disables it
func WithTimestamp(cfg *timestamp.Config) Option {
	return func(c *Console) { c.stamp = cfg }
}

// WithEncoding selects the output encoding by IANA name
func WithEncoding(name string) Option {
	return func(c *Console) { c.settings.Encoding = name }
}

// WithClock replaces time.Now for timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

var (
	liveMu sync.Mutex
	live   *Console
)

// Allocate acquires the output surface and returns the live handle. While a
// handle is active it is returned as is and opts are ignored.
func Allocate(title string, opts ...Option) (*Console, error) {
	liveMu.Lock()
	defer liveMu.Unlock()

	if live != nil && live.Active() {
		live.logger.Debug().Str("title", live.settings.Title).Msg("Console already allocated")
		return live, nil
	}

	c := &Console{
		settings: Settings{Title: title},
		palette:  DefaultPalette(),
		stamp:    timestamp.Default(),
		now:      time.Now,
		logger:   logging.GetLogger("console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.platform == nil {
		c.platform = Stdout()
	}

	sink, err := c.platform.Acquire(c.settings)
	if err != nil {
		c.logger.Error().Err(err).Str("title", title).Msg("Failed to acquire console")
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrAlloc, "failed to acquire console")
	}

	c.sink = sink
	c.active = true
	live = c

	c.logger.Debug().
		Str("title", title).
		Str("encoding", c.settings.Encoding).
		Msg("Console allocated")
	return c, nil
}

// Current returns the live handle, or nil when none is allocated
func Current() *Console {
	liveMu.Lock()
	defer liveMu.Unlock()
	return live
}

// Deallocate releases the surface. The handle stays usable but inactive.
func (c *Console) Deallocate() error {
	liveMu.Lock()
	defer liveMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return errors.New(errors.ErrNotActive, "console is not allocated")
	}
	if err := c.platform.Release(); err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return err
		}
		return errors.Wrap(err, errors.ErrFree, "failed to release console")
	}

	c.active = false
	c.sink = nil
	if live == c {
		live = nil
	}
	c.logger.Debug().Str("title", c.settings.Title).Msg("Console deallocated")
	return nil
}

// Active reports whether the handle currently owns the surface
func (c *Console) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Title returns the title the console was allocated with
func (c *Console) Title() string {
	return c.settings.Title
}

// SetFont changes the console font through the platform
func (c *Console) SetFont(name string, size int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return errors.New(errors.ErrNotActive, "cannot set font: console is not allocated")
	}
	if err := c.platform.SetFont(name, size); err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return err
		}
		return errors.Wrapf(err, errors.ErrSetFont, "failed to set font %q", name)
	}
	return nil
}

// FontWidth returns the platform's current glyph width
func (c *Console) FontWidth() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return 0, errors.New(errors.ErrNotActive, "cannot read font width: console is not allocated")
	}
	width, err := c.platform.FontWidth()
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return 0, err
		}
		return 0, errors.Wrap(err, errors.ErrGetFont, "failed to read font width")
	}
	return width, nil
}

func (c *Console) ambient() compose.Ambient {
	return compose.Ambient{Normal: c.palette.Normal, Background: c.palette.Background}
}

// write must be called with c.mu held
func (c *Console) write(s string) error {
	if !c.active || s == "" {
		return nil
	}
	if _, err := c.sink.Write([]byte(s)); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write to console")
	}
	return nil
}
