package config

import (
	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/console"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/logging"
	"github.com/tikotako/takonsole/pkg/opt"
	"github.com/tikotako/takonsole/pkg/timestamp"
)

// Config is the complete takonsole configuration
type Config struct {
	Console   Console   `koanf:"console" toml:"console" yaml:"console"`
	Palette   Palette   `koanf:"palette" toml:"palette" yaml:"palette"`
	Timestamp Timestamp `koanf:"timestamp" toml:"timestamp" yaml:"timestamp"`
	Logging   Logging   `koanf:"logging" toml:"logging" yaml:"logging"`
}

// Console holds allocation settings
type Console struct {
	Title    string `koanf:"title" toml:"title" yaml:"title"`
	Encoding string `koanf:"encoding" toml:"encoding" yaml:"encoding"`
}

// Palette holds the semantic colors
type Palette struct {
	Normal     codec.Color `koanf:"normal" toml:"normal" yaml:"normal"`
	Background codec.Color `koanf:"background" toml:"background" yaml:"background"`
	Info       codec.Color `koanf:"info" toml:"info" yaml:"info"`
	Warning    codec.Color `koanf:"warning" toml:"warning" yaml:"warning"`
	Error      codec.Color `koanf:"error" toml:"error" yaml:"error"`
	Timestamp  codec.Color `koanf:"timestamp" toml:"timestamp" yaml:"timestamp"`
}

// Timestamp holds the timestamp prefix settings. Empty strings leave the
// style or color unspecified.
type Timestamp struct {
	Enabled    bool   `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	Mode       string `koanf:"mode" toml:"mode" yaml:"mode"`
	Format     string `koanf:"format" toml:"format" yaml:"format"`
	Style      string `koanf:"style" toml:"style" yaml:"style"`
	Foreground string `koanf:"foreground" toml:"foreground" yaml:"foreground"`
	Background string `koanf:"background" toml:"background" yaml:"background"`
}

// Logging holds logger settings
type Logging struct {
	Verbosity   int    `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
	File        string `koanf:"file" toml:"file" yaml:"file"`
	DisableFile bool   `koanf:"disable_file" toml:"disable_file" yaml:"disable_file"`
	MaxSizeMB   int    `koanf:"max_size_mb" toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups  int    `koanf:"max_backups" toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays  int    `koanf:"max_age_days" toml:"max_age_days" yaml:"max_age_days"`
}

// ConsolePalette converts the palette for the console package
func (c *Config) ConsolePalette() console.Palette {
	return console.Palette{
		Normal:     c.Palette.Normal,
		Background: c.Palette.Background,
		Info:       c.Palette.Info,
		Warning:    c.Palette.Warning,
		Error:      c.Palette.Error,
		Timestamp:  c.Palette.Timestamp,
	}
}

// TimestampConfig builds the timestamp configuration; nil when disabled
func (c *Config) TimestampConfig() (*timestamp.Config, error) {
	ts := c.Timestamp
	if !ts.Enabled {
		return nil, nil
	}

	mode, err := timestamp.ParseMode(ts.Mode)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid timestamp.mode")
	}
	style, err := codec.ParseStyle(ts.Style)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid timestamp.style")
	}
	fg, err := optionalColor(ts.Foreground)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid timestamp.foreground")
	}
	bg, err := optionalColor(ts.Background)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid timestamp.background")
	}

	return &timestamp.Config{
		Mode:       mode,
		Format:     ts.Format,
		Style:      style,
		Foreground: fg,
		Background: bg,
	}, nil
}

// ConsoleOptions returns the allocation options this configuration implies
func (c *Config) ConsoleOptions() ([]console.Option, error) {
	stamp, err := c.TimestampConfig()
	if err != nil {
		return nil, err
	}
	return []console.Option{
		console.WithPalette(c.ConsolePalette()),
		console.WithTimestamp(stamp),
		console.WithEncoding(c.Console.Encoding),
	}, nil
}

// LoggingOptions returns the logger options this configuration implies
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Verbosity:   c.Logging.Verbosity,
		File:        c.Logging.File,
		DisableFile: c.Logging.DisableFile,
		MaxSizeMB:   c.Logging.MaxSizeMB,
		MaxBackups:  c.Logging.MaxBackups,
		MaxAgeDays:  c.Logging.MaxAgeDays,
	}
}

func optionalColor(s string) (opt.Value[codec.Color], error) {
	if s == "" {
		return opt.None[codec.Color](), nil
	}
	c, err := codec.ParseColor(s)
	if err != nil {
		return opt.None[codec.Color](), err
	}
	return opt.Some(c), nil
}
