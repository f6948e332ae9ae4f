package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/compose"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/opt"
)

var (
	ambient = compose.Ambient{Normal: codec.LightGray, Background: codec.Black}
	instant = time.Date(2024, time.March, 7, 15, 4, 5, 0, time.Local)
)

func TestRender_Nil(t *testing.T) {
	got, err := Render(nil, instant, codec.SlateGray, ambient)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRender_Modes(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		text string
	}{
		{"default", Default(), "[3/7/2024 3:04:05 PM] "},
		{"date_only", &Config{Mode: DateOnly}, "[3/7/2024] "},
		{"time_only", &Config{Mode: TimeOnly}, "[3:04 PM] "},
		{"custom_wins_over_mode", &Config{Mode: DateOnly, Format: "15:04:05.000"}, "[15:04:05.000] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.cfg, instant, codec.SlateGray, ambient)
			require.NoError(t, err)

			want := codec.Fragment(false, codec.SlateGray) + tt.text + codec.Fragment(false, ambient.Normal)
			assert.Equal(t, want, got)
		})
	}
}

func TestRender_OwnStyleAndColors(t *testing.T) {
	cfg := &Config{
		Mode:       TimeOnly,
		Style:      opt.Some(codec.Bold),
		Foreground: opt.Some(codec.Yellow),
		Background: opt.Some(codec.Blue),
	}

	got, err := Render(cfg, instant, codec.SlateGray, ambient)
	require.NoError(t, err)

	want := "\x1b[1m" +
		codec.Fragment(false, codec.Yellow) +
		codec.Fragment(true, codec.Blue) +
		"[3:04 PM] " +
		codec.Fragment(true, ambient.Background) +
		codec.Fragment(false, ambient.Normal) +
		"\x1b[22m"
	assert.Equal(t, want, got)
}

func TestRender_TimestampColorEqualToNormal(t *testing.T) {
	got, err := Render(&Config{Mode: DateOnly}, instant, ambient.Normal, ambient)
	require.NoError(t, err)
	assert.Equal(t, codec.Fragment(false, ambient.Normal)+"[3/7/2024] ", got)
}

func TestRender_BadStyle(t *testing.T) {
	cfg := &Config{Style: opt.Some(codec.Style(0))}
	_, err := Render(cfg, instant, codec.SlateGray, ambient)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedStyle))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": LocalDateTime, "datetime": LocalDateTime, "DATE": DateOnly, "time": TimeOnly} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("week")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	for _, m := range []Mode{LocalDateTime, DateOnly, TimeOnly} {
		back, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}
