package console

import (
	"fmt"
	"strings"

	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/compose"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/opt"
	"github.com/tikotako/takonsole/pkg/timestamp"
)

// rampSteps covers channel values 0 through 254
const rampSteps = 255

type ramp func(i uint8) codec.Color

var ramps = []struct {
	ramp    ramp
	reverse bool
}{
	{func(i uint8) codec.Color { return codec.RGB(i, 0, 0) }, false},
	{func(i uint8) codec.Color { return codec.RGB(0, i, 0) }, true},
	{func(i uint8) codec.Color { return codec.RGB(0, 0, i) }, false},
	{func(i uint8) codec.Color { return codec.RGB(i, i, 0) }, true},
	{func(i uint8) codec.Color { return codec.RGB(i, 0, i) }, false},
	{func(i uint8) codec.Color { return codec.RGB(0, i, i) }, true},
	{func(i uint8) codec.Color { return codec.RGB(i, i, i) }, false},
}

// Test prints every level in every timestamp mode, seven color ramps, every
// named foreground on every named background and a reverse-video banner. The timestamp configuration is restored afterwards.
func (c *Console) Test() error {
	if !c.Active() {
		return errors.New(errors.ErrNotActive, "cannot run self-test: console is not allocated")
	}

	saved := c.Timestamp()
	defer c.SetTimestamp(saved)

	for _, mode := range []timestamp.Mode{timestamp.LocalDateTime, timestamp.DateOnly, timestamp.TimeOnly} {
		c.SetTimestamp(&timestamp.Config{Mode: mode})
		for _, line := range []struct {
			level Level
			text  string
		}{
			{LevelNormal, "timestamped normal text"},
			{LevelInfo, "timestamped information text"},
			{LevelWarn, "timestamped warning text"},
			{LevelError, "timestamped error text"},
		} {
			if err := c.Log(line.level, line.text); err != nil {
				return err
			}
		}
	}

	for _, r := range ramps {
		if err := c.WriteString(c.renderRamp(r.ramp, r.reverse)); err != nil {
			return err
		}
	}
	if err := c.WriteString(Newline + Newline); err != nil {
		return err
	}
	if err := c.writeColorGrid(); err != nil {
		return err
	}

	banner := compose.Styled("DONE", opt.Some(codec.Reverse), opt.Some(codec.BlueViolet), opt.None[codec.Color]())
	if err := c.WriteString("done "); err != nil {
		return err
	}
	if err := c.WriteMessage(banner, false); err != nil {
		return err
	}
	return c.WriteString(" done" + Newline)
}

func (c *Console) renderRamp(r ramp, reverse bool) string {
	ambient := c.Colors()
	var b strings.Builder
	for i := 0; i < rampSteps; i++ {
		v := uint8(i)
		if reverse {
			v = uint8(rampSteps - 1 - i)
		}
		// Plain colored messages cannot fail to compose.
		s, _ := compose.Compose(compose.Colored("#", r(v)), compose.Ambient{Normal: ambient.Normal, Background: ambient.Background})
		b.WriteString(s)
	}
	return b.String()
}

// writeColorGrid prints one row per named background with a "#" in every
// named foreground. Each row ends on the ambient colors.
func (c *Console) writeColorGrid() error {
	names := codec.ColorNames()
	colors := make([]codec.Color, len(names))
	for i, name := range names {
		colors[i], _ = codec.ParseColor(name)
	}

	if err := c.WriteString(fmt.Sprintf("Named colors = %d%s", len(colors), Newline)); err != nil {
		return err
	}

	ambient := c.Colors()
	restore := codec.Fragment(true, ambient.Background) + codec.Fragment(false, ambient.Normal) + Newline
	for _, bg := range colors {
		var b strings.Builder
		for _, fg := range colors {
			b.WriteString(codec.Fragment(false, fg))
			b.WriteString(codec.Fragment(true, bg))
			b.WriteString("#")
		}
		b.WriteString(restore)
		if err := c.WriteString(b.String()); err != nil {
			return err
		}
	}
	return c.WriteString(Newline)
}
