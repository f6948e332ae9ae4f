package console

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/tikotako/takonsole/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// TerminalPlatform writes to a regular output stream
type TerminalPlatform struct {
	out       io.Writer
	terminal  bool
	restoreVT func() error
}

// Replaced in tests.
var (
	isTerminal = func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	enableVT = func(f *os.File) (func() error, error) {
		return termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(f))
	}
)

// NewTerminalPlatform returns a platform writing to out
func NewTerminalPlatform(out io.Writer) *TerminalPlatform {
	return &TerminalPlatform{out: out}
}

// Stdout returns a platform writing to the process's standard output
func Stdout() *TerminalPlatform {
	return NewTerminalPlatform(os.Stdout)
}

// Terminal reports whether the last acquired stream is a terminal
func (p *TerminalPlatform) Terminal() bool {
	return p.terminal
}

// Acquire wraps the stream for VT output in the requested encoding. A
// terminal gets virtual terminal processing switched on until Release.
func (p *TerminalPlatform) Acquire(settings Settings) (Sink, error) {
	enc, err := lookupEncoding(settings.Encoding)
	if err != nil {
		return nil, err
	}

	w := p.out
	p.terminal = false
	if f, ok := p.out.(*os.File); ok {
		p.terminal = isTerminal(f)
		w = colorable.NewColorable(f)
		if p.terminal {
			restore, err := enableVT(f)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrSetMode, "failed to enable virtual terminal processing")
			}
			p.restoreVT = restore
		}
	}

	sink := &streamSink{w: w, out: termenv.NewOutput(w)}
	if enc != nil {
		sink.enc = encoding.ReplaceUnsupported(enc.NewEncoder())
	}

	if p.terminal && settings.Title != "" {
		sink.out.SetWindowTitle(settings.Title)
	}
	return sink, nil
}

// Release restores the terminal mode changed by Acquire
func (p *TerminalPlatform) Release() error {
	restore := p.restoreVT
	p.restoreVT = nil
	if restore == nil {
		return nil
	}
	if err := restore(); err != nil {
		return errors.Wrap(err, errors.ErrSetMode, "failed to restore terminal mode")
	}
	return nil
}

// SetFont is not available on a plain stream
func (p *TerminalPlatform) SetFont(name string, size int) error {
	return errors.Newf(errors.ErrSetFont, "cannot set font %q: not supported by a terminal stream", name)
}

// FontWidth cannot be queried from a plain stream
func (p *TerminalPlatform) FontWidth() (int, error) {
	return 0, errors.New(errors.ErrGetFont, "cannot read font width: not supported by a terminal stream")
}

// lookupEncoding returns nil for UTF-8, which needs no transcoding
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "unknown encoding %q", name)
	}
	if enc == nil {
		return nil, errors.Newf(errors.ErrEncoding, "encoding %q is not supported", name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

type streamSink struct {
	w   io.Writer
	out *termenv.Output
	enc *encoding.Encoder
}

func (s *streamSink) Write(p []byte) (int, error) {
	if s.enc == nil {
		return s.w.Write(p)
	}
	b, err := s.enc.Bytes(p)
	if err != nil {
		return 0, err
	}
	if _, err := s.w.Write(b); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *streamSink) Clear() error {
	s.out.ClearScreen()
	return nil
}
