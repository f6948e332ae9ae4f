package takonsole

// Message constants
const (
	MsgRootShort = "Styled, timestamped terminal output"
	MsgRootLong  = `takonsole writes styled, colored and timestamped text to the terminal
using ANSI escape sequences. It is the command line face of the takonsole
library: every command allocates a console, writes through it and releases
it again.

Run 'takonsole demo' to see what the terminal makes of it.`

	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/takonsole/config.toml)"
	MsgFlagSet         = "Override a config key, e.g. --set palette.info=#00ff00"
	MsgFlagNoTimestamp = "Disable the timestamp prefix"
	MsgFlagStyle       = "Font style: bold, underline, reverse, normal or a combination such as bold|underline"
	MsgFlagForeground  = "Foreground color: a name, #rrggbb or r,g,b"
	MsgFlagBackground  = "Background color: a name, #rrggbb or r,g,b"
	MsgFlagNoNewline   = "Do not terminate the text with a newline"
	MsgFlagPrefix      = "Prefix every line with this text"
	MsgFlagFormat      = "Output format: toml or yaml"
	MsgFlagDefaults    = "Print the embedded defaults instead of the effective configuration"
	MsgFlagAllColors   = "Also list every named color"
	MsgFlagClearBg     = "Repaint the surface with this background color"

	MsgDemoShort    = "Print the self-test: every level in every timestamp mode, color ramps and a banner"
	MsgWriteShort   = "Write text with an explicit style and colors, without a timestamp"
	MsgLevelShort   = "Write a %s message with the configured timestamp"
	MsgPaletteShort = "Show the configured palette"
	MsgConfigShort  = "Print the effective configuration"
	MsgClearShort   = "Clear the terminal"
	MsgVersionShort = "Print version information"
	MsgCompletion   = "Generate shell completion script"
	MsgManShort     = "Generate man pages"
	MsgManLong      = `Generate one man page per command (takonsole.1, takonsole-write.1, ...)
into the given directory.`
	MsgManWritten = "Man pages written to %s\n"
	MsgFlagManDir = "Directory the man pages are written to"

	MsgNoCommand   = "no command specified"
	MsgNoText      = "no text given"
	MsgUnknownFlag = "invalid --%s value"
)
