package takonsole

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/tikotako/takonsole/internal/version"
	"github.com/tikotako/takonsole/pkg/codec"
	"github.com/tikotako/takonsole/pkg/config"
	"github.com/tikotako/takonsole/pkg/console"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/logging"
	"github.com/tikotako/takonsole/pkg/opt"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withConsole(cmd, func(c *console.Console) error {
				return c.Test()
			})
		},
	}
}

func newWriteCmd(a *app) *cobra.Command {
	var (
		style, fg, bg string
		noNewline     bool
	)

	cmd := &cobra.Command{
		Use:   "write <text>...",
		Short: MsgWriteShort,
		Example: `  takonsole write --style bold --fg red "build failed"
  takonsole write --style "reverse|underline" --bg "#303030" -n "no newline"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := codec.ParseStyle(style)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgUnknownFlag, "style")
			}
			fgColor, err := colorFlag("fg", fg)
			if err != nil {
				return err
			}
			bgColor, err := colorFlag("bg", bg)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			return a.withConsole(cmd, func(c *console.Console) error {
				if noNewline {
					return c.Write(text, s, fgColor, bgColor)
				}
				return c.WriteLine(text, s, fgColor, bgColor)
			})
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", MsgFlagStyle)
	cmd.Flags().StringVar(&fg, "fg", "", MsgFlagForeground)
	cmd.Flags().StringVar(&bg, "bg", "", MsgFlagBackground)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	_ = cmd.RegisterFlagCompletionFunc("fg", completeColors)
	_ = cmd.RegisterFlagCompletionFunc("bg", completeColors)
	return cmd
}

func colorFlag(name, value string) (opt.Value[codec.Color], error) {
	if value == "" {
		return opt.None[codec.Color](), nil
	}
	c, err := codec.ParseColor(value)
	if err != nil {
		return opt.None[codec.Color](), errors.Wrapf(err, errors.ErrInvalidInput, MsgUnknownFlag, name)
	}
	return opt.Some(c), nil
}

func completeColors(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return codec.ColorNames(), cobra.ShellCompDirectiveNoFileComp
}

// maxLineBytes bounds a single line read from standard input
const maxLineBytes = 16 * 1024 * 1024

// newLevelCmd builds one of normal, info, warn and error. Without arguments
// the lines of standard input are written one message each.
func newLevelCmd(a *app, level console.Level) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   level.String() + " [text]...",
		Short: fmt.Sprintf(MsgLevelShort, level),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withConsole(cmd, func(c *console.Console) error {
				var out console.Leveled = c
				if prefix != "" {
					out = console.Prefixed(out, prefix)
				}

				if len(args) > 0 {
					return logAt(out, level, strings.Join(args, " "))
				}
				scanner := bufio.NewScanner(cmd.InOrStdin())
				scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
				lines := 0
				for scanner.Scan() {
					lines++
					if err := logAt(out, level, scanner.Text()); err != nil {
						return err
					}
				}
				if err := scanner.Err(); err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "failed to read standard input")
				}
				if lines == 0 {
					return errors.New(errors.ErrInvalidInput, MsgNoText)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", MsgFlagPrefix)
	return cmd
}

func logAt(l console.Leveled, level console.Level, text string) error {
	switch level {
	case console.LevelInfo:
		return l.Info(text)
	case console.LevelWarn:
		return l.Warn(text)
	case console.LevelError:
		return l.Error(text)
	default:
		return l.Normal(text)
	}
}

func newClearCmd(a *app) *cobra.Command {
	var bg string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: MsgClearShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := colorFlag("background", bg)
			if err != nil {
				return err
			}
			return a.withConsole(cmd, func(c *console.Console) error {
				if bgColor, ok := color.Get(); ok {
					return c.SetConsoleBackground(bgColor)
				}
				return c.Clear()
			})
		},
	}

	cmd.Flags().StringVar(&bg, "background", "", MsgFlagClearBg)
	_ = cmd.RegisterFlagCompletionFunc("background", completeColors)
	return cmd
}

func newPaletteCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: MsgPaletteShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			label := lipgloss.NewRenderer(cmd.OutOrStdout()).NewStyle().Bold(true).Width(12)

			return a.withConsole(cmd, func(c *console.Console) error {
				p := c.Colors()
				entries := []struct {
					name  string
					color codec.Color
				}{
					{"normal", p.Normal},
					{"background", p.Background},
					{"info", p.Info},
					{"warning", p.Warning},
					{"error", p.Error},
					{"timestamp", p.Timestamp},
				}
				if all {
					for _, name := range codec.ColorNames() {
						color, _ := codec.ParseColor(name)
						entries = append(entries, struct {
							name  string
							color codec.Color
						}{name, color})
					}
				}

				for _, e := range entries {
					if err := c.WriteString(label.Render(e.name) + " "); err != nil {
						return err
					}
					if err := c.Write("      ", opt.None[codec.Style](), opt.None[codec.Color](), opt.Some(e.color)); err != nil {
						return err
					}
					if err := c.WriteString(" " + e.color.Hex() + console.Newline); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAllColors)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return err
			}
			data, err := a.cfg.Marshal(format)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgUnknownFlag, "format")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "takonsole version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletion,
		Long: `To load completions:

Bash:
  $ source <(takonsole completion bash)

Zsh:
  $ takonsole completion zsh > "${fpath[1]}/_takonsole"

Fish:
  $ takonsole completion fish | source

PowerShell:
  PS> takonsole completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.completion")
			out := cmd.OutOrStdout()

			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				logger.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Long:  MsgManLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "cannot create man directory %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "TAKONSOLE",
				Section: "1",
				Source:  "takonsole " + version.Version,
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.man")
			logger.Info().Str("dir", dir).Msg("Man pages written")
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", MsgFlagManDir)
	_ = cmd.MarkFlagDirname("dir")
	return cmd
}
