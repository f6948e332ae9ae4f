package takonsole

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tikotako/takonsole/internal/version"
	"github.com/tikotako/takonsole/pkg/cobrax/topics"
	"github.com/tikotako/takonsole/pkg/config"
	"github.com/tikotako/takonsole/pkg/console"
	"github.com/tikotako/takonsole/pkg/logging"
)

//go:embed help/*.md
var helpFiles embed.FS

// app carries the global flags and the configuration they resolve to
type app struct {
	verbosity   int
	configPath  string
	overrides   []string
	noTimestamp bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "takonsole",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(usageTemplate)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)
	flags.BoolVar(&a.noTimestamp, "no-timestamp", false, MsgFlagNoTimestamp)

	rootCmd.AddGroup(
		&cobra.Group{ID: "output", Title: "Output Commands:"},
		&cobra.Group{ID: "misc", Title: "Misc Commands:"},
	)

	for _, cmd := range []*cobra.Command{
		newDemoCmd(a),
		newWriteCmd(a),
		newLevelCmd(a, console.LevelNormal),
		newLevelCmd(a, console.LevelInfo),
		newLevelCmd(a, console.LevelWarn),
		newLevelCmd(a, console.LevelError),
		newClearCmd(a),
	} {
		cmd.GroupID = "output"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newPaletteCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	} {
		cmd.GroupID = "misc"
		rootCmd.AddCommand(cmd)
	}

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return err
	}
	tm, err := topics.Load(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(stdoutIsTerminal()),
	})
	if err != nil {
		return err
	}
	tm.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")
	return nil
}

// load resolves the configuration and sets up logging
func (a *app) load(cmd *cobra.Command) error {
	overrides, err := config.ParseOverrides(a.overrides)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	if a.noTimestamp {
		cfg.Timestamp.Enabled = false
	}

	opts := cfg.LoggingOptions()
	if a.verbosity > opts.Verbosity {
		opts.Verbosity = a.verbosity
	}
	logging.Setup(opts)
	logging.LogCommand(cmd.CommandPath(), cmd.Flags().Args())

	a.cfg = cfg
	return nil
}

// withConsole allocates a console writing to the command's output, runs fn
// and releases the console again
func (a *app) withConsole(cmd *cobra.Command, fn func(c *console.Console) error) error {
	defer logging.LogDuration(time.Now(), cmd.CommandPath())
	logger := logging.WithFields(map[string]interface{}{
		"command":  cmd.CommandPath(),
		"title":    a.cfg.Console.Title,
		"encoding": a.cfg.Console.Encoding,
	})

	opts, err := a.cfg.ConsoleOptions()
	if err != nil {
		return err
	}
	opts = append(opts, console.WithPlatform(console.NewTerminalPlatform(cmd.OutOrStdout())))

	c, err := console.Allocate(a.cfg.Console.Title, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to allocate console")
		return err
	}
	logger.Debug().Msg("Console ready")
	defer func() {
		if err := c.Deallocate(); err != nil {
			logger.Error().Err(err).Msg("Failed to release console")
		}
	}()

	return fn(c)
}
