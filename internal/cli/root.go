package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rulego/colexpr"
	"github.com/rulego/colexpr/engine/local"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	LogLevel string
	Format   string // "text" | "json" | "yaml"
	TimeZone string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the colexpr CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "colexpr",
		Short: "Build, inspect and evaluate column expressions",
		Long: `colexpr builds column expressions against the function catalog,
assigns timestamps to tumbling and sliding windows and evaluates
expressions over rows with the local engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("format %q must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := time.LoadLocation(opts.TimeZone); err != nil {
				return WrapExitError(ExitCommandError, "invalid flag", err)
			}
			if _, err := logger.ParseLevel(strings.ToUpper(opts.LogLevel)); err != nil {
				return WrapExitError(ExitCommandError, "invalid flag", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr, same as --log-level debug")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "stderr log level (debug|info|warn|error|off)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.TimeZone, "timezone", "UTC", "time zone for rendering and parsing timestamps")

	cmd.AddCommand(NewFunctionsCommand(opts))
	cmd.AddCommand(NewWindowCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) location() *time.Location {
	loc, err := time.LoadLocation(o.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (o *RootOptions) logger(stderr io.Writer) logger.Logger {
	if o.Verbose {
		return logger.NewLogger(logger.DEBUG, stderr)
	}
	level, err := logger.ParseLevel(strings.ToUpper(o.LogLevel))
	if err != nil || level == logger.OFF {
		return logger.NewDiscardLogger()
	}
	return logger.NewLogger(level, stderr)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// builder 带本地引擎的构建器，引擎使用 config 中的时区
func (o *RootOptions) builder(cmd *cobra.Command, config types.Config, schema []string) (*colexpr.Builder, *local.Engine) {
	log := o.logger(cmd.ErrOrStderr())
	engOpts := []local.Option{local.WithConfig(config), local.WithLogger(log)}
	if len(schema) > 0 {
		engOpts = append(engOpts, local.WithSchema(schema...))
	}
	eng := local.New(engOpts...)
	b := colexpr.New(
		colexpr.WithLogger(log),
		colexpr.WithConfig(config),
		colexpr.WithEngine(eng),
	)
	return b, eng
}
