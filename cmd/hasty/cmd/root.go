package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/hasty/foundation/core/config"
	mdwerror "github.com/msto63/hasty/foundation/core/error"
	mdwlog "github.com/msto63/hasty/foundation/core/log"
	"github.com/msto63/hasty/foundation/hasty"
)

var (
	cfgFile   string
	verbose   bool
	colorFlag string

	cfg    *config.Config
	logger *mdwlog.Logger
	engine *hasty.Engine
)

var rootCmd = &cobra.Command{
	Use:   "hasty",
	Short: "hasty - front end for the hasty language",
	Long: `hasty scans, parses and resolves hasty source files.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree in prefix notation
  check   - resolve names and types and print the annotated tree
  watch   - re-check sources whenever they change

A file argument of "-" reads the source from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HASTY_CONFIG or ./hasty.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always or never")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and returns the process exit status
func Main() int {
	err := Execute()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		printError(err)
	}
	return exitCode(err)
}

// exitCode maps the code of err to a process exit status
func exitCode(err error) int {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code.ExitCode()
	}
	return 2
}

// setup loads the configuration and builds the shared logger and engine
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if colorFlag != "" {
		cfg.Frontend.Color = colorFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, _ := mdwlog.ParseLevel(cfg.General.LogLevel)
	format, _ := mdwlog.ParseFormat(cfg.General.LogFormat)

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	}).WithName("hasty." + cmd.Name())
	if verbose {
		logger.SetLevel(mdwlog.LevelDebug)
	}
	mdwlog.SetDefault(logger)

	engine = hasty.New(hasty.Options{
		Logger:          logger,
		MaxSourceLength: cfg.Frontend.MaxSourceLength,
	})
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
