package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/msto63/hasty/foundation/core/config"
	mdwlog "github.com/msto63/hasty/foundation/core/log"
)

var quiet bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Resolve names and types and print the annotated tree",
	Long: `Checks every file independently. Each file stops at its first error;
the command reports all failing files and exits non-zero if any failed.
When files fail in different ways the highest exit status among them
wins, so an unreadable file is never hidden behind a source diagnostic.

The output follows frontend.emit in the configuration: "tokens" prints
the token table, "ast" the plain tree and "resolved" the tree with type
and binding annotations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print diagnostics only")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var result *multierror.Error

	for _, path := range args {
		if err := checkFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, len(args) > 1); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		// The most severe failure leads, so it decides the exit status
		sort.SliceStable(result.Errors, func(i, j int) bool {
			return exitCode(result.Errors[i]) > exitCode(result.Errors[j])
		})
		logger.Debug("Check failed", mdwlog.Fields{
			"files":  len(args),
			"failed": len(result.Errors),
		})
		return &reportedError{err: result}
	}
	return nil
}

// checkFile runs the pipeline on one file and prints either its output or
// its diagnostic
func checkFile(out, errOut io.Writer, path string, header bool) error {
	source, err := readSource(path)
	if err != nil {
		return reportFailure(errOut, path, "", err)
	}

	var w io.Writer = io.Discard
	if !quiet {
		w = out
		if header {
			fmt.Fprintf(out, "== %s\n", displayName(path))
		}
	}

	switch cfg.Frontend.Emit {
	case config.EmitTokens:
		result, err := engine.Scan(source)
		if err != nil {
			return reportFailure(errOut, path, source, err)
		}
		if !quiet {
			writeTokenTable(w, result.Tokens)
		}
	default:
		gen := treeGenerator{annotate: cfg.Frontend.Emit == config.EmitResolved}
		if _, err := engine.Compile(source, gen, w); err != nil {
			return reportFailure(errOut, path, source, err)
		}
	}
	return nil
}
