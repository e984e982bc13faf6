package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/hasty/foundation/hasty/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree in prefix notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err != nil {
		return err
	}

	result, err := engine.Parse(source)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), path, source, err)
	}

	if result.Tree.Len() > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ast.PrintRoots(result.Tree))
	}
	return nil
}
