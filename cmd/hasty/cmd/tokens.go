package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/msto63/hasty/foundation/hasty/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err != nil {
		return err
	}

	result, err := engine.Scan(source)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), path, source, err)
	}

	writeTokenTable(cmd.OutOrStdout(), result.Tokens)
	return nil
}

func writeTokenTable(w io.Writer, tokens []token.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Lexeme", "Literal", "Position"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for i, tok := range tokens {
		literal := ""
		if tok.Literal != nil {
			literal = fmt.Sprintf("%v", tok.Literal)
			if r, ok := tok.Literal.(rune); ok {
				literal = fmt.Sprintf("%q", r)
			}
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			tok.Kind.String(),
			tok.Lexeme,
			literal,
			tok.Pos().String(),
		})
	}
	table.Render()
}
