package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
	"github.com/msto63/hasty/foundation/hasty/ast"
	"github.com/msto63/hasty/foundation/hasty/diag"
)

// reportedError marks an error whose diagnostics were already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// readSource reads a file, or stdin for "-"
func readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot read source").
			WithCode(mdwerror.CodeIOError).
			WithOperation("cli.read").
			WithDetail("path", path)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// useColor decides whether output to w is styled
func useColor(w io.Writer) bool {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return cfg.UseColor(tty)
}

// reportFailure prints err for a source file and marks it reported
func reportFailure(w io.Writer, path, source string, err error) error {
	fmt.Fprintln(w, diag.Describe(err, source, diag.Options{
		Color:    useColor(w),
		Filename: displayName(path),
	}))
	return &reportedError{err: err}
}

// treeGenerator writes a tree in prefix notation, one statement per line
type treeGenerator struct {
	annotate bool
}

func (g treeGenerator) Generate(tree *ast.Tree, w io.Writer) error {
	p := &ast.Printer{Annotate: g.annotate}
	for _, root := range tree.Roots() {
		if _, err := fmt.Fprintln(w, p.Print(tree, root)); err != nil {
			return err
		}
	}
	return nil
}
