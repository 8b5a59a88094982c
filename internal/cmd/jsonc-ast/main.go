// jsonc-ast parses a JSONC file and prints its syntax tree, or the
// location at a byte offset, for example:
//
//	jsonc-ast tree file.jsonc
//	jsonc-ast locate --offset 42 file.jsonc
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsonc-tools/jsonc/ast"
	"github.com/jsonc-tools/jsonc/parser"
)

var log = logrus.StandardLogger()

func main() {
	os.Exit(Main())
}

// Main runs the command and returns a process exit code. It is split out
// from main so testscript can invoke it in-process via RunMain.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "jsonc-ast",
		Short:         "Inspect the concrete-syntax tree of a JSONC document",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostic detail to stderr")

	root.AddCommand(newTreeCmd(), newLocateCmd())
	return root
}

func newTreeCmd() *cobra.Command {
	var allowTrailingComma, disallowComments bool

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Parse a document and print its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := readInput(args)
			if err != nil {
				return err
			}
			log.Debugf("parsing %s (%d bytes)", name, len(text))

			root, errs := parser.ParseTree(text, parser.Options{
				AllowTrailingComma: allowTrailingComma,
				DisallowComments:   disallowComments,
				AllowEmptyContent:  true,
			})
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s at offset %d\n", name, e.Code, e.Offset)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.Sdump(root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowTrailingComma, "allow-trailing-comma", true, "tolerate a comma before a closing bracket")
	cmd.Flags().BoolVar(&disallowComments, "disallow-comments", false, "report comments as errors instead of skipping them")
	return cmd
}

func newLocateCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "locate [file]",
		Short: "Report the path and context at a byte offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := readInput(args)
			if err != nil {
				return err
			}
			log.Debugf("locating offset %d in %s (%d bytes)", offset, name, len(text))

			loc := parser.GetLocation(text, offset)
			fmt.Fprintf(cmd.OutOrStdout(), "path: %v\n", loc.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "isAtPropertyKey: %v\n", loc.IsAtPropertyKey)
			if loc.PreviousNode != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "previousNode: %s\n", ast.Sdump(loc.PreviousNode))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "byte offset to locate")
	return cmd
}

func readInput(args []string) (text, name string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
