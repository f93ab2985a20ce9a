package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elmotec/makemock/internal/generator"
	"github.com/elmotec/makemock/internal/parser"
)

var (
	outputPath    string
	targetClass   string
	delegate      bool
	recordHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "makemock INPUT",
	Short: "Generate Google Mock declarations from a C++ header",
	Long: `makemock - regex based mock generator for C++ headers

Reads a header (or snippet), extracts virtual method declarations and
prints the matching MOCK_METHOD macro invocations. The scan is lexical,
not a compiler front end; declarations it cannot read are skipped
silently. Notably unsupported: operator overloads, preprocessor macros.

Example:
  makemock widget.h
  makemock widget.h -c Widget -o widget_mock.h
  makemock widget.h --delegate`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New(`Missing argument "INPUT".`)
		}
		if len(args) > 1 {
			return fmt.Errorf("Got unexpected extra arguments (%s)", strings.Join(args[1:], " "))
		}
		return nil
	},
	RunE: runGenerate,
}

// Execute runs the root command. Usage errors exit with code 2, matching
// the conventional CLI contract for bad arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringVarP(&targetClass, "target-class", "c", "", "restrict extraction to one class")
	rootCmd.Flags().BoolVarP(&delegate, "delegate", "d", false, "append ON_CALL default delegation statements")
	rootCmd.Flags().BoolVar(&recordHistory, "history", false, "record this run in .makemock/history.db")

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf(`Invalid value for "INPUT": %v`, err)
	}

	scoped := parser.SelectScope(string(data), targetClass)
	sigs := parser.ExtractSignatures(scoped)
	generated := generator.Render(sigs, delegate)

	if outputPath == "" || outputPath == "-" {
		fmt.Fprint(cmd.OutOrStdout(), generated)
	} else if err := os.WriteFile(outputPath, []byte(generated), 0644); err != nil {
		return fmt.Errorf(`Invalid value for "--output": %v`, err)
	}

	if recordHistory {
		recordRun(input, targetClass, len(sigs))
	}
	return nil
}
