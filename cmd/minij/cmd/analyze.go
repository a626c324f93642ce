package cmd

import (
	"fmt"

	"github.com/npillmayer/minij/inspect"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyze(args)
		if err != nil {
			return err
		}
		printTokens(report)
		printDiagnostics(report.LexErrors, 0)
		return nil
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols [file]",
	Short: "Print the symbol table of a source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyze(args)
		if err != nil {
			return err
		}
		printSymbols(report)
		printOwnerTree(report)
		printDiagnostics(report.Diagnostics(), report.Dropped)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report lexical and syntax errors of a source",
	Long: `check analyzes a source and prints its diagnostics only.
It exits with a non-zero status if there are any.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyze(args)
		if err != nil {
			return err
		}
		if report.OK() {
			pterm.Success.Println("no errors")
			return nil
		}
		printDiagnostics(report.Diagnostics(), report.Dropped)
		return fmt.Errorf("%d errors: %w", len(report.Diagnostics())+report.Dropped, errDiagnostics)
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(checkCmd)
}

func analyze(args []string) (*inspect.Report, error) {
	source, name, err := readSource(args)
	if err != nil {
		return nil, err
	}
	tracer().Infof("analyzing %s", name)
	return inspect.Inspect(source, options), nil
}
