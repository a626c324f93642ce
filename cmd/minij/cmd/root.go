/*
Package cmd implements the sub-commands of the minij command line tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tracer traces with key 'minij.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("minij.cmd")
}

// traceKeys are the tracers of all packages of the analyzer.
var traceKeys = []string{"minij.cmd", "minij.scanner", "minij.parser", "minij.symtab", "minij.inspect"}

var (
	cfgFile         string
	traceLevel      string
	libraryKeywords bool
	errorLimit      int
)

// options are the analysis options in effect, set up before any sub-command
// runs.
var options = config.Default()

var rootCmd = &cobra.Command{
	Use:   "minij",
	Short: "minij - scanner and symbol table builder for MiniJava",
	Long: `minij analyzes MiniJava source text, a subset of Java.

The scanner splits the source into tokens, the parser checks the program
structure and builds a symbol table of classes, methods, parameters and
variables. Malformed input is reported as diagnostics.

Sources are read from a file or, if none is given, from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command given on the command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errDiagnostics) {
		pterm.Error.Println(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolVar(&libraryKeywords, "library-keywords", true,
		"reserve System, out and print as keywords")
	rootCmd.PersistentFlags().IntVar(&errorLimit, "error-limit", minij.DefaultErrorLimit,
		"maximum number of lexical and of syntax errors reported")
}

// setup merges the config file with the command line flags. Flags given
// explicitly take precedence.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	opts := config.Default()
	if cfgFile != "" {
		var err error
		if opts, err = config.Load(cfgFile); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		opts.TraceLevel = traceLevel
	}
	if flags.Changed("library-keywords") {
		opts.LibraryKeywords = libraryKeywords
	}
	if flags.Changed("error-limit") {
		opts.ErrorLimit = errorLimit
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	level := tracing.TraceLevelFromString(opts.TraceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("options: %+v", opts)
	options = opts
	return nil
}

// readSource reads the source text from the file named by the first
// argument, or from stdin if there is no argument. It returns the source
// text and a name for it.
func readSource(args []string) (string, string, error) {
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("cannot read source: %w", err)
		}
		return string(b), args[0], nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", errors.New("no source file given and stdin is a terminal")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("cannot read source from stdin: %w", err)
	}
	return string(b), "<stdin>", nil
}

// errDiagnostics signals that an analysis reported diagnostics. The
// diagnostics have already been printed.
var errDiagnostics = errors.New("source has diagnostics")
