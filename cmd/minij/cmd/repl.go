package cmd

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/minij/inspect"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Analyze MiniJava interactively",
	Long: `repl starts an interactive session. Every line entered is analyzed as
a MiniJava source, and a summary is printed.

Commands:
  :load <file>   analyze a source file
  :symbols       print the symbol table of the last analysis
  :lookup <name> print the declarations of a name in the last analysis
  :tokens        print the tokens of the last analysis
  :quit          end the session (as does <ctrl>D)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repl, err := readline.New("minij> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		intp := &Intp{repl: repl}
		pterm.Info.Println("Welcome to minij")
		tracer().Infof("Quit with <ctrl>D")
		intp.REPL()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Intp is our interactive session.
type Intp struct {
	repl   *readline.Instance
	report *inspect.Report // last analysis
}

// REPL reads and evaluates lines until end of input or :quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command or analyzes a source line. It returns true if
// the session should end.
func (intp *Intp) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		intp.analyze(line)
		return false
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":load":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :load <file>")
			return false
		}
		b, err := os.ReadFile(fields[1])
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		intp.analyze(string(b))
	case ":symbols":
		if intp.report != nil {
			printSymbols(intp.report)
		}
	case ":lookup":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :lookup <name>")
			return false
		}
		if intp.report != nil {
			printEntries(intp.report.Lookup(fields[1]))
		}
	case ":tokens":
		if intp.report != nil {
			printTokens(intp.report)
		}
	default:
		pterm.Error.Printf("unknown command %s\n", fields[0])
	}
	return false
}

func (intp *Intp) analyze(source string) {
	intp.report = inspect.Inspect(source, options)
	printSummary(intp.report)
	printDiagnostics(intp.report.Diagnostics(), intp.report.Dropped)
}
