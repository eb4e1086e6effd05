// Command waitui parses one waitui source file and writes its AST as a
// Graphviz DOT graph alongside it: open, drive, print, exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/dot"
	"github.com/dunst0/waitui/parser"
	"github.com/dunst0/waitui/sink"
	"github.com/dunst0/waitui/wlog"
)

const (
	exitOK    = 0
	exitParse = 1
	exitOther = 2

	stdinSource = "stdin"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("waitui", flag.ContinueOnError)
	quiet := fs.Bool("quiet", false, "suppress stderr logging")
	debugLexer := fs.Bool("debug-lexer", false, "trace-log every token the lexer produces")
	debugParser := fs.Bool("debug-parser", false, "trace-log every grammar action the parser takes")
	logFile := fs.String("log-file", "", "append all log entries at info level or above to this file")

	if err := fs.Parse(args); err != nil {
		return exitOther
	}

	wlog.SetQuiet(*quiet)
	if *logFile != "" {
		if err := wlog.AddFile(*logFile, wlog.LevelInfo); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitOther
		}
	}

	var debug parser.Debug
	if *debugLexer {
		debug |= parser.DebugLexer
	}
	if *debugParser {
		debug |= parser.DebugParser
	}

	sourceFileName := stdinSource
	if fs.NArg() > 0 {
		sourceFileName = fs.Arg(0)
	}

	workingDirectory := ""
	if sourceFileName != stdinSource {
		workingDirectory = filepath.Dir(sourceFileName)
	}

	d, err := parser.New(sourceFileName, workingDirectory, debug)
	if err != nil {
		wlog.Error("%v", err)
		return exitOther
	}
	defer d.Destroy()

	if err := d.Parse(context.Background()); err != nil {
		wlog.Error("%v", err)
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return exitOther
		}
		return exitParse
	}

	program := d.GetAST()
	defer ast.Destroy(program)

	if err := writeDot(sourceFileName, program); err != nil {
		wlog.Error("%v", err)
		return exitOther
	}

	return exitOK
}

// writeDot renders program to "<sourceFileName>.dot", or to stdout when
// reading from stdin leaves no path to derive one from.
func writeDot(sourceFileName string, program *ast.Program) error {
	if sourceFileName == stdinSource {
		out := sink.NewBuffer()
		dot.NewPrinter(out).Print(program)
		_, err := fmt.Print(out.String())
		return err
	}

	outPath := sourceFileName + ".dot"
	f, err := sink.NewFile(outPath)
	if err != nil {
		return err
	}
	dot.NewPrinter(f).Print(program)
	return f.Close()
}
