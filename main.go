package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/avahowell/randstr/charset"
	"github.com/avahowell/randstr/parse"
	"github.com/avahowell/randstr/secureclip"
	"github.com/avahowell/randstr/strgen"
)

const useHelpMsg = "use `--help` for valid args"

var (
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	commentStyle = lipgloss.NewStyle().Faint(true)
)

// die prints the two-line error/hint pair. Everything, errors included,
// goes to stdout; the generated strings are the only other output this
// tool produces.
func die(err error, hint string) int {
	fmt.Println(errStyle.Render("ERROR: " + err.Error()))
	fmt.Println(hintStyle.Render("HELP: " + hint))
	return 1
}

func run(args []string) int {
	req, err := parse.Args(args)
	if errors.Is(err, parse.ErrHelp) {
		printHelp()
		return 0
	}
	if err != nil {
		return die(err, useHelpMsg)
	}

	pool, err := charset.Build(req.Directives)
	if err != nil {
		return die(err, useHelpMsg)
	}

	if req.ShowPool {
		fmt.Println("pool:", charset.Format(pool))
	}

	if req.Interactive {
		if err := interactive(req, pool); err != nil {
			return die(err, useHelpMsg)
		}
		return 0
	}

	var last string
	for i := 0; i < req.Repeat; i++ {
		s, err := strgen.Generate(pool, req.Length)
		if err != nil {
			return die(err, useHelpMsg)
		}
		fmt.Println(s)
		last = s
	}

	if req.Copy {
		if err := secureclip.Copy(last); err != nil {
			return die(fmt.Errorf("clipboard failure: %v", err), "is a clipboard utility available?")
		}
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
