package repl

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

type (
	// REPL is a read-eval-print loop providing the interactive randstr
	// session. Commands are registered by name and invoked with the
	// whitespace-split (shell-quoting aware) arguments typed after them.
	REPL struct {
		prompt          string
		commands        map[string]Command
		prefixCompleter *readline.PrefixCompleter
		output          io.Writer
		rl              *readline.Instance
		stopfunc        func()
	}

	// Command is one session command: a name, the action run when the
	// name is entered, and a usage line shown by `help`.
	Command struct {
		Name   string
		Action ActionFunc
		Usage  string
	}

	// ActionFunc is the signature of a command action. It receives the
	// arguments following the command name and returns the text to
	// print, or an error.
	ActionFunc func(args []string) (string, error)
)

// New instantiates a REPL with the provided prompt and the built-in
// help, exit, and clear commands.
func New(prompt string) *REPL {
	r := &REPL{
		commands: make(map[string]Command),
		prompt:   prompt,
		output:   os.Stdout,
	}

	r.AddCommand(Command{
		Name:  "help",
		Usage: "help: display available commands and their usage",
		Action: func(args []string) (string, error) {
			return r.Usage(), nil
		},
	})

	r.AddCommand(Command{
		Name:  "exit",
		Usage: "exit: leave the session",
		Action: func(args []string) (string, error) {
			if r.stopfunc != nil {
				r.stopfunc()
			}
			return "", r.rl.Close()
		},
	})

	r.AddCommand(Command{
		Name:  "clear",
		Usage: "clear: clear the terminal",
		Action: func(args []string) (string, error) {
			if _, err := readline.ClearScreen(r.output); err != nil {
				return "", err
			}
			return "", nil
		},
	})

	return r
}

// OnStop registers a function called when the session ends, whether by
// `exit` or an interrupt.
func (r *REPL) OnStop(sf func()) {
	r.stopfunc = sf
}

// Usage returns the usage lines of every registered command, sorted by
// command name.
func (r *REPL) Usage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	usage := ""
	for _, name := range names {
		usage += r.commands[name].Usage + "\n"
	}
	return usage
}

// AddCommand registers `cmd` with the REPL and rebuilds the tab
// completer.
func (r *REPL) AddCommand(cmd Command) {
	r.commands[cmd.Name] = cmd

	var completers []readline.PrefixCompleterInterface
	for name := range r.commands {
		completers = append(completers, readline.PcItem(name))
	}
	r.prefixCompleter = readline.NewPrefixCompleter(completers...)
}

// eval evaluates one input line.
func (r *REPL) eval(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, exists := r.commands[args[0]]
	if !exists {
		return "", fmt.Errorf("command not recognized, type `help` for a list of commands")
	}

	return cmd.Action(args[1:])
}

// Loop reads and evaluates lines until the session ends.
func (r *REPL) Loop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.prompt,
		AutoComplete: r.prefixCompleter,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.rl = rl

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt && r.stopfunc != nil {
				r.stopfunc()
			}
			break
		}
		if line == "" {
			continue
		}
		res, err := r.eval(line)
		if err != nil {
			fmt.Fprintln(r.output, err.Error())
			continue
		}
		fmt.Fprint(r.output, res)
	}
	return nil
}
