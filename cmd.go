package main

import (
	"fmt"
	"strconv"

	"github.com/avahowell/randstr/charset"
	"github.com/avahowell/randstr/parse"
	"github.com/avahowell/randstr/repl"
	"github.com/avahowell/randstr/secureclip"
	"github.com/avahowell/randstr/strgen"
)

// session holds the mutable state of an interactive randstr session:
// the current directive list with its resolved pool, the default
// generation length, and the most recently generated string.
type session struct {
	length     int
	directives []charset.Directive
	pool       []rune
	last       string
}

var (
	genCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "gen",
			Action: gen(s),
			Usage:  "gen [length]: generate a string from the current pool",
		}
	}

	poolCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "pool",
			Action: pool(s),
			Usage:  "pool: print the resolved character pool",
		}
	}

	modCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "mod",
			Action: mod(s),
			Usage:  "mod [entry]...: apply pool entries (e.g. +d, -m, \"+[%$]\") to the session",
		}
	}

	resetCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "reset",
			Action: reset(s),
			Usage:  "reset: drop all entries and return to the default pool",
		}
	}

	lenCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "len",
			Action: setlen(s),
			Usage:  "len [length]: set the default generation length",
		}
	}

	clipCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "clip",
			Action: clip(s),
			Usage:  "clip: copy the last generated string to the clipboard, cleared after 30 seconds",
		}
	}

	histCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "hist",
			Action: hist(s),
			Usage:  "hist [samples]: chart how often each pool character is drawn",
		}
	}
)

func gen(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		length := s.length
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return "", fmt.Errorf("invalid length %q, must be a non-negative integer", args[0])
			}
			length = n
		}

		str, err := strgen.Generate(s.pool, length)
		if err != nil {
			return "", err
		}
		s.last = str
		return str + "\n", nil
	}
}

func pool(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		return "pool: " + charset.Format(s.pool) + "\n", nil
	}
}

// mod applies one or more directive groups to the session. The new
// directive list is validated by rebuilding the pool before it is
// committed, so a failing group leaves the session unchanged.
func mod(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) == 0 {
			return "", fmt.Errorf("mod requires at least 1 argument. See `help` for details.")
		}

		next := append([]charset.Directive{}, s.directives...)
		for _, token := range args {
			ds, err := parse.Group(token)
			if err != nil {
				return "", err
			}
			next = append(next, ds...)
		}

		newPool, err := charset.Build(next)
		if err != nil {
			return "", err
		}

		s.directives = next
		s.pool = newPool
		return "pool is now " + charset.Format(newPool) + "\n", nil
	}
}

func reset(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		newPool, err := charset.Build(nil)
		if err != nil {
			return "", err
		}
		s.directives = nil
		s.pool = newPool
		return "pool is now " + charset.Format(newPool) + "\n", nil
	}
}

func setlen(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("len requires 1 argument. See `help` for details.")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid length %q, must be a non-negative integer", args[0])
		}
		s.length = n
		return fmt.Sprintf("default length is now %v\n", n), nil
	}
}

func clip(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if s.last == "" {
			return "", fmt.Errorf("nothing generated yet, run `gen` first")
		}
		if err := secureclip.Clip(s.last); err != nil {
			return "", err
		}
		return "copied to clipboard, will clear in 30 seconds\n", nil
	}
}

func hist(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		samples := 100000
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return "", fmt.Errorf("invalid sample count %q, must be a positive integer", args[0])
			}
			samples = n
		}
		if err := runHist(s.pool, samples); err != nil {
			return "", err
		}
		return "", nil
	}
}

// interactive runs a session seeded with the request's length and
// directives. The clipboard is wiped when the session ends.
func interactive(req *parse.Request, resolved []rune) error {
	s := &session{
		length:     req.Length,
		directives: req.Directives,
		pool:       resolved,
	}

	r := repl.New("randstr > ")
	r.OnStop(func() {
		secureclip.Clear()
	})

	for _, cmd := range []repl.Command{
		genCmd(s), poolCmd(s), modCmd(s), resetCmd(s), lenCmd(s), clipCmd(s), histCmd(s),
	} {
		r.AddCommand(cmd)
	}

	return r.Loop()
}
