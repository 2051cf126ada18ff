// Package parse turns the raw command-line argument list into a
// validated generation request.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avahowell/randstr/charset"
)

var (
	// ErrHelp is returned when --help is requested. It is not a failure;
	// the caller should print the help text and exit successfully.
	ErrHelp = errors.New("help requested")

	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("expected arg")

	// ErrInvalidInteger is returned when a numeric argument does not
	// parse or is out of range.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrUnknownFlag is returned for a flag-prefixed token that matches
	// no known flag.
	ErrUnknownFlag = errors.New("invalid arg")

	// ErrInvalidPrefix is returned for a directive group that does not
	// begin with + or -.
	ErrInvalidPrefix = errors.New("invalid entry prefix")

	// ErrInvalidPoolEntry is returned for an unrecognized character
	// inside a directive group.
	ErrInvalidPoolEntry = errors.New("invalid pool entry")
)

// Request is a fully validated invocation: what to generate and what to
// do with it.
type Request struct {
	Length      int
	Repeat      int
	Copy        bool
	ShowPool    bool
	Interactive bool
	Directives  []charset.Directive
}

// Args parses the argument list (excluding the program name). Parsing
// runs in two phases: flags up to the first non-flag token, which must
// be the length, then pool directive groups for everything after it.
func Args(args []string) (*Request, error) {
	req := &Request{Repeat: 1}

	i := 0
	haveLength := false
	for ; i < len(args) && !haveLength; i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			return nil, ErrHelp
		case "--copy", "-c":
			req.Copy = true
		case "--show-pool":
			req.ShowPool = true
		case "--interactive", "-i":
			req.Interactive = true
		case "--repeat", "-r":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("%w: repeat count", ErrMissingArgument)
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: repeat count %q must be a positive integer", ErrInvalidInteger, args[i])
			}
			req.Repeat = n
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFlag, arg)
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: length %q must be a non-negative integer", ErrInvalidInteger, arg)
			}
			req.Length = n
			haveLength = true
		}
	}
	if !haveLength {
		return nil, fmt.Errorf("%w: length", ErrMissingArgument)
	}

	for ; i < len(args); i++ {
		ds, err := Group(args[i])
		if err != nil {
			return nil, err
		}
		req.Directives = append(req.Directives, ds...)
	}

	return req, nil
}

// Group parses one directive-group token, e.g. "+d", "-m", "-A+lu" or
// "+[%$^@]", into the directives it contains, in order. Empty tokens
// yield no directives. A literal run with no closing ] consumes the
// rest of the token.
func Group(token string) ([]charset.Directive, error) {
	if token == "" {
		return nil, nil
	}

	runes := []rune(token)
	var include bool
	switch runes[0] {
	case '+':
		include = true
	case '-':
		include = false
	default:
		return nil, fmt.Errorf("%w: %q (expected + or -)", ErrInvalidPrefix, runes[0])
	}

	var ds []charset.Directive
	for j := 1; j < len(runes); j++ {
		switch c := runes[j]; c {
		case 'd':
			ds = append(ds, charset.Toggle(charset.SetDigits, include))
		case 'l':
			ds = append(ds, charset.Toggle(charset.SetLowercase, include))
		case 'u':
			ds = append(ds, charset.Toggle(charset.SetUppercase, include))
		case 's':
			ds = append(ds, charset.Toggle(charset.SetSeparators, include))
		case 'm':
			ds = append(ds, charset.Toggle(charset.SetSymbols, include))
		case 'A':
			ds = append(ds, charset.Reset())
		case '[':
			var lit []rune
			for j++; j < len(runes) && runes[j] != ']'; j++ {
				lit = append(lit, runes[j])
			}
			ds = append(ds, charset.Literal(lit, include))
		default:
			return nil, fmt.Errorf("%w: %q (can be one of: d, l, u, s, m, A, [characters])", ErrInvalidPoolEntry, c)
		}
	}
	return ds, nil
}
