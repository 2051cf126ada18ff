// Package charset defines the predefined character sets and resolves
// pool directives into the final ordered character pool used for
// sampling.
package charset

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// Digits contains the decimal digits 0-9.
	Digits = []rune("0123456789")
	// Lowercase contains the lowercase english alphabet.
	Lowercase = []rune("abcdefghijklmnopqrstuvwxyz")
	// Uppercase contains the uppercase english alphabet.
	Uppercase = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	// Separators contains the separator characters.
	Separators = []rune("-._")
	// Symbols contains the misc symbol characters.
	Symbols = []rune("!*&#")

	// ErrDuplicateChar is returned from Build when a custom character is
	// added to a pool that already contains it.
	ErrDuplicateChar = errors.New("can't add character to pool, already exists")

	// ErrNotInPool is returned from Build when a custom character is
	// removed from a pool that does not contain it.
	ErrNotInPool = errors.New("can't remove character from pool, doesn't exist")
)

// SetID identifies one of the predefined character sets.
type SetID int

// The predefined sets, in the canonical order they appear in a default
// pool.
const (
	SetDigits SetID = iota
	SetLowercase
	SetUppercase
	SetSeparators
	SetSymbols

	NumSets // number of predefined sets, not a valid SetID
)

// sets holds the predefined set contents indexed by SetID, in canonical
// order. The sets are pairwise disjoint.
var sets = [NumSets][]rune{Digits, Lowercase, Uppercase, Separators, Symbols}

// Kind discriminates the three directive forms.
type Kind int

const (
	// KindSet toggles one predefined set's inclusion to the directive's sign.
	KindSet Kind = iota
	// KindLiteral adds (or removes) a literal run of custom characters.
	KindLiteral
	// KindReset excludes every predefined set, regardless of sign.
	KindReset
)

// Directive is one signed pool-modification instruction. Directives are
// applied in order; for a predefined set the last directive wins.
type Directive struct {
	Include bool
	Kind    Kind
	Set     SetID  // valid when Kind == KindSet
	Chars   []rune // valid when Kind == KindLiteral
}

// Toggle returns a directive setting `set`'s inclusion to `include`.
func Toggle(set SetID, include bool) Directive {
	return Directive{Include: include, Kind: KindSet, Set: set}
}

// Literal returns a directive adding (include) or removing (!include)
// the given custom characters.
func Literal(chars []rune, include bool) Directive {
	return Directive{Include: include, Kind: KindLiteral, Chars: chars}
}

// Reset returns the directive that excludes all predefined sets.
func Reset() Directive {
	return Directive{Kind: KindReset}
}

// Build resolves `directives` into the final ordered pool. All
// predefined sets start included. Custom additions are rejected if the
// character is already present at that point; custom removals are
// rejected if it is not. Removal preserves the relative order of the
// remaining characters.
func Build(directives []Directive) ([]rune, error) {
	var include [NumSets]bool
	for i := range include {
		include[i] = true
	}

	var add, remove []rune
	for _, d := range directives {
		switch d.Kind {
		case KindReset:
			include = [NumSets]bool{}
		case KindSet:
			include[d.Set] = d.Include
		case KindLiteral:
			if d.Include {
				add = append(add, d.Chars...)
			} else {
				remove = append(remove, d.Chars...)
			}
		}
	}

	var pool []rune
	for i, set := range sets {
		if include[i] {
			pool = append(pool, set...)
		}
	}

	for _, c := range add {
		if slices.Contains(pool, c) {
			return nil, fmt.Errorf("%w: %q (current pool: %s)", ErrDuplicateChar, c, Format(pool))
		}
		pool = append(pool, c)
	}

	for _, c := range remove {
		idx := slices.Index(pool, c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q (current pool: %s)", ErrNotInPool, c, Format(pool))
		}
		pool = slices.Delete(pool, idx, idx+1)
	}

	return pool, nil
}

// Format renders a pool for display in --show-pool output and error
// messages.
func Format(pool []rune) string {
	return strconv.Quote(string(pool))
}
