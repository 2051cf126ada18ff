package main

import "fmt"

func printHelp() {
	c := commentStyle.Render
	fmt.Printf(`
randstr [args] [len] [entries]

len: the number of characters in the generated string, a non-negative integer

args:
  --help         -h : display this help dialog
  --copy         -c : put the last generated string in the OS clipboard
  --repeat  N    -r : number of strings to generate, a positive integer (default 1)
  --show-pool       : print the resolved character pool before generating
  --interactive  -i : start an interactive session after parsing

entries: [+|-][entry]
  +  adds the entry to the character pool
  -  removes the entry from the character pool

  Entries are a sequence of pre-defined and custom sets, written without
  separators.

  Pre-defined sets:
     d : decimal digits, 0-9
     l : lowercase english alphabet, a-z
     u : uppercase english alphabet, A-Z
     s : separators, - . _
     m : misc symbols, ! * & #
     A : clears every pre-defined set (start from nothing)

  Custom set: [characters]
    Every character between the '[' and the ']' joins the set. ']' itself
    cannot be a member since it ends the sequence. A set with no closing
    ']' extends to the end of the argument. Custom sets usually need to
    be quoted so the shell passes them through.

  By default, all pre-defined sets are in the pool. Entries apply left to
  right; for a pre-defined set, the last entry naming it wins.

EXAMPLES:

%s
randstr 10

%s
randstr 10 -m

%s
randstr 10 -m "+[%%$^@]"

%s
randstr 10 "-[.]"

%s
randstr -r 5 -c 16 -A +d

`,
		c("// generate a random string of length 10"),
		c("// without misc symbols"),
		c("// with a custom set of characters: % $ ^ @"),
		c("// with the default sets, but without '.'"),
		c("// five 16-character digit-only strings, last one copied to the clipboard"),
	)
}
