package repl

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestREPLArgQuotes(t *testing.T) {
	r := New("randstr > ")

	var callArgs []string
	r.AddCommand(Command{
		Name: "testcmd",
		Action: func(args []string) (string, error) {
			callArgs = args
			return "success", nil
		},
		Usage: "",
	})

	_, err := r.eval("testcmd \"+[a b c]\" -d")
	if err != nil {
		t.Fatal(err)
	}

	expectedArgs := []string{"+[a b c]", "-d"}
	if !reflect.DeepEqual(callArgs, expectedArgs) {
		t.Fatalf("args incorrectly passed to repl command, got %v wanted %v\n", callArgs, expectedArgs)
	}
}

func TestREPLCmd(t *testing.T) {
	r := New("randstr > ")

	called := false
	var callArgs []string
	r.AddCommand(Command{
		Name: "testcmd",
		Action: func(args []string) (string, error) {
			callArgs = args
			called = true
			return "success", nil
		},
		Usage: "test usage",
	})

	res, err := r.eval("testcmd arg1 arg2")
	if err != nil {
		t.Fatal(err)
	}
	if res != "success" {
		t.Fatal("eval returned the wrong result")
	}
	if !called {
		t.Fatal("testcmd did not set called")
	}
	if callArgs[0] != "arg1" || callArgs[1] != "arg2" {
		t.Fatal("testcmd did not have the correct args")
	}
}

func TestREPLCmdError(t *testing.T) {
	r := New("randstr > ")
	testerr := errors.New("testerr")

	r.AddCommand(Command{
		Name: "testcmd",
		Action: func(args []string) (string, error) {
			return "", testerr
		},
		Usage: "testusage",
	})

	res, err := r.eval("testcmd")
	if err != testerr {
		t.Fatal("testcmd did not return testerr")
	}
	if res != "" {
		t.Fatal("result string was not empty")
	}
}

func TestREPLUnknownCmd(t *testing.T) {
	r := New("randstr > ")
	if _, err := r.eval("nonsense"); err == nil {
		t.Fatal("expected an error for an unregistered command")
	}
	if _, err := r.eval(""); err != nil {
		t.Fatal("empty line should be a no-op, got", err)
	}
}

func TestREPLUsageSorted(t *testing.T) {
	r := New("randstr > ")
	r.AddCommand(Command{Name: "zzz", Usage: "zzz: last", Action: nil})
	r.AddCommand(Command{Name: "aaa", Usage: "aaa: first", Action: nil})

	lines := strings.Split(strings.TrimSpace(r.Usage()), "\n")
	if lines[0] != "aaa: first" || lines[len(lines)-1] != "zzz: last" {
		t.Fatalf("usage not sorted: %v", lines)
	}
}
