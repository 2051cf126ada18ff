package main

import (
	"strings"
	"testing"

	"github.com/avahowell/randstr/charset"
	"github.com/avahowell/randstr/parse"
)

func testSession(t *testing.T, args ...string) *session {
	t.Helper()
	req, err := parse.Args(args)
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := charset.Build(req.Directives)
	if err != nil {
		t.Fatal(err)
	}
	return &session{length: req.Length, directives: req.Directives, pool: resolved}
}

func TestGenCmd(t *testing.T) {
	// digits-only pool
	s := testSession(t, "4", "-u-l-s-m")

	gencmd := gen(s)
	for i := 0; i < 50; i++ {
		res, err := gencmd(nil)
		if err != nil {
			t.Fatal(err)
		}
		str := strings.TrimSuffix(res, "\n")
		if len(str) != 4 {
			t.Fatalf("expected 4 characters, got %q", str)
		}
		for _, c := range str {
			if c < '0' || c > '9' {
				t.Fatalf("expected only digits, got %q", str)
			}
		}
		if s.last != str {
			t.Fatal("session did not record the generated string")
		}
	}

	// explicit length overrides the session default
	res, err := gencmd([]string{"9"})
	if err != nil {
		t.Fatal(err)
	}
	if len(strings.TrimSuffix(res, "\n")) != 9 {
		t.Fatal("gen did not honor the length argument")
	}

	if _, err := gencmd([]string{"nope"}); err == nil {
		t.Fatal("expected gen to reject a non-numeric length")
	}
}

func TestPoolCmd(t *testing.T) {
	s := testSession(t, "5", "-A", "+d")

	res, err := pool(s)(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res != "pool: \"0123456789\"\n" {
		t.Fatalf("unexpected pool output: %q", res)
	}
}

func TestModCmd(t *testing.T) {
	s := testSession(t, "5")
	modcmd := mod(s)

	if _, err := modcmd(nil); err == nil {
		t.Fatal("expected mod to fail with no arguments")
	}

	if _, err := modcmd([]string{"-d"}); err != nil {
		t.Fatal(err)
	}
	for _, c := range s.pool {
		if c >= '0' && c <= '9' {
			t.Fatal("digits still present after -d")
		}
	}

	// a failing group must leave the session untouched
	before := len(s.pool)
	if _, err := modcmd([]string{"+x"}); err == nil {
		t.Fatal("expected mod to reject an invalid entry")
	}
	if _, err := modcmd([]string{"+[a]"}); err == nil {
		t.Fatal("expected mod to reject a duplicate character")
	}
	if len(s.pool) != before {
		t.Fatal("failed mod modified the session pool")
	}
}

func TestResetCmd(t *testing.T) {
	s := testSession(t, "5", "-A")
	if len(s.pool) != 0 {
		t.Fatal("expected -A to empty the pool")
	}

	if _, err := reset(s)(nil); err != nil {
		t.Fatal(err)
	}
	wantLen := len(charset.Digits) + len(charset.Lowercase) + len(charset.Uppercase) +
		len(charset.Separators) + len(charset.Symbols)
	if len(s.pool) != wantLen {
		t.Fatal("reset did not restore the default pool")
	}
}

func TestLenCmd(t *testing.T) {
	s := testSession(t, "5")
	lencmd := setlen(s)

	if _, err := lencmd([]string{"12"}); err != nil {
		t.Fatal(err)
	}
	if s.length != 12 {
		t.Fatal("len did not update the session length")
	}

	if _, err := lencmd(nil); err == nil {
		t.Fatal("expected len to fail with no arguments")
	}
	if _, err := lencmd([]string{"-3"}); err == nil {
		t.Fatal("expected len to reject a negative length")
	}
}

func TestGenEmptyPool(t *testing.T) {
	s := testSession(t, "8", "-A")

	res, err := gen(s)(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res != "\n" {
		t.Fatalf("expected an empty string from an empty pool, got %q", res)
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"--help"}, 0},
		{[]string{"-h"}, 0},
		{[]string{"4"}, 0},
		{[]string{"0"}, 0},
		{[]string{"-r", "2", "4", "-A", "+d"}, 0},
		{[]string{"--show-pool", "4"}, 0},
		{[]string{}, 1},
		{[]string{"abc"}, 1},
		{[]string{"--frobnicate", "4"}, 1},
		{[]string{"4", "*d"}, 1},
		{[]string{"4", "+[a]"}, 1},
		{[]string{"4", "-[~]"}, 1},
	}
	for _, test := range tests {
		if got := run(test.args); got != test.want {
			t.Fatalf("run(%v) = %v, wanted %v", test.args, got, test.want)
		}
	}
}
