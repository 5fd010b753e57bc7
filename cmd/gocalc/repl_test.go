package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterh/liner"
)

func historyOf(t *testing.T, ln *liner.State) string {
	t.Helper()
	var buf bytes.Buffer
	if _, err := ln.WriteHistory(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestCommand(t *testing.T) {
	tests := []struct {
		input string
		quit  bool
		want  string
	}{
		{input: ":quit", quit: true},
		{input: ":q", quit: true},
		{input: ":QUIT", quit: true},
		{input: ":help", want: help + "\n"},
		{input: ":h", want: help + "\n"},
		{input: ":frobnicate", want: "unknown command. Type :help for help.\n"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		if quit := command(&out, test.input); quit != test.quit {
			t.Errorf("%q: want quit %v but got %v", test.input, test.quit, quit)
		}
		if diff := cmp.Diff(test.want, out.String()); diff != "" {
			t.Errorf("%q (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestStep(t *testing.T) {
	ln := liner.NewLiner()
	defer ln.Close()

	var out bytes.Buffer
	cfg := testConfig()
	cfg.out = &out

	lines := []string{"1 + 2", "   ", "3-*1", "1 / 0", ":help", "2 * 3"}
	for _, line := range lines {
		if step(ln, line, cfg) {
			t.Fatalf("%q ended the session", line)
		}
	}
	if !step(ln, "  :q  ", cfg) {
		t.Fatal("want :q to end the session")
	}

	want := "3\n" +
		"Unexpected '*' (token type Star) at position 3 (expecting one of [Integer, Minus, LParen])\n" +
		"  3-*1\n" +
		"    ^\n" +
		"Division by zero at position 2\n" +
		"  1 / 0\n" +
		"    ^\n" +
		help + "\n" +
		"6\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("1 + 2\n2 * 3\n", historyOf(t, ln)); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg.history = filepath.Join(t.TempDir(), "history")

	ln := liner.NewLiner()
	loadHistory(ln, cfg)
	if logs.Len() != 0 {
		t.Fatalf("missing history file should be silent: %q", logs.String())
	}
	ln.AppendHistory("1 + 2")
	ln.AppendHistory("7 * (3 - 1)")
	saveHistory(ln, cfg)
	ln.Close()

	b, err := os.ReadFile(cfg.history)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("1 + 2\n7 * (3 - 1)\n", string(b)); diff != "" {
		t.Fatalf("file (-want +got):\n%s", diff)
	}

	ln = liner.NewLiner()
	defer ln.Close()
	loadHistory(ln, cfg)
	if diff := cmp.Diff("1 + 2\n7 * (3 - 1)\n", historyOf(t, ln)); diff != "" {
		t.Fatalf("loaded (-want +got):\n%s", diff)
	}
}

func TestHistoryDisabled(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg.history = ""

	ln := liner.NewLiner()
	defer ln.Close()
	ln.AppendHistory("1 + 2")
	loadHistory(ln, cfg)
	saveHistory(ln, cfg)
	if logs.Len() != 0 {
		t.Fatalf("disabled history touched the log: %q", logs.String())
	}
}
