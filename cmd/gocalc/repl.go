package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/gocalc"
	"github.com/peterh/liner"
)

const prompt = "calc> "

const help = `Enter an integer expression using + - * / and parentheses.
  :help   show this message
  :quit   exit (also :q or Ctrl-D)`

func repl(cfg *config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	loadHistory(ln, cfg)
	defer saveHistory(ln, cfg)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(cfg.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if step(ln, line, cfg) {
			return nil
		}
	}
}

// step handles one line read at the prompt and reports whether the session
// should end. Only lines that evaluate go into the history.
func step(ln *liner.State, line string, cfg *config) (quit bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, ":") {
		return command(cfg.out, text)
	}

	out, err := evalLine(line, cfg)
	if err != nil {
		cfg.logger.Debug("eval", "source", line, "error", err)
		fmt.Fprintln(cfg.out, gocalc.Diagnose(line, err))
		return false
	}
	ln.AppendHistory(line)
	cfg.logger.Debug("eval", "source", line, "result", out)
	fmt.Fprintln(cfg.out, out)
	return false
}

func command(w io.Writer, text string) (quit bool) {
	switch strings.ToLower(text) {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprintln(w, help)
	default:
		fmt.Fprintln(w, "unknown command. Type :help for help.")
	}
	return false
}

func loadHistory(ln *liner.State, cfg *config) {
	if cfg.history == "" {
		return
	}
	f, err := os.Open(cfg.history)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			cfg.logger.Warn("open history", "path", cfg.history, "error", err)
		}
		return
	}
	defer f.Close()
	n, err := ln.ReadHistory(f)
	if err != nil {
		cfg.logger.Warn("read history", "path", cfg.history, "error", err)
		return
	}
	cfg.logger.Info("history loaded", "path", cfg.history, "lines", n)
}

func saveHistory(ln *liner.State, cfg *config) {
	if cfg.history == "" {
		return
	}
	f, err := os.Create(cfg.history)
	if err != nil {
		cfg.logger.Warn("create history", "path", cfg.history, "error", err)
		return
	}
	defer f.Close()
	n, err := ln.WriteHistory(f)
	if err != nil {
		cfg.logger.Warn("write history", "path", cfg.history, "error", err)
		return
	}
	cfg.logger.Info("history saved", "path", cfg.history, "lines", n)
}
