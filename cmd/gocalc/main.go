package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

const historyFile = ".gocalc_history"

// maxLineSize bounds one script line. A line nested to DefaultMaxDepth is a
// few KiB, so the limit only matters with -max-depth raised or disabled.
const maxLineSize = 16 << 20

type config struct {
	opt      gocalc.Options
	printAST bool
	history  string
	logger   *slog.Logger
	out      io.Writer
}

// evalLine runs one line through the pipeline and returns the text to print.
func evalLine(line string, cfg *config) (string, error) {
	p, err := gocalc.NewParser(line, &cfg.opt)
	if err != nil {
		return "", err
	}
	node, err := p.Parse()
	if err != nil {
		return "", err
	}
	if cfg.printAST {
		return node.String(), nil
	}
	v, err := gocalc.Eval(node)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

// runScript evaluates every non-empty line of r. Errors are printed to w and
// do not stop the loop; ok is false if any line failed.
func runScript(r io.Reader, w io.Writer, cfg *config) (ok bool, err error) {
	ok = true
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := evalLine(line, cfg)
		if err != nil {
			cfg.logger.Debug("eval", "source", line, "error", err)
			fmt.Fprintln(w, err)
			ok = false
			continue
		}
		cfg.logger.Debug("eval", "source", line, "result", out)
		fmt.Fprintln(w, out)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}
	return ok, nil
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	var (
		expr     = flag.String("e", "", "evaluate `expression` and exit")
		printAST = flag.Bool("ast", false, "print the parsed tree instead of the value")
		logLevel = flag.String("log-level", "warn", "log `level`: debug, info, warn or error")
		logFile  = flag.String("log-file", "", "also write JSON logs to `file`")
		history  = flag.String("history", defaultHistory(), "line history `file` for interactive mode")
		maxDepth = flag.Int("max-depth", gocalc.DefaultMaxDepth, "maximum nesting `depth`, negative for no limit")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, closer, err := newLogger(os.Stderr, *logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := &config{
		opt:      gocalc.Options{MaxDepth: *maxDepth},
		printAST: *printAST,
		history:  *history,
		logger:   logger,
		out:      os.Stdout,
	}

	os.Exit(finish(logger, closer, run(cfg, *expr)))
}

// finish releases the log file. A failed close turns a zero exit code into 1
// since the tail of the log may be lost.
func finish(logger *slog.Logger, closer io.Closer, code int) int {
	if err := closer.Close(); err != nil {
		logger.Error("close log file", "error", err)
		if code == 0 {
			return 1
		}
	}
	return code
}

func run(cfg *config, expr string) int {
	if expr != "" {
		out, err := evalLine(expr, cfg)
		if err != nil {
			fmt.Fprintln(cfg.out, gocalc.Diagnose(expr, err))
			return 1
		}
		fmt.Fprintln(cfg.out, out)
		return 0
	}

	var f *os.File
	if flag.NArg() == 0 {
		if isTerminal(os.Stdin) {
			if err := repl(cfg); err != nil {
				cfg.logger.Error("repl", "error", err)
				return 1
			}
			return 0
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		var err error
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			cfg.logger.Error("open script", "error", err)
			return 1
		}
		defer f.Close()
	}

	ok, err := runScript(f, cfg.out, cfg)
	if err != nil {
		cfg.logger.Error("run script", "error", err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}
