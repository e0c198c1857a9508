// Package main provides the Grail CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/grail-ml/grail/dual"
	"github.com/grail-ml/grail/stage"
)

const (
	version     = "v0.1.0-dev"
	historyFile = ".grail_history"
	prompt      = "grail> "
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Grail %s\n", version)
	case "repl":
		os.Exit(repl())
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "grail: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Grail %s - scalar automatic differentiation for Go

Usage:
  grail repl       Start an expression REPL
  grail version    Print the version

In the REPL, enter an expression in one or more variables, optionally
followed by "@ <point>[, <point>...]" to pick the evaluation point
(default 1 for every input):

  grail> x * sin(x) + 2 @ 1.5
`, version)
}

func repl() int {
	fmt.Printf("Grail %s REPL. Ctrl+D or :quit exits.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted { // Ctrl+C cancels the line
			fmt.Println()
			continue
		}
		if err != nil { // io.EOF exits
			fmt.Println()
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if line == ":quit" || line == ":q" {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(line)

		if err := evalLine(line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

// evalLine parses "expr [@ points]", stages the expression, and prints the
// program, its value, and the partial derivative for each input.
func evalLine(line string) error {
	src := line
	var pointSpec string
	if i := strings.LastIndex(line, "@"); i >= 0 {
		src, pointSpec = line[:i], line[i+1:]
	}

	prog, err := stage.Parse(src)
	if err != nil {
		return err
	}
	fmt.Println(prog)

	points, err := parsePoints(pointSpec, len(prog.Inputs))
	if err != nil {
		return err
	}

	out, err := stage.Run(prog, points)
	if err != nil {
		return err
	}
	fmt.Printf("value = %g\n", out[0])

	// One forward pass per input, seeding only that input.
	for j, name := range prog.Inputs {
		args := make([]dual.Dual, len(points))
		for i, p := range points {
			args[i] = dual.Constant(p)
		}
		args[j] = dual.Seed(points[j])
		dout, err := stage.RunDual(prog, args)
		if err != nil {
			return err
		}
		fmt.Printf("d/d%s  = %g\n", name, dout[0].Tangent)
	}
	return nil
}

func parsePoints(spec string, n int) ([]float64, error) {
	points := make([]float64, n)
	for i := range points {
		points[i] = 1
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return points, nil
	}
	parts := strings.Split(spec, ",")
	if len(parts) > n {
		return nil, fmt.Errorf("%d points given for %d inputs", len(parts), n)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q", strings.TrimSpace(part))
		}
		points[i] = v
	}
	return points, nil
}
