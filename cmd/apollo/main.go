// Command apollo plays, simulates and benchmarks Othello search algorithms.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/engine"
	"github.com/rybergy/apollo/internal/logging"
)

const usage = `usage: apollo [-config file] [-log-level level] [-log-format console|json] <command> [args]

commands:
  benchmark winrate     [-n N] [-l L] [-u U] [-workers W] alg:heur:depth...
  benchmark performance [-n N] [-d D] [-l L] [-u U] [-workers W] alg:heur...
  sim                   alg:heur:depth alg:heur:depth
  play                  [-algorithm A] [-heuristic H] [-depth D] [-side black|white]
  serve                 [-addr ADDR] [-web DIR] [-open]
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "apollo:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("apollo", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	configPath := fs.String("config", "", "path to a JSON config file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "console or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	switch rest[0] {
	case "benchmark":
		return runBenchmark(cfg, rest[1:], stdout)
	case "sim":
		return runSim(rest[1:], stdout)
	case "play":
		return runPlay(cfg, rest[1:], stdin, stdout)
	case "serve":
		return runServe(cfg, rest[1:])
	default:
		fs.Usage()
		return fmt.Errorf("unknown command '%s'", rest[0])
	}
}

func namesHelp() string {
	return fmt.Sprintf("algorithms: %s; heuristics: %s",
		strings.Join(engine.AlgorithmNames(), ", "),
		strings.Join(engine.HeuristicNames(), ", "))
}
