package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rybergy/apollo/internal/bench"
	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/match"
)

func runBenchmark(cfg config.Config, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("benchmark: expected 'winrate' or 'performance'")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch args[0] {
	case "winrate":
		return runWinrate(ctx, cfg.Winrate, args[1:], stdout)
	case "performance":
		return runPerformance(ctx, cfg.Performance, args[1:], stdout)
	default:
		return fmt.Errorf("benchmark: unknown benchmark '%s'", args[0])
	}
}

func benchFlags(name string, bc config.BenchConfig) (*flag.FlagSet, *bench.Options) {
	opts := &bench.Options{MaxDepth: bc.MaxDepth}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&opts.Trials, "n", bc.Trials, "number of trials")
	fs.IntVar(&opts.Lower, "l", bc.Lower, "lower bound on random opening plies")
	fs.IntVar(&opts.Upper, "u", bc.Upper, "upper bound on random opening plies")
	fs.IntVar(&opts.Workers, "workers", bc.Workers, "concurrent workers")
	return fs, opts
}

func runWinrate(ctx context.Context, bc config.BenchConfig, args []string, stdout io.Writer) error {
	fs, opts := benchFlags("benchmark winrate", bc)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("benchmark winrate: need at least two alg:heur:depth specs (%s)", namesHelp())
	}

	specs := make([]match.Spec, 0, fs.NArg())
	for _, s := range fs.Args() {
		spec, err := match.ParseSpec(s)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	m, err := bench.Winrate(ctx, specs, *opts)
	if err != nil {
		return err
	}
	return bench.WriteWinrateCSV(stdout, m)
}

func runPerformance(ctx context.Context, bc config.BenchConfig, args []string, stdout io.Writer) error {
	fs, opts := benchFlags("benchmark performance", bc)
	fs.IntVar(&opts.MaxDepth, "d", bc.MaxDepth, "maximum search depth")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("benchmark performance: need at least one alg:heur spec (%s)", namesHelp())
	}

	specs := make([]match.Spec, 0, fs.NArg())
	for _, s := range fs.Args() {
		spec, err := match.ParseSpecNoDepth(s)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	rows, err := bench.Performance(ctx, specs, *opts)
	if err != nil {
		return err
	}
	return bench.WritePerformanceCSV(stdout, specs, rows)
}
