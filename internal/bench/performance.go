package bench

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rybergy/apollo/internal/engine"
	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
)

// PerformanceRow holds per-algorithm averages for one depth, indexed like
// the specs passed to Performance.
type PerformanceRow struct {
	Depth     int
	Generated []float64
	Expanded  []float64
	Millis    []float64
}

// Performance searches random positions as Black at every depth from 1 to
// opts.MaxDepth and averages the work each algorithm did. Every algorithm
// sees the same position within a trial. Trials are spread over
// opts.Workers goroutines and each worker builds its own search instances.
func Performance(ctx context.Context, specs []match.Spec, opts Options) ([]PerformanceRow, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	run := uuid.NewString()
	log.Info().
		Str("run", run).
		Int("algorithms", len(specs)).
		Int("trials", opts.Trials).
		Int("max_depth", opts.MaxDepth).
		Int("lower", opts.Lower).
		Int("upper", opts.Upper).
		Int("workers", opts.workers()).
		Msg("performance-start")

	rows := make([]PerformanceRow, 0, opts.MaxDepth)
	for depth := 1; depth <= opts.MaxDepth; depth++ {
		row, err := performanceAt(ctx, specs, opts, depth)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("run", run).Int("depth", depth).Msg("performance-depth")
		rows = append(rows, row)
	}

	log.Info().Str("run", run).Msg("performance-done")
	return rows, nil
}

func performanceAt(ctx context.Context, specs []match.Spec, opts Options, depth int) (PerformanceRow, error) {
	row := PerformanceRow{
		Depth:     depth,
		Generated: make([]float64, len(specs)),
		Expanded:  make([]float64, len(specs)),
		Millis:    make([]float64, len(specs)),
	}

	var mu sync.Mutex
	workers := min(opts.workers(), opts.Trials)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			searches := make([]engine.Search, len(specs))
			for i, s := range specs {
				search, err := s.Build()
				if err != nil {
					return err
				}
				searches[i] = search
			}

			generated := make([]float64, len(specs))
			expanded := make([]float64, len(specs))
			millis := make([]float64, len(specs))
			for trial := w; trial < opts.Trials; trial += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				game := match.RandomGame(match.OpeningLength(opts.Lower, opts.Upper))
				for i, search := range searches {
					before := search.NodesGenerated()
					start := time.Now()
					search.Search(game, othello.Black, depth)
					millis[i] += float64(time.Since(start).Microseconds()) / 1000
					generated[i] += float64(search.NodesGenerated() - before)
					expanded[i] += float64(search.NodesExpanded())
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for i := range specs {
				row.Generated[i] += generated[i]
				row.Expanded[i] += expanded[i]
				row.Millis[i] += millis[i]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PerformanceRow{}, err
	}

	n := float64(opts.Trials)
	for i := range specs {
		row.Generated[i] /= n
		row.Expanded[i] /= n
		row.Millis[i] /= n
	}
	return row, nil
}

// WritePerformanceCSV writes one column group per measure: generated, then
// expanded, then time, each with one column per spec.
func WritePerformanceCSV(w io.Writer, specs []match.Spec, rows []PerformanceRow) error {
	cw := csv.NewWriter(w)

	header := []string{"depth"}
	for _, prefix := range []string{"generated - ", "expanded - ", "time - "} {
		for _, s := range specs {
			header = append(header, prefix+s.Name())
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{strconv.Itoa(row.Depth)}
		for _, col := range [][]float64{row.Generated, row.Expanded, row.Millis} {
			for _, v := range col {
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
