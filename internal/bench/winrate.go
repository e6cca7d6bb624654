package bench

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rybergy/apollo/internal/match"
)

// WinrateMatrix holds, at [i][j], the share of games Specs[i] won against
// Specs[j]. The diagonal is nil.
type WinrateMatrix struct {
	Specs []match.Spec
	Rates [][]*float64
}

// Winrate plays every unordered pair of specs against each other. Pairs run
// concurrently, at most opts.Workers at a time, and each pair builds its own
// search instances.
func Winrate(ctx context.Context, specs []match.Spec, opts Options) (*WinrateMatrix, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := len(specs)
	rates := make([][]*float64, n)
	for i := range rates {
		rates[i] = make([]*float64, n)
	}

	run := uuid.NewString()
	log.Info().
		Str("run", run).
		Int("algorithms", n).
		Int("trials", opts.Trials).
		Int("lower", opts.Lower).
		Int("upper", opts.Upper).
		Int("workers", opts.workers()).
		Msg("winrate-start")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				a1, err := specs[i].Player()
				if err != nil {
					return err
				}
				a2, err := specs[j].Player()
				if err != nil {
					return err
				}
				start := time.Now()
				p := match.Winrate(a1, a2, opts.Trials, opts.Lower, opts.Upper)
				q := 1 - p
				rates[i][j], rates[j][i] = &p, &q
				log.Debug().
					Str("run", run).
					Str("a1", specs[i].String()).
					Str("a2", specs[j].String()).
					Float64("winrate", p).
					Dur("took", time.Since(start)).
					Msg("winrate-pair")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Str("run", run).Msg("winrate-done")
	return &WinrateMatrix{Specs: specs, Rates: rates}, nil
}

// WriteWinrateCSV writes a header of spec names and one row per spec. Empty
// cells mark the diagonal.
func WriteWinrateCSV(w io.Writer, m *WinrateMatrix) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(m.Specs)+1)
	header = append(header, "")
	for _, s := range m.Specs {
		header = append(header, s.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range m.Rates {
		record := make([]string, 0, len(row)+1)
		record = append(record, m.Specs[i].String())
		for _, rate := range row {
			if rate == nil {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(*rate, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
