package pyne

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hearic/pyne/model"
)

// TapeResult pairs one input file with the materials decoded from it.
type TapeResult struct {
	Filename    string
	Evaluations []*model.Evaluation
}

// ParseMany decodes several tape files concurrently, at most jobs at a
// time. jobs <= 0 selects one worker per CPU. Results keep the order of
// filenames. The first failure cancels the remaining work and is returned
// wrapped with the name of the file it came from.
func ParseMany(ctx context.Context, filenames []string, jobs int) ([]TapeResult, error) {
	if len(filenames) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-file, so the workers share no state.
	results := make([]TapeResult, len(filenames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(filenames)))

	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			evs, err := Open(filename).EvaluationsContext(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			results[i] = TapeResult{Filename: filename, Evaluations: evs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
