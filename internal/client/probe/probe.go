// Package probe checks several gateway domains at once. dashctl status uses
// it to show which domains the current session can reach.
package probe

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// Check is one named reachability probe.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Outcome is the result of one Check. Err is nil or a *domain.Error.
type Outcome struct {
	Name string
	Err  *domain.Error
	Took time.Duration
}

// OK reports whether the check passed.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Run executes checks with at most workers running at a time and returns
// their outcomes in input order. A check that has not started when ctx ends
// is not run; its outcome carries the classified context error.
func Run(ctx context.Context, workers int, checks []Check) []Outcome {
	out := make([]Outcome, len(checks))
	if len(checks) == 0 {
		return out
	}
	workers = max(workers, 1)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, c := range checks {
		out[i].Name = c.Name
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				out[i].Err = domain.FromTransport(ctx.Err())
				return
			}
			if err := ctx.Err(); err != nil {
				out[i].Err = domain.FromTransport(err)
				return
			}

			start := time.Now()
			err := c.Run(ctx)
			out[i].Took = time.Since(start)
			if err != nil {
				e, ok := domain.AsError(err)
				if !ok {
					e = domain.Wrap(err, domain.CodeUnknown, err.Error())
				}
				out[i].Err = e
			}
		})
	}
	wg.Wait()
	return out
}
