package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// BulkFailure is one id that could not be processed
type BulkFailure struct {
	ID    uint   `json:"id" example:"101"`
	Error string `json:"error" example:"menu API returned 404: Not Found"`
}

// BulkResult tallies a fan-out over many ids
type BulkResult struct {
	Requested int           `json:"requested" example:"5"`
	Succeeded int           `json:"succeeded" example:"4"`
	Failed    int           `json:"failed" example:"1"`
	Failures  []BulkFailure `json:"failures,omitempty"`
}

// OK reports whether every id succeeded
func (r *BulkResult) OK() bool {
	return r.Failed == 0
}

// runBulk calls fn for every id with at most limit calls in flight. Failures
// never stop the other calls; the result lists them in input order.
func runBulk(ctx context.Context, limit int, ids []uint, fn func(ctx context.Context, id uint) error) *BulkResult {
	if limit < 1 {
		limit = 1
	}
	errs := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	var mu sync.Mutex
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			err := fn(gctx, id)
			if err == nil {
				return nil
			}
			mu.Lock()
			errs[i] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	res := &BulkResult{Requested: len(ids)}
	for i, err := range errs {
		if err != nil {
			res.Failed++
			res.Failures = append(res.Failures, BulkFailure{ID: ids[i], Error: err.Error()})
			continue
		}
		res.Succeeded++
	}
	return res
}

// dedupe drops zero and repeated ids, keeping the first occurrence
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
