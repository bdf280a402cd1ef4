package intake

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// IntakeBatch runs intakes concurrently, at most limit at a time. Failures are
// reported per item and never stop the rest of the batch. Results keep input order.
func (s *Service) IntakeBatch(ctx context.Context, items []BatchItem, limit int) []BatchResult {
	if limit <= 0 {
		limit = 4
	}
	results := make([]BatchResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, it := range items {
		g.Go(func() error {
			res, err := s.Intake(gctx, it.Upload, it.Role)
			results[i] = BatchResult{Filename: it.Filename, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
