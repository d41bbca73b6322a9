package enhance

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is used when EnhanceAll is given a non-positive limit.
const DefaultBatchConcurrency = 4

// EnhanceAll enhances every request with at most limit calls in flight. Results are in
// input order. A failed request is reported in its result and does not stop the others.
func (e *Enhancer) EnhanceAll(ctx context.Context, reqs []*types.EnhancementRequest, limit int) []types.BatchResult {
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]types.BatchResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			id := uuid.NewString()
			itemCtx := logger.ContextWithRequestID(ctx, id)

			result := types.BatchResult{Index: i, RequestID: id}
			prompt, err := e.Enhance(itemCtx, req)
			if err != nil {
				result.Error = err.Error()
				result.Kind = llm.Kind(err)
			} else {
				result.EnhancedPrompt = prompt
			}
			// each goroutine owns its slot
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed counts the results that carry an error.
func Failed(results []types.BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Error != "" {
			n++
		}
	}
	return n
}
