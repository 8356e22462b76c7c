package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/promptfoundry/promptfoundry/internal/engine"
	"github.com/promptfoundry/promptfoundry/internal/model"
)

// DefaultParallelism is used when a Reviewer is created with a non-positive limit.
const DefaultParallelism = 4

// Review is the critique and score of one prompt of a batch.
type Review struct {
	Index    int            `json:"index"`
	Critique model.Critique `json:"critique"`
	Scoring  model.Scoring  `json:"scoring"`
}

// Reviewer critiques and scores batches of prompts with bounded parallelism.
type Reviewer struct {
	parallelism int
	logger      *zap.Logger
}

// New creates a new Reviewer.
func New(parallelism int, logger *zap.Logger) *Reviewer {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reviewer{parallelism: parallelism, logger: logger}
}

// Review returns one Review per prompt, in input order. It stops early and
// returns ctx.Err() when ctx is cancelled.
func (r *Reviewer) Review(ctx context.Context, prompts []string) ([]Review, error) {
	start := time.Now()
	reviews := make([]Review, len(prompts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, p := range prompts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reviews[i] = Review{Index: i, Critique: engine.Critique(p), Scoring: engine.Score(p)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Warn("review cancelled", zap.Int("prompts", len(prompts)), zap.Error(err))
		return nil, err
	}

	r.logger.Debug("batch reviewed",
		zap.Int("prompts", len(prompts)),
		zap.Int("parallelism", r.parallelism),
		zap.Duration("elapsed", time.Since(start)),
	)
	return reviews, nil
}
