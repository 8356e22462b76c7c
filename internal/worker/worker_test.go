package worker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promptfoundry/promptfoundry/internal/engine"
)

func TestReviewer_PreservesOrder(t *testing.T) {
	prompts := make([]string, 50)
	for i := range prompts {
		prompts[i] = fmt.Sprintf("prompt %d", i)
		if i%2 == 0 {
			prompts[i] += " as json"
		}
	}

	r := New(3, zap.NewNop())
	reviews, err := r.Review(context.Background(), prompts)
	require.NoError(t, err)
	require.Len(t, reviews, len(prompts))

	for i, rev := range reviews {
		assert.Equal(t, i, rev.Index)
		assert.Equal(t, engine.Critique(prompts[i]), rev.Critique)
		assert.Equal(t, engine.Score(prompts[i]), rev.Scoring)
	}
}

func TestReviewer_Empty(t *testing.T) {
	reviews, err := New(0, nil).Review(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(2, nil).Review(ctx, []string{"a", "b", "c"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_DefaultParallelism(t *testing.T) {
	r := New(-1, nil)
	assert.Equal(t, DefaultParallelism, r.parallelism)
}
