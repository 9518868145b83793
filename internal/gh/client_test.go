package gh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchFetchPartialResults(t *testing.T) {
	fetch := func(ctx context.Context, number int) (PullRequestInfo, error) {
		if number%2 != 0 {
			return PullRequestInfo{}, errors.New("boom")
		}
		return PullRequestInfo{Number: number, Title: "ok"}, nil
	}

	results := batchFetch(context.Background(), []int{1, 2, 3, 4, 5, 6}, fetch)

	assert.Len(t, results, 3)
	for _, n := range []int{2, 4, 6} {
		assert.Equal(t, n, results[n].Number)
	}
	for _, n := range []int{1, 3, 5} {
		_, ok := results[n]
		assert.False(t, ok, "failed lookup %d should be absent", n)
	}
}

func TestBatchFetchEmpty(t *testing.T) {
	fetch := func(ctx context.Context, number int) (PullRequestInfo, error) {
		t.Fatal("fetch should not be called")
		return PullRequestInfo{}, nil
	}
	assert.Empty(t, batchFetch(context.Background(), nil, fetch))
}

func TestBatchFetchBoundsConcurrency(t *testing.T) {
	var inFlight, maxInFlight atomic.Int64

	fetch := func(ctx context.Context, number int) (PullRequestInfo, error) {
		cur := inFlight.Add(1)
		for {
			max := maxInFlight.Load()
			if cur <= max || maxInFlight.CompareAndSwap(max, cur) {
				break
			}
		}
		defer inFlight.Add(-1)
		return PullRequestInfo{Number: number}, nil
	}

	numbers := make([]int, 50)
	for i := range numbers {
		numbers[i] = i + 1
	}

	results := batchFetch(context.Background(), numbers, fetch)

	assert.Len(t, results, 50)
	assert.LessOrEqual(t, maxInFlight.Load(), int64(batchSize))
}
