package expiry

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "Runs every task",
			numTasks:   20,
			numWorkers: 3,
		},
		{
			name:           "Failing task does not stop the pool",
			numTasks:       4,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					if i < tt.expectedErrors {
						failed.Add(1)
						return assert.AnError
					}
					executed.Add(1)
					return nil
				})
				require.NoError(t, err)
			}
			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.expectedErrors), executed.Load())
			assert.Equal(t, int32(tt.expectedErrors), failed.Load())
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
