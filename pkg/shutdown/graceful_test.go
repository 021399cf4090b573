package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"goodnotes/pkg/shutdown"
)

func TestWaitRunsHooksWhenContextCanceled(t *testing.T) {
	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second, hook, hook)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunToleratesHookErrors(t *testing.T) {
	failing := func(context.Context) error { return errors.New("boom") }

	ok := shutdown.Run(context.Background(), time.Second, failing)
	assert.True(t, ok)
}

func TestRunRespectsTimeout(t *testing.T) {
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
			time.Sleep(200 * time.Millisecond)
		}
		return nil
	}

	start := time.Now()
	ok := shutdown.Run(context.Background(), 50*time.Millisecond, slow)

	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}
