package remote

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPendingCounter_LoadingWhilePending(t *testing.T) {
	counter := newPendingCounter(testLogger())

	assert.False(t, counter.loading())

	counter.increment()
	assert.True(t, counter.loading())

	counter.increment()
	counter.decrement()
	assert.True(t, counter.loading())

	counter.decrement()
	assert.False(t, counter.loading())
}

func TestPendingCounter_ClampsNegative(t *testing.T) {
	counter := newPendingCounter(testLogger())

	// Unpaired decrements must not wedge the signal.
	counter.decrement()
	counter.decrement()
	assert.False(t, counter.loading())

	counter.increment()
	assert.True(t, counter.loading())

	counter.decrement()
	assert.False(t, counter.loading())
}

func TestPendingCounter_ConcurrentUse(t *testing.T) {
	counter := newPendingCounter(testLogger())

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.increment()
			counter.decrement()
		}()
	}
	wg.Wait()

	assert.False(t, counter.loading())
}
