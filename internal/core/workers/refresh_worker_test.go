package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingLoader struct {
	loads int64
	err   error
}

func (l *countingLoader) Load(ctx context.Context) error {
	atomic.AddInt64(&l.loads, 1)
	return l.err
}

func (l *countingLoader) Loads() int64 {
	return atomic.LoadInt64(&l.loads)
}

func TestRefreshWorker_Enqueue(t *testing.T) {
	pets := &countingLoader{}
	clients := &countingLoader{}

	w := NewRefreshWorker(map[string]Loader{
		"pets":    pets,
		"clients": clients,
	}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Enqueue("pets")

	assert.Eventually(t, func() bool {
		return pets.Loads() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(0), clients.Loads(), "only the requested collection reloads")
}

func TestRefreshWorker_Tick(t *testing.T) {
	pets := &countingLoader{}

	w := NewRefreshWorker(map[string]Loader{"pets": pets}, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	assert.Eventually(t, func() bool {
		return pets.Loads() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefreshWorker_LoadFailureDoesNotStopWorker(t *testing.T) {
	failing := &countingLoader{err: errors.New("Failed to fetch pets")}

	w := NewRefreshWorker(map[string]Loader{"pets": failing}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Enqueue("pets")
	w.Enqueue("pets")

	assert.Eventually(t, func() bool {
		return failing.Loads() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefreshWorker_UnknownCollection(t *testing.T) {
	pets := &countingLoader{}

	w := NewRefreshWorker(map[string]Loader{"pets": pets}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Enqueue("hamsters")
	w.Enqueue("pets")

	assert.Eventually(t, func() bool {
		return pets.Loads() == 1
	}, 2*time.Second, 10*time.Millisecond)
}
