package livequery

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQueryRefetchKeepsLastGoodValue(t *testing.T) {
	var calls atomic.Int32
	q := NewQuery(func(ctx context.Context) (int, error) {
		n := calls.Add(1)
		if n == 2 {
			return 0, errors.New("db down")
		}
		return int(n) * 10, nil
	})

	assert.True(t, q.Snapshot().Loading)

	st := q.Refetch(context.Background())
	assert.Equal(t, 10, st.Value)
	assert.NoError(t, st.Err)
	assert.False(t, st.Loading)

	st = q.Refetch(context.Background())
	assert.Equal(t, 10, st.Value)
	assert.EqualError(t, st.Err, "db down")

	st = q.Refetch(context.Background())
	assert.Equal(t, 30, st.Value)
	assert.NoError(t, st.Err)
	assert.Equal(t, uint64(3), st.Version)
}

func TestWatchRefetchesOnPublish(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	var calls atomic.Int32
	q := NewQuery(func(ctx context.Context) (int32, error) {
		return calls.Add(1), nil
	})
	states, cancelSub := q.Subscribe()
	defer cancelSub()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Watch(ctx, bus, TopicPks, nil)
	}()

	first := receive(t, states)
	assert.Equal(t, int32(1), first.Value)

	require.NoError(t, bus.Publish(context.Background(), TopicPks))
	second := receive(t, states)
	assert.Equal(t, int32(2), second.Value)

	// topik lain tidak memicu refetch
	require.NoError(t, bus.Publish(context.Background(), TopicInstansi))
	select {
	case st := <-states:
		t.Fatalf("unexpected refetch: %+v", st)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestWatchRefetchesOnRefreshTick(t *testing.T) {
	var calls atomic.Int32
	q := NewQuery(func(ctx context.Context) (int32, error) {
		return calls.Add(1), nil
	})
	states, cancelSub := q.Subscribe()
	defer cancelSub()

	ticks := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Watch(ctx, nil, TopicPks, ticks)
	}()

	assert.Equal(t, int32(1), receive(t, states).Value)

	ticks <- time.Now()
	assert.Equal(t, int32(2), receive(t, states).Value)

	cancel()
	<-done
}

func TestMemoryBusUnsubscribeAndClose(t *testing.T) {
	bus := NewMemoryBus()
	ch, stop := bus.Subscribe(TopicDaftarKi)
	stop()
	stop()

	_, ok := <-ch
	assert.False(t, ok, "channel closed after unsubscribe")
	require.NoError(t, bus.Publish(context.Background(), TopicDaftarKi))

	ch2, _ := bus.Subscribe(TopicDaftarKi)
	require.NoError(t, bus.Close())
	_, ok = <-ch2
	assert.False(t, ok, "channel closed when bus closes")
}

func receive[T any](t *testing.T, ch <-chan State[T]) State[T] {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for state")
	}
	var zero State[T]
	return zero
}
