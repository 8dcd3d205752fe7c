package game_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/game"
)

func TestSchedulerRunsTheAction(t *testing.T) {
	scheduler := game.NewScheduler()
	done := make(chan struct{})
	scheduler.Schedule(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled action never ran")
	}
}

func TestCancelDiscardsThePendingAction(t *testing.T) {
	scheduler := game.NewScheduler()
	var fired int32
	scheduler.Schedule(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	scheduler.Cancel()

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&fired), "cancelled action must not mutate anything")
}

func TestScheduleSupersedesThePendingAction(t *testing.T) {
	scheduler := game.NewScheduler()
	var stale, fresh int32
	scheduler.Schedule(20*time.Millisecond, func() { atomic.AddInt32(&stale, 1) })
	scheduler.Schedule(time.Millisecond, func() { atomic.AddInt32(&fresh, 1) })

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&stale), "superseded action must be discarded")
	require.Equal(t, int32(1), atomic.LoadInt32(&fresh))
}

func TestZeroDelayIsValid(t *testing.T) {
	scheduler := game.NewScheduler()
	done := make(chan struct{})
	scheduler.Schedule(0, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero-delay action never ran")
	}
}
