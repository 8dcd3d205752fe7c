package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/event"
)

func TestPileRecycled(t *testing.T) {
	listener := event.NewDummyListener()
	event.PileRecycled.AddListener(listener)

	payload := event.PileRecycledPayload{Count: 23}
	event.PileRecycled.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}
