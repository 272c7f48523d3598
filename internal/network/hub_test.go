package network

import (
	"os"
	"testing"
	"tileworld-server/pkg/api"
	"tileworld-server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterBroadcastUnregister(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")
	assert.Equal(t, 2, b.SubscriberCount())

	b.Broadcast(api.ServerResponse{Type: api.MsgFrame, Tick: 1})
	assert.EqualValues(t, 1, (<-a).Tick)
	assert.EqualValues(t, 1, (<-c).Tick)

	assert.True(t, b.SendTo("a", api.ServerResponse{Type: api.MsgInit}))
	assert.Equal(t, api.MsgInit, (<-a).Type)
	assert.False(t, b.SendTo("missing", api.ServerResponse{}))

	b.Unregister("a")
	_, open := <-a
	assert.False(t, open)
	assert.False(t, b.HasSubscriber("a"))
	assert.True(t, b.HasSubscriber("c"))

	// Повторный Unregister безопасен
	b.Unregister("a")
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s")
	fresh := b.Register("s")

	_, open := <-old
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.Broadcast(api.ServerResponse{Tick: 7})
	assert.EqualValues(t, 7, (<-fresh).Tick)
}

func TestBroadcaster_SlowSubscriberDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < SessionBuffer+5; i++ {
		b.Broadcast(api.ServerResponse{Tick: uint64(i)})
	}

	require.Len(t, ch, SessionBuffer)
	assert.EqualValues(t, 5, b.Dropped())
	assert.EqualValues(t, 0, (<-ch).Tick, "oldest frames are kept")
}
