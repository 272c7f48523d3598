package redisstore

import (
	"bytes"
	"context"
	"os"
	"testing"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/infrastructure/storage"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewClient(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return New(client, "test"), mr
}

func newWorld(t *testing.T, name string) *world.World {
	t.Helper()
	g, err := world.NewTileGrid(4, 4)
	require.NoError(t, err)
	w := world.New(name, g, domain.EvilCorruption)
	require.NoError(t, w.SetBlock(domain.MustBlock(domain.BlockEbonstone), 2, 3))
	return w
}

func TestStore_RoundTrip(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	src := newWorld(t, "alpha")
	require.NoError(t, s.Save(ctx, src))
	require.NoError(t, s.Save(ctx, newWorld(t, "beta")))

	assert.True(t, mr.Exists("test:world:alpha"))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)

	got, err := s.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, src.CopyTiles(), got.CopyTiles())
	assert.Equal(t, domain.EvilCorruption, got.EvilType())
}

func TestStore_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrWorldNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), storage.ErrWorldNotFound)
}

func TestStore_Delete(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, newWorld(t, "alpha")))
	require.NoError(t, s.Delete(ctx, "alpha"))

	assert.False(t, mr.Exists("test:world:alpha"))
	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_CorruptBlob(t *testing.T) {
	s, mr := newTestStore(t)
	require.NoError(t, mr.Set("test:world:broken", "garbage"))

	_, err := s.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, world.ErrMalformedWorld)
}

func TestNewClient_RequiresAddress(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestStore_LoadRejectsTruncatedBlob(t *testing.T) {
	s, mr := newTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, storage.Encode(&buf, newWorld(t, "broken")))
	data := buf.Bytes()
	require.NoError(t, mr.Set("test:world:broken", string(data[:len(data)-5])))

	w, err := s.Load(context.Background(), "broken")
	assert.Nil(t, w)
	assert.ErrorIs(t, err, world.ErrMalformedWorld)
}
