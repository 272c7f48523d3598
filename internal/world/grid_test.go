package world

import (
	"testing"
	"tileworld-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, w, h int) *TileGrid {
	t.Helper()
	g, err := NewTileGrid(w, h)
	require.NoError(t, err)
	return g
}

func TestTileGrid_IsInside(t *testing.T) {
	g := newTestGrid(t, 10, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 9, 4, true},
		{"x too big", 10, 0, false},
		{"y too big", 0, 5, false},
		{"negative x", -1, 2, false},
		{"negative y", 3, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsInside(tt.x, tt.y))
		})
	}
}

func TestTileGrid_TileIsStable(t *testing.T) {
	g := newTestGrid(t, 8, 8)

	a, ok := g.Tile(3, 4)
	require.True(t, ok)
	b, ok := g.Tile(3, 4)
	require.True(t, ok)
	assert.Same(t, a, b)

	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockStone), 3, 4))
	c, _ := g.Tile(3, 4)
	assert.Same(t, a, c, "mutation must happen in place")

	_, ok = g.Tile(8, 0)
	assert.False(t, ok)
}

func TestTileGrid_SetBlockResetsState(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	tile, _ := g.Tile(1, 1)
	tile.BlockHP = 7
	tile.Data = 0x5A

	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockSand), 1, 1))

	id, err := g.BlockID(1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.BlockSand, id)
	assert.EqualValues(t, domain.MaxTileHP, tile.BlockHP)
	assert.Zero(t, tile.Data)

	require.NoError(t, g.SetData(3, 1, 1))
	require.NoError(t, g.SetWall(domain.MustWall(domain.WallWood), 1, 1))
	data, err := g.Data(1, 1)
	require.NoError(t, err)
	assert.Zero(t, data, "setting a wall discards the data tag")
	assert.EqualValues(t, domain.MaxTileHP, tile.WallHP)

	assert.ErrorIs(t, g.SetBlock(nil, 4, 0), ErrOutOfBounds)
	assert.ErrorIs(t, g.SetWall(nil, 0, -1), ErrOutOfBounds)
}

func TestTileGrid_IDsDistinguishOutsideFromEmpty(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	require.NoError(t, g.SetWall(domain.MustWall(domain.WallStone), 2, 2))

	id, err := g.BlockID(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, domain.BlockNone, id)

	_, err = g.BlockID(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	wid, err := g.WallID(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.WallStone, wid)

	_, err = g.WallID(0, 9)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Старое поведение схлопывает оба случая в 0
	assert.Equal(t, 0, g.LegacyBlockID(-1, 0))
	assert.Equal(t, 0, g.LegacyBlockID(0, 0))
	assert.Equal(t, int(domain.WallStone), g.LegacyWallID(2, 2))
	assert.Equal(t, 0, g.LegacyWallID(99, 99))
}

func TestTileGrid_Highest(t *testing.T) {
	g := newTestGrid(t, 5, 20)
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockGrass), 2, 10))
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockDirt), 2, 15))

	y, err := g.Highest(2)
	require.NoError(t, err)
	assert.Equal(t, 10-SurfaceOffset, y)

	_, err = g.Highest(0)
	assert.ErrorIs(t, err, ErrNoGround)

	_, err = g.Highest(5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNewTileGridFrom_Malformed(t *testing.T) {
	_, err := NewTileGridFrom(4, 4, make([]domain.TileData, 15))
	assert.ErrorIs(t, err, ErrMalformedWorld)

	_, err = NewTileGridFrom(0, 4, nil)
	assert.ErrorIs(t, err, ErrMalformedWorld)

	g, err := NewTileGridFrom(4, 4, make([]domain.TileData, 16))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 5, g.Index(1, 1))
}
