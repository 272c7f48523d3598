package worldgen

import (
	"testing"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	w, err := Generate(Params{Name: "gen", Seed: 7, Width: 120, Height: 80, Evil: domain.EvilCrimson})
	require.NoError(t, err)

	// 1. Размеры мира
	assert.Equal(t, 120, w.Width())
	assert.Equal(t, 80, w.Height())

	// 2. В каждой колонке есть земля
	for x := 0; x < w.Width(); x++ {
		_, err := w.Grid().Highest(x)
		require.NoError(t, err, "column %d has no ground", x)
	}

	// 3. Есть блоки зла нужного типа и нет чужих
	var crim, ebon int
	for _, tile := range w.CopyTiles() {
		switch tile.BlockID() {
		case domain.BlockCrimstone, domain.BlockCrimsand:
			crim++
		case domain.BlockEbonstone, domain.BlockEbonsand:
			ebon++
		}
	}
	assert.Positive(t, crim)
	assert.Zero(t, ebon)
}

func TestGenerate_Deterministic(t *testing.T) {
	p := Params{Name: "same", Seed: 42, Width: 64, Height: 48}

	a, err := Generate(p)
	require.NoError(t, err)
	b, err := Generate(p)
	require.NoError(t, err)
	assert.Equal(t, a.CopyTiles(), b.CopyTiles())

	p.Seed = 43
	c, err := Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, a.CopyTiles(), c.CopyTiles())
}

func TestBuilder_Patches(t *testing.T) {
	b := NewBuilder("patch", 3).WithSize(100, 60).WithTerrain().WithDesert(20)
	require.Len(t, b.DesertPatches(), 1)

	p := b.DesertPatches()[0]
	assert.Equal(t, 20, p.To-p.From)

	w, err := b.Build()
	require.NoError(t, err)
	for x := p.From; x < p.To; x++ {
		id, err := w.Grid().BlockID(x, b.Surface()[x])
		require.NoError(t, err)
		assert.Equal(t, domain.BlockSand, id)
	}
}

func TestBuilder_InvalidSize(t *testing.T) {
	_, err := NewBuilder("bad", 1).WithSize(0, 10).WithTerrain().Build()
	assert.ErrorIs(t, err, world.ErrMalformedWorld)
}

func TestBuilder_EmptyWorldWithoutTerrain(t *testing.T) {
	w, err := NewBuilder("flat", 1).WithSize(10, 10).Build()
	require.NoError(t, err)
	_, err = w.Grid().Highest(0)
	assert.ErrorIs(t, err, world.ErrNoGround)
}
