package world

import (
	"testing"
	"tileworld-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTile = 48

// tileRect - прямоугольник в пикселях, заданный в тайлах
func tileRect(x, y, w, h float64) domain.Rect {
	return domain.Rect{X: x * testTile, Y: y * testTile, Width: w * testTile, Height: h * testTile}
}

func TestCollides_EmptyRegion(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	assert.False(t, g.Collides(tileRect(5, 5, 2, 2), testTile))
}

func TestCollides_SolidBlockOverlap(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockStone), 6, 6))

	assert.True(t, g.Collides(tileRect(5, 5, 2, 2), testTile))
	// Частичное перекрытие на полтайла
	assert.True(t, g.Collides(tileRect(4.5, 4.5, 2, 2), testTile))
}

func TestCollides_NonSolidBlockIgnored(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockVileMushroom), 6, 6))

	assert.False(t, g.Collides(tileRect(5, 5, 2, 2), testTile))
}

func TestCollides_AdjacentSolidDoesNotCollide(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	// Блок в зоне запаса скана, но только касается бокса краем
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockStone), 7, 5))
	require.NoError(t, g.SetBlock(domain.MustBlock(domain.BlockStone), 5, 7))

	assert.False(t, g.Collides(tileRect(5, 5, 2, 2), testTile))
}

func TestCollides_WorldEdgesAreSolid(t *testing.T) {
	g := newTestGrid(t, 20, 20)

	tests := []struct {
		name   string
		bounds domain.Rect
	}{
		{"left edge", tileRect(0, 5, 1, 1)},
		{"top edge", tileRect(5, 0, 1, 1)},
		{"right edge", tileRect(19, 5, 1, 1)},
		{"bottom edge", tileRect(5, 19, 1, 1)},
		{"partially outside", tileRect(-0.5, 5, 1, 1)},
		{"fully outside", tileRect(-10, -10, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, g.Collides(tt.bounds, testTile))
		})
	}
}
