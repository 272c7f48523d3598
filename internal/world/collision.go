package world

import (
	"math"
	"tileworld-server/internal/domain"
)

// Collides проверяет, пересекает ли прямоугольник (в пикселях) твёрдые блоки.
// Края мира считаются твёрдыми. Возвращает true на первом же пересечении.
func (g *TileGrid) Collides(bounds domain.Rect, tileSize int) bool {
	ts := float64(tileSize)
	gx := bounds.X / ts
	gy := bounds.Y / ts
	gw := bounds.Width / ts
	gh := bounds.Height / ts

	// Запас в одну клетку с каждой стороны ловит частичные перекрытия на границах
	startX := int(math.Floor(gx)) - 1
	startY := int(math.Floor(gy)) - 1

	for y := startY; float64(y) < gy+gh+1; y++ {
		for x := startX; float64(x) < gx+gw+1; x++ {
			if !g.IsInside(x, y) {
				return true
			}

			t := g.at(x, y)
			if !t.IsSolid() {
				continue
			}

			cell := domain.Rect{X: float64(x) * ts, Y: float64(y) * ts, Width: ts, Height: ts}
			if cell.Intersects(bounds) {
				return true
			}
		}
	}

	return false
}
