package world

import "tileworld-server/internal/domain"

//go:generate mockgen -destination=mocks/renderer.go -package=worldmocks -source=render.go

// Renderer - внешний отрисовщик. Мир решает ЧТО рисовать, Renderer - КАК.
type Renderer interface {
	RenderTile(x, y int, tile *domain.TileData)
	RenderEntity(e *domain.Entity)
}

// RenderStats - сколько всего было передано в Renderer за кадр
type RenderStats struct {
	Window   Window `json:"window"`
	Tiles    int    `json:"tiles"`
	Entities int    `json:"entities"`
}
