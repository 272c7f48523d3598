package engine

import (
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/api"
)

// frameRenderer собирает DTO кадра. Реализует world.Renderer.
type frameRenderer struct {
	tiles    []api.TileView
	entities []api.EntityView
}

func (f *frameRenderer) RenderTile(x, y int, t *domain.TileData) {
	// Пустые клетки не передаём
	if t.Block == nil && t.Wall == nil {
		return
	}
	f.tiles = append(f.tiles, api.TileView{
		X:     x,
		Y:     y,
		Block: uint16(t.BlockID()),
		Wall:  uint16(t.WallID()),
		Data:  t.Data,
		Solid: t.IsSolid(),
	})
}

func (f *frameRenderer) RenderEntity(e *domain.Entity) {
	f.entities = append(f.entities, entityView(e))
}

func entityView(e *domain.Entity) api.EntityView {
	v := api.EntityView{
		ID:     e.ID,
		Kind:   e.Kind.String(),
		Name:   e.Name,
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		Width:  e.Width,
		Height: e.Height,
	}
	if e.Enemy != nil {
		v.HP = e.Enemy.HP
		v.MaxHP = e.Enemy.MaxHP
	}
	if e.Drop != nil {
		v.Item = uint16(e.Drop.Drop.Item)
		v.Count = e.Drop.Drop.Count
	}
	return v
}

func windowView(w world.Window) *api.WindowView {
	return &api.WindowView{MinX: w.MinX, MaxX: w.MaxX, MinY: w.MinY, MaxY: w.MaxY}
}

// buildFrame рендерит окно камеры в сообщение для наблюдателей
func (i *Instance) buildFrame(msgType string) api.ServerResponse {
	r := &frameRenderer{}
	stats := i.World.Render(r)

	return api.ServerResponse{
		Type:     msgType,
		Tick:     i.tick,
		Biome:    i.World.CurrentBiome().String(),
		Render:   windowView(stats.Window),
		Active:   windowView(i.World.ActiveWindow()),
		Map:      r.tiles,
		Entities: r.entities,
	}
}

// summarize - метаданные мира для INIT и /debug/world
func (i *Instance) summarize() api.WorldSummary {
	return SummarizeWorld(i.World, i.tick)
}

// SummarizeWorld - метаданные мира для /debug/world, INIT и команды inspect
func SummarizeWorld(w *world.World, tick uint64) api.WorldSummary {
	return api.WorldSummary{
		Name:     w.Name(),
		Version:  w.Version(),
		Width:    w.Width(),
		Height:   w.Height(),
		TileSize: w.TileSize(),
		Evil:     w.EvilType().String(),
		Expert:   w.IsExpert(),
		Biome:    w.CurrentBiome().String(),
		Entities: w.EntityCount(),
		Tick:     tick,
	}
}
