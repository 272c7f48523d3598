package admin

import (
	"errors"
	"fmt"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine/handlers"
	"tileworld-server/internal/world"
)

// TeleportPayload: { "x": 10, "y": 10 } - клетка, на которую встанет камера
type TeleportPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p TeleportPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("coordinates must not be negative")
	}
	return nil
}

// HandleTeleport переносит камеру на клетку
func HandleTeleport(ctx handlers.Context, p TeleportPayload) (handlers.Result, error) {
	if !ctx.World.Grid().IsInside(p.X, p.Y) {
		return handlers.EmptyResult(), fmt.Errorf("teleport to (%d,%d): %w", p.X, p.Y, world.ErrOutOfBounds)
	}

	v := ctx.World.View()
	v.Camera = domain.CameraAtTile(p.X, p.Y, ctx.World.TileSize())
	ctx.World.SetView(v)

	return handlers.Result{Msg: fmt.Sprintf("Teleported camera to (%d,%d)", p.X, p.Y)}, nil
}

// KillPayload: { "targetId": "..." }
type KillPayload struct {
	TargetID string `json:"targetId"`
}

func (p KillPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

// HandleKill помечает сущность на удаление. Исчезнет на следующем тике.
func HandleKill(ctx handlers.Context, p KillPayload) (handlers.Result, error) {
	target := ctx.World.Entity(p.TargetID)
	if target == nil {
		return handlers.EmptyResult(), fmt.Errorf("entity %s not found", p.TargetID)
	}
	ctx.World.Remove(target)
	return handlers.Result{Msg: fmt.Sprintf("Smited %s", target.Name)}, nil
}

// HandleClear убирает все сущности мира
func HandleClear(ctx handlers.Context) (handlers.Result, error) {
	entities := ctx.World.Entities()
	for _, e := range entities {
		ctx.World.Remove(e)
	}
	return handlers.Result{Msg: fmt.Sprintf("Cleared %d entities", len(entities))}, nil
}
