package actions

import (
	"fmt"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine/handlers"
	"tileworld-server/pkg/api"
)

func HandleSpawnEnemy(ctx handlers.Context, p api.SpawnEnemyPayload) (handlers.Result, error) {
	e, err := ctx.World.SpawnEnemy(domain.EnemyID(p.Enemy), p.X, p.Y)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("spawned %s", e.Name)}, nil
}

func HandleSpawnDrop(ctx handlers.Context, p api.SpawnDropPayload) (handlers.Result, error) {
	item := ctx.World.SpawnDrop(domain.Drop{Item: domain.ItemID(p.Item), Count: p.Count}, p.X, p.Y)
	return handlers.Result{Msg: fmt.Sprintf("dropped %dx%d at (%.1f, %.1f)", p.Count, p.Item, item.Pos.X, item.Pos.Y)}, nil
}
