package actions

import (
	"errors"
	"fmt"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine/handlers"
	"tileworld-server/pkg/api"
)

// ErrUnknownTile - ID блока или стены нет в каталоге
var ErrUnknownTile = errors.New("unknown tile id")

// HandleSetBlock ставит блок. Block = 0 убирает блок.
func HandleSetBlock(ctx handlers.Context, p api.SetBlockPayload) (handlers.Result, error) {
	block, ok := domain.BlockByID(domain.BlockID(p.Block))
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("block %d: %w", p.Block, ErrUnknownTile)
	}
	if err := ctx.World.SetBlock(block, p.X, p.Y); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.EmptyResult(), nil
}

// HandleSetWall ставит стену. Wall = 0 убирает стену.
func HandleSetWall(ctx handlers.Context, p api.SetWallPayload) (handlers.Result, error) {
	wall, ok := domain.WallByID(domain.WallID(p.Wall))
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("wall %d: %w", p.Wall, ErrUnknownTile)
	}
	if err := ctx.World.SetWall(wall, p.X, p.Y); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.EmptyResult(), nil
}
