package actions

import (
	"fmt"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine/handlers"
	"tileworld-server/pkg/api"
)

// HandleCamera двигает камеру. Классификатор увидит новое окно на следующем скане.
func HandleCamera(ctx handlers.Context, p api.CameraPayload) (handlers.Result, error) {
	v := ctx.World.View()
	v.Camera = domain.Camera{X: p.X, Y: p.Y}
	ctx.World.SetView(v)
	return handlers.EmptyResult(), nil
}

// HandleResize меняет размер экрана наблюдателя
func HandleResize(ctx handlers.Context, p api.ResizePayload) (handlers.Result, error) {
	v := ctx.World.View()
	v.Screen = domain.Screen{Width: p.Width, Height: p.Height}
	ctx.World.SetView(v)
	return handlers.Result{Msg: fmt.Sprintf("screen %dx%d", p.Width, p.Height)}, nil
}
