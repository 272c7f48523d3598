package worldgen

import (
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Params - параметры стандартной генерации
type Params struct {
	Name   string
	Seed   int64
	Width  int
	Height int
	Evil   domain.EvilType
	Expert bool
}

// Generate создает мир по стандартному рецепту: рельеф, пустыня, зона зла, растения
func Generate(p Params, opts ...world.Option) (*world.World, error) {
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}

	b := NewBuilder(p.Name, p.Seed).
		WithSize(p.Width, p.Height).
		WithEvil(p.Evil).
		WithExpert(p.Expert).
		WithTerrain().
		WithDesert(p.Width / 8).
		WithEvilPatch(p.Width / 10).
		WithPlants(0.05)

	w, err := b.Build(opts...)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"world":     p.Name,
		"seed":      p.Seed,
		"width":     p.Width,
		"height":    p.Height,
		"evil":      p.Evil,
		"desert":    b.DesertPatches(),
		"evil_zone": b.EvilPatches(),
	}).Info("World generated")
	return w, nil
}
