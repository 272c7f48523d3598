package worldgen

import (
	"math/rand"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"

	"github.com/aquilax/go-perlin"
)

// Константы генерации
const (
	DefaultWidth  = 400
	DefaultHeight = 200

	// Уровень поверхности - доля высоты мира
	surfaceRatio = 0.35
	dirtDepth    = 10
	patchDepth   = 30
)

// Patch - диапазон колонок [From, To), занятый пустыней или порчей
type Patch struct {
	From, To int
}

func (p Patch) Contains(x int) bool { return x >= p.From && x < p.To }

// Builder предоставляет fluent API для создания мира
type Builder struct {
	name   string
	seed   int64
	width  int
	height int
	evil   domain.EvilType
	expert bool

	rng   *rand.Rand
	noise *perlin.Perlin

	tiles   []domain.TileData
	surface []int
	desert  []Patch
	evilZ   []Patch
}

// NewBuilder создает builder. Один и тот же сид даёт один и тот же мир.
func NewBuilder(name string, seed int64) *Builder {
	return &Builder{
		name:   name,
		seed:   seed,
		width:  DefaultWidth,
		height: DefaultHeight,
		rng:    rand.New(rand.NewSource(seed)),
		noise:  perlin.NewPerlin(2, 2, 3, seed),
	}
}

// WithSize устанавливает размер мира
func (b *Builder) WithSize(width, height int) *Builder {
	b.width = width
	b.height = height
	return b
}

// WithEvil выбирает порчу или багрянец
func (b *Builder) WithEvil(e domain.EvilType) *Builder {
	b.evil = e
	return b
}

// WithExpert включает режим эксперта
func (b *Builder) WithExpert(expert bool) *Builder {
	b.expert = expert
	return b
}

func (b *Builder) valid() bool {
	return b.width > 0 && b.height > 0
}

func (b *Builder) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Builder) tile(x, y int) *domain.TileData {
	return &b.tiles[x+y*b.width]
}

func (b *Builder) setBlock(x, y int, id domain.BlockID) {
	if !b.inside(x, y) {
		return
	}
	t := b.tile(x, y)
	t.Block = domain.MustBlock(id)
	t.BlockHP = domain.MaxTileHP
}

func (b *Builder) setWall(x, y int, id domain.WallID) {
	if !b.inside(x, y) {
		return
	}
	t := b.tile(x, y)
	t.Wall = domain.MustWall(id)
	t.WallHP = domain.MaxTileHP
}

func (b *Builder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// WithTerrain строит рельеф по шуму Перлина: трава, слой грязи, под ним камень
func (b *Builder) WithTerrain() *Builder {
	if !b.valid() {
		return b
	}
	b.tiles = make([]domain.TileData, b.width*b.height)
	b.surface = make([]int, b.width)

	base := float64(b.height) * surfaceRatio
	for x := 0; x < b.width; x++ {
		h1 := b.noise.Noise1D(float64(x)*0.01) * 8.0
		h2 := b.noise.Noise1D(float64(x)*0.05+100) * 2.0
		top := int(base + h1 + h2)
		top = min(max(top, 1), b.height-1)
		b.surface[x] = top

		b.setBlock(x, top, domain.BlockGrass)
		for y := top + 1; y < b.height; y++ {
			if y <= top+dirtDepth {
				b.setBlock(x, y, domain.BlockDirt)
				b.setWall(x, y, domain.WallDirt)
			} else {
				b.setBlock(x, y, domain.BlockStone)
				b.setWall(x, y, domain.WallStone)
			}
		}
	}
	return b
}

// randomPatch выбирает случайный отрезок колонок заданной ширины
func (b *Builder) randomPatch(width int) Patch {
	width = min(width, b.width)
	from := b.randRange(0, b.width-width)
	return Patch{From: from, To: from + width}
}

// WithDesert заменяет верхний слой на песок в случайной полосе
func (b *Builder) WithDesert(width int) *Builder {
	if b.tiles == nil || width <= 0 {
		return b
	}
	p := b.randomPatch(width)
	for x := p.From; x < p.To; x++ {
		for y := b.surface[x]; y < b.surface[x]+patchDepth && y < b.height; y++ {
			b.setBlock(x, y, domain.BlockSand)
		}
	}
	b.desert = append(b.desert, p)
	return b
}

// WithEvilPatch заражает полосу мира. Песок становится злым песком, остальное - злым камнем.
func (b *Builder) WithEvilPatch(width int) *Builder {
	if b.tiles == nil || width <= 0 {
		return b
	}

	stone, sand, plant := domain.BlockEbonstone, domain.BlockEbonsand, domain.BlockVileMushroom
	if b.evil == domain.EvilCrimson {
		stone, sand, plant = domain.BlockCrimstone, domain.BlockCrimsand, domain.BlockViciousMushroom
	}

	p := b.randomPatch(width)
	for x := p.From; x < p.To; x++ {
		for y := b.surface[x]; y < b.surface[x]+patchDepth && y < b.height; y++ {
			if b.tile(x, y).BlockID() == domain.BlockSand {
				b.setBlock(x, y, sand)
			} else {
				b.setBlock(x, y, stone)
			}
		}
		// Грибы на поверхности
		if b.rng.Intn(6) == 0 {
			b.setBlock(x, b.surface[x]-1, plant)
		}
	}
	b.evilZ = append(b.evilZ, p)
	return b
}

// WithPlants сажает светящиеся растения на траву
func (b *Builder) WithPlants(chance float64) *Builder {
	if b.tiles == nil {
		return b
	}
	for x := 0; x < b.width; x++ {
		top := b.surface[x]
		if b.tile(x, top).BlockID() != domain.BlockGrass || !b.inside(x, top-1) {
			continue
		}
		if b.rng.Float64() >= chance {
			continue
		}
		if b.rng.Intn(2) == 0 {
			b.setBlock(x, top-1, domain.BlockFireBlossom)
		} else {
			b.setBlock(x, top-1, domain.BlockMoonGlow)
		}
	}
	return b
}

// Surface - ряд поверхности по колонкам (до растений)
func (b *Builder) Surface() []int { return b.surface }

// DesertPatches - сгенерированные пустыни
func (b *Builder) DesertPatches() []Patch { return b.desert }

// EvilPatches - сгенерированные зоны порчи/багрянца
func (b *Builder) EvilPatches() []Patch { return b.evilZ }

// Build собирает мир. Без WithTerrain получается пустой мир заданного размера.
func (b *Builder) Build(opts ...world.Option) (*world.World, error) {
	tiles := b.tiles
	if tiles == nil && b.valid() {
		tiles = make([]domain.TileData, b.width*b.height)
	}

	opts = append([]world.Option{
		world.WithRand(rand.New(rand.NewSource(b.seed))),
		world.WithExpert(b.expert),
	}, opts...)
	return world.NewFromTiles(b.name, b.width, b.height, b.evil, tiles, opts...)
}
