package world

import (
	"fmt"
	"tileworld-server/internal/domain"
)

// SurfaceOffset - на сколько рядов выше первого блока находится "поверхность" колонки
const SurfaceOffset = 3

// TileGrid - плоский массив клеток, индекс = x + y*width.
// Размеры не меняются после создания.
type TileGrid struct {
	width  int
	height int
	tiles  []domain.TileData
}

// NewTileGrid создает пустую сетку
func NewTileGrid(width, height int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrMalformedWorld, width, height)
	}
	return &TileGrid{
		width:  width,
		height: height,
		tiles:  make([]domain.TileData, width*height),
	}, nil
}

// NewTileGridFrom оборачивает готовый массив (путь загрузки/генерации).
// Длина обязана совпадать с width*height, иначе мир не создаётся вовсе.
func NewTileGridFrom(width, height int, tiles []domain.TileData) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrMalformedWorld, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles, want %d", ErrMalformedWorld, len(tiles), width*height)
	}
	return &TileGrid{width: width, height: height, tiles: tiles}, nil
}

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

// IsInside проверяет, что координата лежит внутри мира
func (g *TileGrid) IsInside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index возвращает линейный индекс клетки. Границы не проверяются.
func (g *TileGrid) Index(x, y int) int {
	return x + y*g.width
}

// Tile возвращает клетку по координате. Для одной клетки всегда один и тот же указатель.
func (g *TileGrid) Tile(x, y int) (*domain.TileData, bool) {
	if !g.IsInside(x, y) {
		return nil, false
	}
	return &g.tiles[g.Index(x, y)], true
}

// at - непроверяемый доступ. Только для циклов по уже ограниченному окну.
func (g *TileGrid) at(x, y int) *domain.TileData {
	return &g.tiles[x+y*g.width]
}

// Tiles отдаёт исходный массив (для сохранения)
func (g *TileGrid) Tiles() []domain.TileData {
	return g.tiles
}

// SetBlock ставит блок, восстанавливает прочность и сбрасывает байт данных
func (g *TileGrid) SetBlock(block *domain.Block, x, y int) error {
	t, ok := g.Tile(x, y)
	if !ok {
		return fmt.Errorf("set block at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	t.Block = block
	t.BlockHP = domain.MaxTileHP
	t.Data = 0
	return nil
}

// SetWall ставит стену, восстанавливает её прочность и сбрасывает байт данных
func (g *TileGrid) SetWall(wall *domain.Wall, x, y int) error {
	t, ok := g.Tile(x, y)
	if !ok {
		return fmt.Errorf("set wall at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	t.Wall = wall
	t.WallHP = domain.MaxTileHP
	t.Data = 0
	return nil
}

// SetData меняет только вспомогательный байт клетки
func (g *TileGrid) SetData(data byte, x, y int) error {
	t, ok := g.Tile(x, y)
	if !ok {
		return fmt.Errorf("set data at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	t.Data = data
	return nil
}

// Data читает вспомогательный байт клетки
func (g *TileGrid) Data(x, y int) (byte, error) {
	t, ok := g.Tile(x, y)
	if !ok {
		return 0, ErrOutOfBounds
	}
	return t.Data, nil
}

// BlockID: (BlockNone, nil) - клетка пустая, ErrOutOfBounds - координата вне мира
func (g *TileGrid) BlockID(x, y int) (domain.BlockID, error) {
	t, ok := g.Tile(x, y)
	if !ok {
		return domain.BlockNone, ErrOutOfBounds
	}
	return t.BlockID(), nil
}

// WallID - то же самое для стен
func (g *TileGrid) WallID(x, y int) (domain.WallID, error) {
	t, ok := g.Tile(x, y)
	if !ok {
		return domain.WallNone, ErrOutOfBounds
	}
	return t.WallID(), nil
}

// LegacyBlockID - старое поведение: 0 и для пустой клетки, и для клетки вне мира
func (g *TileGrid) LegacyBlockID(x, y int) int {
	id, _ := g.BlockID(x, y)
	return int(id)
}

// LegacyWallID - старое поведение для стен
func (g *TileGrid) LegacyWallID(x, y int) int {
	id, _ := g.WallID(x, y)
	return int(id)
}

// Highest ищет первый блок сверху вниз и возвращает ряд на SurfaceOffset выше него.
// Скан ограничен высотой мира: пустая колонка даёт ErrNoGround, а не вечный цикл.
func (g *TileGrid) Highest(x int) (int, error) {
	if x < 0 || x >= g.width {
		return 0, fmt.Errorf("highest at column %d: %w", x, ErrOutOfBounds)
	}
	for y := 0; y < g.height; y++ {
		if g.at(x, y).Block != nil {
			return y - SurfaceOffset, nil
		}
	}
	return 0, fmt.Errorf("highest at column %d: %w", x, ErrNoGround)
}
