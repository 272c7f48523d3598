package domain

// MaxTileHP - прочность блока/стены сразу после установки
const MaxTileHP = 100

// TileData - состояние одной клетки мира.
// Клетки не создаются и не удаляются отдельно: сетка выделяет их один раз на всё время жизни мира.
type TileData struct {
	Block   *Block `json:"block,omitempty"`
	Wall    *Wall  `json:"wall,omitempty"`
	BlockHP int16  `json:"blockHp"`
	WallHP  int16  `json:"wallHp"`

	// Data - вспомогательный байт блока (стадия роста, флаги ориентации)
	Data byte `json:"data"`
}

// BlockID возвращает ID блока или BlockNone, если блока нет
func (t *TileData) BlockID() BlockID {
	if t.Block == nil {
		return BlockNone
	}
	return t.Block.ID
}

// WallID возвращает ID стены или WallNone
func (t *TileData) WallID() WallID {
	if t.Wall == nil {
		return WallNone
	}
	return t.Wall.ID
}

// IsSolid true, если в клетке есть твёрдый блок
func (t *TileData) IsSolid() bool {
	return t.Block != nil && t.Block.Solid
}

// EvilType - "злое" выравнивание мира. Выбирается при генерации и больше не меняется.
type EvilType uint8

const (
	EvilCorruption EvilType = iota
	EvilCrimson
)

func (e EvilType) String() string {
	if e == EvilCrimson {
		return "crimson"
	}
	return "corruption"
}

// ParseEvilType разбирает строку из конфига/CLI
func ParseEvilType(s string) (EvilType, bool) {
	switch s {
	case "corruption":
		return EvilCorruption, true
	case "crimson":
		return EvilCrimson, true
	}
	return EvilCorruption, false
}
