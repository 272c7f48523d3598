package domain

// BlockID - числовой идентификатор блока (совпадает с ID предмета в сохранениях)
type BlockID uint16

// WallID - числовой идентификатор стены
type WallID uint16

// Category определяет, в какую группу блок попадает при подсчёте биома.
type Category uint8

const (
	CategoryNone       Category = iota
	CategoryEvil                // эбонкамень, кримкамень, порченые растения
	CategoryEvilDesert          // эбонсанд, кримсанд
	CategoryDesert              // обычный песок
)

// Идентификаторы блоков. 0 зарезервирован под "пусто".
const (
	BlockNone BlockID = iota
	BlockDirt
	BlockStone
	BlockGrass
	BlockSand
	BlockWood
	BlockEbonstone
	BlockPurpleIce
	BlockCorruptThornyBushes
	BlockVileMushroom
	BlockCrimstone
	BlockRedIce
	BlockViciousMushroom
	BlockEbonsand
	BlockCrimsand
	BlockAsh
	BlockJungleGrass
	BlockFireBlossom
	BlockMoonGlow
)

// Идентификаторы стен
const (
	WallNone WallID = iota
	WallDirt
	WallStone
	WallWood
)

// Block - неизменяемое описание типа блока. Тайлы хранят указатель на запись каталога.
type Block struct {
	ID       BlockID  `json:"id"`
	Name     string   `json:"name"`
	Solid    bool     `json:"solid"`
	Category Category `json:"category"`
}

// Wall - описание типа фоновой стены
type Wall struct {
	ID   WallID `json:"id"`
	Name string `json:"name"`
}

var blocks = map[BlockID]*Block{
	BlockDirt:                {ID: BlockDirt, Name: "Dirt Block", Solid: true},
	BlockStone:               {ID: BlockStone, Name: "Stone Block", Solid: true},
	BlockGrass:               {ID: BlockGrass, Name: "Grass Block", Solid: true},
	BlockSand:                {ID: BlockSand, Name: "Sand Block", Solid: true, Category: CategoryDesert},
	BlockWood:                {ID: BlockWood, Name: "Wood", Solid: true},
	BlockEbonstone:           {ID: BlockEbonstone, Name: "Ebonstone Block", Solid: true, Category: CategoryEvil},
	BlockPurpleIce:           {ID: BlockPurpleIce, Name: "Purple Ice Block", Solid: true, Category: CategoryEvil},
	BlockCorruptThornyBushes: {ID: BlockCorruptThornyBushes, Name: "Corrupt Thorny Bushes", Category: CategoryEvil},
	BlockVileMushroom:        {ID: BlockVileMushroom, Name: "Vile Mushroom", Category: CategoryEvil},
	BlockCrimstone:           {ID: BlockCrimstone, Name: "Crimstone Block", Solid: true, Category: CategoryEvil},
	BlockRedIce:              {ID: BlockRedIce, Name: "Red Ice Block", Solid: true, Category: CategoryEvil},
	BlockViciousMushroom:     {ID: BlockViciousMushroom, Name: "Vicious Mushroom", Category: CategoryEvil},
	BlockEbonsand:            {ID: BlockEbonsand, Name: "Ebonsand Block", Solid: true, Category: CategoryEvilDesert},
	BlockCrimsand:            {ID: BlockCrimsand, Name: "Crimsand Block", Solid: true, Category: CategoryEvilDesert},
	BlockAsh:                 {ID: BlockAsh, Name: "Ash Block", Solid: true},
	BlockJungleGrass:         {ID: BlockJungleGrass, Name: "Jungle Grass Block", Solid: true},
	BlockFireBlossom:         {ID: BlockFireBlossom, Name: "Fire Blossom"},
	BlockMoonGlow:            {ID: BlockMoonGlow, Name: "Moon Glow"},
}

var walls = map[WallID]*Wall{
	WallDirt:  {ID: WallDirt, Name: "Dirt Wall"},
	WallStone: {ID: WallStone, Name: "Stone Wall"},
	WallWood:  {ID: WallWood, Name: "Wood Wall"},
}

// BlockByID ищет блок в каталоге. Для BlockNone возвращает (nil, true): пустота - валидное значение.
func BlockByID(id BlockID) (*Block, bool) {
	if id == BlockNone {
		return nil, true
	}
	b, ok := blocks[id]
	return b, ok
}

// WallByID ищет стену в каталоге. Для WallNone возвращает (nil, true).
func WallByID(id WallID) (*Wall, bool) {
	if id == WallNone {
		return nil, true
	}
	w, ok := walls[id]
	return w, ok
}

// MustBlock возвращает блок из каталога или паникует. Только для констант в коде.
func MustBlock(id BlockID) *Block {
	b, ok := blocks[id]
	if !ok {
		panic("unknown block id")
	}
	return b
}

// MustWall возвращает стену из каталога или паникует.
func MustWall(id WallID) *Wall {
	w, ok := walls[id]
	if !ok {
		panic("unknown wall id")
	}
	return w
}
