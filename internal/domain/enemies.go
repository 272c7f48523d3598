package domain

// EnemyID - тип врага в каталоге
type EnemyID uint16

const (
	EnemyUnknown EnemyID = iota
	EnemyGreenSlime
	EnemyBlueSlime
	EnemyDemonEye
	EnemyZombie
	EnemyEaterOfSouls
	EnemyCrimera
	EnemyAntlion
)

// ItemID - идентификатор предмета (блоки тоже являются предметами)
type ItemID uint16

// Предметы, которые выпадают из врагов
const (
	ItemGel             ItemID = 23
	ItemLens            ItemID = 38
	ItemRottenChunk     ItemID = 68
	ItemAntlionMandible ItemID = 323
	ItemVertebra        ItemID = 1330
)

// Drop - что выпало и сколько
type Drop struct {
	Item  ItemID `json:"item"`
	Count int    `json:"count"`
}

// EnemyFactory создает врага по ID. nil - если ID неизвестен.
type EnemyFactory func(id EnemyID) *Entity

type enemyTemplate struct {
	Name          string
	Width, Height int
	HP, Damage    int
	Gravity       bool
	Loot          Drop
}

var enemyTemplates = map[EnemyID]enemyTemplate{
	EnemyGreenSlime:   {Name: "Green Slime", Width: 2, Height: 1, HP: 14, Damage: 6, Gravity: true, Loot: Drop{Item: ItemGel, Count: 2}},
	EnemyBlueSlime:    {Name: "Blue Slime", Width: 2, Height: 1, HP: 25, Damage: 7, Gravity: true, Loot: Drop{Item: ItemGel, Count: 3}},
	EnemyDemonEye:     {Name: "Demon Eye", Width: 2, Height: 1, HP: 60, Damage: 18, Loot: Drop{Item: ItemLens, Count: 1}},
	EnemyZombie:       {Name: "Zombie", Width: 2, Height: 3, HP: 45, Damage: 14, Gravity: true},
	EnemyEaterOfSouls: {Name: "Eater of Souls", Width: 2, Height: 2, HP: 40, Damage: 22, Loot: Drop{Item: ItemRottenChunk, Count: 1}},
	EnemyCrimera:      {Name: "Crimera", Width: 2, Height: 2, HP: 30, Damage: 22, Loot: Drop{Item: ItemVertebra, Count: 1}},
	EnemyAntlion:      {Name: "Antlion", Width: 2, Height: 2, HP: 45, Damage: 10, Gravity: true, Loot: Drop{Item: ItemAntlionMandible, Count: 1}},
}

// NewEnemy - фабрика по умолчанию на основе встроенного каталога
func NewEnemy(id EnemyID) *Entity {
	tpl, ok := enemyTemplates[id]
	if !ok {
		return nil
	}

	e := NewEntity(KindEnemy, tpl.Name, tpl.Width, tpl.Height)
	e.Enemy = &EnemyComponent{Type: id, HP: tpl.HP, MaxHP: tpl.HP, Damage: tpl.Damage, Loot: tpl.Loot}
	e.Velocity = &VelocityComponent{Gravity: tpl.Gravity}
	return e
}

// NewDroppedItem создает сущность выпавшего предмета (1x1 тайл, подвержен гравитации)
func NewDroppedItem(d Drop, lifetime float64) *Entity {
	e := NewEntity(KindDrop, "Dropped Item", 1, 1)
	e.Drop = &DropComponent{Drop: d, Lifetime: lifetime}
	e.Velocity = &VelocityComponent{Gravity: true}
	return e
}
