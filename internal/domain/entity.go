package domain

import (
	"math"
	"tileworld-server/pkg/utils"
)

// Физические константы (единицы сетки в секунду)
const (
	Gravity        = 30.0
	MaxFallSpeed   = 20.0
	GroundFriction = 8.0
)

// EntityKind - закрытый набор ролей сущности
type EntityKind uint8

const (
	KindGeneric EntityKind = iota
	KindEnemy
	KindDrop
)

func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "ENEMY"
	case KindDrop:
		return "DROP"
	}
	return "GENERIC"
}

// Physics - то, что сущности нужно от мира для перемещения.
// World реализует этот интерфейс.
type Physics interface {
	IsColliding(bounds Rect) bool
	TileSize() int
}

// --- КОМПОНЕНТЫ ---

// VelocityComponent - скорость и гравитация. Без него сущность статична.
type VelocityComponent struct {
	Vel      Vec2 `json:"vel"`
	Gravity  bool `json:"gravity"`
	OnGround bool `json:"onGround"`
}

// EnemyComponent - параметры врага
type EnemyComponent struct {
	Type   EnemyID `json:"type"`
	HP     int     `json:"hp"`
	MaxHP  int     `json:"maxHp"`
	Damage int     `json:"damage"`
	// Loot выпадает при смерти. Count = 0 - ничего не выпадает.
	Loot Drop `json:"loot"`
}

// DropComponent - выпавший предмет. Исчезает через Lifetime секунд (0 = никогда).
type DropComponent struct {
	Drop     Drop    `json:"drop"`
	Age      float64 `json:"age"`
	Lifetime float64 `json:"lifetime"`
}

// --- СУЩНОСТЬ ---

// Entity - живой объект мира. Позиция и размеры в единицах сетки.
// Возможности задаются компонентами: nil - значит свойство отсутствует.
type Entity struct {
	ID   string     `json:"id"`
	Kind EntityKind `json:"kind"`
	Name string     `json:"name"`

	Pos    Vec2 `json:"pos"`
	Width  int  `json:"width"`
	Height int  `json:"height"`

	Velocity *VelocityComponent `json:"velocity,omitempty"`
	Enemy    *EnemyComponent    `json:"enemy,omitempty"`
	Drop     *DropComponent     `json:"drop,omitempty"`
}

// NewEntity создает сущность с новым ID
func NewEntity(kind EntityKind, name string, w, h int) *Entity {
	return &Entity{
		ID:     utils.GenerateID(),
		Kind:   kind,
		Name:   name,
		Width:  w,
		Height: h,
	}
}

// Spawn ставит сущность в точку сетки и обнуляет скорость
func (e *Entity) Spawn(x, y float64) {
	e.Pos = Vec2{X: x, Y: y}
	if e.Velocity != nil {
		e.Velocity.Vel = Vec2{}
		e.Velocity.OnGround = false
	}
}

// GridX - клетка сетки, в которой находится левый край сущности
func (e *Entity) GridX() int { return int(math.Floor(e.Pos.X)) }

// GridY - клетка сетки верхнего края
func (e *Entity) GridY() int { return int(math.Floor(e.Pos.Y)) }

// Bounds возвращает хитбокс в пикселях
func (e *Entity) Bounds(tileSize int) Rect {
	return e.boundsAt(e.Pos, tileSize)
}

func (e *Entity) boundsAt(p Vec2, tileSize int) Rect {
	ts := float64(tileSize)
	return Rect{
		X:      p.X * ts,
		Y:      p.Y * ts,
		Width:  float64(e.Width) * ts,
		Height: float64(e.Height) * ts,
	}
}

// Expired true, если сущность должна быть удалена миром после своего апдейта
func (e *Entity) Expired() bool {
	if e.Drop != nil && e.Drop.Lifetime > 0 && e.Drop.Age >= e.Drop.Lifetime {
		return true
	}
	if e.Enemy != nil && e.Enemy.HP <= 0 {
		return true
	}
	return false
}

// Update - покадровое обновление. dt в секундах.
func (e *Entity) Update(dt float64, p Physics) {
	if e.Drop != nil {
		e.Drop.Age += dt
	}
	if e.Velocity == nil || p == nil || dt <= 0 {
		return
	}

	v := e.Velocity
	if v.Gravity {
		v.Vel.Y = math.Min(v.Vel.Y+Gravity*dt, MaxFallSpeed)
	}
	if v.OnGround && v.Vel.X != 0 {
		v.Vel.X -= v.Vel.X * math.Min(1, GroundFriction*dt)
	}

	ts := p.TileSize()

	// Двигаемся по осям раздельно, чтобы скользить вдоль стен
	next := Vec2{X: e.Pos.X + v.Vel.X*dt, Y: e.Pos.Y}
	if !p.IsColliding(e.boundsAt(next, ts)) {
		e.Pos = next
	} else {
		v.Vel.X = 0
	}

	next = Vec2{X: e.Pos.X, Y: e.Pos.Y + v.Vel.Y*dt}
	if !p.IsColliding(e.boundsAt(next, ts)) {
		e.Pos = next
		v.OnGround = false
		return
	}
	if v.Vel.Y > 0 {
		v.OnGround = true
	}
	v.Vel.Y = 0
}
