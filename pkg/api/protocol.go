package api

import (
	"encoding/json"
)

// Типы сообщений сервера
const (
	MsgInit  = "INIT"
	MsgFrame = "FRAME"
	MsgError = "ERROR"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет наблюдателю.
// INIT приходит один раз после подключения, затем FRAME каждый кадр.
type ServerResponse struct {
	// Type тип сообщения: INIT, FRAME или ERROR.
	Type string `json:"type"`

	// Tick номер кадра игрового цикла.
	Tick uint64 `json:"tick"`

	// SessionID ID сессии наблюдателя. Только в INIT.
	SessionID string `json:"sessionId,omitempty"`

	// World метаданные мира. Только в INIT.
	World *WorldSummary `json:"world,omitempty"`

	// Biome текущий биом вокруг камеры.
	Biome string `json:"biome,omitempty"`

	// Render окно отрисовки, Active - активная зона спавна.
	Render *WindowView `json:"render,omitempty"`
	Active *WindowView `json:"active,omitempty"`

	// Map тайлы окна отрисовки. Пустые клетки не передаются.
	Map []TileView `json:"map,omitempty"`

	// Entities сущности, попавшие в окно отрисовки.
	Entities []EntityView `json:"entities,omitempty"`

	// Error текст ошибки для ERROR.
	Error string `json:"error,omitempty"`
}

// WorldSummary - общая информация о мире. Её же отдаёт /debug/world.
type WorldSummary struct {
	Name     string `json:"name"`
	Version  int    `json:"version"`
	Width    int    `json:"w"`
	Height   int    `json:"h"`
	TileSize int    `json:"tileSize"`
	Evil     string `json:"evil"`
	Expert   bool   `json:"expert"`
	Biome    string `json:"biome"`
	Entities int    `json:"entities"`
	Tick     uint64 `json:"tick"`
}

// WindowView - прямоугольник в тайлах, границы включительные.
type WindowView struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

// TileView это DTO для одной непустой клетки.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Block и Wall - ID из каталога, 0 - отсутствует.
	Block uint16 `json:"block,omitempty"`
	Wall  uint16 `json:"wall,omitempty"`
	Data  byte   `json:"data,omitempty"`

	// Solid true, если блок непроходим.
	Solid bool `json:"solid,omitempty"`
}

// EntityView это DTO для сущности. Позиция в тайлах, дробная.
type EntityView struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"` // ENEMY, DROP, GENERIC
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  int     `json:"w"`
	Height int     `json:"h"`

	// Только для врагов
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`

	// Только для выпавших предметов
	Item  uint16 `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от наблюдателя.
type ClientCommand struct {
	// Action название действия: CAMERA, RESIZE, SPAWN_ENEMY, SPAWN_DROP, SET_BLOCK, SET_WALL.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// CameraPayload перемещает камеру (CAMERA). Координаты центра экрана в пикселях.
type CameraPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ResizePayload меняет размер экрана (RESIZE).
type ResizePayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SpawnEnemyPayload ставит врага в клетку (SPAWN_ENEMY).
type SpawnEnemyPayload struct {
	Enemy uint16 `json:"enemy"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// SpawnDropPayload роняет предмет в точку в пикселях (SPAWN_DROP).
type SpawnDropPayload struct {
	Item  uint16  `json:"item"`
	Count int     `json:"count"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// SetBlockPayload ставит или убирает (Block = 0) блок (SET_BLOCK).
type SetBlockPayload struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Block uint16 `json:"block"`
}

// SetWallPayload ставит или убирает (Wall = 0) стену (SET_WALL).
type SetWallPayload struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Wall uint16 `json:"wall"`
}
