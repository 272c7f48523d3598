package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды наблюдателя
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionCamera
	ActionResize
	ActionSpawnEnemy
	ActionSpawnDrop
	ActionSetBlock
	ActionSetWall

	// Админские команды
	ActionTeleport
	ActionKill
	ActionClear
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":        ActionInit,
	"CAMERA":      ActionCamera,
	"RESIZE":      ActionResize,
	"SPAWN_ENEMY": ActionSpawnEnemy,
	"SPAWN_DROP":  ActionSpawnDrop,
	"SET_BLOCK":   ActionSetBlock,
	"SET_WALL":    ActionSetWall,
	"TELEPORT":    ActionTeleport,
	"KILL":        ActionKill,
	"CLEAR":       ActionClear,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionCamera:     "CAMERA",
	ActionResize:     "RESIZE",
	ActionSpawnEnemy: "SPAWN_ENEMY",
	ActionSpawnDrop:  "SPAWN_DROP",
	ActionSetBlock:   "SET_BLOCK",
	ActionSetWall:    "SET_WALL",
	ActionTeleport:   "TELEPORT",
	ActionKill:       "KILL",
	ActionClear:      "CLEAR",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для логов)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
