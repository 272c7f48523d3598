package handlers

import (
	"encoding/json"
	"tileworld-server/internal/world"

	"github.com/sirupsen/logrus"
)

// Context передает хендлеру мир и того, кто прислал команду.
// Хендлеры вызываются только из игрового цикла, поэтому мир можно мутировать напрямую.
type Context struct {
	World     *world.World
	SessionID string
	Log       *logrus.Entry
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет наблюдателю напрямую, он возвращает данные.
type Result struct {
	Msg string // Короткое описание для лога
}

// HandlerFunc - это контракт для любой команды (CAMERA, SET_BLOCK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
