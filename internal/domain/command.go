package domain

import "encoding/json"

// InternalCommand - команда наблюдателя, уже разобранная до ActionType.
// Payload парсится хендлером.
type InternalCommand struct {
	Action    ActionType
	SessionID string // кто прислал
	Payload   json.RawMessage
}
