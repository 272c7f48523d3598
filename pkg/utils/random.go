package utils

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// GenerateID создает уникальный ID сущности или сессии
func GenerateID() string {
	return uuid.NewString()
}

// StringToSeed превращает строку (сид-фразу) в детерминированный сид
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
