package world

import (
	"os"
	"testing"
	"tileworld-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Инициализируем глобальный логгер перед тестами
	logger.Init()

	os.Exit(m.Run())
}
