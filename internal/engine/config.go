package engine

import (
	"fmt"
	"os"
	"strconv"
	"tileworld-server/internal/systems"
	"tileworld-server/internal/world"
	"time"
)

// Config хранит параметры запуска сервера
type Config struct {
	// Seed - мастер-зерно генерации мира и спавна
	Seed int64

	Port      int
	SaveDir   string
	RedisAddr string // пусто - храним миры в файлах

	// WorldName - какой мир загрузить. Если сохранения нет, мир генерируется.
	WorldName string
	Width     int
	Height    int
	Evil      string
	Expert    bool

	// TickRate - кадров в секунду
	TickRate         int
	AutosaveInterval time.Duration

	Spawn systems.SpawnConfig
	World world.Config
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:             time.Now().UnixNano(),
		Port:             8080,
		SaveDir:          "saves",
		WorldName:        "world",
		Width:            400,
		Height:           200,
		Evil:             "corruption",
		TickRate:         60,
		AutosaveInterval: 5 * time.Minute,
		Spawn:            systems.DefaultSpawnConfig(),
		World:            world.DefaultConfig(),
	}
}

// ApplyEnv перекрывает значения переменными окружения TW_*
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("TW_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TW_PORT: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("TW_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TW_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("TW_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return fmt.Errorf("TW_TICK_RATE: invalid value %q", v)
		}
		c.TickRate = rate
	}
	if v := os.Getenv("TW_SAVE_DIR"); v != "" {
		c.SaveDir = v
	}
	if v := os.Getenv("TW_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("TW_WORLD"); v != "" {
		c.WorldName = v
	}
	return nil
}
