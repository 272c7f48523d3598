package world

import (
	"tileworld-server/internal/domain"
	"time"
)

// CurrentVersion - версия формата мира, которую пишет этот сервер
const CurrentVersion = 2

// Config - настраиваемые параметры мира
type Config struct {
	// TileSize - размер тайла в пикселях
	TileSize int

	RenderMargin Margin
	ActiveMargin Margin

	// Начальная скорость выпавшего предмета: X в [-DropSpread, DropSpread), Y = -DropLift
	DropSpread float64
	DropLift   float64
	// DropLifetime - сколько секунд предмет лежит на земле (0 = вечно)
	DropLifetime float64

	// DefaultView - камера и экран до первого SetView
	DefaultView domain.View

	Biome BiomeConfig
}

// BiomeConfig - подобранные вручную константы классификатора биомов
type BiomeConfig struct {
	Period time.Duration

	EvilThreshold       int
	EvilDesertThreshold int
	DesertThreshold     int

	Margin Margin
}

// DefaultBiomeConfig - скан раз в 3 секунды, пороги 200/1000/1000
func DefaultBiomeConfig() BiomeConfig {
	return BiomeConfig{
		Period:              3 * time.Second,
		EvilThreshold:       200,
		EvilDesertThreshold: 1000,
		DesertThreshold:     1000,
		Margin:              RenderMargin,
	}
}

// DefaultConfig возвращает конфиг по умолчанию
func DefaultConfig() Config {
	return Config{
		TileSize:     48,
		RenderMargin: RenderMargin,
		ActiveMargin: ActiveMargin,
		DropSpread:   10,
		DropLift:     3,
		DropLifetime: 300,
		DefaultView: domain.View{
			Screen: domain.Screen{Width: 1280, Height: 720},
		},
		Biome: DefaultBiomeConfig(),
	}
}
