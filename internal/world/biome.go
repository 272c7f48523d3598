package world

import (
	"context"
	"sync"
	"tileworld-server/internal/domain"
	"tileworld-server/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// BiomeTally - счётчики блоков по категориям в окне скана
type BiomeTally struct {
	Evil       int `json:"evil"`
	EvilDesert int `json:"evilDesert"`
	Desert     int `json:"desert"`
}

// Tally считает категории блоков в окне. Окно должно быть уже зажато в границы сетки.
func (g *TileGrid) Tally(win Window) BiomeTally {
	var t BiomeTally
	for y := win.MinY; y <= win.MaxY; y++ {
		for x := win.MinX; x <= win.MaxX; x++ {
			b := g.at(x, y).Block
			if b == nil {
				continue
			}
			switch b.Category {
			case domain.CategoryEvil:
				t.Evil++
			case domain.CategoryEvilDesert:
				t.EvilDesert++
			case domain.CategoryDesert:
				t.Desert++
			}
		}
	}
	return t
}

// DecideBiome - пороги проверяются строго по приоритету: порча, пустыня порчи, пустыня, лес
func DecideBiome(t BiomeTally, evil domain.EvilType, cfg BiomeConfig) domain.Biome {
	switch {
	case t.Evil > cfg.EvilThreshold:
		return domain.EvilBiome(evil)
	case t.EvilDesert > cfg.EvilDesertThreshold:
		return domain.EvilDesertBiome(evil)
	case t.Desert > cfg.DesertThreshold:
		return domain.BiomeDesert
	default:
		return domain.BiomeForest
	}
}

// BiomeClassifier периодически сканирует окно вокруг камеры и обновляет биом мира.
// Одна горутина и один тикер: скан никогда не выполняется параллельно сам с собой.
type BiomeClassifier struct {
	world *World
	cfg   BiomeConfig
	log   *logrus.Entry

	mu     sync.Mutex // защищает cancel/done
	scan   sync.Mutex // RunOnce из тестов/CLI не пересекается с тикером
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBiomeClassifier создает классификатор. Запускается через Start.
func NewBiomeClassifier(w *World, cfg BiomeConfig) *BiomeClassifier {
	if cfg.Period <= 0 {
		cfg.Period = DefaultBiomeConfig().Period
	}
	return &BiomeClassifier{
		world: w,
		cfg:   cfg,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "biome_classifier",
			"world":     w.name,
		}),
	}
}

// Start запускает периодический скан. Первый скан выполняется сразу.
// Возвращает false, если классификатор уже работает.
func (c *BiomeClassifier) Start(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.loop(ctx, c.done)

	c.log.WithField("period", c.cfg.Period).Info("Biome checker started")
	return true
}

// Stop останавливает тикер и ждёт, пока текущий скан закончится. Повторный вызов безопасен.
func (c *BiomeClassifier) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	c.log.Info("Biome checker stopped")
}

// Running - работает ли тикер
func (c *BiomeClassifier) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done != nil
}

func (c *BiomeClassifier) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.cfg.Period)
	defer ticker.Stop()

	c.RunOnce()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.RunOnce()
		}
	}
}

// RunOnce выполняет один скан и записывает биом в мир
func (c *BiomeClassifier) RunOnce() domain.Biome {
	c.scan.Lock()
	defer c.scan.Unlock()

	w := c.world
	win := ComputeWindow(w.View(), w.cfg.TileSize, w.Width(), w.Height(), c.cfg.Margin)

	w.mu.RLock()
	tally := w.grid.Tally(win)
	w.mu.RUnlock()

	biome := DecideBiome(tally, w.evilType, c.cfg)
	previous := w.setBiome(biome)

	entry := c.log.WithFields(logrus.Fields{
		"window":      win,
		"evil":        tally.Evil,
		"evil_desert": tally.EvilDesert,
		"desert":      tally.Desert,
		"biome":       biome,
	})
	if previous != biome {
		entry.WithField("previous", previous).Info("Biome changed")
	} else {
		entry.Debug("Biome scan complete")
	}
	return biome
}
