package world

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"tileworld-server/internal/domain"
	"tileworld-server/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// World - корень агрегата: сетка, сущности, текущий биом.
//
// Потоки: Update/Render/Spawn/Remove вызываются только из игрового цикла.
// Классификатор биомов работает в своей горутине и пишет только currentBiome.
// Запись в сетку идёт под mu.Lock, скан классификатора - под mu.RLock.
type World struct {
	name     string
	version  int
	evilType domain.EvilType
	expert   bool
	cfg      Config

	mu       sync.RWMutex
	grid     *TileGrid
	entities *Registry

	factory domain.EnemyFactory
	rng     *rand.Rand

	currentBiome atomic.Uint32
	view         atomic.Pointer[domain.View]
	biomeChanged chan domain.Biome

	classifier *BiomeClassifier
	log        *logrus.Entry
}

// Option настраивает мир при создании
type Option func(*World)

// WithConfig заменяет конфиг по умолчанию
func WithConfig(cfg Config) Option {
	return func(w *World) { w.cfg = cfg }
}

// WithFactory заменяет фабрику врагов
func WithFactory(f domain.EnemyFactory) Option {
	return func(w *World) { w.factory = f }
}

// WithRand задаёт генератор случайных чисел (для детерминированных тестов)
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.rng = rng }
}

// WithExpert включает режим эксперта
func WithExpert(expert bool) Option {
	return func(w *World) { w.expert = expert }
}

// WithVersion - версия, прочитанная из сохранения
func WithVersion(v int) Option {
	return func(w *World) { w.version = v }
}

// New создает мир поверх готовой сетки
func New(name string, grid *TileGrid, evil domain.EvilType, opts ...Option) *World {
	w := &World{
		name:         name,
		version:      CurrentVersion,
		evilType:     evil,
		cfg:          DefaultConfig(),
		grid:         grid,
		entities:     NewRegistry(),
		factory:      domain.NewEnemy,
		biomeChanged: make(chan domain.Biome, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	view := w.cfg.DefaultView
	w.view.Store(&view)
	w.currentBiome.Store(uint32(domain.BiomeForest))

	w.log = logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"world":     name,
	})
	w.classifier = NewBiomeClassifier(w, w.cfg.Biome)
	return w
}

// NewFromTiles - путь загрузки: массив тайлов должен быть полностью заполнен
func NewFromTiles(name string, width, height int, evil domain.EvilType, tiles []domain.TileData, opts ...Option) (*World, error) {
	grid, err := NewTileGridFrom(width, height, tiles)
	if err != nil {
		return nil, fmt.Errorf("world %q: %w", name, err)
	}
	return New(name, grid, evil, opts...), nil
}

// --- Доступ к полям ---

func (w *World) Name() string              { return w.name }
func (w *World) Version() int              { return w.version }
func (w *World) EvilType() domain.EvilType { return w.evilType }
func (w *World) IsExpert() bool            { return w.expert }
func (w *World) Width() int                { return w.grid.Width() }
func (w *World) Height() int               { return w.grid.Height() }
func (w *World) TileSize() int             { return w.cfg.TileSize }
func (w *World) Config() Config            { return w.cfg }

// Grid - сетка для чтения из игрового цикла. Запись - только через методы World.
func (w *World) Grid() *TileGrid { return w.grid }

// CurrentBiome - последнее значение классификатора. Безопасно из любой горутины.
func (w *World) CurrentBiome() domain.Biome {
	return domain.Biome(w.currentBiome.Load())
}

// BiomeChanges - канал на один элемент с последним изменением биома.
// Игровой цикл вычитывает его раз в кадр.
func (w *World) BiomeChanges() <-chan domain.Biome {
	return w.biomeChanged
}

func (w *World) setBiome(b domain.Biome) (previous domain.Biome) {
	previous = domain.Biome(w.currentBiome.Swap(uint32(b)))
	if previous == b {
		return previous
	}

	// Храним только последнее значение
	select {
	case w.biomeChanged <- b:
	default:
		select {
		case <-w.biomeChanged:
		default:
		}
		select {
		case w.biomeChanged <- b:
		default:
		}
	}
	return previous
}

// SetView обновляет камеру и экран (пишет игровой цикл, читает классификатор)
func (w *World) SetView(v domain.View) {
	w.view.Store(&v)
}

// View - текущие камера и экран
func (w *World) View() domain.View {
	return *w.view.Load()
}

// RenderWindow - окно отрисовки для текущей камеры
func (w *World) RenderWindow() Window {
	return ComputeWindow(w.View(), w.cfg.TileSize, w.Width(), w.Height(), w.cfg.RenderMargin)
}

// ActiveWindow - активная зона для спавна (шире окна отрисовки)
func (w *World) ActiveWindow() Window {
	return ComputeWindow(w.View(), w.cfg.TileSize, w.Width(), w.Height(), w.cfg.ActiveMargin)
}

// --- Мутации сетки ---

// SetBlock ставит блок (nil - убрать блок)
func (w *World) SetBlock(block *domain.Block, x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.SetBlock(block, x, y)
}

// SetWall ставит стену (nil - убрать стену)
func (w *World) SetWall(wall *domain.Wall, x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.SetWall(wall, x, y)
}

// SetData меняет байт данных клетки
func (w *World) SetData(data byte, x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.SetData(data, x, y)
}

// CopyTiles - копия массива клеток под блокировкой чтения (для сохранения из любой горутины)
func (w *World) CopyTiles() []domain.TileData {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]domain.TileData(nil), w.grid.Tiles()...)
}

// IsColliding - пересекает ли хитбокс (в пикселях) твёрдые блоки или край мира
func (w *World) IsColliding(bounds domain.Rect) bool {
	return w.grid.Collides(bounds, w.cfg.TileSize)
}

// --- Сущности ---

// Entities - копия списка живых сущностей
func (w *World) Entities() []*domain.Entity {
	return w.entities.Snapshot()
}

// EntityCount - число живых сущностей
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// Entity ищет живую сущность по ID
func (w *World) Entity(id string) *domain.Entity {
	return w.entities.Get(id)
}

// Remove помечает сущность на удаление в начале следующего тика
func (w *World) Remove(e *domain.Entity) {
	w.entities.MarkRemoved(e)
}

// SpawnEnemy создает врага через фабрику и ставит его в клетку (x, y).
// Неизвестный ID не меняет мир и возвращает ErrUnknownEnemy.
func (w *World) SpawnEnemy(id domain.EnemyID, x, y int) (*domain.Entity, error) {
	enemy := w.factory(id)
	if enemy == nil {
		w.log.WithField("enemy_id", id).Warn("Unknown enemy id, nothing spawned")
		return nil, fmt.Errorf("spawn enemy %d: %w", id, ErrUnknownEnemy)
	}

	enemy.Spawn(float64(x), float64(y))
	w.entities.Add(enemy)

	w.log.WithFields(logrus.Fields{
		"entity_id": enemy.ID,
		"name":      enemy.Name,
		"x":         x,
		"y":         y,
	}).Debug("Enemy spawned")
	return enemy, nil
}

// SpawnDrop роняет предмет в точку (px, py), заданную в пикселях.
// Предмет подпрыгивает вверх и разлетается в случайную сторону.
func (w *World) SpawnDrop(drop domain.Drop, px, py float64) *domain.Entity {
	item := domain.NewDroppedItem(drop, w.cfg.DropLifetime)

	ts := float64(w.cfg.TileSize)
	item.Spawn(px/ts, py/ts)
	w.entities.Add(item)

	spread := w.cfg.DropSpread
	item.Velocity.Vel = domain.Vec2{
		X: w.rng.Float64()*(spread*2) - spread,
		Y: -w.cfg.DropLift,
	}
	return item
}

// --- Кадр ---

// Update: сначала удаляем помеченные сущности, затем обновляем живые.
// Сущности, созданные во время прохода (например, лут умершего врага), впервые обновятся на следующем тике.
func (w *World) Update(dt float64) {
	if removed := w.entities.Flush(); removed > 0 {
		w.log.WithField("removed", removed).Debug("Flushed dead entities")
	}

	for _, e := range w.entities.Snapshot() {
		e.Update(dt, w)
		if !e.Expired() || w.entities.IsPending(e.ID) {
			continue
		}
		w.Remove(e)
		if e.Enemy != nil && e.Enemy.Loot.Count > 0 {
			w.dropLoot(e)
		}
	}
}

// dropLoot роняет лут из центра верхнего края врага
func (w *World) dropLoot(e *domain.Entity) {
	ts := float64(w.cfg.TileSize)
	px := (e.Pos.X + float64(e.Width)/2) * ts
	py := e.Pos.Y * ts
	item := w.SpawnDrop(e.Enemy.Loot, px, py)

	w.log.WithFields(logrus.Fields{
		"entity_id": e.ID,
		"item":      e.Enemy.Loot.Item,
		"count":     e.Enemy.Loot.Count,
		"drop_id":   item.ID,
	}).Debug("Enemy dropped loot")
}

// Render передаёт в Renderer тайлы окна и попадающие в него сущности
func (w *World) Render(r Renderer) RenderStats {
	win := w.RenderWindow()
	stats := RenderStats{Window: win}

	win.ForEach(func(x, y int) {
		r.RenderTile(x, y, w.grid.at(x, y))
		stats.Tiles++
	})

	w.entities.Each(func(e *domain.Entity) {
		if win.Intersects(e.GridX(), e.GridY(), e.Width, e.Height) {
			r.RenderEntity(e)
			stats.Entities++
		}
	})

	return stats
}

// --- Классификатор биомов ---

// StartBiomeChecker запускает периодическую классификацию. Повторный запуск игнорируется.
func (w *World) StartBiomeChecker(ctx context.Context) {
	w.classifier.Start(ctx)
}

// ClassifyBiome выполняет один скан синхронно
func (w *World) ClassifyBiome() domain.Biome {
	return w.classifier.RunOnce()
}

// Close останавливает таймер классификатора и ждёт завершения текущего скана
func (w *World) Close() {
	w.classifier.Stop()
}
