package systems

import (
	"errors"
	"math/rand"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnConfig - частота и лимит спавна врагов
type SpawnConfig struct {
	// Interval - секунды игрового времени между попытками
	Interval   float64
	MaxEnemies int
}

func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{Interval: 2, MaxEnemies: 8}
}

// DefaultPools - кого можно встретить в каждом биоме
var DefaultPools = map[domain.Biome][]domain.EnemyID{
	domain.BiomeForest:        {domain.EnemyGreenSlime, domain.EnemyBlueSlime, domain.EnemyZombie, domain.EnemyDemonEye},
	domain.BiomeDesert:        {domain.EnemyAntlion, domain.EnemyGreenSlime},
	domain.BiomeCorruption:    {domain.EnemyEaterOfSouls},
	domain.BiomeCrimson:       {domain.EnemyCrimera},
	domain.BiomeCorruptDesert: {domain.EnemyEaterOfSouls, domain.EnemyAntlion},
	domain.BiomeCrimsonDesert: {domain.EnemyCrimera, domain.EnemyAntlion},
}

// SpawnSystem ставит врагов в полосу активной зоны правее экрана.
// Работает в игровом цикле, биом читает из мира без блокировок.
type SpawnSystem struct {
	cfg   SpawnConfig
	pools map[domain.Biome][]domain.EnemyID
	rng   *rand.Rand
	timer float64
	log   *logrus.Entry
}

func NewSpawnSystem(cfg SpawnConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		cfg:   cfg,
		pools: DefaultPools,
		rng:   rng,
		log:   logger.Log.WithField("component", "spawn_system"),
	}
}

// Update копит время и раз в Interval пытается поставить одного врага.
// nil без ошибки - в этот раз никого не поставили.
func (s *SpawnSystem) Update(dt float64, w *world.World) (*domain.Entity, error) {
	s.timer += dt
	if s.timer < s.cfg.Interval {
		return nil, nil
	}
	s.timer = 0

	if countEnemies(w) >= s.cfg.MaxEnemies {
		return nil, nil
	}

	// Колонки, которые уже активны, но ещё не видны
	render, active := w.RenderWindow(), w.ActiveWindow()
	from, to := render.MaxX+1, active.MaxX
	if from > to {
		return nil, nil
	}
	x := from + s.rng.Intn(to-from+1)

	y, err := w.Grid().Highest(x)
	if errors.Is(err, world.ErrNoGround) {
		s.log.WithField("x", x).Debug("No ground in column, skip spawn")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if y < 0 {
		return nil, nil
	}

	pool := s.pools[w.CurrentBiome()]
	if len(pool) == 0 {
		return nil, nil
	}
	id := pool[s.rng.Intn(len(pool))]

	return w.SpawnEnemy(id, x, y)
}

func countEnemies(w *world.World) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Kind == domain.KindEnemy {
			n++
		}
	}
	return n
}
