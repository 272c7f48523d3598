package world

import (
	"context"
	"testing"
	"tileworld-server/internal/domain"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideBiome(t *testing.T) {
	cfg := DefaultBiomeConfig()

	tests := []struct {
		name  string
		tally BiomeTally
		evil  domain.EvilType
		want  domain.Biome
	}{
		{"empty", BiomeTally{}, domain.EvilCorruption, domain.BiomeForest},
		{"evil at threshold", BiomeTally{Evil: 200}, domain.EvilCorruption, domain.BiomeForest},
		{"corruption", BiomeTally{Evil: 201}, domain.EvilCorruption, domain.BiomeCorruption},
		{"crimson", BiomeTally{Evil: 201}, domain.EvilCrimson, domain.BiomeCrimson},
		{"evil wins over desert", BiomeTally{Evil: 300, Desert: 5000}, domain.EvilCrimson, domain.BiomeCrimson},
		{"corrupt desert", BiomeTally{EvilDesert: 1001, Desert: 2000}, domain.EvilCorruption, domain.BiomeCorruptDesert},
		{"crimson desert", BiomeTally{EvilDesert: 1001}, domain.EvilCrimson, domain.BiomeCrimsonDesert},
		{"desert", BiomeTally{Desert: 1001, EvilDesert: 1000}, domain.EvilCorruption, domain.BiomeDesert},
		{"desert at threshold", BiomeTally{Desert: 1000}, domain.EvilCorruption, domain.BiomeForest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideBiome(tt.tally, tt.evil, cfg))
		})
	}
}

// newBiomeWorld - мир 100x100, камера в центре, окно скана 38..62 по обеим осям
func newBiomeWorld(t *testing.T, evil domain.EvilType, period time.Duration) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Biome.Period = period

	w := New("biome", newTestGrid(t, 100, 100), evil, WithConfig(cfg))
	w.SetView(domain.View{
		Camera: domain.Camera{X: 2400, Y: 2400},
		Screen: domain.Screen{Width: 960, Height: 960},
	})
	return w
}

// fillEvil ставит 250 блоков эбонита: строки 38..47, колонки 38..62
func fillEvil(t *testing.T, w *World, block *domain.Block) {
	t.Helper()
	for y := 38; y <= 47; y++ {
		for x := 38; x <= 62; x++ {
			require.NoError(t, w.SetBlock(block, x, y))
		}
	}
}

func TestClassifier_ScanWindow(t *testing.T) {
	w := newBiomeWorld(t, domain.EvilCorruption, time.Second)

	win := ComputeWindow(w.View(), w.TileSize(), w.Width(), w.Height(), w.Config().Biome.Margin)
	assert.Equal(t, Window{MinX: 38, MaxX: 62, MinY: 38, MaxY: 62}, win)
}

func TestClassifier_EvilScenario(t *testing.T) {
	for _, tc := range []struct {
		evil domain.EvilType
		want domain.Biome
	}{
		{domain.EvilCorruption, domain.BiomeCorruption},
		{domain.EvilCrimson, domain.BiomeCrimson},
	} {
		t.Run(tc.evil.String(), func(t *testing.T) {
			w := newBiomeWorld(t, tc.evil, time.Second)
			fillEvil(t, w, domain.MustBlock(domain.BlockEbonstone))

			assert.Equal(t, BiomeTally{Evil: 250}, w.Grid().Tally(Window{MinX: 38, MaxX: 62, MinY: 38, MaxY: 62}))
			assert.Equal(t, tc.want, w.ClassifyBiome())
			assert.Equal(t, tc.want, w.CurrentBiome())

			select {
			case b := <-w.BiomeChanges():
				assert.Equal(t, tc.want, b)
			default:
				t.Fatal("biome change was not published")
			}
		})
	}
}

func TestClassifier_BlocksOutsideWindowIgnored(t *testing.T) {
	w := newBiomeWorld(t, domain.EvilCorruption, time.Second)
	ebon := domain.MustBlock(domain.BlockEbonstone)

	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			require.NoError(t, w.SetBlock(ebon, x, y))
		}
	}

	assert.Equal(t, domain.BiomeForest, w.ClassifyBiome())
	select {
	case b := <-w.BiomeChanges():
		t.Fatalf("unexpected biome change to %s", b)
	default:
	}
}

func TestWorld_BiomeChangesKeepsLatest(t *testing.T) {
	w := newBiomeWorld(t, domain.EvilCorruption, time.Second)

	w.setBiome(domain.BiomeDesert)
	w.setBiome(domain.BiomeCorruption)

	assert.Equal(t, domain.BiomeCorruption, <-w.BiomeChanges())
	select {
	case b := <-w.BiomeChanges():
		t.Fatalf("stale biome %s left in channel", b)
	default:
	}
}

func TestClassifier_StartStop(t *testing.T) {
	w := newBiomeWorld(t, domain.EvilCorruption, 10*time.Millisecond)
	c := w.classifier

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.True(t, c.Start(ctx))
	assert.False(t, c.Start(ctx), "second start is ignored")
	assert.True(t, c.Running())

	fillEvil(t, w, domain.MustBlock(domain.BlockEbonstone))
	assert.Eventually(t, func() bool {
		return w.CurrentBiome() == domain.BiomeCorruption
	}, time.Second, 5*time.Millisecond)

	// Меняем сетку, пока тикер работает
	fillEvil(t, w, nil)
	assert.Eventually(t, func() bool {
		return w.CurrentBiome() == domain.BiomeForest
	}, time.Second, 5*time.Millisecond)

	w.Close()
	assert.False(t, c.Running())
	w.Close()

	// После остановки биом больше не меняется
	fillEvil(t, w, domain.MustBlock(domain.BlockEbonstone))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, domain.BiomeForest, w.CurrentBiome())

	// Перезапуск после Stop разрешён
	require.True(t, c.Start(ctx))
	c.Stop()
}

func TestClassifier_FirstScanIsImmediate(t *testing.T) {
	w := newBiomeWorld(t, domain.EvilCrimson, time.Hour)
	fillEvil(t, w, domain.MustBlock(domain.BlockCrimstone))

	w.StartBiomeChecker(context.Background())
	defer w.Close()

	assert.Eventually(t, func() bool {
		return w.CurrentBiome() == domain.BiomeCrimson
	}, time.Second, 5*time.Millisecond)
}
