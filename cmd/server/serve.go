package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine"
	"tileworld-server/internal/infrastructure/storage"
	"tileworld-server/internal/network"
	"tileworld-server/internal/server"
	"tileworld-server/internal/version"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"
	"tileworld-server/pkg/utils"
	"tileworld-server/pkg/worldgen"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	flagCfg    = engine.NewConfig()
	seedPhrase string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the world loop and the websocket server",
	Long: `Loads the world from the store (or generates it if there is no save yet),
starts the game loop with the biome checker and serves observers over websocket.
On SIGINT/SIGTERM the world is saved before exit.`,
	RunE: runServe,
}

func init() {
	addWorldFlags(serveCmd)
	serveCmd.Flags().IntVar(&flagCfg.Port, "port", flagCfg.Port, "HTTP port (TW_PORT)")
	serveCmd.Flags().IntVar(&flagCfg.TickRate, "tick-rate", flagCfg.TickRate, "Frames per second (TW_TICK_RATE)")
	serveCmd.Flags().DurationVar(&flagCfg.AutosaveInterval, "autosave", flagCfg.AutosaveInterval, "Autosave interval, 0 disables")
}

// addWorldFlags - флаги хранилища и генерации, общие для serve/generate/inspect/list
func addWorldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64Var(&flagCfg.Seed, "seed", 0, "World seed, 0 for random (TW_SEED)")
	f.StringVar(&flagCfg.WorldName, "world", flagCfg.WorldName, "World name (TW_WORLD)")
	f.StringVar(&flagCfg.SaveDir, "save-dir", flagCfg.SaveDir, "Directory with world saves (TW_SAVE_DIR)")
	f.StringVar(&flagCfg.RedisAddr, "redis", flagCfg.RedisAddr, "Redis address; saves go to redis when set (TW_REDIS_ADDR)")
	f.IntVar(&flagCfg.Width, "width", flagCfg.Width, "Width of a generated world in tiles")
	f.IntVar(&flagCfg.Height, "height", flagCfg.Height, "Height of a generated world in tiles")
	f.StringVar(&flagCfg.Evil, "evil", flagCfg.Evil, "Evil type of a generated world (corruption or crimson)")
	f.BoolVar(&flagCfg.Expert, "expert", false, "Generate the world in expert mode")
	f.StringVar(&seedPhrase, "seed-phrase", "", "Derive the seed from a phrase; overrides --seed")
}

// resolveConfig: значения по умолчанию < окружение < явно заданные флаги
func resolveConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.NewConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	changed := func(name string) bool {
		fl := f.Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("seed") && flagCfg.Seed != 0 {
		cfg.Seed = flagCfg.Seed
	}
	if changed("seed-phrase") && seedPhrase != "" {
		cfg.Seed = utils.StringToSeed(seedPhrase)
	}
	if changed("expert") {
		cfg.Expert = flagCfg.Expert
	}
	if changed("world") {
		cfg.WorldName = flagCfg.WorldName
	}
	if changed("save-dir") {
		cfg.SaveDir = flagCfg.SaveDir
	}
	if changed("redis") {
		cfg.RedisAddr = flagCfg.RedisAddr
	}
	if changed("width") {
		cfg.Width = flagCfg.Width
	}
	if changed("height") {
		cfg.Height = flagCfg.Height
	}
	if changed("evil") {
		cfg.Evil = flagCfg.Evil
	}
	if changed("port") {
		cfg.Port = flagCfg.Port
	}
	if changed("tick-rate") {
		if flagCfg.TickRate <= 0 {
			return cfg, fmt.Errorf("tick-rate must be positive, got %d", flagCfg.TickRate)
		}
		cfg.TickRate = flagCfg.TickRate
	}
	if changed("autosave") {
		cfg.AutosaveInterval = flagCfg.AutosaveInterval
	}

	if err := storage.ValidateName(cfg.WorldName); err != nil {
		return cfg, err
	}
	if _, ok := domain.ParseEvilType(cfg.Evil); !ok {
		return cfg, fmt.Errorf("unknown evil type %q", cfg.Evil)
	}
	return cfg, nil
}

func worldOptions(cfg engine.Config) []world.Option {
	return []world.Option{
		world.WithConfig(cfg.World),
		world.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	}
}

// generateWorld создает мир по параметрам конфига и ставит камеру над поверхностью в центре
func generateWorld(cfg engine.Config) (*world.World, error) {
	evil, _ := domain.ParseEvilType(cfg.Evil)
	w, err := worldgen.Generate(worldgen.Params{
		Name:   cfg.WorldName,
		Seed:   cfg.Seed,
		Width:  cfg.Width,
		Height: cfg.Height,
		Evil:   evil,
		Expert: cfg.Expert,
	}, worldOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	centerCamera(w)
	return w, nil
}

// openWorld загружает мир из хранилища, а если сохранения нет - генерирует и сохраняет
func openWorld(ctx context.Context, store worldStore, cfg engine.Config) (*world.World, error) {
	w, err := store.Load(ctx, cfg.WorldName, worldOptions(cfg)...)
	if err == nil {
		centerCamera(w)
		return w, nil
	}
	if !errors.Is(err, storage.ErrWorldNotFound) {
		return nil, err
	}

	logger.Log.WithField("world", cfg.WorldName).Info("No save found, generating a new world")
	w, err = generateWorld(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("save generated world: %w", err)
	}
	return w, nil
}

func centerCamera(w *world.World) {
	x := w.Width() / 2
	y, err := w.Grid().Highest(x)
	if err != nil {
		y = w.Height() / 2
	}
	v := w.View()
	v.Camera = domain.CameraAtTile(x, y, w.TileSize())
	w.SetView(v)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.For("main")
	log.Info("Starting tile world server...")
	log.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := openWorld(ctx, store, cfg)
	if err != nil {
		return fmt.Errorf("open world %q: %w", cfg.WorldName, err)
	}
	log.WithFields(logrus.Fields{
		"world":  w.Name(),
		"width":  w.Width(),
		"height": w.Height(),
		"evil":   w.EvilType(),
		"seed":   cfg.Seed,
	}).Info("World ready")

	inst := engine.NewInstance(w, network.NewBroadcaster(), cfg).
		WithSaver(engine.SaverFunc(store.Save))
	srv := server.New(inst, cfg.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return inst.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Done.")
	return nil
}
