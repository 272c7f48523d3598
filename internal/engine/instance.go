package engine

import (
	"context"
	"math/rand"
	"sync/atomic"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine/handlers"
	"tileworld-server/internal/engine/handlers/actions"
	"tileworld-server/internal/engine/handlers/admin"
	"tileworld-server/internal/network"
	"tileworld-server/internal/systems"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/api"
	"tileworld-server/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// CommandBuffer - размер очереди команд наблюдателей
	CommandBuffer = 256
	// maxCommandsPerFrame - сколько команд разбираем за кадр, остальные ждут следующего
	maxCommandsPerFrame = 64
	// maxFrameDt - после паузы (GC, отладчик) мир не прыгает больше чем на 100 мс
	maxFrameDt = 0.1

	saveTimeout = 30 * time.Second
)

// Saver сохраняет мир (файл или redis)
type Saver interface {
	Save(ctx context.Context, w *world.World) error
}

// SaverFunc позволяет передать функцию как Saver
type SaverFunc func(ctx context.Context, w *world.World) error

func (f SaverFunc) Save(ctx context.Context, w *world.World) error { return f(ctx, w) }

// Instance - один запущенный мир и его игровой цикл.
// Все мутации мира происходят в горутине Run (или в Step из тестов).
type Instance struct {
	World *world.World
	Hub   *network.Broadcaster

	// CommandChan - команды от наблюдателей
	CommandChan chan domain.InternalCommand

	cfg      Config
	spawner  *systems.SpawnSystem
	handlers map[domain.ActionType]handlers.HandlerFunc
	saver    Saver

	tick    uint64
	summary atomic.Pointer[api.WorldSummary]

	log *logrus.Entry
}

func NewInstance(w *world.World, hub *network.Broadcaster, cfg Config) *Instance {
	if cfg.TickRate <= 0 {
		cfg.TickRate = NewConfig().TickRate
	}

	i := &Instance{
		World:       w,
		Hub:         hub,
		CommandChan: make(chan domain.InternalCommand, CommandBuffer),
		cfg:         cfg,
		spawner:     systems.NewSpawnSystem(cfg.Spawn, rand.New(rand.NewSource(cfg.Seed))),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "instance",
			"world":     w.Name(),
		}),
	}

	i.handlers[domain.ActionCamera] = handlers.WithPayload(actions.HandleCamera)
	i.handlers[domain.ActionResize] = handlers.WithPayload(actions.HandleResize)
	i.handlers[domain.ActionSpawnEnemy] = handlers.WithPayload(actions.HandleSpawnEnemy)
	i.handlers[domain.ActionSpawnDrop] = handlers.WithPayload(actions.HandleSpawnDrop)
	i.handlers[domain.ActionSetBlock] = handlers.WithPayload(actions.HandleSetBlock)
	i.handlers[domain.ActionSetWall] = handlers.WithPayload(actions.HandleSetWall)
	i.handlers[domain.ActionTeleport] = handlers.WithPayload(admin.HandleTeleport)
	i.handlers[domain.ActionKill] = handlers.WithPayload(admin.HandleKill)
	i.handlers[domain.ActionClear] = handlers.WithEmptyPayload(admin.HandleClear)

	i.publishSummary()
	return i
}

// WithSaver включает автосохранение и сохранение при остановке
func (i *Instance) WithSaver(s Saver) *Instance {
	i.saver = s
	return i
}

// Submit ставит команду в очередь. false - очередь переполнена, команда отброшена.
func (i *Instance) Submit(cmd domain.InternalCommand) bool {
	select {
	case i.CommandChan <- cmd:
		return true
	default:
		i.log.WithField("action", cmd.Action).Warn("Command queue full, command dropped")
		return false
	}
}

// Summary - последние метаданные мира. Безопасно из любой горутины.
func (i *Instance) Summary() api.WorldSummary {
	return *i.summary.Load()
}

func (i *Instance) publishSummary() {
	s := i.summarize()
	i.summary.Store(&s)
}

// Run запускает игровой цикл и классификатор биомов. Возвращается после отмены ctx.
func (i *Instance) Run(ctx context.Context) error {
	i.log.WithField("tick_rate", i.cfg.TickRate).Info("Instance loop started")

	i.World.StartBiomeChecker(ctx)
	defer i.World.Close()

	ticker := time.NewTicker(time.Second / time.Duration(i.cfg.TickRate))
	defer ticker.Stop()

	var autosave <-chan time.Time
	if i.saver != nil && i.cfg.AutosaveInterval > 0 {
		t := time.NewTicker(i.cfg.AutosaveInterval)
		defer t.Stop()
		autosave = t.C
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			i.log.Info("Instance loop stopping")
			if i.saver != nil {
				saveCtx, cancel := context.WithTimeout(context.Background(), saveTimeout)
				defer cancel()
				return i.Save(saveCtx)
			}
			return nil

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			i.Step(min(dt, maxFrameDt))

		case <-autosave:
			if err := i.Save(ctx); err != nil {
				i.log.WithError(err).Error("Autosave failed")
			}
		}
	}
}

// Step - один кадр: команды, спавн, обновление мира, рассылка кадра
func (i *Instance) Step(dt float64) {
	i.drainCommands()

	if e, err := i.spawner.Update(dt, i.World); err != nil {
		i.log.WithError(err).Warn("Spawn failed")
	} else if e != nil {
		i.log.WithFields(logrus.Fields{"entity_id": e.ID, "name": e.Name}).Debug("Enemy spawned by system")
	}

	i.World.Update(dt)

	select {
	case b := <-i.World.BiomeChanges():
		i.log.WithField("biome", b).Info("Biome changed")
	default:
	}

	i.tick++
	if i.Hub.SubscriberCount() > 0 {
		i.Hub.Broadcast(i.buildFrame(api.MsgFrame))
	}
	i.publishSummary()
}

// Save сохраняет мир через Saver
func (i *Instance) Save(ctx context.Context) error {
	if i.saver == nil {
		return nil
	}
	return i.saver.Save(ctx, i.World)
}

func (i *Instance) drainCommands() {
	for n := 0; n < maxCommandsPerFrame; n++ {
		select {
		case cmd := <-i.CommandChan:
			i.executeCommand(cmd)
		default:
			return
		}
	}
}

// executeCommand выполняет команду в контексте мира
func (i *Instance) executeCommand(cmd domain.InternalCommand) {
	entry := i.log.WithFields(logrus.Fields{
		"session_id": cmd.SessionID,
		"action":     cmd.Action,
	})

	// INIT - приветствие новой сессии: метаданные мира и первый кадр
	if cmd.Action == domain.ActionInit {
		msg := i.buildFrame(api.MsgInit)
		summary := i.summarize()
		msg.SessionID = cmd.SessionID
		msg.World = &summary
		i.Hub.SendTo(cmd.SessionID, msg)
		return
	}

	handler, ok := i.handlers[cmd.Action]
	if !ok {
		entry.Warn("Unknown action")
		i.sendError(cmd.SessionID, "unknown action")
		return
	}

	ctx := handlers.Context{
		World:     i.World,
		SessionID: cmd.SessionID,
		Log:       entry,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		entry.WithError(err).Warn("Command failed")
		i.sendError(cmd.SessionID, err.Error())
		return
	}
	if result.Msg != "" {
		entry.Debug(result.Msg)
	}
}

func (i *Instance) sendError(sessionID, text string) {
	i.Hub.SendTo(sessionID, api.ServerResponse{
		Type:  api.MsgError,
		Tick:  i.tick,
		Error: text,
	})
}
