package network

import (
	"sync"
	"sync/atomic"
	"tileworld-server/pkg/api"
	"tileworld-server/pkg/logger"
)

// SessionBuffer - сколько кадров может ждать медленный наблюдатель
const SessionBuffer = 16

// Broadcaster занимается только рассылкой кадров подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerResponse

	dropped atomic.Uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии наблюдателя
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, SessionBuffer)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет сообщение конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	return b.offer(sessionID, ch, msg)
}

// Broadcast отправляет всем. Медленный наблюдатель пропускает кадр, цикл не ждёт.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		b.offer(id, ch, msg)
	}
}

func (b *Broadcaster) offer(sessionID string, ch chan api.ServerResponse, msg api.ServerResponse) bool {
	select {
	case ch <- msg:
		return true
	default:
		if n := b.dropped.Add(1); n%100 == 1 {
			logger.Log.WithField("component", "broadcaster").
				WithField("session_id", sessionID).
				WithField("dropped_total", n).
				Debug("Channel full, frame dropped")
		}
		return false
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько кадров не влезло в каналы за всё время
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}
