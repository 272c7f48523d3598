package world

import "tileworld-server/internal/domain"

// Registry - упорядоченный список живых сущностей плюс отложенное удаление.
// Сущности никогда не удаляются на месте: только через MarkRemoved + Flush в начале тика.
// Не потокобезопасен: трогается только из игрового цикла.
type Registry struct {
	live    []*domain.Entity
	pending map[string]*domain.Entity
}

// NewRegistry создает пустой реестр
func NewRegistry() *Registry {
	return &Registry{
		live:    make([]*domain.Entity, 0, 64),
		pending: make(map[string]*domain.Entity),
	}
}

// Add добавляет сущность в конец списка
func (r *Registry) Add(e *domain.Entity) {
	r.live = append(r.live, e)
}

// MarkRemoved ставит сущность в очередь на удаление. Повторный вызов ничего не меняет.
func (r *Registry) MarkRemoved(e *domain.Entity) {
	r.pending[e.ID] = e
}

// IsPending - сущность ждёт удаления
func (r *Registry) IsPending(id string) bool {
	_, ok := r.pending[id]
	return ok
}

// Flush удаляет отложенные сущности с сохранением порядка остальных.
// Возвращает число реально удалённых.
func (r *Registry) Flush() int {
	if len(r.pending) == 0 {
		return 0
	}

	kept := r.live[:0]
	removed := 0
	for _, e := range r.live {
		if _, dead := r.pending[e.ID]; dead {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённые сущности
	for i := len(kept); i < len(r.live); i++ {
		r.live[i] = nil
	}
	r.live = kept

	clear(r.pending)
	return removed
}

// Snapshot - срез живых сущностей на момент вызова.
// Добавленные позже сущности в него не попадают.
func (r *Registry) Snapshot() []*domain.Entity {
	out := make([]*domain.Entity, len(r.live))
	copy(out, r.live)
	return out
}

// Each обходит живые сущности по порядку
func (r *Registry) Each(fn func(e *domain.Entity)) {
	for _, e := range r.live {
		fn(e)
	}
}

// Len - число живых сущностей (включая ожидающих удаления)
func (r *Registry) Len() int { return len(r.live) }

// Get ищет сущность по ID
func (r *Registry) Get(id string) *domain.Entity {
	for _, e := range r.live {
		if e.ID == id {
			return e
		}
	}
	return nil
}
