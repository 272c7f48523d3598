package server

import (
	"net/http"
	"tileworld-server/internal/engine"

	"github.com/go-chi/chi/v5"
)

// DebugHandler предоставляет доступ к состоянию мира только через снимки, которые публикует игровой цикл
type DebugHandler struct {
	Instance *engine.Instance
}

func NewDebugHandler(inst *engine.Instance) *DebugHandler {
	return &DebugHandler{Instance: inst}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Get("/world", h.handleWorld)
	r.Get("/hub", h.handleHub)
}

// /debug/world - метаданные мира, биом, число сущностей, номер кадра
func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Instance.Summary())
}

// /debug/hub - подписчики и потерянные кадры
func (h *DebugHandler) handleHub(w http.ResponseWriter, r *http.Request) {
	type HubView struct {
		Subscribers int    `json:"subscribers"`
		Dropped     uint64 `json:"dropped"`
	}
	writeJSON(w, HubView{
		Subscribers: h.Instance.Hub.SubscriberCount(),
		Dropped:     h.Instance.Hub.Dropped(),
	})
}
