package handlers

import (
	"encoding/json"
	"net/http"

	"toolfinder/app"
	"toolfinder/models"

	"github.com/gorilla/mux"
)

const (
	healthy   = "healthy"
	unhealthy = "unhealthy"
)

type SystemHandler struct {
	app *app.App
}

func NewSystemHandler(a *app.App) *SystemHandler {
	return &SystemHandler{app: a}
}

func (h *SystemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/analytics", h.Analytics).Methods("GET")
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"service":             app.Name,
		"version":             app.Version,
		"message":             "Educational tool recommendations for teachers. POST /chat with {\"query\": \"...\"}",
		"available_endpoints": availableEndpoints,
	})
}

func status(ok bool) string {
	if ok {
		return healthy
	}
	return unhealthy
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	memoryStats := h.app.Memory.Stats(r.Context())

	components := map[string]string{
		"knowledge_base":    status(h.app.Catalog != nil && h.app.Catalog.Len() > 0),
		"intent_classifier": status(h.app.Classifier != nil),
		"memory_service":    status(memoryStats.Status == "active"),
		"llm_api":           status(h.app.HasLanguageModel()),
	}

	overall := healthy
	for _, componentStatus := range components {
		if componentStatus != healthy {
			overall = unhealthy
			break
		}
	}

	h.writeJSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:     overall,
		Timestamp:  timestamp(),
		Components: components,
	})
}

func (h *SystemHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.app.Analytics.Snapshot(r.Context(), h.app.Tools, h.app.Memory))
}

func (h *SystemHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
