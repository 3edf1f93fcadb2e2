package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"toolfinder/models"
	"toolfinder/services/memory"

	"github.com/gorilla/mux"
)

type MemoryHandler struct {
	gateway *memory.Gateway
}

func NewMemoryHandler(gateway *memory.Gateway) *MemoryHandler {
	return &MemoryHandler{gateway: gateway}
}

func (h *MemoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/memory/insights/{user_id}", h.GetUserInsights).Methods("GET")
	router.HandleFunc("/memory/context/{user_id}", h.GetUserContext).Methods("GET")
	router.HandleFunc("/memory/clear/{user_id}", h.ClearUserMemory).Methods("DELETE")
	router.HandleFunc("/memory/preferences/{user_id}", h.UpdatePreferences).Methods("POST")
}

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// Memory failures are logged by the gateway and reported as empty results.

func (h *MemoryHandler) GetUserInsights(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	result := h.gateway.GetUserInsights(r.Context(), userID)

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"user_id":   userID,
		"insights":  result.Insights,
		"timestamp": timestamp(),
	})
}

func (h *MemoryHandler) GetUserContext(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	query := r.URL.Query().Get("query")

	result := h.gateway.GetUserContext(r.Context(), userID, query)

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"user_id":   userID,
		"query":     query,
		"context":   result.Context,
		"timestamp": timestamp(),
	})
}

func (h *MemoryHandler) ClearUserMemory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	h.gateway.ClearUserMemory(r.Context(), userID)

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"message":   fmt.Sprintf("Memory cleared for user %s", userID),
		"timestamp": timestamp(),
	})
}

func (h *MemoryHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var req models.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode preferences request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Preferences == nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Preferences are required")
		return
	}

	h.gateway.UpdatePreferences(r.Context(), userID, req.Preferences)

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("Preferences updated for user %s", userID),
		"preferences": req.Preferences,
		"timestamp":   timestamp(),
	})
}

func (h *MemoryHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *MemoryHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
