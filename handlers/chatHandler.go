package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"toolfinder/models"
	"toolfinder/services"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	service   *services.ChatService
	analytics *services.AnalyticsService
}

func NewChatHandler(service *services.ChatService, analytics *services.AnalyticsService) *ChatHandler {
	return &ChatHandler{service: service, analytics: analytics}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat", h.Chat).Methods("POST")
	router.HandleFunc("/chat", h.Instructions).Methods("GET")
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[ERROR] Chat request panicked: %v", rec)
			h.analytics.IncrementFailed()
			h.writeErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", rec))
		}
	}()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.Process(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			h.writeErrorResponse(w, http.StatusBadRequest, "Query cannot be empty")
			return
		}
		log.Printf("[ERROR] Chat processing failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
		return
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	log.Printf("[INFO] Chat request completed successfully")
	h.writeJSONResponse(w, http.StatusOK, result.ChatResponse)
}

func (h *ChatHandler) Instructions(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"message": "Use POST method to send queries to the chatbot",
		"usage": map[string]any{
			"method":  "POST",
			"url":     "http://localhost:8000/chat",
			"headers": map[string]string{"Content-Type": "application/json"},
			"body_example": map[string]string{
				"query":   "My students seem bored during class",
				"context": "5th grade math class (optional)",
				"user_id": "teacher_123 (optional)",
			},
		},
		"curl_example": curlExample,
		"available_endpoints": map[string]string{
			"POST /chat":      "Main chatbot endpoint",
			"GET /":           "Service information",
			"GET /health":     "Health check",
			"GET /tools":      "List all tools",
			"GET /categories": "List categories",
		},
	})
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
