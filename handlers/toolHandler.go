package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"toolfinder/services"

	"github.com/gorilla/mux"
)

type ToolHandler struct {
	service *services.ToolService
}

func NewToolHandler(service *services.ToolService) *ToolHandler {
	return &ToolHandler{service: service}
}

func (h *ToolHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/tools", h.GetAllTools).Methods("GET")
	router.HandleFunc("/tools/search", h.SearchTools).Methods("GET")
	router.HandleFunc("/tools/category/{category}", h.GetToolsByCategory).Methods("GET")
	router.HandleFunc("/categories", h.GetCategories).Methods("GET")
}

func (h *ToolHandler) GetAllTools(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.service.GetAllTools())
}

func (h *ToolHandler) SearchTools(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	h.writeJSONResponse(w, http.StatusOK, h.service.SearchTools(query))
}

func (h *ToolHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.service.GetCategories())
}

func (h *ToolHandler) GetToolsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	tools, err := h.service.GetToolsByCategory(category)
	if err != nil {
		if errors.Is(err, services.ErrNoToolsFound) {
			h.writeErrorResponse(w, http.StatusNotFound, fmt.Sprintf("No tools found for category: %s", category))
			return
		}
		log.Printf("[ERROR] Failed to get tools by category: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error retrieving tools: %v", err))
		return
	}

	h.writeJSONResponse(w, http.StatusOK, tools)
}

func (h *ToolHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ToolHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
