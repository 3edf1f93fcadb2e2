package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"toolfinder/app"

	"github.com/gorilla/mux"
)

const curlExample = `curl -X POST "http://localhost:8000/chat" -H "Content-Type: application/json" -d '{"query": "help me with lesson planning"}'`

var availableEndpoints = map[string]string{
	"GET /":                              "Service information",
	"POST /chat":                         "Main chatbot endpoint",
	"GET /chat":                          "Usage instructions for chat endpoint",
	"GET /health":                        "Health check",
	"GET /tools":                         "List all educational tools",
	"GET /tools/search":                  "Search tools by name, description or keywords",
	"GET /tools/category/{category}":     "List tools in a category",
	"GET /categories":                    "List tool categories",
	"GET /analytics":                     "Usage analytics",
	"GET /memory/insights/{user_id}":     "Teaching insights for a user",
	"GET /memory/context/{user_id}":      "Memory context for a user",
	"DELETE /memory/clear/{user_id}":     "Clear a user's memory",
	"POST /memory/preferences/{user_id}": "Update a user's preferences",
}

// NewRouter registers every route on a mux router. CORS wraps the router so
// preflight requests and 404/405 replies carry the headers too.
func NewRouter(a *app.App) http.Handler {
	router := mux.NewRouter()
	router.Use(jsonMiddleware)

	NewSystemHandler(a).RegisterRoutes(router)
	NewChatHandler(a.Chat, a.Analytics).RegisterRoutes(router)
	NewToolHandler(a.Tools).RegisterRoutes(router)
	NewMemoryHandler(a.Memory).RegisterRoutes(router)

	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	return corsMiddleware(router)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("[WARN] Endpoint not found: %s %s", r.Method, r.URL.Path)
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":               "Endpoint not found",
		"message":             fmt.Sprintf("The requested endpoint '%s' does not exist", r.URL.Path),
		"available_endpoints": availableEndpoints,
		"tip":                 "Try GET / for service information or POST /chat for API access",
	})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("[WARN] Method not allowed: %s %s", r.Method, r.URL.Path)
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"error":      "Method not allowed",
		"message":    fmt.Sprintf("The method %s is not allowed for '%s'", r.Method, r.URL.Path),
		"suggestion": "Use GET /chat for usage instructions or POST /chat to send a query",
		"example": map[string]string{
			"correct_usage": "POST /chat with JSON body: {'query': 'your question here'}",
			"curl_example":  curlExample,
		},
		"tip": "Visit GET /chat for usage instructions",
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
