package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"cleaningparty/internal/service"
	"cleaningparty/internal/transport/rest/handler"
)

// NewRouter creates the API router with all endpoints.
func NewRouter(games *service.GameService) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(games)

	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/games/{code}", gameHandler.State).Methods("GET", "OPTIONS")
	v1.HandleFunc("/games/{code}/join", gameHandler.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/games/{code}/start", gameHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/games/{code}/partner", gameHandler.Partner).Methods("POST", "OPTIONS")
	v1.HandleFunc("/games/{code}/complete", gameHandler.CompleteTask).Methods("POST", "OPTIONS")
	v1.HandleFunc("/games/{code}/qr", gameHandler.QR).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
