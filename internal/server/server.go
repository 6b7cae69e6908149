// Package server provides the HTTP REST API for the outfit stylist.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pixie/outfit-stylist/internal/store"
	"github.com/pixie/outfit-stylist/internal/types"
)

// Upload limits, matching the ingress contract: up to ten images of at most
// 8MB each.
const (
	MaxImages    = 10
	MaxImageSize = 8 << 20
)

// Recommender runs the recommendation pipeline for one request.
type Recommender interface {
	Orchestrate(ctx context.Context, req types.RecommendRequest) (*types.RecommendationResponse, error)
}

// Config holds server configuration
type Config struct {
	Port           int
	AllowedOrigins []string
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	recommender    Recommender
	sessions       store.Store
	allowedOrigins map[string]bool
}

// New creates a new server instance
func New(cfg Config, recommender Recommender, sessions store.Store) *Server {
	s := &Server{
		recommender: recommender,
		sessions:    sessions,
	}

	if len(cfg.AllowedOrigins) > 0 {
		s.allowedOrigins = make(map[string]bool, len(cfg.AllowedOrigins))
		for _, origin := range cfg.AllowedOrigins {
			s.allowedOrigins[origin] = true
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/stylist/recommend", s.handleRecommend)
	mux.HandleFunc("GET /api/stylist/result/{id}", s.handleResult)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  120 * time.Second, // Uploads plus three upstream calls
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers. Without a configured allow-list every origin is
// accepted.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case s.allowedOrigins == nil:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && s.allowedOrigins[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoot answers probes against the bare domain.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "endpoint not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Outfit Stylist backend is running. Use /api/health"))
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}
