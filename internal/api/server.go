// Package api serves solar and lunar computations over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/log"
)

// Defaults are used for requests that carry no location, coordinates or
// time zone of their own.
type Defaults struct {
	Observer   *sunglide.Observer
	Timezone   *time.Location
	Depression sunglide.Depression
}

// Server handles HTTP requests. It is safe for concurrent use; SetDefaults
// may be called while serving.
type Server struct {
	db  *geocoder.DB
	out formatter

	mu       sync.RWMutex
	defaults Defaults
}

// NewServer returns a server that resolves location names with db.
func NewServer(db *geocoder.DB, d Defaults) *Server {
	return &Server{db: db, defaults: d}
}

// SetDefaults replaces the defaults, e.g. after a config reload.
func (s *Server) SetDefaults(d Defaults) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = d
}

func (s *Server) getDefaults() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware)

	router.HandleFunc("/sun", s.getSun).Methods(http.MethodGet)
	router.HandleFunc("/position", s.getPosition).Methods(http.MethodGet)
	router.HandleFunc("/window/{kind}", s.getWindow).Methods(http.MethodGet)
	router.HandleFunc("/rahukaalam", s.getRahukaalam).Methods(http.MethodGet)
	router.HandleFunc("/moon", s.getMoon).Methods(http.MethodGet)
	router.HandleFunc("/locations", s.getLocations).Methods(http.MethodGet)
	router.HandleFunc("/locations/{name}", s.getLocation).Methods(http.MethodGet)

	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(handlers.CompressHandler(router))
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infow("starting HTTP server", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDHeader carries the request ID, echoed back or generated.
const RequestIDHeader = "X-Request-ID"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID(r),
		)
	})
}
