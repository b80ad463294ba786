package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const textContentType = "text/plain; charset=utf-8"

// Server exposes the liveness endpoints hosting platforms poll. It carries no
// state and no auth: every route answers a static body.
type Server struct {
	srv *http.Server
}

func NewServer(listenAddr string) *Server {
	s := &Server{}
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.chain(rootHandler))
	mux.HandleFunc("/ping", s.chain(pingHandler))
	mux.HandleFunc("/health", s.chain(healthHandler))

	s.srv = &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// chain stamps a request ID and logs the request before the handler runs.
func (*Server) chain(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       r.URL.Path,
			"method":     r.Method,
		}).Debug("Health request")

		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeText(w, "🤖 Thumbnail Cover Changer Bot")
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "Pong!")
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "OK")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", textContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// Start listens and serves. Blocks until Shutdown is called.
func (s *Server) Start() error {
	logrus.WithField("addr", s.srv.Addr).Info("Health server starting")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
