// Package server exposes the formatter over HTTP. It accepts a JSON request
// describing the text and options, and responds with the formatted text and
// the individual lines.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fernandofreitas03/textfmt/internal/errors"
	"github.com/fernandofreitas03/textfmt/internal/text"
)

type FormatRequest struct {
	Text            *string `json:"text"`
	Width           *int    `json:"width"`
	Justify         bool    `json:"justify"`
	JustifyLastLine bool    `json:"justify_last_line"`
}

type FormatResponse struct {
	Formatted string   `json:"formatted"`
	Lines     []string `json:"lines"`
}

type HealthResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	config Config
}

func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	return &Server{config: cfg}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /format", s.handleFormat)
	return s.withRequestLogging(mux)
}

// ListenAndServe runs the server until it fails or ctx is canceled, in which
// case in-flight requests are drained before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrs := make(chan error, 1)
	go func() {
		serverErrs <- httpServer.ListenAndServe()
	}()

	s.config.Log.Infow("listening", "addr", s.config.Listen)

	select {
	case err := <-serverErrs:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "unable to shut down cleanly")
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, HealthResponse{Message: "textfmt is up. POST /format to format text."})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == nil {
		s.respondError(w, http.StatusBadRequest, "missing required field: text")
		return
	}

	if req.Width == nil {
		s.respondError(w, http.StatusBadRequest, "missing required field: width")
		return
	}

	lines, formatted, err := text.Format(*req.Text, text.Options{
		Width:           *req.Width,
		Justify:         req.Justify,
		JustifyLastLine: req.JustifyLastLine,
	})
	if err != nil {
		if inputErr, ok := errors.AsInputError(err); ok {
			s.respondError(w, http.StatusBadRequest, inputErr.Error())
			return
		}

		s.config.Log.Errorw("format failed", "error", errors.NewInternalError("unable to format text: %s", err.Error()))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if lines == nil {
		lines = []string{}
	}

	s.respond(w, http.StatusOK, FormatResponse{Formatted: formatted, Lines: lines})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.config.Log.Errorw("unable to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, ErrorResponse{Error: message})
}
