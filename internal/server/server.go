// Package server exposes the verification pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/constants"
	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

// Verifier runs one verification request end to end.
type Verifier interface {
	Verify(ctx context.Context, fullName, email string, debug bool) (*domain.VerificationResult, error)
}

type verifyRequest struct {
	FullName string `json:"full_name" validate:"required"`
	// omitempty treats an explicit "" like an absent email: both take the
	// missing-email path instead of failing the format check.
	Email *string `json:"email" validate:"omitempty,email"`
	Debug bool    `json:"debug"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	http     *http.Server
	verifier Verifier
	validate *validator.Validate
	logger   *zap.Logger
}

func New(addr string, verifier Verifier, logger *zap.Logger) *Server {
	s := &Server{
		verifier: verifier,
		validate: validator.New(),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/validate-cv-email", s.handleVerify)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  constants.ServerTimeouts.Read,
		WriteTimeout: constants.ServerTimeouts.Write,
		IdleTimeout:  constants.ServerTimeouts.Idle,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a JSON object"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	result, err := s.verifier.Verify(r.Context(), req.FullName, email, req.Debug)
	if err != nil {
		s.logger.Error("Verification request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "judgment collaborator error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
