// Package server exposes the projection engine over HTTP. Each request is
// computed independently with no shared state and no cross-request caching,
// so requests are naturally parallelizable.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mlavoie/buy-vs-rent/internal/config"
	"github.com/mlavoie/buy-vs-rent/internal/projection"
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/output"
	"github.com/mlavoie/buy-vs-rent/pkg/report"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Post("/api/projection", h.handleProjection)
	r.Post("/api/projection/report", h.handleReport)
	r.Get("/api/version", h.handleVersion)
	r.Get("/healthz", h.handleHealth)
	return r
}

type projectionResponse struct {
	Result   *projection.Result `json:"result"`
	CSV      string             `json:"csv"`
	Warnings []string           `json:"warnings,omitempty"`
	Duration string             `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	input, ok := h.decodeInput(w, r, "server.handleProjection")
	if !ok {
		return
	}

	result, err := projection.Project(h.logger, *input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, projection.ErrIneligibleMortgage) {
			status = http.StatusUnprocessableEntity
		}
		h.respondError(w, status, err.Error(), "server.handleProjection")
		return
	}

	var csv bytes.Buffer
	output.CsvFormat(&csv, result)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Result:   result,
		CSV:      csv.String(),
		Warnings: input.Warnings(),
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r, "server.handleReport")
	if !ok {
		return
	}

	result, err := projection.Project(h.logger, *input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, projection.ErrIneligibleMortgage) {
			status = http.StatusUnprocessableEntity
		}
		h.respondError(w, status, err.Error(), "server.handleReport")
		return
	}

	document, err := report.Generate(result)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to render report: %v", err), "server.handleReport")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="buy-vs-rent.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		h.logger.Warn("failed to write report response",
			zap.String("op", "server.handleReport"),
			zap.Error(err),
		)
	}
}

func (h *handler) decodeInput(w http.ResponseWriter, r *http.Request, op string) (*config.Projection, bool) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var input config.Projection
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode projection input: %v", err), op)
		return nil, false
	}
	return &input, true
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondError(w http.ResponseWriter, status int, message, op string) {
	h.logger.Warn(message,
		zap.String("op", op),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, errorResponse{Error: message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
