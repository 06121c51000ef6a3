package handlers

import (
	"log/slog"
	"net/http"

	"clubform/internal/app"
	"clubform/internal/common"
	"clubform/internal/domain/application"
	"clubform/internal/http/metrics"
	"clubform/internal/http/response"
	"clubform/internal/observability"
)

const submittedMessage = "Application submitted successfully!"

type ApplicationHandler struct {
	applications *app.ApplicationService
	metrics      *metrics.Collector
	logger       *slog.Logger
}

func NewApplicationHandler(applications *app.ApplicationService, collector *metrics.Collector, logger *slog.Logger) *ApplicationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationHandler{applications: applications, metrics: collector, logger: logger}
}

type submitResponse struct {
	Message     string                   `json:"message"`
	Application *application.Application `json:"application"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req application.Submission
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.applications.Submit(r.Context(), req)
	if err != nil {
		h.logFailure(r, "submit application failed", err)
		response.Error(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncSubmissions()
	}
	response.JSON(w, http.StatusCreated, submitResponse{Message: submittedMessage, Application: created})
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.applications.Get(r.Context(), id)
	if err != nil {
		h.logFailure(r, "load application failed", err)
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

// logFailure records server-side failures; client mistakes are not logged.
func (h *ApplicationHandler) logFailure(r *http.Request, msg string, err error) {
	if common.Is(err, common.CodeValidation) || common.Is(err, common.CodeNotFound) {
		return
	}
	h.logger.ErrorContext(r.Context(), msg,
		slog.String("error", err.Error()),
		slog.String("request_id", observability.RequestIDFromContext(r.Context())),
	)
}
