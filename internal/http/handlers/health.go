package handlers

import (
	"net/http"

	"clubform/internal/app"
	"clubform/internal/http/metrics"
	"clubform/internal/http/response"
)

type HealthHandler struct {
	applications *app.ApplicationService
}

func NewHealthHandler(applications *app.ApplicationService) *HealthHandler {
	return &HealthHandler{applications: applications}
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.applications.Ping(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type MetricsHandler struct {
	collector *metrics.Collector
}

func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{collector: collector}
}

func (h *MetricsHandler) Get(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	if h.collector == nil {
		return
	}
	h.collector.Snapshot().WriteText(w)
}
