package handlers

import (
	"net/http"

	"clubform/internal/app"
	"clubform/internal/http/response"
)

type CatalogHandler struct {
	applications *app.ApplicationService
}

func NewCatalogHandler(applications *app.ApplicationService) *CatalogHandler {
	return &CatalogHandler{applications: applications}
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.applications.Catalog())
}
