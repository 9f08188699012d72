package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	"github.com/m04kA/SMC-BikeService/internal/catalog"
)

const (
	msgShowroomNotFound = "Showroom not found"
)

type Handler struct {
	catalog *catalog.Catalog
	logger  Logger
}

func NewHandler(c *catalog.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: c,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Query params: showroom (опционально)
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	showroomID := r.URL.Query().Get("showroom")

	resp, found := FromCatalog(h.catalog, showroomID)
	if !found {
		h.logger.Warn("GET /catalog - Showroom not found: showroom=%s", showroomID)
		handlers.RespondNotFound(w, msgShowroomNotFound)
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved: services=%d, showrooms=%d", len(resp.Services), len(resp.Showrooms))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
