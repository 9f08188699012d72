package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Response HTTP response model
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	store       Pinger
	serviceName string
	logger      Logger
}

func NewHandler(store Pinger, serviceName string, logger Logger) *Handler {
	return &Handler{
		store:       store,
		serviceName: serviceName,
		logger:      logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("GET /health - Store is unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, &Response{Status: "unavailable", Service: h.serviceName})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &Response{Status: "ok", Service: h.serviceName})
}
