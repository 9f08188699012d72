package export_report

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings
// Query params: date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	data, err := h.service.Report(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reports/bookings - Failed to build report: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reportFileName(date)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("GET /reports/bookings - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /reports/bookings - Report exported: date=%s, bytes=%d", date, len(data))
}

func reportFileName(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "bookings-report.xlsx"
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, date)
	return "bookings-report-" + safe + ".xlsx"
}
