package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/create_booking"
	exportReportHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/export_report"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_catalog"
	getGatePassHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_gate_pass"
	getMechanicBookingsHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_mechanic_bookings"
	getPaymentHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/get_payment"
	healthHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/list_bookings"
	listPaymentsHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/list_payments"
	processPaymentHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/process_payment"
	updateBookingStatusHandler "github.com/m04kA/SMC-BikeService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-BikeService/internal/api/middleware"
)

// Handlers набор обработчиков HTTP API
type Handlers struct {
	CreateBooking       *createBookingHandler.Handler
	ListBookings        *listBookingsHandler.Handler
	GetAvailableSlots   *getAvailableSlotsHandler.Handler
	GetBooking          *getBookingHandler.Handler
	UpdateBookingStatus *updateBookingStatusHandler.Handler
	GetMechanicBookings *getMechanicBookingsHandler.Handler
	ListPayments        *listPaymentsHandler.Handler
	GetPayment          *getPaymentHandler.Handler
	ProcessPayment      *processPaymentHandler.Handler
	GetGatePass         *getGatePassHandler.Handler
	ExportReport        *exportReportHandler.Handler
	GetCatalog          *getCatalogHandler.Handler
	Health              *healthHandler.Handler
}

// RouterOptions параметры роутера
type RouterOptions struct {
	AllowedOrigins []string
	Metrics        middleware.HTTPMetrics // nil - метрики выключены
	MetricsPath    string
	MetricsHandler http.Handler
	Logger         middleware.Logger
}

// NewRouter собирает маршруты API
func NewRouter(h *Handlers, opts RouterOptions) http.Handler {
	r := mux.NewRouter()

	if opts.Logger != nil {
		r.Use(middleware.RequestLogging(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	// Служебные endpoints
	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	// availability регистрируется до {bookingId}
	api.HandleFunc("/bookings/availability", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.UpdateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Механики ---
	api.HandleFunc("/mechanics/{name}/bookings", h.GetMechanicBookings.Handle).Methods(http.MethodGet)

	// --- Касса ---
	api.HandleFunc("/cashier/payments", h.ListPayments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", h.GetPayment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", h.ProcessPayment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/payments/{paymentId}/gate-pass", h.GetGatePass.Handle).Methods(http.MethodGet)

	// --- Отчеты и справочники ---
	api.HandleFunc("/reports/bookings", h.ExportReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog", h.GetCatalog.Handle).Methods(http.MethodGet)

	// CORS снаружи роутера, чтобы preflight OPTIONS не получал 405
	return middleware.CORS(opts.AllowedOrigins)(r)
}
