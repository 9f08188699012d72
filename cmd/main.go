package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BikeService/internal/api"
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
	"github.com/m04kA/SMC-BikeService/internal/catalog"
	"github.com/m04kA/SMC-BikeService/internal/config"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-BikeService/internal/integrations/events"
	"github.com/m04kA/SMC-BikeService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-BikeService/internal/service/bookings"
	documentsService "github.com/m04kA/SMC-BikeService/internal/service/documents"
	paymentsService "github.com/m04kA/SMC-BikeService/internal/service/payments"
	createBookingUC "github.com/m04kA/SMC-BikeService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BikeService/internal/usecase/get_available_slots"
	processPaymentUC "github.com/m04kA/SMC-BikeService/internal/usecase/process_payment"
	updateBookingStatusUC "github.com/m04kA/SMC-BikeService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-BikeService/pkg/idgen"
	"github.com/m04kA/SMC-BikeService/pkg/keylock"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
	"github.com/m04kA/SMC-BikeService/pkg/metrics"
)

// publisher издатель событий с возможностью закрытия
type publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

func main() {
	// Секреты из .env, если файл есть
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BikeService...")
	log.Info("Configuration loaded from config.toml")

	// Коллектор метрик нужен use case'ам всегда, наружу отдается только если включен
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Подключаемся к хранилищу
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := kv.Open(openCtx, cfg.KVOptions())
	cancelOpen()
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer store.Close()
	log.Info("Storage ready (driver=%s)", cfg.Storage.Driver)

	// Справочник услуг, шоурумов и механиков
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded: %d services, %d showrooms, %d time slots",
		len(cat.Services), len(cat.Showrooms), len(cat.TimeSlots))

	// Инициализируем интеграционных клиентов
	mailer := notifier.NewClient(notifier.Config{
		BaseURL:       cfg.Notifier.BaseURL,
		APIKey:        cfg.Notifier.APIKey,
		From:          cfg.Notifier.From,
		Subject:       cfg.Notifier.Subject,
		Timeout:       time.Duration(cfg.Notifier.Timeout) * time.Second,
		RatePerSecond: cfg.Notifier.RatePerSecond,
		Burst:         cfg.Notifier.Burst,
	}, log)
	if cfg.Notifier.APIKey == "" {
		log.Warn("Resend API key is not set, confirmation emails are disabled")
	}

	var eventPublisher publisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		rabbit, err := events.NewRabbitPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ, events disabled: %v", err)
		} else {
			eventPublisher = rabbit
			log.Info("Publishing events to exchange %s", cfg.Events.Exchange)
		}
	}
	defer eventPublisher.Close()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store)
	paymentRepository := paymentRepo.NewRepository(store)
	customerRepository := customerRepo.NewRepository(store)

	ids := idgen.New()
	locker := keylock.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, log)
	documentSvc := documentsService.NewService(bookingRepository, paymentRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		cat,
		mailer,
		eventPublisher,
		ids,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, cat, log)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		locker,
		eventPublisher,
		ids,
		metricsCollector,
		log,
	)
	processPaymentUseCase := processPaymentUC.NewUseCase(
		paymentRepository,
		locker,
		eventPublisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	handlers := &api.Handlers{
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		ListBookings:        listBookingsHandler.NewHandler(bookingSvc, log),
		GetAvailableSlots:   getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus: updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log),
		GetMechanicBookings: getMechanicBookingsHandler.NewHandler(bookingSvc, log),
		ListPayments:        listPaymentsHandler.NewHandler(paymentSvc, log),
		GetPayment:          getPaymentHandler.NewHandler(paymentSvc, log),
		ProcessPayment:      processPaymentHandler.NewHandler(processPaymentUseCase, log),
		GetGatePass:         getGatePassHandler.NewHandler(documentSvc, log),
		ExportReport:        exportReportHandler.NewHandler(documentSvc, log),
		GetCatalog:          getCatalogHandler.NewHandler(cat, log),
		Health:              healthHandler.NewHandler(store, cfg.Metrics.ServiceName, log),
	}

	// Настраиваем роутер
	opts := api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	router := api.NewRouter(handlers, opts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
