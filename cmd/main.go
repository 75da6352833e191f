package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/create_booking"
	createYachtHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/create_yacht"
	deleteYachtHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/delete_yacht"
	getBookingHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/get_booking"
	getYachtHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/get_yacht"
	getAvailabilityHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/get_yacht_availability"
	listAllYachtsHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_all_yachts"
	listBookingsHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_bookings"
	listContactMessagesHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_contact_messages"
	listLocationsHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_locations"
	listSubscribersHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_subscribers"
	listYachtsHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/list_yachts"
	submitContactHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/submit_contact"
	subscribeHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/subscribe"
	unsubscribeHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/unsubscribe"
	updateBookingStatusHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/update_booking_status"
	updateYachtHandler "github.com/m04kA/SMC-CharterService/internal/api/handlers/update_yacht"
	"github.com/m04kA/SMC-CharterService/internal/api/middleware"
	"github.com/m04kA/SMC-CharterService/internal/config"
	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/dataset"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	bookingRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/contact"
	locationRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/location"
	subscriberRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/subscriber"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
	bookingsService "github.com/m04kA/SMC-CharterService/internal/service/bookings"
	contactsService "github.com/m04kA/SMC-CharterService/internal/service/contacts"
	subscribersService "github.com/m04kA/SMC-CharterService/internal/service/subscribers"
	yachtsService "github.com/m04kA/SMC-CharterService/internal/service/yachts"
	createBookingUC "github.com/m04kA/SMC-CharterService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-CharterService/internal/usecase/get_yacht_availability"
	listYachtsUC "github.com/m04kA/SMC-CharterService/internal/usecase/list_yachts"
	"github.com/m04kA/SMC-CharterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
	"github.com/m04kA/SMC-CharterService/pkg/metrics"
	"github.com/m04kA/SMC-CharterService/pkg/txmanager"
)

// catalogSource источник яхт для каталога: Postgres или файл с данными
type catalogSource interface {
	ListYachts(ctx context.Context) ([]domain.Yacht, error)
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
	ListLocations(ctx context.Context) ([]domain.LocationSummary, error)
}

// postgresCatalog каталог из Postgres: яхты и локации из разных репозиториев
type postgresCatalog struct {
	*yachtRepo.Repository
	locations *locationRepo.Repository
}

func (c *postgresCatalog) ListLocations(ctx context.Context) ([]domain.LocationSummary, error) {
	return c.locations.ListLocations(ctx)
}

// eventPublisher публикует события в брокер
type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
	Close() error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	var logOpts []logger.Option
	if cfg.Logs.FluentHost != "" {
		logOpts = append(logOpts, logger.WithFluent(cfg.Logs.FluentHost, cfg.Logs.FluentPort, cfg.Logs.FluentTag))
	}
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logOpts...)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CharterService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все Observe* методы его проверяют
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	yachtRepository := yachtRepo.NewRepository(wrappedDB)
	subscriberRepository := subscriberRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)

	// Источник каталога
	var catalog catalogSource
	switch cfg.Catalog.Source {
	case config.SourceDataset:
		source, err := dataset.NewSource(cfg.Catalog.Dataset)
		if err != nil {
			log.Fatal("Failed to load dataset %s: %v", cfg.Catalog.Dataset, err)
		}
		log.Info("Catalog is served from dataset %s (%d yachts)", cfg.Catalog.Dataset, len(source.Yachts()))
		catalog = source
	default:
		catalog = &postgresCatalog{
			Repository: yachtRepository,
			locations:  locationRepo.NewRepository(wrappedDB),
		}
		log.Info("Catalog is served from postgres")
	}

	// Брокер событий (если включен)
	var publisher eventPublisher
	if cfg.Broker.Enabled {
		p, err := notifier.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange, metricsCollector, log)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = p
		log.Info("Publishing events to exchange %s", cfg.Broker.Exchange)
	} else {
		publisher = notifier.NewNop(log)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, log)
	yachtSvc := yachtsService.NewService(catalog, catalog, yachtRepository, log)
	subscriberSvc := subscribersService.NewService(subscriberRepository, publisher, log)
	contactSvc := contactsService.NewService(contactRepository, publisher, log)

	// Инициализируем use cases
	listYachtsUseCase := listYachtsUC.NewUseCase(
		catalog,
		cfg.Catalog.Source,
		listYachtsUC.Settings{
			ItemsPerPage: cfg.Catalog.ItemsPerPage,
			MaxPerPage:   cfg.Catalog.MaxPerPage,
		},
		metricsCollector,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		catalog,
		getAvailabilityUC.Limits{
			AdvanceDays:    cfg.Booking.AdvanceDays,
			MinNoticeHours: cfg.Booking.MinNoticeHours,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		yachtRepository,
		txMgr,
		publisher,
		createBookingUC.Limits{
			AdvanceDays:    cfg.Booking.AdvanceDays,
			MinNoticeHours: cfg.Booking.MinNoticeHours,
		},
		log,
	)

	// Инициализируем handlers
	listYachts := listYachtsHandler.NewHandler(listYachtsUseCase, log)
	getYacht := getYachtHandler.NewHandler(yachtSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listLocations := listLocationsHandler.NewHandler(yachtSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	subscribe := subscribeHandler.NewHandler(subscriberSvc, log)
	unsubscribe := unsubscribeHandler.NewHandler(subscriberSvc, log)
	submitContact := submitContactHandler.NewHandler(contactSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listAllYachts := listAllYachtsHandler.NewHandler(yachtSvc, log)
	createYacht := createYachtHandler.NewHandler(yachtSvc, log)
	updateYacht := updateYachtHandler.NewHandler(yachtSvc, log)
	deleteYacht := deleteYachtHandler.NewHandler(yachtSvc, log)
	listSubscribers := listSubscribersHandler.NewHandler(subscriberSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/yachts", listYachts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/yachts/{yachtId}", getYacht.Handle).Methods(http.MethodGet)
	api.HandleFunc("/yachts/{yachtId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Формы сайта ---
	api.HandleFunc("/subscribers", subscribe.Handle).Methods(http.MethodPost)
	api.HandleFunc("/subscribers/{email}", unsubscribe.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/contact-messages", submitContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/yachts", listAllYachts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/yachts", createYacht.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/yachts/{yachtId}", updateYacht.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/yachts/{yachtId}", deleteYacht.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/subscribers", listSubscribers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)

	if cfg.Admin.Token == "" {
		log.Warn("admin.token is empty, admin routes will reject every request")
	}

	// CORS для фронтенда каталога
	handler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.TraceHeader, middleware.AdminTokenHeader},
		ExposedHeaders: []string{middleware.TraceHeader},
		MaxAge:         300,
	})(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
