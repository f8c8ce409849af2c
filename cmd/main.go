package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createBookingHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	getBookingsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_bookings"
	getBusinessInfoHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_business_info"
	getServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_service"
	getSessionHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_session"
	listServicesHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_services"
	signInHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/sign_out"
	updateBookingStatusHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_service"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/config"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	authService "github.com/m04kA/barbershop-booking/internal/service/auth"
	bookingsService "github.com/m04kA/barbershop-booking/internal/service/bookings"
	catalogService "github.com/m04kA/barbershop-booking/internal/service/catalog"
	createBookingUC "github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

// sessionPurgeInterval период очистки просроченных сессий
const sessionPurgeInterval = 5 * time.Minute

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
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barbershop-booking for %q...", cfg.Business.Name)
	log.Info("Configuration loaded from %s", *configPath)

	hours, err := cfg.Hours()
	if err != nil {
		log.Fatal("Invalid booking hours: %v", err)
	}
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище записей опционально: без него запись отвечает ErrNotConfigured,
	// каталог отдает услуги из конфигурации
	var (
		slotsStore   getAvailableSlotsUC.BookingRepository
		bookingStore createBookingUC.BookingRepository
		serviceStore createBookingUC.ServiceCatalog
		adminStore   bookingsService.BookingRepository
		catalogStore catalogService.ServiceRepository
	)

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		bookingRepository := bookingRepo.NewRepository(executor)
		catalogRepository := catalogRepo.NewRepository(executor)

		slotsStore = bookingRepository
		bookingStore = bookingRepository
		adminStore = bookingRepository
		serviceStore = catalogRepository
		catalogStore = catalogRepository
	} else {
		log.Warn("Database is disabled: online booking is not available")
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogStore, cfg.DefaultServices(), log)
	if cfg.Database.Enabled {
		seeded, err := catalogSvc.SeedDefaults(context.Background())
		if err != nil {
			log.Error("Failed to seed default services: %v", err)
		} else if seeded > 0 {
			log.Info("Seeded %d default services", seeded)
		}
	}

	bookingSvc := bookingsService.NewService(adminStore, timeProvider, log)

	authSvc := authService.NewService(
		toAccounts(cfg.Auth.Admins),
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
		timeProvider,
		log,
	)
	authSvc.OnSessionChange(func(event authService.Event, session *authService.Session) {
		log.Info("Admin session %s: %s", event, session.Email)
	})
	go purgeSessions(authSvc, stopMetricsCh)
	if len(cfg.Auth.Admins) == 0 {
		log.Warn("No admin accounts configured: admin endpoints are unreachable")
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotsStore,
		getAvailableSlotsUC.Settings{
			Hours:               hours,
			SlotIntervalMinutes: cfg.Booking.SlotIntervalMinutes,
			MaxDaysAhead:        cfg.Booking.MaxDaysAhead,
		},
		timeProvider,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		serviceStore,
		getAvailableSlotsUseCase,
		createBookingUC.Settings{
			BusinessName:        cfg.Business.Name,
			Hours:               hours,
			SlotIntervalMinutes: cfg.Booking.SlotIntervalMinutes,
			MaxDaysAhead:        cfg.Booking.MaxDaysAhead,
		},
		timeProvider,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getBusinessInfo := getBusinessInfoHandler.NewHandler(getBusinessInfoHandler.FromConfig(cfg.Business, cfg.Booking, hours))
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	signIn := signInHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(authSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/business", getBusinessInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <session token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool и очистку сессий
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

func toAccounts(admins []config.AdminAccount) []authService.Account {
	accounts := make([]authService.Account, 0, len(admins))
	for _, a := range admins {
		accounts = append(accounts, authService.Account{Email: a.Email, PasswordHash: a.PasswordHash})
	}
	return accounts
}

func purgeSessions(svc *authService.Service, stopCh <-chan struct{}) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.PurgeExpired()
		case <-stopCh:
			return
		}
	}
}
