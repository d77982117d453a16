package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/cancel_booking"
	checkScheduleConflictHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/check_schedule_conflict"
	createBookingHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/get_booking"
	getLawyerBookingsHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/get_lawyer_bookings"
	getLawyerScheduleHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/get_lawyer_schedule"
	getUserBookingsHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/get_user_bookings"
	sweepReservationsHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/sweep_reservations"
	updateBookingSlotsHandler "github.com/lexgrid/LSM-BookingService/internal/api/handlers/update_booking_slots"
	"github.com/lexgrid/LSM-BookingService/internal/api/middleware"
	"github.com/lexgrid/LSM-BookingService/internal/config"
	shiftsCache "github.com/lexgrid/LSM-BookingService/internal/infra/cache/shifts"
	bookingRepo "github.com/lexgrid/LSM-BookingService/internal/infra/storage/booking"
	lawyerServiceClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	bookingsService "github.com/lexgrid/LSM-BookingService/internal/service/bookings"
	scheduleService "github.com/lexgrid/LSM-BookingService/internal/service/schedule"
	createBookingUC "github.com/lexgrid/LSM-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/lexgrid/LSM-BookingService/internal/usecase/get_available_slots"
	sweepReservationsUC "github.com/lexgrid/LSM-BookingService/internal/usecase/sweep_reservations"
	updateBookingUC "github.com/lexgrid/LSM-BookingService/internal/usecase/update_booking"
	"github.com/lexgrid/LSM-BookingService/pkg/dbmetrics"
	"github.com/lexgrid/LSM-BookingService/pkg/logger"
	"github.com/lexgrid/LSM-BookingService/pkg/metrics"
	"github.com/lexgrid/LSM-BookingService/pkg/simpletxmanager"
	"github.com/lexgrid/LSM-BookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting LSM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	lawyerClient := lawyerServiceClient.NewClient(
		cfg.LawyerService.URL,
		time.Duration(cfg.LawyerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (LawyerService=%s timeout=%ds)",
		cfg.LawyerService.URL, cfg.LawyerService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем кеш каталога смен
	var shiftCache scheduleService.ShiftCache
	if cfg.ShiftCache.Enabled {
		cache, err := shiftsCache.New(cfg.ShiftCache.Size, time.Duration(cfg.ShiftCache.TTL)*time.Second, log)
		if err != nil {
			log.Fatal("Failed to initialize shift cache: %v", err)
		}
		shiftCache = cache
		log.Info("Shift cache enabled (size=%d, ttl=%ds)", cfg.ShiftCache.Size, cfg.ShiftCache.TTL)
	} else {
		shiftCache = shiftsCache.NewPassthrough()
		log.Info("Shift cache disabled, using passthrough")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		lawyerClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		bookingRepository,
		lawyerClient,
		shiftCache,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		lawyerClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		lawyerClient,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		lawyerClient,
		txMgr,
		log,
	)
	sweepReservationsUseCase := sweepReservationsUC.NewUseCase(
		bookingRepository,
		time.Duration(cfg.Sweep.CancellationTimeout)*time.Second,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateBookingSlots := updateBookingSlotsHandler.NewHandler(updateBookingUseCase, log)
	sweepReservations := sweepReservationsHandler.NewHandler(sweepReservationsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getLawyerBookings := getLawyerBookingsHandler.NewHandler(bookingSvc, log)
	getLawyerSchedule := getLawyerScheduleHandler.NewHandler(scheduleSvc, log)
	checkScheduleConflict := checkScheduleConflictHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог доступных слотов юриста на дату
	api.HandleFunc("/lawyers/{lawyerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание резерва
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос времени оплаченного бронирования
	protected.HandleFunc("/bookings/{bookingId}/slots", updateBookingSlots.Handle).Methods(http.MethodPut)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Актуальные резервы пользователя с чисткой просроченных
	protected.HandleFunc("/users/{userId}/reservations/sweep", sweepReservations.Handle).Methods(http.MethodGet)

	// --- Кабинет юриста ---
	// Календарь бронирований юриста
	protected.HandleFunc("/lawyers/{lawyerId}/bookings", getLawyerBookings.Handle).Methods(http.MethodGet)

	// Расписание смен юриста
	protected.HandleFunc("/lawyers/{lawyerId}/schedule", getLawyerSchedule.Handle).Methods(http.MethodGet)

	// Проверка конфликта планируемой смены с бронированиями
	protected.HandleFunc("/lawyers/{lawyerId}/schedule/conflict", checkScheduleConflict.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
