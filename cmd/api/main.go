package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/config"
	appHTTP "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/cron"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/jwt"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/repository/postgresql"
	companyService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/company"
	employeeService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/employee"
	leaveService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/leave"
	overviewService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/overview"
	scheduleService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/schedule"
	shiftService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/shift"
	subscriptionService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/subscription"
	timeLogService "github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/timelog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftTemplateRepository(db)
	scheduleRepo := postgresql.NewRecurringScheduleRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	subscriptionSvc := subscriptionService.NewSubscriptionService(subscriptionRepo, employeeRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, subscriptionSvc)
	shiftSvc := shiftService.NewShiftTemplateService(shiftRepo, scheduleRepo)
	scheduleSvc := scheduleService.NewRecurringScheduleService(scheduleRepo, shiftRepo, employeeRepo)
	timeLogSvc := timeLogService.NewTimeLogService(timeLogRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	overviewSvc := overviewService.NewOverviewService(companyRepo, scheduleRepo, shiftRepo, timeLogRepo, leaveRepo)

	maxOpenPunch, err := time.ParseDuration(cfg.Cron.MaxOpenPunch)
	if err != nil {
		slog.Error("invalid CRON_MAX_OPEN_PUNCH duration", "value", cfg.Cron.MaxOpenPunch, "error", err)
		os.Exit(1)
	}

	scheduler := cron.NewScheduler()
	scheduler.Register(
		cron.NewTimeLogJobs(timeLogSvc, maxOpenPunch),
		cron.NewSubscriptionJobs(subscriptionSvc),
	)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:              cfg,
		JWTService:          jwtService,
		SubscriptionService: subscriptionSvc,

		CompanyHandler:      appHTTP.NewCompanyHandler(companySvc),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
		ShiftHandler:        appHTTP.NewShiftTemplateHandler(shiftSvc),
		ScheduleHandler:     appHTTP.NewRecurringScheduleHandler(scheduleSvc),
		TimeLogHandler:      appHTTP.NewTimeLogHandler(timeLogSvc),
		LeaveHandler:        appHTTP.NewLeaveHandler(leaveSvc),
		SubscriptionHandler: appHTTP.NewSubscriptionHandler(subscriptionSvc),
		OverviewHandler:     appHTTP.NewOverviewHandler(overviewSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
