package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/config"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http/middleware"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	Config              *config.Config
	JWTService          jwt.Service
	SubscriptionService subscription.SubscriptionService

	CompanyHandler      CompanyHandler
	EmployeeHandler     EmployeeHandler
	ShiftHandler        ShiftTemplateHandler
	ScheduleHandler     RecurringScheduleHandler
	TimeLogHandler      TimeLogHandler
	LeaveHandler        LeaveHandler
	SubscriptionHandler SubscriptionHandler
	OverviewHandler     OverviewHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bizbuddy"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	subscriptionMiddleware := middleware.NewSubscriptionMiddleware(deps.SubscriptionService)

	r.Route("/api/v1", func(r chi.Router) {

		// Company onboarding happens before a token exists.
		r.Post("/companies", deps.CompanyHandler.Create)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", deps.CompanyHandler.GetMyCompany)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Put("/", deps.CompanyHandler.Update)
					r.Delete("/", deps.CompanyHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.List)
				r.Get("/{id}", deps.EmployeeHandler.Get)

				// Manager or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", deps.EmployeeHandler.Create)
					r.Put("/{id}", deps.EmployeeHandler.Update)
					r.Delete("/{id}", deps.EmployeeHandler.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(subscriptionMiddleware.RequireActiveSubscription)

				r.Get("/", deps.ShiftHandler.List)
				r.Get("/{id}", deps.ShiftHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", deps.ShiftHandler.Create)
					r.Put("/{id}", deps.ShiftHandler.Update)
					r.Delete("/{id}", deps.ShiftHandler.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Use(subscriptionMiddleware.RequireActiveSubscription)

				r.Get("/", deps.ScheduleHandler.List)
				r.Get("/{id}", deps.ScheduleHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", deps.ScheduleHandler.Create)
					r.Put("/{id}", deps.ScheduleHandler.Update)
					r.Delete("/{id}", deps.ScheduleHandler.Delete)
				})
			})

			r.Route("/time-logs", func(r chi.Router) {
				r.Use(subscriptionMiddleware.RequireFeature(subscription.FeatureTimeTracking))

				r.Post("/clock-in", deps.TimeLogHandler.ClockIn)
				r.Post("/clock-out", deps.TimeLogHandler.ClockOut)
				r.Post("/breaks/start", deps.TimeLogHandler.StartBreak)
				r.Post("/breaks/end", deps.TimeLogHandler.EndBreak)
				r.Get("/", deps.TimeLogHandler.List)
				r.Get("/{id}", deps.TimeLogHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}/correct", deps.TimeLogHandler.Correct)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Use(subscriptionMiddleware.RequireFeature(subscription.FeatureLeaveManagement))

				r.Post("/", deps.LeaveHandler.Create)
				r.Get("/", deps.LeaveHandler.List)
				r.Get("/{id}", deps.LeaveHandler.Get)
				r.Delete("/{id}", deps.LeaveHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/usage", deps.LeaveHandler.Usage)
					r.Post("/{id}/approve", deps.LeaveHandler.Approve)
					r.Post("/{id}/reject", deps.LeaveHandler.Reject)
				})
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/plans", deps.SubscriptionHandler.ListPlans)
				r.Get("/my", deps.SubscriptionHandler.GetMySubscription)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", deps.SubscriptionHandler.Create)
					r.Put("/my/seats", deps.SubscriptionHandler.UpdateSeats)
				})
			})

			r.Route("/overview", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Use(subscriptionMiddleware.RequireFeature(subscription.FeatureAttendance))

				r.Get("/monthly-hours", deps.OverviewHandler.MonthlyHours)
				r.Get("/daily", deps.OverviewHandler.DailyAttendance)
				r.Get("/today", deps.OverviewHandler.Today)
			})
		})
	})
	return r
}
