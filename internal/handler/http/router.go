package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simon1400/barbitch-admin/internal/handler/http/middleware"
	"github.com/simon1400/barbitch-admin/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	salaryHandler SalaryHandler,
	financeHandler FinanceHandler,
	expenseHandler ExpenseHandler,
	procedureHandler ProcedureHandler,
	reservationHandler ReservationHandler,
	staffHandler StaffHandler,
	reportHandler ReportHandler,
	corsOrigin string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "barbitch-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Masters may open their own cabinet, owners any.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/masters/{id}", salaryHandler.GetMasterCabinet)
			})

			// Owner only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Get("/dashboard", dashboardHandler.GetDashboard)
				r.Get("/dashboard/week", dashboardHandler.GetWeekOverview)
				r.Get("/salaries", salaryHandler.GetSalaries)
				r.Get("/finance/money", financeHandler.GetMoney)
				r.Get("/expenses", expenseHandler.List)
				r.Get("/procedures", procedureHandler.GetStats)
				r.Get("/reservations", reservationHandler.GetMetrics)
				r.Get("/reports/salaries", reportHandler.GetSalariesReport)

				r.Route("/staff", func(r chi.Router) {
					r.Get("/", staffHandler.List)
					r.Post("/", staffHandler.Create)
					r.Get("/{id}", staffHandler.Get)
					r.Put("/{id}", staffHandler.Update)
					r.Delete("/{id}", staffHandler.Delete)
				})
			})
		})
	})
	return r
}
