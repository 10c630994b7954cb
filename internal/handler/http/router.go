package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/wellpay/wellpay-backend-go/internal/handler/http/middleware"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName     string
	AppVersion  string
	AppEnv      string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	reminderHandler ReminderHandler,
	wellnessHandler WellnessHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", employeeHandler.GetMyProfile)
				r.Put("/", employeeHandler.UpdateMyProfile)
			})

			r.Get("/attendance", attendanceHandler.ListMine)

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payrollHandler.ListMyPayslips)
				r.Post("/generate", payrollHandler.GeneratePayslip)
			})

			r.Route("/stress", func(r chi.Router) {
				r.Post("/overtime", payrollHandler.RecordOvertime)
				r.Get("/records", payrollHandler.ListMyStressRecords)
				r.Get("/dashboard", payrollHandler.StressDashboard)
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Post("/", reminderHandler.Create)
				r.Get("/", reminderHandler.List)
				r.Put("/{reminderID}", reminderHandler.Update)
				r.Delete("/{reminderID}", reminderHandler.Delete)
			})

			r.Get("/wellness/tips", wellnessHandler.ListTips)

			// HR only
			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/dashboard", dashboardHandler.HRDashboard)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListDirectory)
					r.Post("/profile", employeeHandler.CreateProfile)

					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/profile", employeeHandler.GetEmployeeProfile)
						r.Post("/attendance", attendanceHandler.Record)
						r.Get("/attendance", attendanceHandler.ListForEmployee)
						r.Get("/payslips", payrollHandler.ListEmployeePayslips)
						r.Get("/stress", payrollHandler.EmployeeStressHistory)
					})
				})
			})
		})
	})
	return r
}
