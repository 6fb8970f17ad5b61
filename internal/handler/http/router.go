package http

import (
	"log/slog"
	"os"

	"github.com/addis-furniture/backoffice-go/internal/config"
	"github.com/addis-furniture/backoffice-go/internal/handler/http/middleware"
	"github.com/addis-furniture/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth     AuthHandler
	User     UserHandler
	Employee EmployeeHandler
	Wage     WageHandler
	Order    OrderHandler
	Sale     SaleHandler
	Purchase PurchaseHandler
	Expense  ExpenseHandler
	Report   ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.User.GetProfile)
				r.Put("/", h.User.UpdateProfile)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)

					r.Route("/wages", func(r chi.Router) {
						r.Get("/", h.Wage.ListByEmployee)
						r.Post("/", h.Wage.Create)
					})
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Order.List)
				r.Post("/", h.Order.Create)
				r.Get("/summary", h.Order.Summary)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Order.Get)
					r.Put("/", h.Order.Update)
					r.Delete("/", h.Order.Delete)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.Sale.List)
				r.Post("/", h.Sale.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Sale.Get)
					r.Put("/", h.Sale.Update)
					r.Delete("/", h.Sale.Delete)
				})
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Get("/", h.Purchase.List)
				r.Post("/", h.Purchase.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Purchase.Get)
					r.Put("/", h.Purchase.Update)
					r.Delete("/", h.Purchase.Delete)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", h.Expense.List)
				r.Post("/", h.Expense.Create)
				r.Get("/summary", h.Expense.Summary)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Expense.Get)
					r.Put("/", h.Expense.Update)
					r.Delete("/", h.Expense.Delete)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.CreateManager)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/orders", h.Report.Orders)
					r.Get("/sales", h.Report.Sales)
					r.Get("/purchases", h.Report.Purchases)
					r.Get("/expenses", h.Report.Expenses)
					r.Get("/wages", h.Report.Wages)
				})
			})
		})
	})

	return r
}
