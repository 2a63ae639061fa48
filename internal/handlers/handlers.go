package handlers

import (
	"net/http"

	_ "github.com/icopoint/icopoint/docs"
	authhandlers "github.com/icopoint/icopoint/internal/handlers/auth"
	ordershandlers "github.com/icopoint/icopoint/internal/handlers/orders"
	reportshandlers "github.com/icopoint/icopoint/internal/handlers/reports"
	usershandlers "github.com/icopoint/icopoint/internal/handlers/users"
	"github.com/icopoint/icopoint/internal/service"
	"github.com/icopoint/icopoint/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	GetForm(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetRanking(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	OrderHandler  OrderHandler
	UserHandler   UserHandler
	ReportHandler ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		OrderHandler:  ordershandlers.New(s.OrderService),
		UserHandler:   usershandlers.New(s.UserService),
		ReportHandler: reportshandlers.New(s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/form", h.OrderHandler.GetForm)
				r.Put("/{orderID}", h.OrderHandler.UpdateOrder)
				r.Delete("/{orderID}", h.OrderHandler.DeleteOrder)
			})
			r.Get("/dashboard", h.ReportHandler.GetDashboard)
			r.Get("/history", h.ReportHandler.GetHistory)
			r.Get("/ranking", h.ReportHandler.GetRanking)

			r.Route("/admin/users", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/", h.UserHandler.ListUsers)
				r.Post("/", h.UserHandler.CreateUser)
				r.Put("/{userID}", h.UserHandler.UpdateUser)
				r.Delete("/{userID}", h.UserHandler.DeleteUser)
			})
		})
	})

	return r
}
