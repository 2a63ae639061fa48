package service

import (
	"context"

	"github.com/icopoint/icopoint/internal/handlers/auth"
	"github.com/icopoint/icopoint/internal/handlers/orders"
	"github.com/icopoint/icopoint/internal/handlers/reports"
	"github.com/icopoint/icopoint/internal/handlers/users"

	pkgauth "github.com/icopoint/icopoint/pkg/auth"

	"github.com/icopoint/icopoint/internal/repo"
	authservice "github.com/icopoint/icopoint/internal/service/authservice"
	orderservice "github.com/icopoint/icopoint/internal/service/orderservice"
	reportservice "github.com/icopoint/icopoint/internal/service/reportservice"
	userservice "github.com/icopoint/icopoint/internal/service/userservice"
)

// AuthService extends the handler-facing surface with the startup bootstrap.
type AuthService interface {
	auth.Service
	EnsureAdmin(ctx context.Context, password string) error
}

type Services struct {
	AuthService   AuthService
	OrderService  orders.Service
	UserService   users.Service
	ReportService reports.Service
}

func New(repo *repo.Repositories) *Services {
	hashService := &pkgauth.HashService{}
	authService := authservice.New(repo.UserRepo, hashService, &pkgauth.JWTService{})
	orderService := orderservice.New(repo.OrderRepo)
	userService := userservice.New(repo.UserRepo, hashService)
	reportService := reportservice.New(repo.UserRepo, repo.OrderRepo)

	return &Services{
		AuthService:   authService,
		OrderService:  orderService,
		UserService:   userService,
		ReportService: reportService,
	}
}
