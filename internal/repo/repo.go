package repo

import (
	"github.com/icopoint/icopoint/internal/pg"
	orderrepo "github.com/icopoint/icopoint/internal/repo/order-repo"
	userrepo "github.com/icopoint/icopoint/internal/repo/user-repo"
	"github.com/icopoint/icopoint/internal/service/orderservice"
	"github.com/icopoint/icopoint/internal/service/userservice"
)

type Repositories struct {
	UserRepo  userservice.Repo
	OrderRepo orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orderRepo := orderrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
	}
}
