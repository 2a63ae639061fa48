package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/points"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindInPeriod(ctx context.Context, userID int, start, end time.Time) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotAllowed     = errors.New("not allowed to access this order")
	ErrInvalidJobType = errors.New("invalid job type")
	ErrInvalidSubtype = errors.New("invalid subtype for job type")
)

// Input carries the user-editable order fields. Points are never part of
// the input; they are recomputed on every write.
type Input struct {
	InstallationNumber string
	Date               time.Time
	Type               points.JobType
	Subtypes           []string
}

func validateInput(in Input) error {
	if !points.ValidType(in.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidJobType, in.Type)
	}
	for _, st := range in.Subtypes {
		if !points.ValidSubtype(in.Type, st) {
			return fmt.Errorf("%w: %q under %s", ErrInvalidSubtype, st, in.Type)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID int, in Input) (*domain.Order, error) {
	if err := validateInput(in); err != nil {
		zap.L().Info("rejected order input", zap.Error(err))
		return nil, err
	}

	order := &domain.Order{
		UserID:             userID,
		InstallationNumber: in.InstallationNumber,
		Date:               in.Date,
		Type:               in.Type,
		Subtypes:           in.Subtypes,
		Points:             points.Calculate(in.Type, in.Subtypes),
		CreatedAt:          time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// GetByID returns the order when the requester owns it or is an admin.
func (s *Service) GetByID(ctx context.Context, userID int, isAdmin bool, orderID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID && !isAdmin {
		return nil, ErrNotAllowed
	}
	return order, nil
}

func (s *Service) Update(ctx context.Context, userID int, isAdmin bool, orderID int, in Input) (*domain.Order, error) {
	order, err := s.GetByID(ctx, userID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		zap.L().Info("rejected order input", zap.Error(err))
		return nil, err
	}

	order.InstallationNumber = in.InstallationNumber
	order.Date = in.Date
	order.Type = in.Type
	order.Subtypes = in.Subtypes
	order.Points = points.Calculate(in.Type, in.Subtypes)

	if err := s.repo.Update(ctx, order); err != nil {
		zap.L().Error("can't update order: ", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) Delete(ctx context.Context, userID int, isAdmin bool, orderID int) error {
	if _, err := s.GetByID(ctx, userID, isAdmin, orderID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orderID); err != nil {
		zap.L().Error("can't delete order: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
