package reportservice

import (
	"context"
	"time"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/period"
	"github.com/icopoint/icopoint/internal/ranking"
	"go.uber.org/zap"
)

type UserRepo interface {
	List(ctx context.Context, excludeAdmins bool) ([]domain.User, error)
}

type OrderRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindInPeriod(ctx context.Context, userID int, start, end time.Time) ([]domain.Order, error)
}

// Service builds the dashboard, history and leaderboard views on top of the
// billing-period and ranking packages.
type Service struct {
	userRepo  UserRepo
	orderRepo OrderRepo
	now       func() time.Time
}

func New(userRepo UserRepo, orderRepo OrderRepo) *Service {
	return &Service{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// Dashboard is the per-user quota view for one billing period.
type Dashboard struct {
	Period      period.Period
	Orders      []domain.Order
	TotalPoints float64
	Progress    float64
}

// resolvePeriod picks the explicitly navigated period when month is set,
// otherwise the one containing today.
func (s *Service) resolvePeriod(month time.Month, year int) period.Period {
	if month != 0 {
		return period.For(month, year)
	}
	return period.Current(s.now())
}

// GetDashboard returns the orders of the requested period together with the
// requester's total and quota progress. Admins see every user's orders in
// the window, but the total and progress remain their own.
func (s *Service) GetDashboard(ctx context.Context, userID int, isAdmin bool, month time.Month, year int) (*Dashboard, error) {
	p := s.resolvePeriod(month, year)

	filterID := userID
	if isAdmin {
		filterID = 0
	}
	orders, err := s.orderRepo.FindInPeriod(ctx, filterID, p.Start, p.End)
	if err != nil {
		zap.L().Error("can't get orders for dashboard", zap.Error(err))
		return nil, err
	}

	var total float64
	for _, o := range orders {
		if o.UserID == userID {
			total += o.Points
		}
	}

	return &Dashboard{
		Period:      p,
		Orders:      orders,
		TotalPoints: total,
		Progress:    ranking.Progress(total),
	}, nil
}

// GetHistory returns the requester's own orders inside the requested period.
func (s *Service) GetHistory(ctx context.Context, userID int, month time.Month, year int) ([]domain.Order, period.Period, error) {
	p := s.resolvePeriod(month, year)

	orders, err := s.orderRepo.FindInPeriod(ctx, userID, p.Start, p.End)
	if err != nil {
		zap.L().Error("can't get order history", zap.Error(err))
		return nil, p, err
	}
	return orders, p, nil
}

// GetRanking returns the leaderboard of non-admin users. A nil period ranks
// all-time totals; users without orders appear with zero points.
func (s *Service) GetRanking(ctx context.Context, limit int, p *period.Period) ([]ranking.Entry, error) {
	users, err := s.userRepo.List(ctx, true)
	if err != nil {
		zap.L().Error("can't list users for ranking", zap.Error(err))
		return nil, err
	}

	entries := make([]ranking.Entry, 0, len(users))
	for _, u := range users {
		var orders []domain.Order
		if p != nil {
			orders, err = s.orderRepo.FindInPeriod(ctx, u.ID, p.Start, p.End)
		} else {
			orders, err = s.orderRepo.FindByUserID(ctx, u.ID)
		}
		if err != nil {
			zap.L().Error("can't get orders for ranking", zap.Error(err))
			return nil, err
		}

		var total float64
		for _, o := range orders {
			total += o.Points
		}
		entries = append(entries, ranking.Entry{Username: u.Username, Points: total})
	}

	return ranking.Rank(entries, limit), nil
}
