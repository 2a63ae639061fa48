package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/period"
	"github.com/icopoint/icopoint/internal/ranking"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockOrderRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)

	service := New(userRepo, orderRepo)
	service.now = func() time.Time {
		return time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, userRepo, orderRepo
}

// The frozen clock above puts "today" inside the 2026-07-21..2026-08-20 window.
var (
	currentStart = time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC)
	currentEnd   = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
)

func TestGetDashboard(t *testing.T) {
	service, _, orderRepo := NewMock(t)

	tests := []struct {
		name        string
		userID      int
		isAdmin     bool
		month       time.Month
		year        int
		prepareMock func()
		expected    *Dashboard
		expectedErr error
	}{
		{
			name:   "Technician sees own orders of the current period",
			userID: 2,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2, currentStart, currentEnd).Return([]domain.Order{
					{ID: 1, UserID: 2, Points: 100},
					{ID: 2, UserID: 2, Points: 12.5},
				}, nil)
			},
			expected: &Dashboard{
				Period: period.Period{Start: currentStart, End: currentEnd},
				Orders: []domain.Order{
					{ID: 1, UserID: 2, Points: 100},
					{ID: 2, UserID: 2, Points: 12.5},
				},
				TotalPoints: 112.5,
				Progress:    50,
			},
		},
		{
			name:    "Admin sees all orders but only own total",
			userID:  1,
			isAdmin: true,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 0, currentStart, currentEnd).Return([]domain.Order{
					{ID: 1, UserID: 2, Points: 100},
					{ID: 3, UserID: 1, Points: 45},
				}, nil)
			},
			expected: &Dashboard{
				Period: period.Period{Start: currentStart, End: currentEnd},
				Orders: []domain.Order{
					{ID: 1, UserID: 2, Points: 100},
					{ID: 3, UserID: 1, Points: 45},
				},
				TotalPoints: 45,
				Progress:    20,
			},
		},
		{
			name:   "Navigated period",
			userID: 2,
			month:  time.January,
			year:   2026,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2,
					time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
					time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)).Return(nil, nil)
			},
			expected: &Dashboard{
				Period: period.Period{
					Start: time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
				},
				TotalPoints: 0,
				Progress:    0,
			},
		},
		{
			name:   "Database error",
			userID: 2,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2, currentStart, currentEnd).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			dashboard, err := service.GetDashboard(context.Background(), tt.userID, tt.isAdmin, tt.month, tt.year)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, dashboard)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, _, orderRepo := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		month          time.Month
		year           int
		prepareMock    func()
		expectedOrders []domain.Order
		expectedPeriod period.Period
		expectedErr    error
	}{
		{
			name:   "Current period history",
			userID: 2,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2, currentStart, currentEnd).Return([]domain.Order{
					{ID: 1, UserID: 2, Points: 3.94},
				}, nil)
			},
			expectedOrders: []domain.Order{{ID: 1, UserID: 2, Points: 3.94}},
			expectedPeriod: period.Period{Start: currentStart, End: currentEnd},
		},
		{
			name:   "Database error",
			userID: 2,
			prepareMock: func() {
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2, currentStart, currentEnd).Return(nil, errors.New("database error"))
			},
			expectedPeriod: period.Period{Start: currentStart, End: currentEnd},
			expectedErr:    errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			orders, p, err := service.GetHistory(context.Background(), tt.userID, tt.month, tt.year)
			assert.Equal(t, tt.expectedPeriod, p)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOrders, orders)
			}
		})
	}
}

func TestGetRanking(t *testing.T) {
	service, userRepo, orderRepo := NewMock(t)

	tests := []struct {
		name        string
		limit       int
		period      *period.Period
		prepareMock func()
		expected    []ranking.Entry
		expectedErr error
	}{
		{
			name:  "All-time ranking with zero-point users",
			limit: 10,
			prepareMock: func() {
				userRepo.EXPECT().List(context.Background(), true).Return([]domain.User{
					{ID: 2, Username: "anna"},
					{ID: 3, Username: "boris"},
					{ID: 4, Username: "carla"},
				}, nil)
				orderRepo.EXPECT().FindByUserID(context.Background(), 2).Return([]domain.Order{{Points: 10}}, nil)
				orderRepo.EXPECT().FindByUserID(context.Background(), 3).Return([]domain.Order{{Points: 5}, {Points: 5}}, nil)
				orderRepo.EXPECT().FindByUserID(context.Background(), 4).Return(nil, nil)
			},
			expected: []ranking.Entry{
				{Username: "anna", Points: 10},
				{Username: "boris", Points: 10},
				{Username: "carla", Points: 0},
			},
		},
		{
			name:   "Period ranking",
			limit:  1,
			period: &period.Period{Start: currentStart, End: currentEnd},
			prepareMock: func() {
				userRepo.EXPECT().List(context.Background(), true).Return([]domain.User{
					{ID: 2, Username: "anna"},
					{ID: 3, Username: "boris"},
				}, nil)
				orderRepo.EXPECT().FindInPeriod(context.Background(), 2, currentStart, currentEnd).Return([]domain.Order{{Points: 3}}, nil)
				orderRepo.EXPECT().FindInPeriod(context.Background(), 3, currentStart, currentEnd).Return([]domain.Order{{Points: 7}}, nil)
			},
			expected: []ranking.Entry{
				{Username: "boris", Points: 7},
			},
		},
		{
			name:  "Error listing users",
			limit: 10,
			prepareMock: func() {
				userRepo.EXPECT().List(context.Background(), true).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		{
			name:  "Error loading orders",
			limit: 10,
			prepareMock: func() {
				userRepo.EXPECT().List(context.Background(), true).Return([]domain.User{
					{ID: 2, Username: "anna"},
				}, nil)
				orderRepo.EXPECT().FindByUserID(context.Background(), 2).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entries, err := service.GetRanking(context.Background(), tt.limit, tt.period)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, entries)
			}
		})
	}
}
