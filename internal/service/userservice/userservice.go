package userservice

import (
	"context"
	"errors"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/service/authservice"
	"github.com/icopoint/icopoint/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, excludeAdmins bool) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
}

// Service implements admin-side account management.
type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrProtectedUser = errors.New("the admin account can't be deleted")
)

func (s *Service) List(ctx context.Context, excludeAdmins bool) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, excludeAdmins)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) Create(ctx context.Context, username, password string, admin bool) (*domain.User, error) {
	username = authservice.NormalizeUsername(username)

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, authservice.ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Admin:        admin,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created by admin", zap.String("username", username))
	return user, nil
}

// Update changes username, admin flag and, when password is non-empty, the
// password hash.
func (s *Service) Update(ctx context.Context, id int, username, password string, admin bool) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	username = authservice.NormalizeUsername(username)
	if username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			zap.L().Error("can't find user", zap.Error(err))
			return nil, err
		}
		if existing != nil {
			return nil, authservice.ErrUsernameTaken
		}
	}

	user.Username = username
	user.Admin = admin
	if password != "" {
		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes an account. The bootstrap admin account is protected, and
// orders owned by the deleted user stay in place.
func (s *Service) Delete(ctx context.Context, id int) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Username == authservice.AdminUsername {
		return ErrProtectedUser
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	zap.L().Info("user deleted", zap.String("username", user.Username))
	return nil
}
