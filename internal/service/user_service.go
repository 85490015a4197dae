package service

import (
	"context"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/google/uuid"
)

// DefaultDailyGoal applies when neither the request nor the config sets one.
const DefaultDailyGoal = 8000

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateGoal(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalRequest) (*domain.User, error)
}

type userService struct {
	repo        repository.UserRepository
	defaultGoal int
}

func NewUserService(repo repository.UserRepository, defaultGoal int) UserService {
	if defaultGoal <= 0 {
		defaultGoal = DefaultDailyGoal
	}
	return &userService{repo: repo, defaultGoal: defaultGoal}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	goal := req.DailyGoal
	if goal == 0 {
		goal = s.defaultGoal
	}

	user := &domain.User{
		ID:        uuid.New(),
		Timezone:  req.Timezone,
		DailyGoal: goal,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateGoal(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalRequest) (*domain.User, error) {
	if req.DailyGoal <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := s.repo.UpdateGoal(ctx, id, req.DailyGoal); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
