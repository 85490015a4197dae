package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc     func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateGoalFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, DailyGoal: req.DailyGoal}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateGoal(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalRequest) (*domain.User, error) {
	if m.updateGoalFunc != nil {
		return m.updateGoalFunc(ctx, id, req)
	}
	return &domain.User{ID: id, Timezone: "UTC", DailyGoal: req.DailyGoal}, nil
}

// MockStepLogService is a mock implementation of StepLogService
type MockStepLogService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertStepRecordsRequest) ([]domain.DailyStepRecord, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) (*domain.StepRecordListResponse, error)
}

func (m *MockStepLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertStepRecordsRequest) ([]domain.DailyStepRecord, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	records := make([]domain.DailyStepRecord, 0, len(req.Records))
	for _, in := range req.Records {
		day, _ := time.Parse(domain.DayLayout, in.Day)
		records = append(records, domain.DailyStepRecord{
			ID:     uuid.New(),
			UserID: userID,
			Day:    day,
			Count:  in.Count,
			Source: domain.StepSourceDevice,
		})
	}
	return records, nil
}

func (m *MockStepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) (*domain.StepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.StepRecordListResponse{
		Data:       []domain.StepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	summaryFunc func(ctx context.Context, userID uuid.UUID, req domain.SummaryRequest) (*domain.StepCountSummary, error)
}

func (m *MockSummaryService) Summary(ctx context.Context, userID uuid.UUID, req domain.SummaryRequest) (*domain.StepCountSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, req)
	}
	return &domain.StepCountSummary{Unit: req.Unit, Mode: req.Mode, Periods: []domain.PeriodSummary{}}, nil
}

func (m *MockSummaryService) SummaryAt(ctx context.Context, user *domain.User, req domain.SummaryRequest, ref time.Time) (*domain.StepCountSummary, error) {
	return m.Summary(ctx, user.ID, req)
}

// MockStreakService is a mock implementation of StreakService
type MockStreakService struct {
	streakFunc func(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
}

func (m *MockStreakService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	if m.streakFunc != nil {
		return m.streakFunc(ctx, userID)
	}
	return &domain.StreakResponse{
		Streak: domain.GoalStreak{Goal: 8000, LookbackCap: 100},
		Status: domain.AchievementStatus{Kind: domain.MissedYesterday},
	}, nil
}

func (m *MockStreakService) StreakAt(ctx context.Context, user *domain.User, ref time.Time) (*domain.StreakResponse, error) {
	return m.Streak(ctx, user.ID)
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	adviseFunc   func(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.AdviceFeedbackRequest) error
}

func (m *MockAdviceService) Advise(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID)
	}
	return &domain.AdviceResponse{}, nil
}

func (m *MockAdviceService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.AdviceFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// withUserID adds the chi URL param the handlers read.
func withUserID(req *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
