package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) UpdateGoal(ctx context.Context, id uuid.UUID, dailyGoal int) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.DailyGoal = dailyGoal
	return nil
}

func (m *MockUserRepository) add(timezone string, goal int) *domain.User {
	user := &domain.User{ID: uuid.New(), Timezone: timezone, DailyGoal: goal}
	m.users[user.ID] = user
	return user
}

// MockStepRecordRepository is a mock implementation of StepRecordRepository
type MockStepRecordRepository struct {
	records    map[uuid.UUID]map[string]domain.DailyStepRecord
	listResult []domain.DailyStepRecord
	upserts    [][]domain.DailyStepRecord
	lastFilter domain.StepRecordFilter
	err        error
}

func NewMockStepRecordRepository() *MockStepRecordRepository {
	return &MockStepRecordRepository{
		records: make(map[uuid.UUID]map[string]domain.DailyStepRecord),
	}
}

func (m *MockStepRecordRepository) UpsertMany(ctx context.Context, records []domain.DailyStepRecord) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, records)
	for _, r := range records {
		if m.records[r.UserID] == nil {
			m.records[r.UserID] = make(map[string]domain.DailyStepRecord)
		}
		if existing, ok := m.records[r.UserID][r.DayKey()]; ok {
			r.ID = existing.ID
		} else {
			r.ID = uuid.New()
		}
		m.records[r.UserID][r.DayKey()] = r
	}
	return nil
}

func (m *MockStepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) ([]domain.DailyStepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	if m.listResult != nil {
		result := make([]domain.DailyStepRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.DailyStepRecord
	for _, r := range m.records[userID] {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.After(result[j].Day) })
	return result, nil
}

func (m *MockStepRecordRepository) ListByDayRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyStepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	from, to = domain.CivilDate(from), domain.CivilDate(to)
	var result []domain.DailyStepRecord
	for _, r := range m.records[userID] {
		if !r.Day.Before(from) && !r.Day.After(to) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result, nil
}

type fetchCall struct {
	userID   uuid.UUID
	from, to time.Time
}

// MockStepSource serves a fixed series and records the requested ranges
type MockStepSource struct {
	mu        sync.Mutex
	series    domain.StepSeries
	err       error
	calls     []fetchCall
	fetchFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.StepSeries, error)
}

func (m *MockStepSource) FetchDailyStepCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.StepSeries, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fetchCall{userID: userID, from: from, to: to})
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, userID, from, to)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.series, nil
}

// MockInvalidator records invalidated users
type MockInvalidator struct {
	users []uuid.UUID
}

func (m *MockInvalidator) Invalidate(ctx context.Context, userID uuid.UUID) {
	m.users = append(m.users, userID)
}

// MockAdviceLLM is a mock implementation of llm.AdviceLLM
type MockAdviceLLM struct {
	generateFunc func(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error)
	received     *domain.AdviceContext
}

func (m *MockAdviceLLM) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	m.received = adviceCtx
	if m.generateFunc != nil {
		return m.generateFunc(ctx, adviceCtx)
	}
	return &domain.LLMAdviceOutput{
		Summary:      "You are walking more than last week.",
		Observations: []string{"Weekday counts are steady"},
		Suggestions:  []string{"Take the stairs"},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "lf-trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Close(ctx context.Context) error {
	return nil
}

// Helper functions
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func day(s string) time.Time {
	t, _ := time.Parse(domain.DayLayout, s)
	return t
}
