package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 120

// profile shapes a user's generated history.
type profile struct {
	user     domain.User
	baseline int     // typical weekday count
	weekend  float64 // weekend multiplier
	skipRate float32 // chance a day has no record
}

var profiles = []profile{
	{
		user:     domain.User{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Prague", DailyGoal: 8000},
		baseline: 9500, weekend: 1.2, skipRate: 0.02,
	},
	{
		user:     domain.User{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", DailyGoal: 10000},
		baseline: 7000, weekend: 0.7, skipRate: 0.1,
	},
	{
		user:     domain.User{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", DailyGoal: 6000},
		baseline: 11000, weekend: 0.9, skipRate: 0.05,
	},
	{
		user:     domain.User{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", DailyGoal: 12000},
		baseline: 4000, weekend: 1.5, skipRate: 0.3,
	},
}

// Users returns the sample users created by Run.
func Users() []domain.User {
	users := make([]domain.User, len(profiles))
	for i, p := range profiles {
		users[i] = p.user
	}
	return users
}

// Run seeds the database with sample users and daily step records. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	ctx := context.Background()
	stepRepo := repository.NewStepRecordRepository(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	for _, p := range profiles {
		user := p.user
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		records := generate(p, now.In(user.Location()), seededDays, rng)
		if err := stepRepo.UpsertMany(ctx, records); err != nil {
			return fmt.Errorf("failed to seed step records for %s: %w", user.ID, err)
		}
		log.Printf("Seeded %d days of steps for user %s (%s, goal %d)", len(records), user.ID, user.Timezone, user.DailyGoal)
	}

	log.Println("Seed completed")
	return nil
}

// generate produces up to days records ending today in now's location.
// Today gets a partial count scaled by the hour of day.
func generate(p profile, now time.Time, days int, rng *rand.Rand) []domain.DailyStepRecord {
	today := domain.CivilDate(now)
	records := make([]domain.DailyStepRecord, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if i > 0 && rng.Float32() < p.skipRate {
			continue
		}

		count := float64(p.baseline) * (0.6 + 0.8*rng.Float64())
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count *= p.weekend
		}
		if i == 0 {
			count *= float64(now.Hour()) / 24
		}

		source := domain.StepSourceDevice
		if rng.Float32() < 0.05 {
			source = domain.StepSourceManual
		}

		records = append(records, domain.DailyStepRecord{
			UserID: p.user.ID,
			Day:    day,
			Count:  int(count),
			Source: source,
		})
	}
	return records
}
