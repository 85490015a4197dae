package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	DailyGoal int       `gorm:"not null;default:8000" json:"daily_goal"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Location returns the user's time zone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Daily step goal, defaults to the server configured goal when omitted
	DailyGoal int `json:"daily_goal,omitempty" validate:"omitempty,min=1,max=200000" example:"8000"`
}

// UpdateGoalRequest is the request body for changing the daily step goal
type UpdateGoalRequest struct {
	DailyGoal int `json:"daily_goal" validate:"required,min=1,max=200000" example:"10000"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Timezone  string    `json:"timezone"`
	DailyGoal int       `json:"daily_goal"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		DailyGoal: u.DailyGoal,
		CreatedAt: u.CreatedAt,
	}
}
