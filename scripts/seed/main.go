// Script to seed the database with sample users and daily step records.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/blaisecz/step-tracker/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users() {
		fmt.Printf("  %s (%s, goal %d)\n", user.ID, user.Timezone, user.DailyGoal)
	}
}
