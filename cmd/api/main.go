package main

import (
	"context"
	"log"

	_ "github.com/dhima/attendance-ledger/docs" // Import generated docs
	"github.com/dhima/attendance-ledger/internal/api"
)

// @title Attendance Ledger API
// @version 1.0
// @description Records event attendance into an append-only ledger and reports per-member statistics and a leaderboard.
// @description
// @description ## Features
// @description - **Check-ins**: One submission credits up to six attendees for an event; repeats are reported as duplicates
// @description - **Sessions**: Admins open and close check-ins per scope
// @description - **Stats**: Attendance percentage, 15-day and calendar-month windows, and a ranked leaderboard
// @description - **Kafka Integration**: Recorded rows and weekly leaderboard digests are published for external consumers

// @contact.name API Support
// @contact.url https://github.com/dhima/attendance-ledger

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin JWT as "Bearer <token>"; required to open or close check-in sessions

func main() {
	srv, err := api.NewServer(context.Background())
	if err != nil {
		log.Fatalf("api server setup failed: %v", err)
	}
	if err := srv.Serve(); err != nil {
		log.Fatalf("api server stopped: %v", err)
	}
}
