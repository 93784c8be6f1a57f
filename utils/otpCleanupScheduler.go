package utils

import (
	"fmt"
	"jbp/database"
	"jbp/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[OTP-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// runOTPCleanup purges OTP records older than the retention window
func runOTPCleanup() {
	removed, err := models.CleanupOldOTPs(database.Database.Db)
	if err != nil {
		logScheduler("Error cleaning up old OTPs: " + err.Error())
		return
	}
	logScheduler(fmt.Sprintf("Removed %d expired OTP records", removed))
}

// InitializeOTPCleanupScheduler starts the daily OTP cleanup job
func InitializeOTPCleanupScheduler() *cron.Cron {
	logScheduler("Initializing OTP cleanup scheduler...")

	c := cron.New()

	// Runs daily at 03:00 server time
	c.AddFunc("0 3 * * *", runOTPCleanup)

	c.Start()

	logScheduler("OTP cleanup scheduler started - runs daily at 03:00")
	return c
}
