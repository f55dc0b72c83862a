package jobs

import (
	"context"
	"time"

	"mysterystays/services/logger"

	"github.com/robfig/cron/v3"
)

// CompleteSchedule runs the completion job at midnight every day.
const CompleteSchedule = "0 0 * * *"

// BookingCompleter marks bookings whose stay has ended as completed.
type BookingCompleter interface {
	CompletePastBookings(ctx context.Context) (int, error)
}

// CompleteBookingsJob returns the job body so it can be run outside the scheduler.
func CompleteBookingsJob(completer BookingCompleter, log logger.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		log.Info("Completing past bookings at %v", time.Now().UTC())
		n, err := completer.CompletePastBookings(ctx)
		if err != nil {
			log.Error("Failed to complete past bookings: %v", err)
			return
		}
		log.Info("Completed %d bookings", n)
	}
}

// InitCronJobs registers the jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, completer BookingCompleter, log logger.Logger) error {
	if _, err := c.AddFunc(CompleteSchedule, CompleteBookingsJob(completer, log)); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
