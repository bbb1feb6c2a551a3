// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the notification relay,
// which drains the broadcast outbox of records a crashed or disconnected
// process left undispatched.
package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationRelayJob *NotificationRelayJob
}

// NewJobManager creates a job manager wired to the relay handler.
func NewJobManager(
	relayHandler commands.RelayNotificationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRelayJob: NewNotificationRelayJob(relayHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
}
