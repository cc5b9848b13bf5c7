package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/codevine/trainhub/internal/pkg/logging"
)

// MaintenanceScheduler co-schedules the cleanup sweep and the scheduled
// revalidation in-process. The trigger endpoints remain callable by external
// schedulers; both paths run the same operations.
type MaintenanceScheduler struct {
	cronEngine     *cron.Cron
	sweep          func() (int64, error)
	revalidate     func() ([]string, error)
	specCleanup    string
	specRevalidate string
}

func NewMaintenanceScheduler(
	sweep func() (int64, error),
	revalidate func() ([]string, error),
	specCleanup string, // e.g. "0 3 * * *" (03:00 daily)
	specRevalidate string, // e.g. "*/30 * * * *" (every 30 minutes)
) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		cronEngine:     cron.New(cron.WithLocation(time.UTC)),
		sweep:          sweep,
		revalidate:     revalidate,
		specCleanup:    specCleanup,
		specRevalidate: specRevalidate,
	}
}

func (s *MaintenanceScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.specCleanup, func() {
		affected, err := s.sweep()
		if err != nil {
			logging.Log.Errorf("scheduled cleanup sweep failed: %v", err)
			return
		}
		logging.Log.Infof("scheduled cleanup sweep deactivated %d events", affected)
	}); err != nil {
		return err
	}

	if _, err := s.cronEngine.AddFunc(s.specRevalidate, func() {
		paths, err := s.revalidate()
		if err != nil {
			logging.Log.Errorf("scheduled revalidation failed: %v", err)
			return
		}
		logging.Log.Infof("scheduled revalidation invalidated %d paths", len(paths))
	}); err != nil {
		return err
	}

	s.cronEngine.Start()
	logging.Log.Info("maintenance scheduler started")
	return nil
}

// Stop waits for running jobs before returning.
func (s *MaintenanceScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	logging.Log.Info("maintenance scheduler stopped")
}
