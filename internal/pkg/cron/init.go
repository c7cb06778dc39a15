package cron

import log "log/slog"

// InitCron registers the maintenance jobs and starts the scheduler.
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("maintenance jobs scheduled", "entries", len(mgr.engine.Entries()))
	return nil
}
