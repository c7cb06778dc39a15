package cron

import (
	"Clipstream/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	followRecountJob  *job.FollowRecountJob
	engagementRateJob *job.EngagementRateJob
}

func NewCronManager(followRecountJob *job.FollowRecountJob, engagementRateJob *job.EngagementRateJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		followRecountJob:  followRecountJob,
		engagementRateJob: engagementRateJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.followRecountJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.engagementRateJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
