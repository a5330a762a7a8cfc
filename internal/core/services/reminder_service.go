package services

import (
	"context"
	"log"
	"time"

	"nobateasy/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService logs a daily summary of records still waiting for a
// staff-assigned slot, so the morning shift knows its backlog.
type ReminderService struct {
	repo repositories.AppointmentRepository
	cron *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(repo repositories.AppointmentRepository) *ReminderService {
	return &ReminderService{
		repo: repo,
		cron: cron.New(),
	}
}

// Start schedules the daily 08:30 summary
func (s *ReminderService) Start() {
	s.cron.AddFunc("30 8 * * *", s.logBacklog)
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) logBacklog() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.repo.CountUnscheduled(ctx)
	if err != nil {
		log.Printf("❌ Backlog summary query error: %v", err)
		return
	}

	log.Printf("⏰ %d appointment(s) awaiting a slot assignment", count)
}
