package scheduler

import (
	"context"
	"sync"
	"time"

	model "bidding-platform/internal/models"
	"bidding-platform/internal/notifier"
	"bidding-platform/internal/repository"
	"bidding-platform/utils"
)

// ClosingWorkflow is the part of the closing service the scheduler drives
type ClosingWorkflow interface {
	Close(opportunityID string) (model.ClosingResult, error)
}

// Scheduler periodically sweeps for overdue opportunities and closes them,
// and sends closing-soon reminders. It holds no cross-tick state: safety
// against double processing comes from the closing workflow's idempotency,
// not from anything here.
type Scheduler struct {
	repo             repository.AuctionDB
	closer           ClosingWorkflow
	dispatcher       *notifier.Dispatcher
	closeInterval    time.Duration
	reminderInterval time.Duration
}

// NewScheduler creates a new Scheduler instance
func NewScheduler(repo repository.AuctionDB, closer ClosingWorkflow, n notifier.Notifier, closeInterval, reminderInterval time.Duration) *Scheduler {
	return &Scheduler{
		repo:             repo,
		closer:           closer,
		dispatcher:       notifier.NewDispatcher(n, repo),
		closeInterval:    closeInterval,
		reminderInterval: reminderInterval,
	}
}

// Run blocks, firing the auto-close sweep and the reminder sweep on their
// intervals until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	closeTicker := time.NewTicker(s.closeInterval)
	defer closeTicker.Stop()
	reminderTicker := time.NewTicker(s.reminderInterval)
	defer reminderTicker.Stop()

	utils.Info("scheduler started", map[string]any{
		"close_interval":    s.closeInterval.String(),
		"reminder_interval": s.reminderInterval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			utils.Info("scheduler stopped", nil)
			return
		case now := <-closeTicker.C:
			s.SweepOverdue(now.UTC())
		case now := <-reminderTicker.C:
			s.SendReminders(now.UTC())
		}
	}
}

// SweepOverdue closes every active opportunity whose closing date has
// passed. Each closure runs independently: one opportunity's failure never
// aborts the rest of the tick.
func (s *Scheduler) SweepOverdue(now time.Time) {
	overdue, err := s.repo.ListOverdueOpportunities(now)
	if err != nil {
		utils.Error("auto-close sweep failed to list opportunities", map[string]any{
			"error": err.Error(),
		})
		return
	}
	if len(overdue) == 0 {
		return
	}

	utils.Info("auto-closing opportunities", map[string]any{"count": len(overdue)})

	var wg sync.WaitGroup
	for _, opp := range overdue {
		opp := opp
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.closer.Close(opp.OpportunityID)
			if err != nil {
				utils.Error("failed to auto-close opportunity", map[string]any{
					"opportunity_id": opp.OpportunityID,
					"error":          err.Error(),
				})
				return
			}
			utils.Info("auto-closed opportunity", map[string]any{
				"opportunity_id": opp.OpportunityID,
				"outcome":        string(result.Outcome),
			})
		}()
	}
	wg.Wait()
}

// SendReminders mails every non-admin user about active opportunities that
// close within the next 24 hours
func (s *Scheduler) SendReminders(now time.Time) {
	closingSoon, err := s.repo.ListOpportunitiesClosingBetween(now, now.Add(24*time.Hour))
	if err != nil {
		utils.Error("reminder sweep failed to list opportunities", map[string]any{
			"error": err.Error(),
		})
		return
	}
	if len(closingSoon) == 0 {
		return
	}

	isAdmin := false
	users, err := s.repo.ListUsers(&isAdmin)
	if err != nil {
		utils.Error("reminder sweep failed to list users", map[string]any{
			"error": err.Error(),
		})
		return
	}

	for _, opp := range closingSoon {
		for _, user := range users {
			msg := notifier.ReminderMessage(user, opp)
			s.dispatcher.Deliver(notifier.EmailTypeReminder, user.Email, msg, opp.OpportunityID, "")
		}
	}

	utils.Info("reminder sweep finished", map[string]any{
		"opportunities": len(closingSoon),
		"recipients":    len(users),
	})
}
