package closing

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"
	"bidding-platform/internal/notifier"
	"bidding-platform/internal/repository"
	"bidding-platform/utils"
)

// ClosingService owns the closure of opportunities: winner resolution, the
// one-way state transition, and the notification fan-out. Both the manual
// endpoint and the scheduler delegate here, so it must be safe to invoke
// concurrently for the same opportunity.
type ClosingService struct {
	repo       repository.AuctionDB
	dispatcher *notifier.Dispatcher
	adminEmail string
}

// NewClosingService creates a new ClosingService instance. adminEmail may
// be empty to disable operational closure notices.
func NewClosingService(repo repository.AuctionDB, n notifier.Notifier, adminEmail string) *ClosingService {
	return &ClosingService{
		repo:       repo,
		dispatcher: notifier.NewDispatcher(n, repo),
		adminEmail: adminEmail,
	}
}

// Close resolves and commits the closure of one opportunity.
//
// The conditional write against the repository is the authoritative
// decision point: only the first caller to observe an active status can
// commit, every other caller gets AlreadyClosed. Notification fan-out runs
// after the commit and never affects the returned result.
func (s *ClosingService) Close(opportunityID string) (model.ClosingResult, error) {
	if opportunityID == "" {
		return model.ClosingResult{}, fmt.Errorf("service: %w - empty opportunity ID", auctionerrors.ErrOpportunityNotFound)
	}

	opp, err := s.repo.GetOpportunity(opportunityID)
	if err != nil {
		return model.ClosingResult{}, fmt.Errorf("service: failed to load opportunity %s: %w", opportunityID, err)
	}
	if opp.Status == model.OpportunityStatusClosed {
		return model.ClosingResult{Outcome: model.AlreadyClosed, OpportunityID: opportunityID}, nil
	}

	allBids, err := s.repo.GetBidsByOpportunity(opportunityID)
	if err != nil {
		return model.ClosingResult{}, fmt.Errorf("service: failed to load bids for opportunity %s: %w", opportunityID, err)
	}

	activeBids := make([]model.Bid, 0, len(allBids))
	for _, bid := range allBids {
		if bid.Status == model.BidStatusActive {
			activeBids = append(activeBids, bid)
		}
	}

	winner, hasWinner := SelectWinner(activeBids)

	closedAt := time.Now().UTC()
	var winningBidID *string
	var winningBidAmount *int64
	if hasWinner {
		winningBidID = &winner.BidID
		winningBidAmount = &winner.Amount
	}

	err = s.repo.ConditionalCloseOpportunity(opportunityID, closedAt, winningBidID, winningBidAmount)
	if err != nil {
		// losing the race is success-equivalent: someone else closed it
		if errors.Is(err, auctionerrors.ErrOpportunityClosed) {
			utils.Info("closing race lost, opportunity already closed", map[string]any{
				"opportunity_id": opportunityID,
			})
			return model.ClosingResult{Outcome: model.AlreadyClosed, OpportunityID: opportunityID}, nil
		}
		return model.ClosingResult{}, fmt.Errorf("service: failed to close opportunity %s: %w", opportunityID, err)
	}

	result := model.ClosingResult{Outcome: model.ClosedNoBids, OpportunityID: opportunityID}
	if hasWinner {
		result = model.ClosingResult{
			Outcome:          model.ClosedWithWinner,
			OpportunityID:    opportunityID,
			WinningBidID:     winner.BidID,
			WinningBidAmount: winner.Amount,
		}

		// best-effort: the opportunity record is the closure's authority,
		// a failed flag update must not reverse it
		if err := s.repo.MarkBidWinning(winner.BidID, closedAt); err != nil {
			utils.Warn("failed to mark winning bid, data-consistency warning", map[string]any{
				"opportunity_id": opportunityID,
				"bid_id":         winner.BidID,
				"error":          err.Error(),
			})
		}
	}

	utils.Info("opportunity closed", map[string]any{
		"opportunity_id": opportunityID,
		"outcome":        string(result.Outcome),
		"active_bids":    len(activeBids),
	})

	opp.Status = model.OpportunityStatusClosed
	opp.ClosedAt = &closedAt
	s.fanOutClosure(opp, activeBids, winner, result)

	return result, nil
}

// fanOutClosure notifies the winner, the unsuccessful bidders and the
// operational recipient. Sends run in parallel and a failure for one
// recipient never prevents delivery attempts to the rest.
func (s *ClosingService) fanOutClosure(opp model.Opportunity, activeBids []model.Bid, winner model.Bid, result model.ClosingResult) {
	var wg sync.WaitGroup

	if result.Outcome == model.ClosedWithWinner {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.notifyWinner(opp, winner)
		}()

		notified := map[string]bool{winner.UserID: true}
		for _, bid := range activeBids {
			if notified[bid.UserID] {
				continue
			}
			notified[bid.UserID] = true

			bid := bid
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.notifyUnsuccessful(opp, bid, winner.Amount)
			}()
		}
	}

	if s.adminEmail != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := notifier.AdminClosureMessage(opp, result)
			s.dispatcher.Deliver(notifier.EmailTypeAdminClosure, s.adminEmail, msg, opp.OpportunityID, result.WinningBidID)
		}()
	}

	wg.Wait()
}

func (s *ClosingService) notifyWinner(opp model.Opportunity, winner model.Bid) {
	user, err := s.repo.GetUser(winner.UserID)
	if err != nil {
		utils.Error("cannot notify winner, user lookup failed", map[string]any{
			"opportunity_id": opp.OpportunityID,
			"user_id":        winner.UserID,
			"error":          err.Error(),
		})
		return
	}
	msg := notifier.WinnerMessage(user, opp, winner.Amount)
	s.dispatcher.Deliver(notifier.EmailTypeWinner, user.Email, msg, opp.OpportunityID, winner.BidID)
}

func (s *ClosingService) notifyUnsuccessful(opp model.Opportunity, bid model.Bid, winningAmount int64) {
	user, err := s.repo.GetUser(bid.UserID)
	if err != nil {
		utils.Error("cannot notify unsuccessful bidder, user lookup failed", map[string]any{
			"opportunity_id": opp.OpportunityID,
			"user_id":        bid.UserID,
			"error":          err.Error(),
		})
		return
	}
	msg := notifier.UnsuccessfulMessage(user, opp, winningAmount)
	s.dispatcher.Deliver(notifier.EmailTypeUnsuccessful, user.Email, msg, opp.OpportunityID, bid.BidID)
}
