package bidding

import (
	"errors"
	"fmt"
	"time"

	"bidding-platform/internal/auctionerrors"
	"bidding-platform/internal/models"
	"bidding-platform/internal/notifier"
	"bidding-platform/internal/repository"
	"bidding-platform/utils"
)

// Bid amount rules: whole pounds, minimum £100, £100 increments
const (
	MinBidAmount = 100
	BidIncrement = 100
)

// BiddingService defines the business logic for opportunities and bids
type BiddingService struct {
	repo       repository.AuctionDB
	dispatcher *notifier.Dispatcher
	adminEmail string
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, n notifier.Notifier, adminEmail string) *BiddingService {
	return &BiddingService{
		repo:       repo,
		dispatcher: notifier.NewDispatcher(n, repo),
		adminEmail: adminEmail,
	}
}

// CreateOpportunity publishes a new bidding opportunity
func (s *BiddingService) CreateOpportunity(title, lpa, nca, bngUnitType string, unitsRequired int, closingDate time.Time) (models.Opportunity, error) {
	if title == "" || lpa == "" || nca == "" || bngUnitType == "" {
		return models.Opportunity{}, fmt.Errorf("service: %w - missing opportunity fields", auctionerrors.ErrInvalidBid)
	}
	if unitsRequired < 1 {
		return models.Opportunity{}, fmt.Errorf("service: %w - units required must be at least 1", auctionerrors.ErrInvalidBid)
	}
	if !closingDate.After(time.Now().UTC()) {
		return models.Opportunity{}, fmt.Errorf("service: %w - closing date must be in the future", auctionerrors.ErrInvalidBid)
	}

	opp := models.Opportunity{
		OpportunityID: utils.GenerateID(),
		Title:         title,
		LPA:           lpa,
		NCA:           nca,
		BNGUnitType:   bngUnitType,
		UnitsRequired: unitsRequired,
		ClosingDate:   closingDate.UTC(),
		Status:        models.OpportunityStatusActive,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateOpportunity(opp); err != nil {
		return models.Opportunity{}, fmt.Errorf("service: failed to create opportunity: %w", err)
	}
	return opp, nil
}

// ListOpportunities returns opportunities, optionally filtered by status
func (s *BiddingService) ListOpportunities(status string) ([]models.Opportunity, error) {
	if status != "" && status != models.OpportunityStatusActive && status != models.OpportunityStatusClosed {
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidBid, status)
	}
	opps, err := s.repo.ListOpportunitiesByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list opportunities: %w", err)
	}
	return opps, nil
}

// GetOpportunity returns a single opportunity by id
func (s *BiddingService) GetOpportunity(opportunityID string) (models.Opportunity, error) {
	if opportunityID == "" {
		return models.Opportunity{}, fmt.Errorf("service: %w - empty opportunity ID", auctionerrors.ErrOpportunityNotFound)
	}
	opp, err := s.repo.GetOpportunity(opportunityID)
	if err != nil {
		return models.Opportunity{}, fmt.Errorf("service: failed to get opportunity %s: %w", opportunityID, err)
	}
	return opp, nil
}

// PlaceBid validates and records a user's offer on an opportunity. A user
// holds at most one live bid per opportunity: re-bidding updates the
// existing record in place.
func (s *BiddingService) PlaceBid(opportunityID, userID string, amount int64) (models.Bid, error) {
	if err := validateBidAmount(opportunityID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	opp, err := s.repo.GetOpportunity(opportunityID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load opportunity %s: %w", opportunityID, err)
	}
	if opp.Status != models.OpportunityStatusActive {
		return models.Bid{}, fmt.Errorf("service: %w - cannot bid on %s", auctionerrors.ErrOpportunityClosed, opportunityID)
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	now := time.Now().UTC()

	bid, err := s.repo.GetActiveBidByUser(opportunityID, userID)
	switch {
	case err == nil:
		// re-bid: update the existing record
		if updateErr := s.repo.UpdateBidAmount(bid.BidID, amount, now); updateErr != nil {
			return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bid.BidID, updateErr)
		}
		bid.Amount = amount
		bid.UpdatedAt = now
	case isNotFound(err):
		bid = models.Bid{
			BidID:         utils.GenerateID(),
			OpportunityID: opportunityID,
			UserID:        userID,
			Amount:        amount,
			Status:        models.BidStatusActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if recordErr := s.repo.RecordBidForOpportunity(bid); recordErr != nil {
			return models.Bid{}, fmt.Errorf("service: failed to record bid for opportunity %s by user %s: %w", opportunityID, userID, recordErr)
		}
	default:
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	// confirmation mails are best-effort and never fail the placement
	s.sendBidEmails(user, opp, bid)

	return bid, nil
}

// WithdrawBid takes a user's bid out of contention. Only the bid's owner
// can withdraw it.
func (s *BiddingService) WithdrawBid(bidID, userID string) (models.Bid, error) {
	if bidID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bidID or userID", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}
	if bid.UserID != userID {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrNotBidOwner)
	}

	now := time.Now().UTC()
	if err := s.repo.WithdrawBid(bidID, now); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to withdraw bid %s: %w", bidID, err)
	}

	bid.Status = models.BidStatusWithdrawn
	bid.UpdatedAt = now
	return bid, nil
}

// GetBidsForOpportunity returns all bids recorded against an opportunity
func (s *BiddingService) GetBidsForOpportunity(opportunityID string) ([]models.Bid, error) {
	if opportunityID == "" {
		return nil, fmt.Errorf("service: %w - empty opportunity ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.repo.GetBidsByOpportunity(opportunityID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for opportunity %s: %w", opportunityID, err)
	}
	return bids, nil
}

// GetUserBid returns a user's live bid on an opportunity
func (s *BiddingService) GetUserBid(opportunityID, userID string) (models.Bid, error) {
	if opportunityID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing opportunityID or userID", auctionerrors.ErrInvalidBid)
	}
	bid, err := s.repo.GetActiveBidByUser(opportunityID, userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid for user %s on opportunity %s: %w", userID, opportunityID, err)
	}
	return bid, nil
}

// validateBidAmount checks input validity and the amount rules
func validateBidAmount(opportunityID, userID string, amount int64) error {
	if opportunityID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing opportunityID or userID", auctionerrors.ErrInvalidBid)
	}
	if amount < MinBidAmount {
		return fmt.Errorf("service: %w - minimum bid is £%d", auctionerrors.ErrBidBelowMinimum, MinBidAmount)
	}
	if amount%BidIncrement != 0 {
		return fmt.Errorf("service: %w - bids must be in increments of £%d", auctionerrors.ErrBidNotIncrement, BidIncrement)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, auctionerrors.ErrBidNotFound)
}

// sendBidEmails sends the bidder confirmation and the admin new-bid alert
func (s *BiddingService) sendBidEmails(user models.User, opp models.Opportunity, bid models.Bid) {
	confirmation := notifier.BidConfirmationMessage(user, opp, bid)
	s.dispatcher.Deliver(notifier.EmailTypeBidConfirmation, user.Email, confirmation, opp.OpportunityID, bid.BidID)

	if s.adminEmail != "" {
		alert := notifier.AdminNewBidMessage(user, opp, bid)
		s.dispatcher.Deliver(notifier.EmailTypeAdminNewBid, s.adminEmail, alert, opp.OpportunityID, bid.BidID)
	}
}
