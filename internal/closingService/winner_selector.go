package closing

import (
	model "bidding-platform/internal/models"
)

// SelectWinner picks the winning bid from the given candidates: the lowest
// amount wins. Ties resolve to the earliest CreatedAt, then to the lowest
// BidID, so the result depends only on the data, never on slice order.
// Non-active bids are skipped even if the caller forgot to filter them.
func SelectWinner(bids []model.Bid) (model.Bid, bool) {
	var winner model.Bid
	found := false
	for _, bid := range bids {
		if bid.Status != model.BidStatusActive {
			continue
		}
		if !found || beats(bid, winner) {
			winner = bid
			found = true
		}
	}
	return winner, found
}

// beats reports whether a ranks ahead of b in winner selection
func beats(a, b model.Bid) bool {
	if a.Amount != b.Amount {
		return a.Amount < b.Amount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.BidID < b.BidID
}
