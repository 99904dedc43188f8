package auction

import (
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// Increment is the fixed amount, in minor currency units, by which a new or
// edited bid must exceed the current best pending bid.
const Increment int64 = 100

// MinimumBid computes the lowest acceptable amount for a bid on the lot given
// its current pending bids. excludeBidID removes one bid from consideration,
// which lets a bidder edit their own bid without outbidding themselves; pass
// "" for new bids. The caller must evaluate this inside the same serialized
// unit of work as the write it gates.
func MinimumBid(lot model.Lot, bids []model.Bid, excludeBidID string) int64 {
	base := lot.StartingPrice
	for _, b := range bids {
		if b.Status != model.BidPending || b.BidID == excludeBidID {
			continue
		}
		if b.Amount > base {
			base = b.Amount
		}
	}
	return base + Increment
}

// ValidateNewBid applies the business rules for placing a bid: the lot must be
// active (and not past its deadline), the bidder must not be the seller, and
// the amount must meet the current minimum.
func ValidateNewBid(lot model.Lot, bids []model.Bid, bidderID string, amount int64, now time.Time) error {
	if !lot.Acceptable(now) {
		return fmt.Errorf("service: %w - lot %s is %s", auctionerrors.ErrNotActive, lot.LotID, lot.Status)
	}
	if bidderID == lot.OwnerID {
		return fmt.Errorf("service: %w - user %s owns lot %s", auctionerrors.ErrSelfBid, bidderID, lot.LotID)
	}
	if min := MinimumBid(lot, bids, ""); amount < min {
		return fmt.Errorf("service: %w - minimum acceptable bid is %d", auctionerrors.ErrBelowMinimum, min)
	}
	return nil
}
