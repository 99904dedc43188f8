package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/lotlock"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// conflictRetries bounds how often a write-conflict from the store causes the
// full read-decide-write sequence to rerun from the top.
const conflictRetries = 3

// AuctionService owns the legal transitions of lots and bids. Every mutating
// operation runs under the per-lot guard so the validation it performs and the
// write it commits observe the same state.
type AuctionService struct {
	ledger   repository.LedgerStore
	guard    *lotlock.Guard
	recorder ActivityRecorder
	lockWait time.Duration // max time to wait for a lot's lock; 0 means no bound
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(ledger repository.LedgerStore, guard *lotlock.Guard, recorder ActivityRecorder, lockWait time.Duration) *AuctionService {
	return &AuctionService{
		ledger:   ledger,
		guard:    guard,
		recorder: recorder,
		lockWait: lockWait,
	}
}

// withLot runs fn under the lot's lock, retrying the whole sequence when the
// store reports a write conflict. Stale reads are never reused: each attempt
// re-reads inside fn.
func (s *AuctionService) withLot(ctx context.Context, lotID string, fn func() error) error {
	if s.lockWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lockWait)
		defer cancel()
	}

	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = s.guard.WithLotLock(ctx, lotID, fn)
		if err == nil || !errors.Is(err, auctionerrors.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("service: %w - retries exhausted: %v", auctionerrors.ErrUnavailable, err)
}

// CreateLot registers a new active lot for the owner
func (s *AuctionService) CreateLot(ctx context.Context, ownerID, title, description string, startingPrice int64, stock int, endsAt *time.Time) (model.Lot, error) {
	if ownerID == "" || title == "" {
		return model.Lot{}, fmt.Errorf("service: %w - missing ownerID or title", auctionerrors.ErrInvalidInput)
	}
	if startingPrice <= 0 {
		return model.Lot{}, fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidInput)
	}
	if stock <= 0 {
		return model.Lot{}, fmt.Errorf("service: %w - stock must be positive", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	lot := model.Lot{
		LotID:         utils.GenerateID(),
		OwnerID:       ownerID,
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		Stock:         stock,
		Status:        model.LotActive,
		EndsAt:        endsAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.ledger.CreateLot(lot); err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to create lot for owner %s: %w", ownerID, err)
	}

	s.recorder.Record(Fact{Type: FactLotCreated, UserID: ownerID, LotID: lot.LotID, OccurredAt: now})
	return lot, nil
}

// PlaceBid validates and records a new pending bid for a lot
func (s *AuctionService) PlaceBid(ctx context.Context, lotID, bidderID string, amount int64) (model.Bid, error) {
	if lotID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing lotID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	var bid model.Bid
	err := s.withLot(ctx, lotID, func() error {
		lot, err := s.ledger.GetLot(lotID)
		if err != nil {
			return err
		}
		bids, err := s.ledger.BidsByLot(lotID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := ValidateNewBid(lot, bids, bidderID, amount, now); err != nil {
			return err
		}

		bid = model.Bid{
			BidID:     utils.GenerateID(),
			LotID:     lotID,
			BidderID:  bidderID,
			Amount:    amount,
			Status:    model.BidPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.ledger.CreateBid(bid); err != nil {
			return fmt.Errorf("service: failed to record bid for lot %s by user %s: %w", lotID, bidderID, err)
		}

		s.recorder.Record(Fact{Type: FactBidPlaced, UserID: bidderID, LotID: lotID, BidID: bid.BidID, Amount: amount, OccurredAt: now})
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// EditBid changes the amount of the caller's pending bid. Status and id are
// never touched; the new amount is revalidated against the lot's current
// pending bids with the caller's own bid excluded.
func (s *AuctionService) EditBid(ctx context.Context, bidID, callerID string, newAmount int64) (model.Bid, error) {
	if bidID == "" || callerID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing bidID or callerID", auctionerrors.ErrInvalidInput)
	}
	if newAmount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	// The lock key is the lot, so the bid is fetched once to learn its lot and
	// again inside the lock to shed any staleness.
	stale, err := s.ledger.GetBid(bidID)
	if err != nil {
		return model.Bid{}, err
	}

	var bid model.Bid
	err = s.withLot(ctx, stale.LotID, func() error {
		var err error
		bid, err = s.ledger.GetBid(bidID)
		if err != nil {
			return err
		}
		if bid.BidderID != callerID {
			return fmt.Errorf("service: %w - bid %s belongs to another user", auctionerrors.ErrNotOwner, bidID)
		}
		if bid.Terminal() {
			return fmt.Errorf("service: %w - bid %s is %s", auctionerrors.ErrNotPending, bidID, bid.Status)
		}

		lot, err := s.ledger.GetLot(bid.LotID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if !lot.Acceptable(now) {
			return fmt.Errorf("service: %w - lot %s is %s", auctionerrors.ErrNotActive, lot.LotID, lot.Status)
		}

		bids, err := s.ledger.BidsByLot(bid.LotID)
		if err != nil {
			return err
		}
		if min := MinimumBid(lot, bids, bid.BidID); newAmount < min {
			return fmt.Errorf("service: %w - minimum acceptable bid is %d", auctionerrors.ErrBelowMinimum, min)
		}

		bid.Amount = newAmount
		bid.UpdatedAt = now
		if err := s.ledger.UpdateBid(bid); err != nil {
			return fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
		}

		s.recorder.Record(Fact{Type: FactBidUpdated, UserID: callerID, LotID: bid.LotID, BidID: bidID, Amount: newAmount, OccurredAt: now})
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// CancelBid moves the caller's pending bid to cancelled. No effect on the
// lot's stock or on other bids.
func (s *AuctionService) CancelBid(ctx context.Context, bidID, callerID string) (model.Bid, error) {
	if bidID == "" || callerID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing bidID or callerID", auctionerrors.ErrInvalidInput)
	}

	stale, err := s.ledger.GetBid(bidID)
	if err != nil {
		return model.Bid{}, err
	}

	var bid model.Bid
	err = s.withLot(ctx, stale.LotID, func() error {
		var err error
		bid, err = s.ledger.GetBid(bidID)
		if err != nil {
			return err
		}
		if bid.BidderID != callerID {
			return fmt.Errorf("service: %w - bid %s belongs to another user", auctionerrors.ErrNotOwner, bidID)
		}
		if bid.Terminal() {
			return fmt.Errorf("service: %w - bid %s is %s", auctionerrors.ErrNotPending, bidID, bid.Status)
		}

		now := time.Now().UTC()
		if err := transition(&bid, model.BidCancelled, now); err != nil {
			return err
		}
		if err := s.ledger.UpdateBid(bid); err != nil {
			return fmt.Errorf("service: failed to cancel bid %s: %w", bidID, err)
		}

		s.recorder.Record(Fact{Type: FactBidCancelled, UserID: callerID, LotID: bid.LotID, BidID: bidID, Amount: bid.Amount, OccurredAt: now})
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// AcceptBid lets the lot owner accept a pending bid. As one atomic unit the
// bid becomes accepted and the lot's stock drops by one; when stock reaches
// zero the lot becomes sold and every other still-pending bid on it is
// rejected. With stock remaining, other bids are untouched and further units
// can be sold independently.
func (s *AuctionService) AcceptBid(ctx context.Context, lotID, bidID, callerID string) (model.Bid, model.Lot, error) {
	if lotID == "" || bidID == "" || callerID == "" {
		return model.Bid{}, model.Lot{}, fmt.Errorf("service: %w - missing lotID, bidID or callerID", auctionerrors.ErrInvalidInput)
	}

	var (
		bid model.Bid
		lot model.Lot
	)
	err := s.withLot(ctx, lotID, func() error {
		var err error
		lot, err = s.ledger.GetLot(lotID)
		if err != nil {
			return err
		}
		if lot.OwnerID != callerID {
			return fmt.Errorf("service: %w - lot %s belongs to another user", auctionerrors.ErrNotOwner, lotID)
		}
		if lot.Status != model.LotActive {
			return fmt.Errorf("service: %w - lot %s is %s", auctionerrors.ErrNotActive, lotID, lot.Status)
		}

		bid, err = s.ledger.GetBid(bidID)
		if err != nil {
			return err
		}
		if bid.LotID != lotID {
			return fmt.Errorf("service: bid %s is not for lot %s: %w", bidID, lotID, auctionerrors.ErrBidNotFound)
		}
		if bid.Terminal() {
			return fmt.Errorf("service: %w - bid %s is %s", auctionerrors.ErrNotPending, bidID, bid.Status)
		}
		// Unreachable while stock accounting holds, kept as a hard stop.
		if lot.Stock <= 0 {
			return fmt.Errorf("service: %w - lot %s", auctionerrors.ErrOutOfStock, lotID)
		}

		now := time.Now().UTC()
		if err := transition(&bid, model.BidAccepted, now); err != nil {
			return err
		}

		lot.Stock--
		lot.UpdatedAt = now
		updated := []model.Bid{bid}

		// The stock recheck decides the cascade before anything is written;
		// the batch below commits as one unit.
		if lot.Stock == 0 {
			lot.Status = model.LotSold
			others, err := s.ledger.BidsByLot(lotID)
			if err != nil {
				return err
			}
			for _, other := range others {
				if other.BidID == bid.BidID || other.Terminal() {
					continue
				}
				if err := transition(&other, model.BidRejected, now); err != nil {
					return err
				}
				updated = append(updated, other)
			}
		}

		if err := s.ledger.UpdateLotWithBids(lot, updated); err != nil {
			return fmt.Errorf("service: failed to accept bid %s on lot %s: %w", bidID, lotID, err)
		}

		s.recorder.Record(Fact{Type: FactBidAccepted, UserID: callerID, LotID: lotID, BidID: bidID, Amount: bid.Amount, OccurredAt: now})
		if lot.Status == model.LotSold {
			s.recorder.Record(Fact{Type: FactLotSold, UserID: callerID, LotID: lotID, OccurredAt: now})
		}
		return nil
	})
	if err != nil {
		return model.Bid{}, model.Lot{}, err
	}
	return bid, lot, nil
}

// CancelLot lets the owner withdraw an active lot. Remaining pending bids are
// rejected in the same commit so none are left stranded on a dead lot.
func (s *AuctionService) CancelLot(ctx context.Context, lotID, callerID string) (model.Lot, error) {
	if lotID == "" || callerID == "" {
		return model.Lot{}, fmt.Errorf("service: %w - missing lotID or callerID", auctionerrors.ErrInvalidInput)
	}

	var lot model.Lot
	err := s.withLot(ctx, lotID, func() error {
		var err error
		lot, err = s.ledger.GetLot(lotID)
		if err != nil {
			return err
		}
		if lot.OwnerID != callerID {
			return fmt.Errorf("service: %w - lot %s belongs to another user", auctionerrors.ErrNotOwner, lotID)
		}
		if lot.Status != model.LotActive {
			return fmt.Errorf("service: %w - lot %s is %s", auctionerrors.ErrNotActive, lotID, lot.Status)
		}

		now := time.Now().UTC()
		lot.Status = model.LotCancelled
		lot.UpdatedAt = now

		bids, err := s.ledger.BidsByLot(lotID)
		if err != nil {
			return err
		}
		var updated []model.Bid
		for _, bid := range bids {
			if bid.Terminal() {
				continue
			}
			if err := transition(&bid, model.BidRejected, now); err != nil {
				return err
			}
			updated = append(updated, bid)
		}

		if err := s.ledger.UpdateLotWithBids(lot, updated); err != nil {
			return fmt.Errorf("service: failed to cancel lot %s: %w", lotID, err)
		}

		s.recorder.Record(Fact{Type: FactLotCancelled, UserID: callerID, LotID: lotID, OccurredAt: now})
		return nil
	})
	if err != nil {
		return model.Lot{}, err
	}
	return lot, nil
}

// GetLot returns a lot by id
func (s *AuctionService) GetLot(ctx context.Context, lotID string) (model.Lot, error) {
	if lotID == "" {
		return model.Lot{}, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidInput)
	}
	lot, err := s.ledger.GetLot(lotID)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// ListLots returns all lots
func (s *AuctionService) ListLots(ctx context.Context) ([]model.Lot, error) {
	lots, err := s.ledger.ListLots()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lots: %w", err)
	}
	return lots, nil
}

// ListBidsForLot returns all bids for a specific lot
func (s *AuctionService) ListBidsForLot(ctx context.Context, lotID string) ([]model.Bid, error) {
	if lotID == "" {
		return nil, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.ledger.BidsByLot(lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for lot %s: %w", lotID, err)
	}
	return bids, nil
}

// MinimumBidForLot reports the amount a new bid on the lot must meet right now
func (s *AuctionService) MinimumBidForLot(ctx context.Context, lotID string) (int64, error) {
	if lotID == "" {
		return 0, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidInput)
	}
	lot, err := s.ledger.GetLot(lotID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	bids, err := s.ledger.BidsByLot(lotID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get bids for lot %s: %w", lotID, err)
	}
	return MinimumBid(lot, bids, ""), nil
}

// transition applies a bid status change after checking it against the state
// machine. The error carries the current status for caller messaging.
func transition(bid *model.Bid, to model.BidStatus, now time.Time) error {
	if !model.CanTransition(bid.Status, to) {
		return fmt.Errorf("service: %w - bid %s cannot move from %s to %s",
			auctionerrors.ErrInvalidTransition, bid.BidID, bid.Status, to)
	}
	bid.Status = to
	bid.UpdatedAt = now
	return nil
}
