package repository

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_ledger.go -package=repository

// LedgerStore defines the lot and bid storage interface for the auction engine.
// Implementations must make every method atomic on its own; serialization of
// whole read-decide-write sequences is the concurrency guard's job, not the
// store's.
type LedgerStore interface {
	CreateLot(lot model.Lot) error
	GetLot(lotID string) (model.Lot, error)
	ListLots() ([]model.Lot, error)
	CreateBid(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	BidsByLot(lotID string) ([]model.Bid, error)
	UpdateBid(bid model.Bid) error
	// UpdateLotWithBids writes the lot and the given bids as one indivisible
	// commit. Acceptance and cascade rejection go through this method so a
	// failure leaves no partial effect.
	UpdateLotWithBids(lot model.Lot, bids []model.Bid) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore
type MemoryLedger struct {
	mu      sync.RWMutex
	lots    map[string]model.Lot   // key: lotID
	bids    map[string]model.Bid   // key: bidID
	lotBids map[string][]string    // key: lotID -> bid ids in placement order
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		lots:    make(map[string]model.Lot),
		bids:    make(map[string]model.Bid),
		lotBids: make(map[string][]string),
	}
}

// CreateLot stores a new lot
func (r *MemoryLedger) CreateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; ok {
		return fmt.Errorf("create lot %s: %w", lot.LotID, auctionerrors.ErrConflict)
	}
	r.lots[lot.LotID] = lot
	return nil
}

// GetLot returns a lot by id
func (r *MemoryLedger) GetLot(lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}
	return lot, nil
}

// ListLots returns all lots
func (r *MemoryLedger) ListLots() ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0, len(r.lots))
	for _, lot := range r.lots {
		lots = append(lots, lot)
	}
	return lots, nil
}

// CreateBid records a new bid against an existing lot
func (r *MemoryLedger) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[bid.LotID]; !ok {
		return fmt.Errorf("create bid for lot %s: %w", bid.LotID, auctionerrors.ErrLotNotFound)
	}
	if _, ok := r.bids[bid.BidID]; ok {
		return fmt.Errorf("create bid %s: %w", bid.BidID, auctionerrors.ErrConflict)
	}

	r.bids[bid.BidID] = bid
	r.lotBids[bid.LotID] = append(r.lotBids[bid.LotID], bid.BidID)
	return nil
}

// GetBid returns a bid by id
func (r *MemoryLedger) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// BidsByLot returns all bids for a lot in placement order. An existing lot
// with no bids yields an empty slice, not an error.
func (r *MemoryLedger) BidsByLot(lotID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.lots[lotID]; !ok {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}

	ids := r.lotBids[lotID]
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		bids = append(bids, r.bids[id])
	}
	return bids, nil
}

// UpdateBid overwrites an existing bid record
func (r *MemoryLedger) UpdateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.BidID]; !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
	}
	r.bids[bid.BidID] = bid
	return nil
}

// UpdateLotWithBids applies the lot update and every bid update inside one
// critical section.
func (r *MemoryLedger) UpdateLotWithBids(lot model.Lot, bids []model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; !ok {
		return fmt.Errorf("update lot %s: %w", lot.LotID, auctionerrors.ErrLotNotFound)
	}
	for _, bid := range bids {
		if _, ok := r.bids[bid.BidID]; !ok {
			return fmt.Errorf("update lot %s: bid %s: %w", lot.LotID, bid.BidID, auctionerrors.ErrBidNotFound)
		}
	}

	r.lots[lot.LotID] = lot
	for _, bid := range bids {
		r.bids[bid.BidID] = bid
	}
	return nil
}
