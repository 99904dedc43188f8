package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

const (
	lotsBucket    = "lots"
	bidsBucket    = "bids"
	lotIdxBucket  = "lot_bids" // key: lotID/seq -> bidID, preserves placement order
	lotIdxKeySep  = "/"
	lotIdxSeqSize = 19 // zero-padded int64, keeps keys lexicographically ordered
)

// BoltLedger is a durable LedgerStore backed by BoltDB. Every mutating method
// runs as a single db.Update transaction, so multi-record writes such as
// acceptance plus cascade either commit together or not at all.
type BoltLedger struct {
	db *bolt.DB
}

// NewBoltLedger opens (or creates) the database file and ensures all buckets
// exist.
func NewBoltLedger(path string) (*BoltLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{lotsBucket, bidsBucket, lotIdxBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init ledger buckets: %w", err)
	}

	return &BoltLedger{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltLedger) Close() error {
	return s.db.Close()
}

// CreateLot persists a new lot. An existing lot with the same id is a conflict.
func (s *BoltLedger) CreateLot(lot model.Lot) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(lotsBucket))
		if b.Get([]byte(lot.LotID)) != nil {
			return fmt.Errorf("create lot %s: %w", lot.LotID, auctionerrors.ErrConflict)
		}
		return putJSON(b, lot.LotID, lot)
	})
}

// GetLot retrieves a lot by id.
func (s *BoltLedger) GetLot(lotID string) (model.Lot, error) {
	var lot model.Lot
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(lotsBucket)).Get([]byte(lotID))
		if v == nil {
			return fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
		}
		return json.Unmarshal(v, &lot)
	})
	if err != nil {
		return model.Lot{}, err
	}
	return lot, nil
}

// ListLots returns every stored lot.
func (s *BoltLedger) ListLots() ([]model.Lot, error) {
	lots := []model.Lot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(lotsBucket)).ForEach(func(k, v []byte) error {
			var lot model.Lot
			if err := json.Unmarshal(v, &lot); err != nil {
				return err
			}
			lots = append(lots, lot)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return lots, nil
}

// CreateBid records a bid and appends it to the lot's placement-order index.
func (s *BoltLedger) CreateBid(bid model.Bid) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(lotsBucket)).Get([]byte(bid.LotID)) == nil {
			return fmt.Errorf("create bid for lot %s: %w", bid.LotID, auctionerrors.ErrLotNotFound)
		}

		bids := tx.Bucket([]byte(bidsBucket))
		if bids.Get([]byte(bid.BidID)) != nil {
			return fmt.Errorf("create bid %s: %w", bid.BidID, auctionerrors.ErrConflict)
		}
		if err := putJSON(bids, bid.BidID, bid); err != nil {
			return err
		}

		idx := tx.Bucket([]byte(lotIdxBucket))
		seq, err := idx.NextSequence()
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%s%0*d", bid.LotID, lotIdxKeySep, lotIdxSeqSize, seq)
		return idx.Put([]byte(key), []byte(bid.BidID))
	})
}

// GetBid retrieves a bid by id.
func (s *BoltLedger) GetBid(bidID string) (model.Bid, error) {
	var bid model.Bid
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bidsBucket)).Get([]byte(bidID))
		if v == nil {
			return fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
		}
		return json.Unmarshal(v, &bid)
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// BidsByLot returns all bids for a lot in placement order.
func (s *BoltLedger) BidsByLot(lotID string) ([]model.Bid, error) {
	bids := []model.Bid{}
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(lotsBucket)).Get([]byte(lotID)) == nil {
			return fmt.Errorf("get bids for lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
		}

		bidsB := tx.Bucket([]byte(bidsBucket))
		prefix := []byte(lotID + lotIdxKeySep)
		c := tx.Bucket([]byte(lotIdxBucket)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			raw := bidsB.Get(v)
			if raw == nil {
				continue
			}
			var bid model.Bid
			if err := json.Unmarshal(raw, &bid); err != nil {
				return err
			}
			bids = append(bids, bid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// UpdateBid overwrites an existing bid record.
func (s *BoltLedger) UpdateBid(bid model.Bid) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bidsBucket))
		if b.Get([]byte(bid.BidID)) == nil {
			return fmt.Errorf("update bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
		}
		return putJSON(b, bid.BidID, bid)
	})
}

// UpdateLotWithBids writes the lot and the given bids in one transaction.
func (s *BoltLedger) UpdateLotWithBids(lot model.Lot, bids []model.Bid) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		lotsB := tx.Bucket([]byte(lotsBucket))
		if lotsB.Get([]byte(lot.LotID)) == nil {
			return fmt.Errorf("update lot %s: %w", lot.LotID, auctionerrors.ErrLotNotFound)
		}

		bidsB := tx.Bucket([]byte(bidsBucket))
		for _, bid := range bids {
			if bidsB.Get([]byte(bid.BidID)) == nil {
				return fmt.Errorf("update lot %s: bid %s: %w", lot.LotID, bid.BidID, auctionerrors.ErrBidNotFound)
			}
		}

		if err := putJSON(lotsB, lot.LotID, lot); err != nil {
			return err
		}
		for _, bid := range bids {
			if err := putJSON(bidsB, bid.BidID, bid); err != nil {
				return err
			}
		}
		return nil
	})
}

func putJSON(b *bolt.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}
