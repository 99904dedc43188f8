package models

import "time"

// LotStatus is the lifecycle state of a Lot. sold and cancelled are terminal.
type LotStatus string

const (
	LotActive    LotStatus = "active"
	LotSold      LotStatus = "sold"
	LotCancelled LotStatus = "cancelled"
)

// BidStatus is the lifecycle state of a Bid. Every non-pending status is terminal.
type BidStatus string

const (
	BidPending   BidStatus = "pending"
	BidAccepted  BidStatus = "accepted"
	BidRejected  BidStatus = "rejected"
	BidCancelled BidStatus = "cancelled"
)

// Lot represents an auction listing with a starting price and finite stock
type Lot struct {
	LotID         string     `json:"lot_id"`
	OwnerID       string     `json:"owner_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartingPrice int64      `json:"starting_price"` // minor currency units
	Stock         int        `json:"stock"`
	Status        LotStatus  `json:"status"`
	EndsAt        *time.Time `json:"ends_at,omitempty"` // nil means manual acceptance mode
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Bid represents a user's offer against a lot
type Bid struct {
	BidID     string    `json:"bid_id"`
	LotID     string    `json:"lot_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"` // minor currency units
	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Acceptable reports whether the lot can take new or edited bids at the given
// instant: the lot must be active and, if a deadline is set, the deadline must
// not have passed.
func (l Lot) Acceptable(now time.Time) bool {
	if l.Status != LotActive {
		return false
	}
	if l.EndsAt != nil && !now.Before(*l.EndsAt) {
		return false
	}
	return true
}

// Terminal reports whether the bid has reached a final status.
func (b Bid) Terminal() bool {
	return b.Status != BidPending
}

// CanTransition reports whether a bid may move from its current status to the
// target one. The only legal moves leave pending; terminal statuses have no
// outgoing transitions.
func CanTransition(from, to BidStatus) bool {
	if from != BidPending {
		return false
	}
	switch to {
	case BidAccepted, BidRejected, BidCancelled:
		return true
	}
	return false
}
