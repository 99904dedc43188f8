package helpers

import "time"

// Request/Response DTOs. Amounts are integers in minor currency units; the
// shell never formats money.

type CreateLotRequest struct {
	OwnerID       string     `json:"owner_id" binding:"required"`
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	StartingPrice int64      `json:"starting_price" binding:"required,gt=0"`
	Stock         int        `json:"stock" binding:"required,gt=0"`
	EndsAt        *time.Time `json:"ends_at"`
}

type PlaceBidRequest struct {
	LotID  string `json:"lot_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type EditBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// ActorRequest carries only the pre-authenticated caller identity, used by
// cancel endpoints.
type ActorRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type AcceptBidRequest struct {
	LotID  string `json:"lot_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	LotID     string `json:"lot_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type LotResponse struct {
	LotID         string `json:"lot_id"`
	OwnerID       string `json:"owner_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice int64  `json:"starting_price"`
	Stock         int    `json:"stock"`
	Status        string `json:"status"`
	EndsAt        string `json:"ends_at,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type MinimumBidResponse struct {
	LotID      string `json:"lot_id"`
	MinimumBid int64  `json:"minimum_bid"`
}

// AcceptBidResponse pairs the accepted bid with the lot state after the sale
type AcceptBidResponse struct {
	Bid BidResponse `json:"bid"`
	Lot LotResponse `json:"lot"`
}
