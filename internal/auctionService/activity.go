package auction

import (
	"sync"
	"time"

	"auction-engine/utils"
)

// Activity fact types emitted by the engine. Consumers interpret them; the
// engine never reads them back.
const (
	FactBidPlaced    = "bid_placed"
	FactBidUpdated   = "bid_updated"
	FactBidCancelled = "bid_cancelled"
	FactBidAccepted  = "bid_accepted"
	FactLotCreated   = "lot_created"
	FactLotSold      = "lot_sold"
	FactLotCancelled = "lot_cancelled"
)

// Fact is one append-only activity record describing a successful mutation
type Fact struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	LotID      string    `json:"lot_id"`
	BidID      string    `json:"bid_id,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActivityRecorder consumes activity facts. Recording must not fail the
// operation that produced the fact, so Record returns nothing.
type ActivityRecorder interface {
	Record(fact Fact)
}

// LogRecorder writes each fact to the structured log
type LogRecorder struct{}

// Record logs the fact at info level
func (LogRecorder) Record(fact Fact) {
	utils.Info("activity: "+fact.Type, map[string]any{
		"user_id": fact.UserID,
		"lot_id":  fact.LotID,
		"bid_id":  fact.BidID,
		"amount":  fact.Amount,
	})
}

// MemoryRecorder keeps facts in memory. Intended for tests.
type MemoryRecorder struct {
	mu    sync.Mutex
	facts []Fact
}

// Record appends the fact
func (r *MemoryRecorder) Record(fact Fact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facts = append(r.facts, fact)
}

// Facts returns a copy of everything recorded so far
func (r *MemoryRecorder) Facts() []Fact {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Fact(nil), r.facts...)
}
