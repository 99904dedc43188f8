package repository

import (
	"path/filepath"
	"testing"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) (*BoltLedger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	ledger, err := NewBoltLedger(path)
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger, path
}

func TestBoltLedger_LotsAndBids(t *testing.T) {
	ledger, _ := openTestLedger(t)

	_, err := ledger.GetLot("missing")
	require.ErrorIs(t, err, auctionerrors.ErrLotNotFound)

	lot := testLot("lot1", "seller")
	require.NoError(t, ledger.CreateLot(lot))
	require.ErrorIs(t, ledger.CreateLot(lot), auctionerrors.ErrConflict)

	got, err := ledger.GetLot("lot1")
	require.NoError(t, err)
	require.Equal(t, lot.OwnerID, got.OwnerID)
	require.Equal(t, lot.StartingPrice, got.StartingPrice)
	require.Equal(t, model.LotActive, got.Status)

	require.ErrorIs(t, ledger.CreateBid(testBid("b0", "missing", "alice", 10100)), auctionerrors.ErrLotNotFound)

	require.NoError(t, ledger.CreateBid(testBid("b1", "lot1", "alice", 10100)))
	require.NoError(t, ledger.CreateBid(testBid("b2", "lot1", "bob", 10200)))
	require.ErrorIs(t, ledger.CreateBid(testBid("b1", "lot1", "alice", 10100)), auctionerrors.ErrConflict)

	bids, err := ledger.BidsByLot("lot1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "b1", bids[0].BidID)
	require.Equal(t, "b2", bids[1].BidID)

	// A second lot's index does not leak into the first.
	require.NoError(t, ledger.CreateLot(testLot("lot2", "seller2")))
	require.NoError(t, ledger.CreateBid(testBid("b3", "lot2", "carol", 5100)))
	bids, err = ledger.BidsByLot("lot1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

func TestBoltLedger_UpdateLotWithBids(t *testing.T) {
	ledger, _ := openTestLedger(t)

	lot := testLot("lot1", "seller")
	require.NoError(t, ledger.CreateLot(lot))
	b1 := testBid("b1", "lot1", "alice", 10100)
	b2 := testBid("b2", "lot1", "bob", 10200)
	require.NoError(t, ledger.CreateBid(b1))
	require.NoError(t, ledger.CreateBid(b2))

	// Unknown bid in the batch rolls the transaction back.
	lot.Stock = 0
	lot.Status = model.LotSold
	err := ledger.UpdateLotWithBids(lot, []model.Bid{b1, testBid("ghost", "lot1", "x", 1)})
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)

	unchanged, err := ledger.GetLot("lot1")
	require.NoError(t, err)
	require.Equal(t, model.LotActive, unchanged.Status)

	b1.Status = model.BidAccepted
	b2.Status = model.BidRejected
	require.NoError(t, ledger.UpdateLotWithBids(lot, []model.Bid{b1, b2}))

	gotLot, err := ledger.GetLot("lot1")
	require.NoError(t, err)
	require.Equal(t, model.LotSold, gotLot.Status)
	require.Equal(t, 0, gotLot.Stock)
}

func TestBoltLedger_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	ledger, err := NewBoltLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.CreateLot(testLot("lot1", "seller")))
	require.NoError(t, ledger.CreateBid(testBid("b1", "lot1", "alice", 10100)))
	require.NoError(t, ledger.Close())

	reopened, err := NewBoltLedger(path)
	require.NoError(t, err)
	defer reopened.Close()

	lot, err := reopened.GetLot("lot1")
	require.NoError(t, err)
	require.Equal(t, "seller", lot.OwnerID)

	bids, err := reopened.BidsByLot("lot1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, int64(10100), bids[0].Amount)
}
