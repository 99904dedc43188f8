package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/lotlock"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with an in-memory ledger for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ledger := repository.NewMemoryLedger()
	service := auction.NewAuctionService(ledger, lotlock.New(), &auction.MemoryRecorder{}, 5*time.Second)
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the enveloped JSON response.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// CreateLotViaAPI creates a lot through the HTTP surface and returns its id
func CreateLotViaAPI(t *testing.T, router *gin.Engine, owner string, startingPrice int64, stock int) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/lots", helpers.CreateLotRequest{
		OwnerID:       owner,
		Title:         "integration lot",
		Description:   "seeded by test",
		StartingPrice: startingPrice,
		Stock:         stock,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["lot_id"].(string)
}

// PlaceBidViaAPI places a bid and returns the response envelope
func PlaceBidViaAPI(t *testing.T, router *gin.Engine, lotID, userID string, amount int64) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		LotID:  lotID,
		UserID: userID,
		Amount: amount,
	})
}
