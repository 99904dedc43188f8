package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type AuctionServiceInterface interface {
	CreateLot(ctx context.Context, ownerID, title, description string, startingPrice int64, stock int, endsAt *time.Time) (model.Lot, error)
	PlaceBid(ctx context.Context, lotID, bidderID string, amount int64) (model.Bid, error)
	EditBid(ctx context.Context, bidID, callerID string, newAmount int64) (model.Bid, error)
	CancelBid(ctx context.Context, bidID, callerID string) (model.Bid, error)
	AcceptBid(ctx context.Context, lotID, bidID, callerID string) (model.Bid, model.Lot, error)
	CancelLot(ctx context.Context, lotID, callerID string) (model.Lot, error)
	GetLot(ctx context.Context, lotID string) (model.Lot, error)
	ListLots(ctx context.Context) ([]model.Lot, error)
	ListBidsForLot(ctx context.Context, lotID string) ([]model.Bid, error)
	MinimumBidForLot(ctx context.Context, lotID string) (int64, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateLotHandler handles POST /lots
func (h *AuctionHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLotHandler", err)
		return
	}

	lot, err := h.service.CreateLot(c.Request.Context(), req.OwnerID, req.Title, req.Description, req.StartingPrice, req.Stock, req.EndsAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateLotHandler: failed to create lot", map[string]any{
			"handler":  "CreateLotHandler",
			"owner_id": req.OwnerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToLotResponse(lot), "lot created successfully")
	helpers.LogSuccess("CreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":   lot.LotID,
		"owner_id": lot.OwnerID,
		"stock":    lot.Stock,
	})
}

// ListLotsHandler handles GET /lots
func (h *AuctionHandler) ListLotsHandler(c *gin.Context) {
	lots, err := h.service.ListLots(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListLotsHandler: error listing lots", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.LotResponse, 0, len(lots))
	for _, lot := range lots {
		resp = append(resp, helpers.ToLotResponse(lot))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "lots retrieved successfully")
}

// GetLotHandler handles GET /lots/:lot_id
func (h *AuctionHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, err := h.service.GetLot(c.Request.Context(), lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLotHandler: error retrieving lot", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLotResponse(lot), "lot retrieved successfully")
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *AuctionHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bids, err := h.service.ListBidsForLot(c.Request.Context(), lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByLotHandler: error retrieving bids", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(resp),
	})
}

// GetMinimumBidHandler handles GET /lots/:lot_id/minimum
func (h *AuctionHandler) GetMinimumBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	minimum, err := h.service.MinimumBidForLot(c.Request.Context(), lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMinimumBidHandler: error computing minimum", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	resp := helpers.MinimumBidResponse{LotID: lotID, MinimumBid: minimum}
	utils.JSONResponse(c, http.StatusOK, resp, "minimum bid computed successfully")
}

// CancelLotHandler handles POST /lots/:lot_id/cancel
func (h *AuctionHandler) CancelLotHandler(c *gin.Context) {
	var req helpers.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelLotHandler", err)
		return
	}

	lotID := c.Param("lot_id")
	lot, err := h.service.CancelLot(c.Request.Context(), lotID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelLotHandler: failed to cancel lot", map[string]any{
			"lot_id":  lotID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLotResponse(lot), "lot cancelled successfully")
	helpers.LogSuccess("CancelLotHandler", "lot cancelled successfully", map[string]any{
		"lot_id":  lot.LotID,
		"user_id": req.UserID,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.LotID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"lot_id":  req.LotID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.BidID,
		"lot_id":  bid.LotID,
		"user_id": req.UserID,
		"amount":  bid.Amount,
	})
}

// EditBidHandler handles PATCH /bids/:bid_id
func (h *AuctionHandler) EditBidHandler(c *gin.Context) {
	var req helpers.EditBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditBidHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	bid, err := h.service.EditBid(c.Request.Context(), bidID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EditBidHandler: failed to edit bid", map[string]any{
			"bid_id":  bidID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("EditBidHandler", "bid updated successfully", map[string]any{
		"bid_id":  bid.BidID,
		"lot_id":  bid.LotID,
		"user_id": req.UserID,
		"amount":  bid.Amount,
	})
}

// CancelBidHandler handles POST /bids/:bid_id/cancel
func (h *AuctionHandler) CancelBidHandler(c *gin.Context) {
	var req helpers.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelBidHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	bid, err := h.service.CancelBid(c.Request.Context(), bidID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelBidHandler: failed to cancel bid", map[string]any{
			"bid_id":  bidID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid cancelled successfully")
	helpers.LogSuccess("CancelBidHandler", "bid cancelled successfully", map[string]any{
		"bid_id":  bid.BidID,
		"lot_id":  bid.LotID,
		"user_id": req.UserID,
	})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *AuctionHandler) AcceptBidHandler(c *gin.Context) {
	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	bid, lot, err := h.service.AcceptBid(c.Request.Context(), req.LotID, bidID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptBidHandler: failed to accept bid", map[string]any{
			"bid_id":  bidID,
			"lot_id":  req.LotID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.AcceptBidResponse{
		Bid: helpers.ToBidResponse(bid),
		Lot: helpers.ToLotResponse(lot),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":     bid.BidID,
		"lot_id":     lot.LotID,
		"user_id":    req.UserID,
		"amount":     bid.Amount,
		"lot_status": string(lot.Status),
		"stock":      lot.Stock,
	})
}
