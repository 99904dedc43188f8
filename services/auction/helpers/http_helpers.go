package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNotOwner):
		return http.StatusForbidden, "caller is not authorized"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "cannot bid on own lot"
	case errors.Is(err, auctionerrors.ErrBelowMinimum):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNotActive):
		return http.StatusConflict, "lot is no longer active"
	case errors.Is(err, auctionerrors.ErrNotPending):
		return http.StatusConflict, "bid is no longer pending"
	case errors.Is(err, auctionerrors.ErrOutOfStock):
		return http.StatusConflict, "lot is out of stock"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid bid transition"
	case errors.Is(err, auctionerrors.ErrUnavailable), errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusServiceUnavailable, "temporarily unavailable, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a bid model into its wire representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		LotID:     bid.LotID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToLotResponse converts a lot model into its wire representation
func ToLotResponse(lot model.Lot) LotResponse {
	resp := LotResponse{
		LotID:         lot.LotID,
		OwnerID:       lot.OwnerID,
		Title:         lot.Title,
		Description:   lot.Description,
		StartingPrice: lot.StartingPrice,
		Stock:         lot.Stock,
		Status:        string(lot.Status),
		CreatedAt:     lot.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     lot.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if lot.EndsAt != nil {
		resp.EndsAt = lot.EndsAt.UTC().Format(time.RFC3339)
	}
	return resp
}
