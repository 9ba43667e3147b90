package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"smart-auction/internal/auctionerrors"
	"smart-auction/utils"

	"github.com/gin-gonic/gin"
)

// Context keys for the caller identity injected by the auth gateway.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
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
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrRequestNotFound):
		return http.StatusNotFound, "access request not found"
	case errors.Is(err, auctionerrors.ErrAccessDenied):
		return http.StatusForbidden, "you must be approved by the seller to bid on this auction"
	case errors.Is(err, auctionerrors.ErrNotOwner):
		return http.StatusForbidden, "only the creator can approve bidders"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusBadRequest, "creator cannot bid on their own auction"
	case errors.Is(err, auctionerrors.ErrSelfAccess):
		return http.StatusBadRequest, "creator does not need to request access"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid must be higher than current price"
	case errors.Is(err, auctionerrors.ErrDuplicateRequest):
		return http.StatusBadRequest, "request already sent"
	case errors.Is(err, auctionerrors.ErrNoPendingRequests):
		return http.StatusBadRequest, "no pending requests to approve"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
