package handler

import (
	"fmt"
	"net/http"
	"time"

	model "smart-auction/internal/models"
	"smart-auction/services/auction/helpers"
	"smart-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(creatorID, title, description string, startingPrice float64, endTime time.Time, image string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	GetAuction(auctionID string) (model.AuctionView, error)
	PlaceBid(auctionID, bidderID string, amount float64) (model.AuctionView, error)
	RequestAccess(auctionID, userID string) (model.AuctionView, error)
	ApproveBidder(auctionID, approverID, targetUserID string) (model.AuctionView, error)
	ApproveAllBidders(auctionID, approverID string) (model.AuctionView, int, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	creatorID := c.GetString(helpers.ContextUserID)
	auction, err := h.service.CreateAuction(creatorID, req.Title, req.Description, req.StartingPrice, req.EndTime, req.Image)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"creator": creatorID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"creator":    creatorID,
		"end_time":   auction.EndTime,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	bidderID := c.GetString(helpers.ContextUserID)

	auction, err := h.service.PlaceBid(auctionID, bidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"auction_id": auctionID,
			"bidder":     bidderID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    auctionID,
		"bidder":        bidderID,
		"amount":        req.Amount,
		"current_price": auction.CurrentPrice,
	})
}

// RequestAccessHandler handles POST /auctions/:auction_id/request-access
func (h *AuctionHandler) RequestAccessHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	userID := c.GetString(helpers.ContextUserID)

	_, err := h.service.RequestAccess(auctionID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RequestAccessHandler: request rejected", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "access request sent successfully")
	helpers.LogSuccess("RequestAccessHandler", "access request sent successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
	})
}

// ApproveBidderHandler handles POST /auctions/:auction_id/approve
func (h *AuctionHandler) ApproveBidderHandler(c *gin.Context) {
	var req helpers.ApproveBidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ApproveBidderHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	approverID := c.GetString(helpers.ContextUserID)

	_, err := h.service.ApproveBidder(auctionID, approverID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ApproveBidderHandler: approval rejected", map[string]any{
			"auction_id": auctionID,
			"approver":   approverID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bidder approved successfully")
	helpers.LogSuccess("ApproveBidderHandler", "bidder approved successfully", map[string]any{
		"auction_id": auctionID,
		"approver":   approverID,
		"user_id":    req.UserID,
	})
}

// ApproveAllBiddersHandler handles POST /auctions/:auction_id/approve-all
func (h *AuctionHandler) ApproveAllBiddersHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	approverID := c.GetString(helpers.ContextUserID)

	_, count, err := h.service.ApproveAllBidders(auctionID, approverID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ApproveAllBiddersHandler: approval rejected", map[string]any{
			"auction_id": auctionID,
			"approver":   approverID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ApproveAllResponse{ApprovedCount: count}
	utils.JSONResponse(c, http.StatusOK, resp, fmt.Sprintf("%d bidder(s) approved successfully", count))
	helpers.LogSuccess("ApproveAllBiddersHandler", "bidders approved successfully", map[string]any{
		"auction_id": auctionID,
		"approver":   approverID,
		"count":      count,
	})
}
