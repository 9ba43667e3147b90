package helpers

import "time"

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description" binding:"required"`
	StartingPrice float64   `json:"starting_price" binding:"required,gt=0"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	Image         string    `json:"image"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ApproveBidderRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ApproveAllResponse struct {
	ApprovedCount int `json:"approved_count"`
}
