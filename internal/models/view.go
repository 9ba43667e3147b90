package models

import "time"

// UserRef is the display-friendly identity attached to resolved documents.
type UserRef struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type BidView struct {
	Bidder UserRef   `json:"bidder"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
}

type AccessRequestView struct {
	User        UserRef   `json:"user"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

// AuctionView is the fully resolved auction: the persisted document with
// usernames attached to every user reference. It is the payload of all
// fan-out events and of single-auction HTTP responses.
type AuctionView struct {
	AuctionID      string              `json:"auction_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Image          string              `json:"image,omitempty"`
	StartingPrice  float64             `json:"starting_price"`
	CurrentPrice   float64             `json:"current_price"`
	EndTime        time.Time           `json:"end_time"`
	Creator        UserRef             `json:"creator"`
	Winner         *UserRef            `json:"winner,omitempty"`
	IsActive       bool                `json:"is_active"`
	Bids           []BidView           `json:"bids"`
	AccessRequests []AccessRequestView `json:"access_requests"`
	CreatedAt      time.Time           `json:"created_at"`
}
