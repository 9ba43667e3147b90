package models

import "time"

// User represents a participant in the auction platform
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Bid is one admitted entry in an auction's bid ledger
type Bid struct {
	Bidder string    `json:"bidder"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
}

// AccessRequest is one user's request for permission to bid on an auction
type AccessRequest struct {
	User        string    `json:"user"`
	Status      string    `json:"status"` // 'pending', 'approved', 'rejected'
	RequestedAt time.Time `json:"requested_at"`
}

// Access request status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// IsPending checks if the request is pending
func (r *AccessRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsApproved checks if the request is approved
func (r *AccessRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}

// Auction is the root document of the engine: the bid ledger, the access
// gate and the lifecycle flags are embedded and persisted as one unit.
type Auction struct {
	AuctionID      string          `json:"auction_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Image          string          `json:"image,omitempty"`
	StartingPrice  float64         `json:"starting_price"`
	CurrentPrice   float64         `json:"current_price"`
	EndTime        time.Time       `json:"end_time"`
	Creator        string          `json:"creator"`
	Winner         string          `json:"winner,omitempty"`
	IsActive       bool            `json:"is_active"`
	Bids           []Bid           `json:"bids"`
	AccessRequests []AccessRequest `json:"access_requests"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AccessRequestFor returns the access request held by userID, or nil if the
// user never requested access. At most one request exists per user.
func (a *Auction) AccessRequestFor(userID string) *AccessRequest {
	for i := range a.AccessRequests {
		if a.AccessRequests[i].User == userID {
			return &a.AccessRequests[i]
		}
	}
	return nil
}

// HighestBid returns the winning bid of the ledger: the maximum amount, with
// ties resolved in favor of the earliest entry in ledger order.
func (a *Auction) HighestBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	winning := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, true
}

// Ended reports whether the auction deadline has passed at the given time.
func (a *Auction) Ended(now time.Time) bool {
	return now.After(a.EndTime)
}
