package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "smart-auction/internal/models"
)

var (
	seller = model.User{UserID: "seller1", Username: "alice", Role: model.RoleSeller}
	buyer  = model.User{UserID: "buyer1", Username: "bob", Role: model.RoleBuyer}
	buyer2 = model.User{UserID: "buyer2", Username: "carol", Role: model.RoleBuyer}
)

func createAuction(t *testing.T, env *TestEnv, startingPrice float64, endTime time.Time) string {
	t.Helper()

	w := env.ExecuteRequest(t, http.MethodPost, "/auctions", &seller, map[string]any{
		"title":          "vintage camera",
		"description":    "1960s rangefinder",
		"starting_price": startingPrice,
		"end_time":       endTime,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := ParseResponse(t, w)["data"].(map[string]any)
	return data["auction_id"].(string)
}

// The full approval-gated bidding flow: request access, get denied,
// get approved, outbid, then trip the low-bid rule.
func TestBiddingScenario(t *testing.T) {
	env := SetupTestEnv(seller, buyer)
	auctionID := createAuction(t, env, 100, time.Now().UTC().Add(time.Hour))
	bidURL := fmt.Sprintf("/auctions/%s/bid", auctionID)

	// Bid before requesting access: denied.
	w := env.ExecuteRequest(t, http.MethodPost, bidURL, &buyer, map[string]any{"amount": 110})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Request access.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &buyer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Still pending: bid remains denied.
	w = env.ExecuteRequest(t, http.MethodPost, bidURL, &buyer, map[string]any{"amount": 110})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Seller approves the buyer.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/approve", auctionID), &seller,
		map[string]any{"user_id": buyer.UserID})
	require.Equal(t, http.StatusOK, w.Code)

	// Approved bid above the current price succeeds.
	w = env.ExecuteRequest(t, http.MethodPost, bidURL, &buyer, map[string]any{"amount": 110})
	require.Equal(t, http.StatusOK, w.Code)
	data := ParseResponse(t, w)["data"].(map[string]any)
	require.Equal(t, 110.0, data["current_price"])

	// A lower follow-up bid is rejected and the price stands.
	w = env.ExecuteRequest(t, http.MethodPost, bidURL, &buyer, map[string]any{"amount": 105})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.ExecuteRequest(t, http.MethodGet, "/auctions/"+auctionID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = ParseResponse(t, w)["data"].(map[string]any)
	require.Equal(t, 110.0, data["current_price"])
	require.Len(t, data["bids"].([]any), 1)
}

// An expired auction with one bid sweeps to closed with that bidder as
// winner, visible through the resolved read.
func TestSweepScenario(t *testing.T) {
	env := SetupTestEnv(seller, buyer)
	auctionID := createAuction(t, env, 100, time.Now().UTC().Add(250*time.Millisecond))

	// Approve and bid while the auction is still open.
	w := env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &buyer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/approve", auctionID), &seller,
		map[string]any{"user_id": buyer.UserID})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/bid", auctionID), &buyer,
		map[string]any{"amount": 150})
	require.Equal(t, http.StatusOK, w.Code)

	// Let the deadline pass, then sweep.
	time.Sleep(400 * time.Millisecond)

	closed, err := env.Service.CloseEndedAuctions()
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	// Late bid is refused even though it arrived before the next sweep.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/bid", auctionID), &buyer,
		map[string]any{"amount": 200})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.ExecuteRequest(t, http.MethodGet, "/auctions/"+auctionID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := ParseResponse(t, w)["data"].(map[string]any)
	require.Equal(t, false, data["is_active"])
	winner := data["winner"].(map[string]any)
	require.Equal(t, buyer.UserID, winner["user_id"])
	require.Equal(t, buyer.Username, winner["username"])

	// Closed auctions drop out of the active listing.
	w = env.ExecuteRequest(t, http.MethodGet, "/auctions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, ParseResponse(t, w)["data"].([]any))
}

// Creator self-actions and duplicate requests are refused end to end.
func TestAccessGateRules(t *testing.T) {
	env := SetupTestEnv(seller, buyer, buyer2)
	auctionID := createAuction(t, env, 100, time.Now().UTC().Add(time.Hour))

	// Creator cannot request access to their own auction.
	w := env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &seller, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate request from the same buyer.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &buyer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &buyer, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The gate still holds exactly one record for the pair.
	w = env.ExecuteRequest(t, http.MethodGet, "/auctions/"+auctionID, nil, nil)
	data := ParseResponse(t, w)["data"].(map[string]any)
	require.Len(t, data["access_requests"].([]any), 1)

	// approve-all flips every pending request and reports the count.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/request-access", auctionID), &buyer2, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/approve-all", auctionID), &seller, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := ParseResponse(t, w)
	require.Equal(t, "2 bidder(s) approved successfully", resp["message"])

	// Nothing left to approve.
	w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/auctions/%s/approve-all", auctionID), &seller, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Role and authentication guards on the outer surface.
func TestAuthGuards(t *testing.T) {
	env := SetupTestEnv(seller, buyer)

	body := map[string]any{
		"title":          "lamp",
		"description":    "brass lamp",
		"starting_price": 50,
		"end_time":       time.Now().UTC().Add(time.Hour),
	}

	// No identity at all.
	w := env.ExecuteRequest(t, http.MethodPost, "/auctions", nil, body)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Buyers cannot create auctions.
	w = env.ExecuteRequest(t, http.MethodPost, "/auctions", &buyer, body)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Sellers can.
	w = env.ExecuteRequest(t, http.MethodPost, "/auctions", &seller, body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Anonymous reads are allowed.
	w = env.ExecuteRequest(t, http.MethodGet, "/auctions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
