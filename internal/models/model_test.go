package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ledgerBid(bidder string, amount float64, at time.Time) Bid {
	return Bid{Bidder: bidder, Amount: amount, Time: at}
}

// Test HighestBid
func TestAuction_HighestBid(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		bids       []Bid
		wantBidder string
		wantAmount float64
		wantFound  bool
	}{
		{
			name:      "empty_ledger",
			bids:      nil,
			wantFound: false,
		},
		{
			name:       "single_bid",
			bids:       []Bid{ledgerBid("user1", 100, base)},
			wantBidder: "user1",
			wantAmount: 100,
			wantFound:  true,
		},
		{
			name: "highest_amount_wins",
			bids: []Bid{
				ledgerBid("user1", 100, base),
				ledgerBid("user2", 150, base.Add(time.Minute)),
				ledgerBid("user3", 120, base.Add(2*time.Minute)),
			},
			wantBidder: "user2",
			wantAmount: 150,
			wantFound:  true,
		},
		{
			name: "tie_goes_to_earliest_in_ledger_order",
			bids: []Bid{
				ledgerBid("userA", 100, base),
				ledgerBid("userB", 150, base.Add(time.Minute)),
				ledgerBid("userC", 150, base.Add(2*time.Minute)),
			},
			wantBidder: "userB",
			wantAmount: 150,
			wantFound:  true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := Auction{Bids: tc.bids}
			winning, ok := a.HighestBid()
			require.Equal(t, tc.wantFound, ok)
			if tc.wantFound {
				require.Equal(t, tc.wantBidder, winning.Bidder)
				require.Equal(t, tc.wantAmount, winning.Amount)
			}
		})
	}
}

// Test AccessRequestFor
func TestAuction_AccessRequestFor(t *testing.T) {
	t.Parallel()

	a := Auction{
		AccessRequests: []AccessRequest{
			{User: "user1", Status: RequestStatusPending},
			{User: "user2", Status: RequestStatusApproved},
		},
	}

	req := a.AccessRequestFor("user2")
	require.NotNil(t, req)
	require.True(t, req.IsApproved())

	req = a.AccessRequestFor("user1")
	require.NotNil(t, req)
	require.True(t, req.IsPending())

	require.Nil(t, a.AccessRequestFor("stranger"))

	// The returned pointer aliases the slice entry so status updates stick.
	a.AccessRequestFor("user1").Status = RequestStatusApproved
	require.True(t, a.AccessRequests[0].IsApproved())
}

// Test Ended
func TestAuction_Ended(t *testing.T) {
	t.Parallel()

	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Auction{EndTime: end}

	require.False(t, a.Ended(end.Add(-time.Second)))
	require.False(t, a.Ended(end)) // deadline itself is still open
	require.True(t, a.Ended(end.Add(time.Second)))
}
