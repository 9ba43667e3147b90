package perftests

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	auction "smart-auction/internal/auctionService"
	"smart-auction/internal/events"
	model "smart-auction/internal/models"
	repository "smart-auction/internal/repository"
)

// setupService creates the store and auction service with numAuctions
// open auctions, each pre-approving numBidders bidders.
func setupService(numAuctions, numBidders int) (*repository.MemoryStore, *auction.AuctionService) {
	store := repository.NewMemoryStore()
	svc := auction.NewAuctionService(store, events.Discard{})

	now := time.Now().UTC()
	for i := 0; i < numAuctions; i++ {
		a := model.Auction{
			AuctionID:     fmt.Sprintf("auction_%d", i),
			Title:         fmt.Sprintf("title_%d", i),
			Description:   "load test auction",
			StartingPrice: 100,
			CurrentPrice:  100,
			EndTime:       now.Add(time.Hour),
			Creator:       "seller",
			IsActive:      true,
			CreatedAt:     now,
		}
		for j := 0; j < numBidders; j++ {
			a.AccessRequests = append(a.AccessRequests, model.AccessRequest{
				User:        fmt.Sprintf("bidder_%d", j),
				Status:      model.RequestStatusApproved,
				RequestedAt: now,
			})
		}
		_ = store.InsertAuction(a)
	}
	return store, svc
}

// Benchmark_PlaceBid_SingleAuction measures admission throughput on one
// contended auction; every bid raises the price so all are admitted.
func Benchmark_PlaceBid_SingleAuction(b *testing.B) {
	_, svc := setupService(1, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.PlaceBid("auction_0", "bidder_0", float64(101+i))
		if err != nil {
			b.Fatalf("unexpected admission failure: %v", err)
		}
	}
}

// Benchmark_PlaceBid_ManyAuctions spreads parallel bidders across
// auctions so the per-auction locks rarely collide.
func Benchmark_PlaceBid_ManyAuctions(b *testing.B) {
	numAuctions := 64
	_, svc := setupService(numAuctions, 1)

	var next int64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			n := atomic.AddInt64(&next, 1)
			auctionID := fmt.Sprintf("auction_%d", n%int64(numAuctions))
			// Amounts grow with n, so admissions mostly succeed while
			// occasional rejections exercise the low-bid path too.
			_, _ = svc.PlaceBid(auctionID, "bidder_0", float64(101+n))
		}
	})
}

// Test_ConcurrentLoad_HighestBidWins floods one auction from many
// goroutines and verifies the admission invariants under load.
func Test_ConcurrentLoad_HighestBidWins(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	numBidders := 32
	bidsPerBidder := 25
	store, svc := setupService(1, numBidders)

	var wg sync.WaitGroup
	var admitted int64
	for i := 0; i < numBidders; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			bidder := fmt.Sprintf("bidder_%d", i)
			for j := 0; j < bidsPerBidder; j++ {
				amount := float64(101 + i + j*numBidders)
				if _, err := svc.PlaceBid("auction_0", bidder, amount); err == nil {
					atomic.AddInt64(&admitted, 1)
				}
			}
		}()
	}
	wg.Wait()

	final, err := store.GetAuction("auction_0")
	if err != nil {
		t.Fatalf("failed to load auction: %v", err)
	}

	if len(final.Bids) != int(admitted) {
		t.Fatalf("ledger length %d != admitted count %d", len(final.Bids), admitted)
	}
	var prev float64 = 100
	for i, bid := range final.Bids {
		if bid.Amount <= prev {
			t.Fatalf("ledger not strictly increasing at index %d: %.2f after %.2f", i, bid.Amount, prev)
		}
		prev = bid.Amount
	}
	if final.CurrentPrice != prev {
		t.Fatalf("current price %.2f != last admitted amount %.2f", final.CurrentPrice, prev)
	}

	winning, ok := final.HighestBid()
	if !ok || winning.Amount != final.CurrentPrice {
		t.Fatalf("highest bid %.2f should equal final price %.2f", winning.Amount, final.CurrentPrice)
	}
}
