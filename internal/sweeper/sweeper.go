package sweeper

import (
	"context"
	"time"

	"smart-auction/utils"
)

// AuctionCloser is the slice of the auction service the sweeper drives.
type AuctionCloser interface {
	CloseEndedAuctions() (int, error)
}

// Sweeper periodically closes auctions whose deadline has passed. It is
// the single writer of the Open -> Closed transition; request handlers
// only refuse late bids and leave the persisted state to the sweep.
type Sweeper struct {
	closer   AuctionCloser
	interval time.Duration
	stopChan chan struct{}
}

// New creates a sweeper running once per interval.
func New(closer AuctionCloser, interval time.Duration) *Sweeper {
	return &Sweeper{
		closer:   closer,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the sweep loop in the background.
func (s *Sweeper) Start(ctx context.Context) {
	utils.Info("starting auction sweeper", map[string]any{"interval": s.interval.String()})
	go s.run(ctx)
}

// Stop terminates the sweep loop.
func (s *Sweeper) Stop() {
	utils.Info("stopping auction sweeper", nil)
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// First sweep immediately so auctions that expired while the
	// process was down are closed without waiting a full interval.
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			utils.Info("auction sweeper stopped", nil)
			return
		case <-ctx.Done():
			utils.Info("auction sweeper cancelled", nil)
			return
		}
	}
}

// sweep runs one close pass. Errors are logged, never propagated: the
// still-active auctions are simply retried on the next tick.
func (s *Sweeper) sweep() {
	closed, err := s.closer.CloseEndedAuctions()
	if err != nil {
		utils.Error("auction sweep failed", map[string]any{"error": err.Error()})
		return
	}
	if closed > 0 {
		utils.Info("auction sweep completed", map[string]any{"closed": closed})
	}
}
