package auction

import (
	"errors"
	"fmt"
	"time"

	"smart-auction/internal/auctionerrors"
	"smart-auction/internal/events"
	"smart-auction/internal/models"
	"smart-auction/internal/repository"
	"smart-auction/utils"
)

// AuctionService owns the auction lifecycle: creation, bid admission,
// the access gate and the close transition. Every mutation of one
// auction runs under that auction's lock, so the observable history of
// a document is always some serial order of operations.
type AuctionService struct {
	store   repository.AuctionStore
	emitter events.Emitter
	now     func() time.Time
	locks   *keyedLocks
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, emitter events.Emitter) *AuctionService {
	return &AuctionService{
		store:   store,
		emitter: emitter,
		now:     time.Now,
		locks:   newKeyedLocks(),
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *AuctionService) WithClock(now func() time.Time) *AuctionService {
	s.now = now
	return s
}

// CreateAuction opens a new auction owned by creatorID with
// currentPrice equal to startingPrice and an empty ledger.
func (s *AuctionService) CreateAuction(creatorID, title, description string, startingPrice float64, endTime time.Time, image string) (models.Auction, error) {
	if creatorID == "" || title == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing creator or title", auctionerrors.ErrInvalidInput)
	}
	if startingPrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidInput)
	}
	if !endTime.After(s.now()) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrInvalidInput)
	}

	a := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         title,
		Description:   description,
		Image:         image,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		EndTime:       endTime,
		Creator:       creatorID,
		IsActive:      true,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.store.InsertAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return a, nil
}

// ListAuctions returns all active auctions, newest first
func (s *AuctionService) ListAuctions() ([]models.Auction, error) {
	auctions, err := s.store.ListActiveAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuction returns the fully resolved auction by id
func (s *AuctionService) GetAuction(auctionID string) (models.AuctionView, error) {
	if auctionID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return s.resolve(a), nil
}

// PlaceBid validates and admits one bid against the auction's ledger.
// Admission requires an open, unexpired auction, an approved access
// request, and an amount strictly above the current price. On success
// the ledger entry and new price are persisted before bidUpdate fans out.
func (s *AuctionService) PlaceBid(auctionID, bidderID string, amount float64) (models.AuctionView, error) {
	if auctionID == "" || bidderID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.AuctionView{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := s.now()

	// The sweeper may not have run yet; a bid past the deadline is
	// refused here, but only the sweeper persists the close transition.
	if !a.IsActive || a.Ended(now) {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}
	if a.Creator == bidderID {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSelfBid)
	}

	req := a.AccessRequestFor(bidderID)
	if req == nil {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, &auctionerrors.AccessDeniedError{})
	}
	if !req.IsApproved() {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, &auctionerrors.AccessDeniedError{Status: req.Status})
	}

	if amount <= a.CurrentPrice {
		return models.AuctionView{}, fmt.Errorf("service: %w - current price is %.2f", auctionerrors.ErrBidTooLow, a.CurrentPrice)
	}

	a.Bids = append(a.Bids, models.Bid{
		Bidder: bidderID,
		Amount: amount,
		Time:   now.UTC(),
	})
	a.CurrentPrice = amount

	if err := s.store.SaveAuction(a); err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to record bid on auction %s: %w", auctionID, err)
	}

	view := s.resolve(a)
	s.emitter.Emit(auctionID, events.BidUpdate, view)
	return view, nil
}

// RequestAccess files a pending access request for userID. Each user
// holds at most one request per auction, and the creator never needs one.
func (s *AuctionService) RequestAccess(auctionID, userID string) (models.AuctionView, error) {
	if auctionID == "" || userID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	if a.Creator == userID {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSelfAccess)
	}
	if a.AccessRequestFor(userID) != nil {
		return models.AuctionView{}, fmt.Errorf("service: auction %s user %s: %w", auctionID, userID, auctionerrors.ErrDuplicateRequest)
	}

	a.AccessRequests = append(a.AccessRequests, models.AccessRequest{
		User:        userID,
		Status:      models.RequestStatusPending,
		RequestedAt: s.now().UTC(),
	})

	if err := s.store.SaveAuction(a); err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to save access request on auction %s: %w", auctionID, err)
	}

	view := s.resolve(a)
	s.emitter.Emit(auctionID, events.AccessRequested, view)
	return view, nil
}

// ApproveBidder transitions targetUserID's request to approved. Only the
// auction's creator may approve.
func (s *AuctionService) ApproveBidder(auctionID, approverID, targetUserID string) (models.AuctionView, error) {
	if auctionID == "" || approverID == "" || targetUserID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - missing auctionID, approverID or userID", auctionerrors.ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	if a.Creator != approverID {
		return models.AuctionView{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNotOwner)
	}

	req := a.AccessRequestFor(targetUserID)
	if req == nil {
		return models.AuctionView{}, fmt.Errorf("service: auction %s user %s: %w", auctionID, targetUserID, auctionerrors.ErrRequestNotFound)
	}
	req.Status = models.RequestStatusApproved

	if err := s.store.SaveAuction(a); err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to save approval on auction %s: %w", auctionID, err)
	}

	view := s.resolve(a)
	s.emitter.Emit(auctionID, events.BidderApproved, view)
	return view, nil
}

// ApproveAllBidders transitions every pending request to approved and
// returns how many were approved. Zero pending requests is an error.
func (s *AuctionService) ApproveAllBidders(auctionID, approverID string) (models.AuctionView, int, error) {
	if auctionID == "" || approverID == "" {
		return models.AuctionView{}, 0, fmt.Errorf("service: %w - missing auctionID or approverID", auctionerrors.ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionView{}, 0, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	if a.Creator != approverID {
		return models.AuctionView{}, 0, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNotOwner)
	}

	approved := 0
	for i := range a.AccessRequests {
		if a.AccessRequests[i].IsPending() {
			a.AccessRequests[i].Status = models.RequestStatusApproved
			approved++
		}
	}
	if approved == 0 {
		return models.AuctionView{}, 0, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNoPendingRequests)
	}

	if err := s.store.SaveAuction(a); err != nil {
		return models.AuctionView{}, 0, fmt.Errorf("service: failed to save approvals on auction %s: %w", auctionID, err)
	}

	view := s.resolve(a)
	s.emitter.Emit(auctionID, events.AllBiddersApproved, view)
	return view, approved, nil
}

// CloseEndedAuctions closes every active auction whose deadline has
// passed, computing the winner from the ledger, and emits auctionEnded
// per closed auction. A failure on one auction is logged and skipped so
// the rest of the sweep proceeds; the skipped auction stays active and
// is retried on the next run. Returns the number of auctions closed.
func (s *AuctionService) CloseEndedAuctions() (int, error) {
	ended, err := s.store.FindEndedActive(s.now())
	if err != nil {
		return 0, fmt.Errorf("service: failed to query ended auctions: %w", err)
	}

	closed := 0
	for _, candidate := range ended {
		if err := s.closeAuction(candidate.AuctionID); err != nil {
			if errors.Is(err, errAlreadyClosed) {
				continue
			}
			utils.Error("failed to close ended auction", map[string]any{
				"auction_id": candidate.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		closed++
	}
	return closed, nil
}

// errAlreadyClosed marks the benign race where an auction was closed
// between the sweep query and taking its lock.
var errAlreadyClosed = errors.New("auction already closed")

func (s *AuctionService) closeAuction(auctionID string) error {
	unlock := s.locks.Lock(auctionID)
	defer unlock()

	// Re-load under the lock: a previous sweep or a racing close may
	// have won, and re-closing must be a no-op.
	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !a.IsActive || !a.Ended(s.now()) {
		return errAlreadyClosed
	}

	if winning, ok := a.HighestBid(); ok {
		a.Winner = winning.Bidder
	}
	a.IsActive = false

	if err := s.store.SaveAuction(a); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	view := s.resolve(a)
	s.emitter.Emit(auctionID, events.AuctionEnded, view)

	utils.Info("auction closed", map[string]any{
		"auction_id": a.AuctionID,
		"title":      a.Title,
		"winner":     a.Winner,
	})
	return nil
}

// userRef resolves a user id to its display reference. Unknown users
// degrade to the raw id so a missing record never blocks fan-out.
func (s *AuctionService) userRef(userID string) models.UserRef {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return models.UserRef{UserID: userID, Username: userID}
	}
	return models.UserRef{UserID: u.UserID, Username: u.Username}
}

// resolve attaches display-friendly user info to every reference in the
// document, producing the payload carried by fan-out events.
func (s *AuctionService) resolve(a models.Auction) models.AuctionView {
	view := models.AuctionView{
		AuctionID:      a.AuctionID,
		Title:          a.Title,
		Description:    a.Description,
		Image:          a.Image,
		StartingPrice:  a.StartingPrice,
		CurrentPrice:   a.CurrentPrice,
		EndTime:        a.EndTime,
		Creator:        s.userRef(a.Creator),
		IsActive:       a.IsActive,
		Bids:           make([]models.BidView, 0, len(a.Bids)),
		AccessRequests: make([]models.AccessRequestView, 0, len(a.AccessRequests)),
		CreatedAt:      a.CreatedAt,
	}
	if a.Winner != "" {
		ref := s.userRef(a.Winner)
		view.Winner = &ref
	}
	for _, b := range a.Bids {
		view.Bids = append(view.Bids, models.BidView{
			Bidder: s.userRef(b.Bidder),
			Amount: b.Amount,
			Time:   b.Time,
		})
	}
	for _, r := range a.AccessRequests {
		view.AccessRequests = append(view.AccessRequests, models.AccessRequestView{
			User:        s.userRef(r.User),
			Status:      r.Status,
			RequestedAt: r.RequestedAt,
		})
	}
	return view
}
