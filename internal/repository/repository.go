package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"smart-auction/internal/auctionerrors"
	model "smart-auction/internal/models"
)

// AuctionStore defines the document-store interface the engine writes
// auction records through. Saves are whole-document and atomic per
// document only; the service layer is responsible for serializing
// read-modify-write cycles on the same auction.
type AuctionStore interface {
	InsertAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	SaveAuction(a model.Auction) error
	ListActiveAuctions() ([]model.Auction, error)
	FindEndedActive(now time.Time) ([]model.Auction, error)
	SaveUser(u model.User) error
	GetUser(userID string) (model.User, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	users    map[string]model.User    // key: userID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		users:    make(map[string]model.User),
	}
}

// cloneAuction copies the document so callers never share ledger or gate
// slices with the stored record.
func cloneAuction(a model.Auction) model.Auction {
	a.Bids = append([]model.Bid(nil), a.Bids...)
	a.AccessRequests = append([]model.AccessRequest(nil), a.AccessRequests...)
	return a
}

// InsertAuction stores a new auction document
func (s *MemoryStore) InsertAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[a.AuctionID]; ok {
		return fmt.Errorf("insert auction %s: already exists", a.AuctionID)
	}
	s.auctions[a.AuctionID] = cloneAuction(a)
	return nil
}

// GetAuction returns the auction document by id
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

// SaveAuction overwrites an existing auction document
func (s *MemoryStore) SaveAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[a.AuctionID]; !ok {
		return fmt.Errorf("save auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	s.auctions[a.AuctionID] = cloneAuction(a)
	return nil
}

// ListActiveAuctions returns all active auctions, newest first
func (s *MemoryStore) ListActiveAuctions() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if a.IsActive {
			out = append(out, cloneAuction(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FindEndedActive returns auctions that are still active but whose
// deadline has passed at the given time.
func (s *MemoryStore) FindEndedActive(now time.Time) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Auction
	for _, a := range s.auctions {
		if a.IsActive && a.EndTime.Before(now) {
			out = append(out, cloneAuction(a))
		}
	}
	return out, nil
}

// SaveUser stores or overwrites a user record
func (s *MemoryStore) SaveUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
	return nil
}

// GetUser returns a user record by id
func (s *MemoryStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}
