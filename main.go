package main

import (
	"context"
	"fmt"
	"os"
	"time"

	auction "smart-auction/internal/auctionService"
	"smart-auction/internal/config"
	"smart-auction/internal/events"
	model "smart-auction/internal/models"
	"smart-auction/internal/realtime"
	"smart-auction/internal/repository"
	"smart-auction/internal/server"
	"smart-auction/internal/sweeper"
	"smart-auction/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Environment != "production" {
		utils.SetDebug()
	}

	store := repository.NewMemoryStore()
	prepopulate(store)

	hub := realtime.NewHub()

	var emitter events.Emitter = hub
	if cfg.AMQPURL != "" {
		amqpEmitter, err := events.NewAMQPEmitter(cfg.AMQPURL)
		if err != nil {
			utils.Fatal("failed to connect event bridge", map[string]any{"error": err.Error()})
		}
		defer amqpEmitter.Close()
		emitter = events.Multi{hub, amqpEmitter}
	}

	auctionSvc := auction.NewAuctionService(store, emitter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweep := sweeper.New(auctionSvc, cfg.SweepInterval)
	sweep.Start(ctx)
	defer sweep.Stop()

	router := server.SetupRouter(auctionSvc, hub)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds the in-memory store with sample users and an auction
func prepopulate(store *repository.MemoryStore) {
	users := []model.User{
		{UserID: "seller1", Username: "alice", Role: model.RoleSeller},
		{UserID: "buyer1", Username: "bob", Role: model.RoleBuyer},
		{UserID: "buyer2", Username: "carol", Role: model.RoleBuyer},
	}
	for _, u := range users {
		_ = store.SaveUser(u)
	}

	now := time.Now().UTC()
	_ = store.InsertAuction(model.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         "Vintage camera",
		Description:   "1960s rangefinder in working condition",
		StartingPrice: 100,
		CurrentPrice:  100,
		EndTime:       now.Add(24 * time.Hour),
		Creator:       "seller1",
		IsActive:      true,
		CreatedAt:     now,
	})
}
