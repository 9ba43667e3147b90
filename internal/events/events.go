package events

// Event names broadcast to auction rooms. They match the names the web
// client subscribes to.
const (
	BidUpdate          = "bidUpdate"
	AccessRequested    = "accessRequested"
	BidderApproved     = "bidderApproved"
	AllBiddersApproved = "allBiddersApproved"
	AuctionEnded       = "auctionEnded"
)

// Emitter fans a named event out to everyone watching one auction.
// Emission is fire-and-forget: delivery failures are the emitter's
// problem and must never surface to the mutating operation, which has
// already persisted its result.
type Emitter interface {
	Emit(auctionID, event string, payload any)
}

// Multi broadcasts to several emitters in order.
type Multi []Emitter

func (m Multi) Emit(auctionID, event string, payload any) {
	for _, e := range m {
		e.Emit(auctionID, event, payload)
	}
}

// Discard drops every event. Useful when no realtime channel is wired.
type Discard struct{}

func (Discard) Emit(string, string, any) {}
