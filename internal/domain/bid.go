package domain

import "time"

type BidID string

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

type Bid struct {
	ID        BidID
	RoomID    RoomID
	BidderID  ProfileID
	Amount    int64
	Status    BidStatus
	CreatedAt time.Time

	// Joined fields, present only when the query asked for them.
	Room   *RoomSummary
	Bidder *ProfileSummary
}
