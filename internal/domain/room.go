package domain

import "time"

type RoomID string

type RoomType string

const (
	RoomTypeSingle      RoomType = "single"
	RoomTypeShared      RoomType = "shared"
	RoomTypeSelfContain RoomType = "self_contain"
)

type Room struct {
	ID          RoomID
	LandlordID  ProfileID
	Title       string
	Description string
	Location    string
	City        string
	Price       int64
	RoomType    RoomType
	Images      []string
	Available   bool
	CreatedAt   time.Time

	// Joined fields, present only when the query asked for them.
	Landlord *ProfileSummary
	BidCount int
}

// RoomSummary is the minimal joined shape embedded in a user's bid listing.
type RoomSummary struct {
	ID       RoomID
	Title    string
	Location string
	Price    int64
	Images   []string
}

// RoomFilter composes conjunctively: every set field must hold. Query, when
// non-empty, expands to a case-insensitive substring match across title,
// location and city (OR within the match, AND with the rest).
type RoomFilter struct {
	City     string
	RoomType RoomType
	MinPrice int64
	MaxPrice int64
	Query    string
}
