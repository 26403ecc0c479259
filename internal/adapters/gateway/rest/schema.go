package rest

import (
	"time"

	"github.com/fharpR4/roomie-app/internal/domain"
)

// Wire shapes follow the backend's column names; joined objects appear under
// their select alias.

type profileSchema struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	AvatarURL   string    `json:"avatar_url"`
	Institution string    `json:"institution"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

type profileSummarySchema struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

type countSchema struct {
	Count int `json:"count"`
}

type roomSchema struct {
	ID          string                `json:"id"`
	LandlordID  string                `json:"landlord_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	City        string                `json:"city"`
	Price       int64                 `json:"price"`
	RoomType    string                `json:"room_type"`
	Images      []string              `json:"images"`
	Available   bool                  `json:"is_available"`
	CreatedAt   time.Time             `json:"created_at"`
	Landlord    *profileSummarySchema `json:"landlord"`
	Bids        []countSchema         `json:"bids"`
}

type roomSummarySchema struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Price    int64    `json:"price"`
	Images   []string `json:"images"`
}

type bidSchema struct {
	ID        string                `json:"id"`
	RoomID    string                `json:"room_id"`
	BidderID  string                `json:"bidder_id"`
	Amount    int64                 `json:"amount"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	Room      *roomSummarySchema    `json:"room"`
	Bidder    *profileSummarySchema `json:"bidder"`
}

type messageSchema struct {
	ID         string                `json:"id"`
	SenderID   string                `json:"sender_id"`
	ReceiverID string                `json:"receiver_id"`
	Body       string                `json:"body"`
	Read       bool                  `json:"is_read"`
	CreatedAt  time.Time             `json:"created_at"`
	Sender     *profileSummarySchema `json:"sender"`
	Receiver   *profileSummarySchema `json:"receiver"`
}

type notificationSchema struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func profileFromSchema(s profileSchema) domain.Profile {
	return domain.Profile{
		ID:          domain.ProfileID(s.ID),
		FullName:    s.FullName,
		Email:       s.Email,
		Phone:       s.Phone,
		AvatarURL:   s.AvatarURL,
		Institution: s.Institution,
		Verified:    s.Verified,
		CreatedAt:   s.CreatedAt,
	}
}

func summaryFromSchema(s *profileSummarySchema) *domain.ProfileSummary {
	if s == nil {
		return nil
	}
	return &domain.ProfileSummary{
		ID:        domain.ProfileID(s.ID),
		FullName:  s.FullName,
		AvatarURL: s.AvatarURL,
	}
}

func roomFromSchema(s roomSchema) domain.Room {
	room := domain.Room{
		ID:          domain.RoomID(s.ID),
		LandlordID:  domain.ProfileID(s.LandlordID),
		Title:       s.Title,
		Description: s.Description,
		Location:    s.Location,
		City:        s.City,
		Price:       s.Price,
		RoomType:    domain.RoomType(s.RoomType),
		Images:      s.Images,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		Landlord:    summaryFromSchema(s.Landlord),
	}
	if len(s.Bids) > 0 {
		room.BidCount = s.Bids[0].Count
	}
	return room
}

func roomsFromSchemas(schemas []roomSchema) []domain.Room {
	rooms := make([]domain.Room, 0, len(schemas))
	for _, s := range schemas {
		rooms = append(rooms, roomFromSchema(s))
	}
	return rooms
}

func roomSummaryFromSchema(s *roomSummarySchema) *domain.RoomSummary {
	if s == nil {
		return nil
	}
	return &domain.RoomSummary{
		ID:       domain.RoomID(s.ID),
		Title:    s.Title,
		Location: s.Location,
		Price:    s.Price,
		Images:   s.Images,
	}
}

func bidFromSchema(s bidSchema) domain.Bid {
	return domain.Bid{
		ID:        domain.BidID(s.ID),
		RoomID:    domain.RoomID(s.RoomID),
		BidderID:  domain.ProfileID(s.BidderID),
		Amount:    s.Amount,
		Status:    domain.BidStatus(s.Status),
		CreatedAt: s.CreatedAt,
		Room:      roomSummaryFromSchema(s.Room),
		Bidder:    summaryFromSchema(s.Bidder),
	}
}

func bidsFromSchemas(schemas []bidSchema) []domain.Bid {
	bids := make([]domain.Bid, 0, len(schemas))
	for _, s := range schemas {
		bids = append(bids, bidFromSchema(s))
	}
	return bids
}

func messageFromSchema(s messageSchema) domain.Message {
	return domain.Message{
		ID:         domain.MessageID(s.ID),
		SenderID:   domain.ProfileID(s.SenderID),
		ReceiverID: domain.ProfileID(s.ReceiverID),
		Body:       s.Body,
		Read:       s.Read,
		CreatedAt:  s.CreatedAt,
		Sender:     summaryFromSchema(s.Sender),
		Receiver:   summaryFromSchema(s.Receiver),
	}
}

func notificationFromSchema(s notificationSchema) domain.Notification {
	return domain.Notification{
		ID:        domain.NotificationID(s.ID),
		UserID:    domain.ProfileID(s.UserID),
		Title:     s.Title,
		Body:      s.Body,
		Read:      s.Read,
		CreatedAt: s.CreatedAt,
	}
}
