package ports

import (
	"context"
	"io"

	"github.com/fharpR4/roomie-app/internal/domain"
)

// Credentials for password sign-in.
type Credentials struct {
	Email    string
	Password string
}

// SignUpRequest carries everything the backend needs to create the auth user
// and its profile row.
type SignUpRequest struct {
	Email       string
	Password    string
	FullName    string
	Phone       string
	Institution string
}

// NewBid is a bid insert payload. The backend schema is the only validator;
// the client does not prevent duplicate bids.
type NewBid struct {
	RoomID   domain.RoomID
	BidderID domain.ProfileID
	Amount   int64
}

// NewMessage is a message insert payload.
type NewMessage struct {
	SenderID   domain.ProfileID
	ReceiverID domain.ProfileID
	Body       string
}

// ProfileUpdate holds the mutable profile fields; nil means leave unchanged.
type ProfileUpdate struct {
	FullName    *string
	Phone       *string
	AvatarURL   *string
	Institution *string
}

// Gateway is the façade over the remote data service. Every call is
// attempt-once: no retries, timeout policy belongs to the transport.
type Gateway interface {
	// Auth.
	SignUp(ctx context.Context, req SignUpRequest) (domain.Session, error)
	SignIn(ctx context.Context, creds Credentials) (domain.Session, error)
	SignOut(ctx context.Context, token string) error
	FetchSession(ctx context.Context, token string) (domain.Profile, error)
	VerifyOTP(ctx context.Context, email, code string) (domain.Session, error)

	// Profiles.
	GetProfile(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
	UpdateProfile(ctx context.Context, id domain.ProfileID, update ProfileUpdate) (domain.Profile, error)
	ListRoommates(ctx context.Context, exclude domain.ProfileID) ([]domain.Profile, error)

	// Rooms.
	ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error)
	CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	SearchRooms(ctx context.Context, term string) ([]domain.Room, error)

	// Bids.
	PlaceBid(ctx context.Context, bid NewBid) (domain.Bid, error)
	ListUserBids(ctx context.Context, userID domain.ProfileID) ([]domain.Bid, error)
	ListRoomBids(ctx context.Context, roomID domain.RoomID) ([]domain.Bid, error)

	// Messages.
	SendMessage(ctx context.Context, msg NewMessage) (domain.Message, error)
	ListConversations(ctx context.Context, userID domain.ProfileID) ([]domain.Message, error)

	// Notifications.
	ListNotifications(ctx context.Context, userID domain.ProfileID) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id domain.NotificationID) error

	// Storage.
	Upload(ctx context.Context, bucket, path string, body io.Reader, size int64) (string, error)
}
