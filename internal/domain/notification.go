package domain

import "time"

type NotificationID string

type Notification struct {
	ID        NotificationID
	UserID    ProfileID
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
