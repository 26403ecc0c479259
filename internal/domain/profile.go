package domain

import (
	"strings"
	"time"
)

type ProfileID string

type Profile struct {
	ID          ProfileID
	FullName    string
	Email       string
	Phone       string
	AvatarURL   string
	Institution string
	Verified    bool
	CreatedAt   time.Time
}

// ProfileSummary is the minimal joined shape the backend embeds alongside
// rooms, bids and messages.
type ProfileSummary struct {
	ID        ProfileID
	FullName  string
	AvatarURL string
}

// Initials derives the one- or two-letter monogram shown where no avatar is
// available.
func (p Profile) Initials() string {
	fields := strings.Fields(p.FullName)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(fields[0][:1])
	default:
		return strings.ToUpper(fields[0][:1] + fields[len(fields)-1][:1])
	}
}
