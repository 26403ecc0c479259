package domain

import "time"

type MessageID string

type Message struct {
	ID         MessageID
	SenderID   ProfileID
	ReceiverID ProfileID
	Body       string
	Read       bool
	CreatedAt  time.Time

	Sender   *ProfileSummary
	Receiver *ProfileSummary
}

// Counterpart returns the other party of the message from userID's point of
// view, preferring the joined summary when present.
func (m Message) Counterpart(userID ProfileID) ProfileSummary {
	if m.SenderID == userID {
		if m.Receiver != nil {
			return *m.Receiver
		}
		return ProfileSummary{ID: m.ReceiverID}
	}
	if m.Sender != nil {
		return *m.Sender
	}
	return ProfileSummary{ID: m.SenderID}
}
