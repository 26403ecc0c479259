package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{name: "two names", fullName: "Ada Obi", want: "AO"},
		{name: "three names uses first and last", fullName: "Ada Ngozi Obi", want: "AO"},
		{name: "single name", fullName: "Ada", want: "A"},
		{name: "empty", fullName: "", want: ""},
		{name: "lowercase input", fullName: "ada obi", want: "AO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Profile{FullName: tt.fullName}.Initials())
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	t.Parallel()

	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Token: "tok"}.Authenticated())
}

func TestPageValidity(t *testing.T) {
	t.Parallel()

	for _, page := range Pages() {
		assert.True(t, page.Valid(), string(page))
	}
	assert.False(t, Page("dashboard").Valid())
	assert.False(t, Page("").Valid())
}

func TestGroupConversations(t *testing.T) {
	t.Parallel()

	me := ProfileID("me")
	sarah := &ProfileSummary{ID: "sarah", FullName: "Sarah Johnson"}
	mike := &ProfileSummary{ID: "mike", FullName: "Michael Chen"}
	at := func(minutesAgo int) time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC).Add(-time.Duration(minutesAgo) * time.Minute)
	}

	// Newest first, as the gateway returns them.
	msgs := []Message{
		{ID: "m1", SenderID: "sarah", ReceiverID: me, Body: "Is the room still available?", Sender: sarah, CreatedAt: at(2)},
		{ID: "m2", SenderID: me, ReceiverID: "mike", Body: "No problem!", Receiver: mike, CreatedAt: at(60)},
		{ID: "m3", SenderID: "sarah", ReceiverID: me, Body: "Hello!", Read: true, Sender: sarah, CreatedAt: at(90)},
		{ID: "m4", SenderID: "mike", ReceiverID: me, Body: "Thanks for the info!", Sender: mike, CreatedAt: at(120)},
	}

	conversations := GroupConversations(me, msgs)
	require.Len(t, conversations, 2)

	assert.Equal(t, "Sarah Johnson", conversations[0].Counterpart.FullName)
	assert.Equal(t, MessageID("m1"), conversations[0].LastMessage.ID)
	assert.Len(t, conversations[0].Messages, 2)
	assert.Equal(t, 1, conversations[0].Unread)

	assert.Equal(t, "Michael Chen", conversations[1].Counterpart.FullName)
	assert.Equal(t, MessageID("m2"), conversations[1].LastMessage.ID)
	assert.Equal(t, 1, conversations[1].Unread)
}

func TestGroupConversationsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupConversations("me", nil))
}

func TestMessageCounterpartWithoutJoins(t *testing.T) {
	t.Parallel()

	msg := Message{SenderID: "me", ReceiverID: "them"}
	assert.Equal(t, ProfileID("them"), msg.Counterpart("me").ID)
	assert.Equal(t, ProfileID("me"), msg.Counterpart("them").ID)
}
