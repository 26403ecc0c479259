package domain

// Conversation is one per-counterpart thread assembled client-side from the
// flat newest-first message listing; the backend does no grouping.
type Conversation struct {
	Counterpart ProfileSummary
	LastMessage Message
	Messages    []Message
	Unread      int
}

// GroupConversations buckets msgs into threads keyed by counterpart,
// preserving the input order inside each thread and across threads. msgs is
// expected newest-first, so the first message seen for a counterpart is the
// thread's last message. Unread counts messages addressed to userID that have
// not been read.
func GroupConversations(userID ProfileID, msgs []Message) []Conversation {
	index := make(map[ProfileID]int)
	conversations := make([]Conversation, 0)

	for _, msg := range msgs {
		counterpart := msg.Counterpart(userID)

		i, ok := index[counterpart.ID]
		if !ok {
			i = len(conversations)
			index[counterpart.ID] = i
			conversations = append(conversations, Conversation{
				Counterpart: counterpart,
				LastMessage: msg,
			})
		}

		conversations[i].Messages = append(conversations[i].Messages, msg)
		if msg.ReceiverID == userID && !msg.Read {
			conversations[i].Unread++
		}
	}

	return conversations
}
