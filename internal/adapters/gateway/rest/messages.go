package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

func (c *Client) SendMessage(ctx context.Context, msg ports.NewMessage) (domain.Message, error) {
	payload := map[string]any{
		"sender_id":   string(msg.SenderID),
		"receiver_id": string(msg.ReceiverID),
		"body":        msg.Body,
		"is_read":     false,
	}

	var schemas []messageSchema
	err := c.doJSON(ctx, request{
		op:      "message send",
		method:  http.MethodPost,
		path:    "/rest/v1/messages",
		headers: map[string]string{"Prefer": "return=representation"},
		body:    []any{payload},
	}, &schemas)
	if err != nil {
		return domain.Message{}, err
	}
	if len(schemas) == 0 {
		return domain.Message{}, &Error{Kind: KindServer, Message: "insert returned no row"}
	}

	return messageFromSchema(schemas[0]), nil
}

// ListConversations returns every message where the user is sender or
// receiver, newest first. Grouping into per-counterpart threads is the
// caller's job (domain.GroupConversations).
func (c *Client) ListConversations(ctx context.Context, userID domain.ProfileID) ([]domain.Message, error) {
	query := url.Values{}
	query.Set("select", "*,sender:sender_id(id,full_name,avatar_url),receiver:receiver_id(id,full_name,avatar_url)")
	query.Set("or", fmt.Sprintf("(sender_id.eq.%[1]s,receiver_id.eq.%[1]s)", userID))
	query.Set("order", "created_at.desc")

	var schemas []messageSchema
	err := c.doJSON(ctx, request{
		op:     "conversation listing",
		method: http.MethodGet,
		path:   "/rest/v1/messages",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(schemas))
	for _, s := range schemas {
		messages = append(messages, messageFromSchema(s))
	}
	return messages, nil
}
