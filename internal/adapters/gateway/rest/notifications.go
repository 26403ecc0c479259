package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fharpR4/roomie-app/internal/domain"
)

const notificationLimit = 20

func (c *Client) ListNotifications(ctx context.Context, userID domain.ProfileID) ([]domain.Notification, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+string(userID))
	query.Set("order", "created_at.desc")
	query.Set("limit", strconv.Itoa(notificationLimit))

	var schemas []notificationSchema
	err := c.doJSON(ctx, request{
		op:     "notification listing",
		method: http.MethodGet,
		path:   "/rest/v1/notifications",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(schemas))
	for _, s := range schemas {
		notifications = append(notifications, notificationFromSchema(s))
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id domain.NotificationID) error {
	query := url.Values{}
	query.Set("id", "eq."+string(id))

	return c.doJSON(ctx, request{
		op:     "notification update",
		method: http.MethodPatch,
		path:   "/rest/v1/notifications",
		query:  query,
		body:   map[string]any{"is_read": true},
	}, nil)
}
