package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

func (c *Client) GetProfile(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+string(id))

	var schemas []profileSchema
	err := c.doJSON(ctx, request{
		op:     "profile fetch",
		method: http.MethodGet,
		path:   "/rest/v1/profiles",
		query:  query,
	}, &schemas)
	if err != nil {
		return domain.Profile{}, err
	}
	if len(schemas) == 0 {
		return domain.Profile{}, domain.ErrProfileNotFound
	}

	return profileFromSchema(schemas[0]), nil
}

func (c *Client) UpdateProfile(ctx context.Context, id domain.ProfileID, update ports.ProfileUpdate) (domain.Profile, error) {
	payload := map[string]any{}
	if update.FullName != nil {
		payload["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		payload["phone"] = *update.Phone
	}
	if update.AvatarURL != nil {
		payload["avatar_url"] = *update.AvatarURL
	}
	if update.Institution != nil {
		payload["institution"] = *update.Institution
	}

	query := url.Values{}
	query.Set("id", "eq."+string(id))

	var schemas []profileSchema
	err := c.doJSON(ctx, request{
		op:      "profile update",
		method:  http.MethodPatch,
		path:    "/rest/v1/profiles",
		query:   query,
		headers: map[string]string{"Prefer": "return=representation"},
		body:    payload,
	}, &schemas)
	if err != nil {
		return domain.Profile{}, err
	}
	if len(schemas) == 0 {
		return domain.Profile{}, domain.ErrProfileNotFound
	}

	return profileFromSchema(schemas[0]), nil
}

// ListRoommates returns every profile except the requesting user's, newest
// first, for the roommate directory.
func (c *Client) ListRoommates(ctx context.Context, exclude domain.ProfileID) ([]domain.Profile, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "neq."+string(exclude))
	query.Set("order", "created_at.desc")

	var schemas []profileSchema
	err := c.doJSON(ctx, request{
		op:     "roommate listing",
		method: http.MethodGet,
		path:   "/rest/v1/profiles",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(schemas))
	for _, s := range schemas {
		profiles = append(profiles, profileFromSchema(s))
	}
	return profiles, nil
}
