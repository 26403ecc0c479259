package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fharpR4/roomie-app/internal/domain"
)

const (
	roomSelect  = "*,landlord:landlord_id(id,full_name,avatar_url),bids(count)"
	searchLimit = 20
)

// ListRooms returns available rooms newest first. Filter fields compose
// conjunctively; a text query adds an OR-match across title, location and
// city inside that conjunction.
func (c *Client) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("select", roomSelect)
	query.Set("is_available", "eq.true")
	query.Set("order", "created_at.desc")

	if filter.City != "" {
		query.Set("city", "eq."+filter.City)
	}
	if filter.RoomType != "" {
		query.Set("room_type", "eq."+string(filter.RoomType))
	}
	if filter.MinPrice > 0 {
		query.Add("price", "gte."+strconv.FormatInt(filter.MinPrice, 10))
	}
	if filter.MaxPrice > 0 {
		query.Add("price", "lte."+strconv.FormatInt(filter.MaxPrice, 10))
	}
	if filter.Query != "" {
		query.Set("or", textMatch(filter.Query))
	}

	var schemas []roomSchema
	err := c.doJSON(ctx, request{
		op:     "room listing",
		method: http.MethodGet,
		path:   "/rest/v1/rooms",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	return roomsFromSchemas(schemas), nil
}

// SearchRooms matches term case-insensitively against title, location and
// city, available rooms only, capped at 20 results.
func (c *Client) SearchRooms(ctx context.Context, term string) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("or", textMatch(term))
	query.Set("is_available", "eq.true")
	query.Set("limit", strconv.Itoa(searchLimit))

	var schemas []roomSchema
	err := c.doJSON(ctx, request{
		op:     "room search",
		method: http.MethodGet,
		path:   "/rest/v1/rooms",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	return roomsFromSchemas(schemas), nil
}

func (c *Client) GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	query := url.Values{}
	query.Set("select", roomSelect)
	query.Set("id", "eq."+string(id))

	var schemas []roomSchema
	err := c.doJSON(ctx, request{
		op:     "room fetch",
		method: http.MethodGet,
		path:   "/rest/v1/rooms",
		query:  query,
	}, &schemas)
	if err != nil {
		return domain.Room{}, err
	}
	if len(schemas) == 0 {
		return domain.Room{}, domain.ErrRoomNotFound
	}

	return roomFromSchema(schemas[0]), nil
}

func (c *Client) CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	payload := map[string]any{
		"landlord_id":  string(room.LandlordID),
		"title":        room.Title,
		"description":  room.Description,
		"location":     room.Location,
		"city":         room.City,
		"price":        room.Price,
		"room_type":    string(room.RoomType),
		"images":       room.Images,
		"is_available": true,
	}

	var schemas []roomSchema
	err := c.doJSON(ctx, request{
		op:      "room create",
		method:  http.MethodPost,
		path:    "/rest/v1/rooms",
		headers: map[string]string{"Prefer": "return=representation"},
		body:    []any{payload},
	}, &schemas)
	if err != nil {
		return domain.Room{}, err
	}
	if len(schemas) == 0 {
		return domain.Room{}, &Error{Kind: KindServer, Message: "insert returned no row"}
	}

	return roomFromSchema(schemas[0]), nil
}

func textMatch(term string) string {
	return fmt.Sprintf("(title.ilike.*%[1]s*,location.ilike.*%[1]s*,city.ilike.*%[1]s*)", term)
}
