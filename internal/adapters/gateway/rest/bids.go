package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

// PlaceBid inserts a single bid. Duplicate-bid prevention is entirely the
// backend schema's job.
func (c *Client) PlaceBid(ctx context.Context, bid ports.NewBid) (domain.Bid, error) {
	payload := map[string]any{
		"room_id":   string(bid.RoomID),
		"bidder_id": string(bid.BidderID),
		"amount":    bid.Amount,
		"status":    string(domain.BidStatusPending),
	}

	var schemas []bidSchema
	err := c.doJSON(ctx, request{
		op:      "bid placement",
		method:  http.MethodPost,
		path:    "/rest/v1/bids",
		headers: map[string]string{"Prefer": "return=representation"},
		body:    []any{payload},
	}, &schemas)
	if err != nil {
		return domain.Bid{}, err
	}
	if len(schemas) == 0 {
		return domain.Bid{}, &Error{Kind: KindServer, Message: "insert returned no row"}
	}

	return bidFromSchema(schemas[0]), nil
}

// ListUserBids returns the user's bids newest first with a minimal room
// summary joined in.
func (c *Client) ListUserBids(ctx context.Context, userID domain.ProfileID) ([]domain.Bid, error) {
	query := url.Values{}
	query.Set("select", "*,room:room_id(id,title,location,price,images)")
	query.Set("bidder_id", "eq."+string(userID))
	query.Set("order", "created_at.desc")

	var schemas []bidSchema
	err := c.doJSON(ctx, request{
		op:     "user bid listing",
		method: http.MethodGet,
		path:   "/rest/v1/bids",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	return bidsFromSchemas(schemas), nil
}

// ListRoomBids returns a room's bids highest amount first, surfacing the
// leading bid for landlord review.
func (c *Client) ListRoomBids(ctx context.Context, roomID domain.RoomID) ([]domain.Bid, error) {
	query := url.Values{}
	query.Set("select", "*,bidder:bidder_id(id,full_name,avatar_url)")
	query.Set("room_id", "eq."+string(roomID))
	query.Set("order", "amount.desc")

	var schemas []bidSchema
	err := c.doJSON(ctx, request{
		op:     "room bid listing",
		method: http.MethodGet,
		path:   "/rest/v1/bids",
		query:  query,
	}, &schemas)
	if err != nil {
		return nil, err
	}

	return bidsFromSchemas(schemas), nil
}
