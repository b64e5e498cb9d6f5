package client

import (
	"context"
	"errors"
	"net/url"

	"github.com/orveth/blaze/internal/api"
)

// Health checks API connectivity. The request carries no Authorization
// header; the health endpoint is the one unauthenticated path.
func (c *Client) Health(ctx context.Context) (api.HealthResponse, error) {
	var resp api.HealthResponse
	err := c.do(ctx, "GET", "/health", nil, nil, &resp, requestOptions{skipAuth: true})
	return resp, err
}

// Login exchanges the board password for an API token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", errors.New("password required")
	}
	var resp api.LoginResponse
	if err := c.post(ctx, "/api/auth", api.LoginRequest{Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListCards fetches cards, optionally narrowed server-side by column.
// Archived cards are excluded unless includeArchived is set.
func (c *Client) ListCards(ctx context.Context, column *api.Column, includeArchived bool) ([]api.Card, error) {
	query := url.Values{}
	if column != nil {
		query.Set("column", column.String())
	}
	if includeArchived {
		query.Set("include_archived", "true")
	}

	var cards []api.Card
	if err := c.get(ctx, "/api/cards", query, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCard fetches a single card by full id.
func (c *Client) GetCard(ctx context.Context, id string) (api.Card, error) {
	var card api.Card
	err := c.get(ctx, "/api/cards/"+id, nil, &card)
	return card, err
}

// CreateCard creates a new card.
func (c *Client) CreateCard(ctx context.Context, create api.CardCreate) (api.Card, error) {
	var card api.Card
	err := c.post(ctx, "/api/cards", create, &card)
	return card, err
}

// UpdateCard updates the provided fields of a card.
func (c *Client) UpdateCard(ctx context.Context, id string, update api.CardUpdate) (api.Card, error) {
	var card api.Card
	err := c.put(ctx, "/api/cards/"+id, update, &card)
	return card, err
}

// ClearCardDueDate removes a card's due date. CardUpdate omits nil
// fields, so the explicit null is sent as a raw body instead.
func (c *Client) ClearCardDueDate(ctx context.Context, id string) (api.Card, error) {
	var card api.Card
	err := c.put(ctx, "/api/cards/"+id, map[string]any{"due_date": nil}, &card)
	return card, err
}

// MoveCard moves a card to another column.
func (c *Client) MoveCard(ctx context.Context, id string, column api.Column) (api.Card, error) {
	var card api.Card
	err := c.patch(ctx, "/api/cards/"+id+"/move", api.CardMove{Column: column}, &card)
	return card, err
}

// DeleteCard deletes a card. The server answers 204 on success.
func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/cards/"+id, nil)
}

// ArchiveCard archives a card, hiding it from default listings.
func (c *Client) ArchiveCard(ctx context.Context, id string) (api.Card, error) {
	var card api.Card
	err := c.patch(ctx, "/api/cards/"+id+"/archive", nil, &card)
	return card, err
}

// UnarchiveCard restores an archived card.
func (c *Client) UnarchiveCard(ctx context.Context, id string) (api.Card, error) {
	var card api.Card
	err := c.patch(ctx, "/api/cards/"+id+"/unarchive", nil, &card)
	return card, err
}

// Stats fetches the server-computed board statistics.
func (c *Client) Stats(ctx context.Context) (api.BoardStats, error) {
	var stats api.BoardStats
	err := c.get(ctx, "/api/board/stats", nil, &stats)
	return stats, err
}
