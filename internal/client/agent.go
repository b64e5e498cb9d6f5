package client

import (
	"context"
	"fmt"

	"github.com/orveth/blaze/internal/api"
)

// ListAgentReady fetches the cards that are assignable and ready for
// agent work.
func (c *Client) ListAgentReady(ctx context.Context) ([]api.Card, error) {
	var cards []api.Card
	if err := c.get(ctx, "/api/agent/ready", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateAgentStatus changes a card's agent status. blockedReason is only
// meaningful when status is blocked.
func (c *Client) UpdateAgentStatus(ctx context.Context, id string, status api.AgentStatus, blockedReason string) (api.Card, error) {
	var card api.Card
	req := api.AgentStatusRequest{Status: status, BlockedReason: blockedReason}
	err := c.patch(ctx, "/api/cards/"+id+"/agent-status", req, &card)
	return card, err
}

// AddAgentProgress appends a message to a card's agent progress log.
func (c *Client) AddAgentProgress(ctx context.Context, id, message string) (api.Card, error) {
	var card api.Card
	req := api.AgentProgressRequest{Message: message}
	err := c.post(ctx, "/api/cards/"+id+"/agent-progress", req, &card)
	return card, err
}

// ToggleCriterion sets the checked state of the acceptance criterion at
// index.
func (c *Client) ToggleCriterion(ctx context.Context, id string, index int, checked bool) (api.Card, error) {
	var card api.Card
	path := fmt.Sprintf("/api/cards/%s/criteria/%d/check", id, index)
	err := c.post(ctx, path, api.CriterionCheckRequest{Checked: checked}, &card)
	return card, err
}
