package client

import (
	"context"
	"net/url"

	"github.com/orveth/blaze/internal/api"
)

// ListPlans fetches plans, optionally narrowed server-side by status.
func (c *Client) ListPlans(ctx context.Context, status *api.PlanStatus) ([]api.Plan, error) {
	query := url.Values{}
	if status != nil {
		query.Set("status", status.String())
	}

	var plans []api.Plan
	if err := c.get(ctx, "/api/plans", query, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan fetches a single plan by full id.
func (c *Client) GetPlan(ctx context.Context, id string) (api.Plan, error) {
	var plan api.Plan
	err := c.get(ctx, "/api/plans/"+id, nil, &plan)
	return plan, err
}

// CreatePlan creates a new plan.
func (c *Client) CreatePlan(ctx context.Context, create api.PlanCreate) (api.Plan, error) {
	var plan api.Plan
	err := c.post(ctx, "/api/plans", create, &plan)
	return plan, err
}

// UpdatePlan updates the provided fields of a plan.
func (c *Client) UpdatePlan(ctx context.Context, id string, update api.PlanUpdate) (api.Plan, error) {
	var plan api.Plan
	err := c.patch(ctx, "/api/plans/"+id, update, &plan)
	return plan, err
}

// DeletePlan deletes a plan. The server answers 204 on success.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/plans/"+id, nil)
}

// AddPlanFile attaches a file to a plan and returns the updated plan.
func (c *Client) AddPlanFile(ctx context.Context, planID string, file api.PlanFileCreate) (api.Plan, error) {
	var plan api.Plan
	err := c.post(ctx, "/api/plans/"+planID+"/files", file, &plan)
	return plan, err
}

// GetPlanFile fetches one file from a plan.
func (c *Client) GetPlanFile(ctx context.Context, planID, filename string) (api.PlanFile, error) {
	var file api.PlanFile
	err := c.get(ctx, "/api/plans/"+planID+"/files/"+filename, nil, &file)
	return file, err
}

// UpdatePlanFile renames or rewrites one file and returns the updated plan.
func (c *Client) UpdatePlanFile(ctx context.Context, planID, filename string, update api.PlanFileUpdate) (api.Plan, error) {
	var plan api.Plan
	err := c.patch(ctx, "/api/plans/"+planID+"/files/"+filename, update, &plan)
	return plan, err
}

// DeletePlanFile removes one file and returns the updated plan.
func (c *Client) DeletePlanFile(ctx context.Context, planID, filename string) (api.Plan, error) {
	var plan api.Plan
	err := c.delete(ctx, "/api/plans/"+planID+"/files/"+filename, &plan)
	return plan, err
}
