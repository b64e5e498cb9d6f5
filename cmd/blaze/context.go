package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/orveth/blaze/internal/client"
	"github.com/orveth/blaze/internal/config"
	"github.com/orveth/blaze/internal/logging"
	"github.com/orveth/blaze/internal/resolve"
)

// commandContext carries the persistent flag values and lazily resolved
// configuration shared by every subcommand.
type commandContext struct {
	urlFlag     *string
	tokenFlag   *string
	configFlag  *string
	jsonFlag    *bool
	quietFlag   *bool
	verboseFlag *bool

	configOnce sync.Once
	config     config.Config
	configErr  error
}

func newCommandContext(urlFlag, tokenFlag, configFlag *string, jsonFlag, quietFlag, verboseFlag *bool) *commandContext {
	return &commandContext{
		urlFlag:     urlFlag,
		tokenFlag:   tokenFlag,
		configFlag:  configFlag,
		jsonFlag:    jsonFlag,
		quietFlag:   quietFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) resolvedConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.Resolve(*c.urlFlag, *c.tokenFlag, *c.configFlag)
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	if c.verboseFlag != nil && *c.verboseFlag {
		return logging.New(logging.Options{Level: "debug"})
	}
	return logging.NewNop()
}

// apiClient constructs the API client from the resolved configuration.
func (c *commandContext) apiClient() (*client.Client, error) {
	cfg, err := c.resolvedConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.URL, cfg.Token, client.WithLogger(c.logger()))
}

func (c *commandContext) outputMode() (outputMode, error) {
	jsonOut := c.jsonFlag != nil && *c.jsonFlag
	quietOut := c.quietFlag != nil && *c.quietFlag
	switch {
	case jsonOut && quietOut:
		return modeTable, errors.New("--json and --quiet are mutually exclusive")
	case jsonOut:
		return modeJSON, nil
	case quietOut:
		return modeQuiet, nil
	default:
		return modeTable, nil
	}
}

// resolveCardID expands a short card id prefix into the full id. The
// candidate list is fetched fresh, archived cards included so they stay
// addressable; a card deleted between resolution and use surfaces as a
// server-side not-found.
func (c *commandContext) resolveCardID(ctx context.Context, api *client.Client, input string) (string, error) {
	if len(input) >= resolve.FullIDLength {
		return resolve.ID(input, nil)
	}
	cards, err := api.ListCards(ctx, nil, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	return resolve.ID(input, ids)
}

// resolvePlanID expands a short plan id prefix; the server issues the
// same fixed-length ids for plans as for cards.
func (c *commandContext) resolvePlanID(ctx context.Context, api *client.Client, input string) (string, error) {
	if len(input) >= resolve.FullIDLength {
		return resolve.ID(input, nil)
	}
	plans, err := api.ListPlans(ctx, nil)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(plans))
	for i, plan := range plans {
		ids[i] = plan.ID
	}
	return resolve.ID(input, ids)
}
