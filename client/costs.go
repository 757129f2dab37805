package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/db"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

const maxCostCountries = 20

var (
	// ErrNoCountries is returned when comparing with no selection.
	ErrNoCountries = errors.New("please select at least one country")

	// ErrTooManyCountries caps the comparison size.
	ErrTooManyCountries = errors.New("please select maximum 20 countries for better performance")
)

const costInputPrefKey = "cost_input"

// CostsController runs the cost-of-doing-business comparison tool.
type CostsController struct {
	api   *api.Client
	cache *db.ClientDB
	pub   Publisher
}

// NewCostsController wires the cost tool.
func NewCostsController(apiClient *api.Client, cache *db.ClientDB, pub Publisher) *CostsController {
	return &CostsController{api: apiClient, cache: cache, pub: pub}
}

// LoadCountries publishes the selectable country list, plus the last
// inputs the user compared with, if any were saved.
func (c *CostsController) LoadCountries(ctx context.Context) error {
	countries, err := c.api.Countries(ctx)
	if err != nil {
		log.Printf("Failed to load countries: %v", err)
		return err
	}
	c.pub.Publish(protocol.TypeCountries, countries)

	if last := c.LastInput(); last != nil {
		c.pub.Publish(protocol.TypeCostResults, protocol.CostResultsEvent{LastInput: last})
	}
	return nil
}

// Compare validates the selection, runs the server-side comparison and
// publishes the per-country estimates. The inputs are remembered for
// the next visit.
func (c *CostsController) Compare(ctx context.Context, input models.CostInput) error {
	if len(input.Countries) == 0 {
		toast(c.pub, levelError, ErrNoCountries.Error())
		return ErrNoCountries
	}
	if len(input.Countries) > maxCostCountries {
		toast(c.pub, levelError, ErrTooManyCountries.Error())
		return ErrTooManyCountries
	}

	estimates, err := c.api.CompareCosts(ctx, input)
	if err != nil {
		toast(c.pub, levelError, "Failed to compare costs")
		return err
	}

	c.pub.Publish(protocol.TypeCostResults, protocol.CostResultsEvent{Estimates: estimates})
	toast(c.pub, levelSuccess, fmt.Sprintf("Cost comparison completed for %d countries", len(estimates)))

	if c.cache != nil {
		raw, err := json.Marshal(input)
		if err == nil {
			if err := c.cache.SetPreference(costInputPrefKey, string(raw)); err != nil {
				log.Printf("Failed to save cost inputs: %v", err)
			}
		}
	}
	return nil
}

// LastInput returns the previously saved comparison inputs, nil if none.
func (c *CostsController) LastInput() *models.CostInput {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.GetPreference(costInputPrefKey)
	if err != nil || raw == "" {
		return nil
	}
	var input models.CostInput
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return nil
	}
	return &input
}
