package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/pkg/metrics"
)

// PriceCache keeps every known price record per fuel type. The current price is picked on read,
// so a record that expires between refreshes stops being used right away.
type PriceCache struct {
	source PriceSource

	mu     sync.RWMutex
	prices map[int64][]entity.FuelPrice
}

func NewPriceCache(source PriceSource) *PriceCache {
	return &PriceCache{
		source: source,
		prices: make(map[int64][]entity.FuelPrice),
	}
}

// Refresh replaces the cache with the backend's full price list. On failure the old cache stays.
func (c *PriceCache) Refresh(ctx context.Context) error {
	list, err := c.source.FuelPrices(ctx)
	if err != nil {
		metrics.ObservePriceRefresh("error", 0)
		return fmt.Errorf("load fuel prices: %w", err)
	}

	byType := make(map[int64][]entity.FuelPrice)
	for _, p := range list {
		byType[p.FuelTypeID] = append(byType[p.FuelTypeID], p)
	}

	c.mu.Lock()
	c.prices = byType
	c.mu.Unlock()

	metrics.ObservePriceRefresh(metrics.ResultSuccess, len(byType))

	return nil
}

// Current returns the price in force for the fuel type, loading that type from the backend on a miss.
func (c *PriceCache) Current(ctx context.Context, fuelTypeID int64) (entity.FuelPrice, bool, error) {
	now := time.Now()

	c.mu.RLock()
	price, ok := entity.CurrentPrice(c.prices[fuelTypeID], fuelTypeID, now)
	c.mu.RUnlock()

	if ok {
		return price, true, nil
	}

	list, err := c.source.FuelPricesByType(ctx, fuelTypeID)
	if err != nil {
		return entity.FuelPrice{}, false, fmt.Errorf("load prices of fuel type %d: %w", fuelTypeID, err)
	}

	c.mu.Lock()
	c.prices[fuelTypeID] = list
	c.mu.Unlock()

	price, ok = entity.CurrentPrice(list, fuelTypeID, now)

	return price, ok, nil
}
