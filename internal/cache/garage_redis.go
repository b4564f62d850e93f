// Package cache keeps garage lookups in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

const (
	listKey      = "garages:all"
	garagePrefix = "garages:"
)

// GarageCache stores garages as JSON. Redis failures are logged and treated
// as misses.
type GarageCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func NewGarageCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *GarageCache {
	return &GarageCache{rdb: rdb, ttl: ttl, log: log}
}

func garageKey(id uint) string {
	return fmt.Sprintf("%s%d", garagePrefix, id)
}

func (c *GarageCache) GetList(ctx context.Context) ([]models.Garage, bool) {
	var garages []models.Garage
	if !c.get(ctx, listKey, &garages) {
		return nil, false
	}
	return garages, true
}

func (c *GarageCache) SetList(ctx context.Context, garages []models.Garage) {
	c.set(ctx, listKey, garages)
}

func (c *GarageCache) Get(ctx context.Context, id uint) (*models.Garage, bool) {
	var g models.Garage
	if !c.get(ctx, garageKey(id), &g) {
		return nil, false
	}
	return &g, true
}

func (c *GarageCache) Set(ctx context.Context, g *models.Garage) {
	c.set(ctx, garageKey(g.ID), g)
}

// Invalidate drops the list entry. Per-garage entries never change after
// registration and are left to expire.
func (c *GarageCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, listKey).Err(); err != nil {
		c.log.Warn("garage cache invalidate failed", "error", err)
	}
}

func (c *GarageCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("garage cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("garage cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *GarageCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("garage cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("garage cache write failed", "key", key, "error", err)
	}
}

// Noop is used when redis is not configured.
type Noop struct{}

func (Noop) GetList(context.Context) ([]models.Garage, bool)  { return nil, false }
func (Noop) SetList(context.Context, []models.Garage)         {}
func (Noop) Get(context.Context, uint) (*models.Garage, bool) { return nil, false }
func (Noop) Set(context.Context, *models.Garage)              {}
func (Noop) Invalidate(context.Context)                       {}

var (
	_ garage.Cache = (*GarageCache)(nil)
	_ garage.Cache = Noop{}
)
