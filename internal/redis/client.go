package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"estate_crm/internal/models"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("not found in cache")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Invoice draft sessions. One key per editing dialog; the TTL is the dialog
// lifetime, so an abandoned draft expires on its own.

func (c *Client) SetDraft(ctx context.Context, sessionID string, draft *models.InvoiceDraft, ttl time.Duration) error {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return c.rdb.Set(ctx, "draft:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetDraft(ctx context.Context, sessionID string) (*models.InvoiceDraft, error) {
	val, err := c.rdb.Get(ctx, "draft:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft models.InvoiceDraft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (c *Client) DeleteDraft(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, "draft:"+sessionID).Err()
}

// Dashboard summary cache. Short TTL; the summary is cheap to rebuild.

func (c *Client) SetDashboardSummary(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return c.rdb.Set(ctx, "dashboard:"+key, jsonData, ttl).Err()
}

func (c *Client) GetDashboardSummary(ctx context.Context, key string, dest interface{}) error {
	val, err := c.rdb.Get(ctx, "dashboard:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get summary: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteDashboardSummary(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, "dashboard:"+key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
