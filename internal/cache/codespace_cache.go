package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecolearn/internal/model"
)

// CodespaceCache mirrors codespace projections in Redis so joins and the code
// generator's uniqueness probe stay off MongoDB. Entries carry a TTL matched
// to the codespace lifetime; Mongo remains the source of truth.
type CodespaceCache interface {
	SetView(ctx context.Context, code string, view *model.CodespaceView) error
	GetView(ctx context.Context, code string) (*model.CodespaceView, error)
	Exists(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, code string) error
}

type codespaceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCodespaceCache(client *redis.Client, ttl time.Duration) CodespaceCache {
	return &codespaceCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *codespaceCache) key(code string) string {
	return fmt.Sprintf("codespace:%s", code)
}

func (c *codespaceCache) SetView(ctx context.Context, code string, view *model.CodespaceView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(code), data, c.ttl).Err()
}

func (c *codespaceCache) GetView(ctx context.Context, code string) (*model.CodespaceView, error) {
	data, err := c.client.Get(ctx, c.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view model.CodespaceView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *codespaceCache) Exists(ctx context.Context, code string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(code)).Result()
	return n > 0, err
}

func (c *codespaceCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, c.key(code)).Err()
}
