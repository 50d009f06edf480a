package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecolearn/internal/model"
)

// AdminSession records that a user explicitly entered the admin portal and
// which organization type they declared. It exists only for the session TTL.
// It is a gating step, not an authorization grant: the role check still runs
// on every protected request.
type AdminSession struct {
	UserID  string        `json:"userId"`
	OrgType model.OrgType `json:"orgType"`
	AckedAt time.Time     `json:"ackedAt"`
}

// AdminSessionCache stores portal acknowledgements keyed by user.
type AdminSessionCache interface {
	Set(ctx context.Context, session *AdminSession) error
	Get(ctx context.Context, userID string) (*AdminSession, error)
	Delete(ctx context.Context, userID string) error
}

type adminSessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAdminSessionCache(client *redis.Client, ttl time.Duration) AdminSessionCache {
	return &adminSessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *adminSessionCache) key(userID string) string {
	return fmt.Sprintf("admin-session:%s", userID)
}

func (c *adminSessionCache) Set(ctx context.Context, session *AdminSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.UserID), data, c.ttl).Err()
}

func (c *adminSessionCache) Get(ctx context.Context, userID string) (*AdminSession, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *adminSessionCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
