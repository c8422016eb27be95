// Package statuscache keeps each user's punch status in Redis so the punch
// screen poll does not hit Postgres on every refresh. Entries are short-lived
// and dropped on every successful punch write.
package statuscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ponto/backend/internal/repository/postgres/punch"
)

const ttl = 30 * time.Second

type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func key(userID int) string {
	return fmt.Sprintf("punch:status:%d", userID)
}

// Get returns the cached status and whether it was present. Redis failures
// count as a miss: the caller falls through to the database.
func (c *Cache) Get(ctx context.Context, userID int) (punch.StatusResponse, bool) {
	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		return punch.StatusResponse{}, false
	}

	var status punch.StatusResponse
	if err := json.Unmarshal(data, &status); err != nil {
		return punch.StatusResponse{}, false
	}

	return status, true
}

func (c *Cache) Set(ctx context.Context, userID int, status punch.StatusResponse) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(userID), data, ttl)
}

func (c *Cache) Invalidate(ctx context.Context, userID int) {
	c.client.Del(ctx, key(userID))
}
