// Package redis caches the recently-contacted peer set per user. The messages
// table stays the source of truth; the cache is rebuilt on miss.
package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	contactKeyPrefix = "contacts:"
	contactTTL       = 24 * time.Hour
)

type ContactCache interface {
	Add(ctx context.Context, userID uuid.UUID, peerIDs ...uuid.UUID) error
	Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type contactCache struct {
	client *redis.Client
}

func NewContactCache(client *redis.Client) ContactCache {
	return &contactCache{client: client}
}

func (c *contactCache) Add(ctx context.Context, userID uuid.UUID, peerIDs ...uuid.UUID) error {
	if len(peerIDs) == 0 {
		return nil
	}

	key := contactKeyPrefix + userID.String()
	members := make([]interface{}, 0, len(peerIDs))
	for _, id := range peerIDs {
		members = append(members, id.String())
	}

	pipe := c.client.TxPipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, contactTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *contactCache) Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	raw, err := c.client.SMembers(ctx, contactKeyPrefix+userID.String()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue // skip corrupt members rather than failing the list
		}
		ids = append(ids, id)
	}
	return ids, nil
}
