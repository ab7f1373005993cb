package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/squad-service/internal/domain"
)

const rosterTTL = 5 * time.Minute

// RosterCache keeps squad and club rosters in Redis. It only ever holds
// roster listings; users and tokens are never cached so that account
// deletion takes effect on the very next request.
type RosterCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRosterCache wraps a Redis client. A nil client disables caching.
func NewRosterCache(client *redis.Client, logger *zap.Logger) *RosterCache {
	return &RosterCache{client: client, logger: logger}
}

// GetSquadRoster returns the cached roster for a squad, if present.
func (c *RosterCache) GetSquadRoster(ctx context.Context, squadID int64) ([]domain.MemberDetail, bool) {
	return c.get(ctx, squadKey(squadID))
}

// SetSquadRoster stores a squad roster.
func (c *RosterCache) SetSquadRoster(ctx context.Context, squadID int64, members []domain.MemberDetail) {
	c.set(ctx, squadKey(squadID), members)
}

// GetClubRoster returns the cached roster for a club, if present.
func (c *RosterCache) GetClubRoster(ctx context.Context, clubID int64) ([]domain.MemberDetail, bool) {
	return c.get(ctx, clubKey(clubID))
}

// SetClubRoster stores a club roster.
func (c *RosterCache) SetClubRoster(ctx context.Context, clubID int64, members []domain.MemberDetail) {
	c.set(ctx, clubKey(clubID), members)
}

// InvalidateMember drops cached rosters touched by a member change.
func (c *RosterCache) InvalidateMember(ctx context.Context, squadIDs, clubIDs []int64) {
	if c == nil || c.client == nil {
		return
	}
	keys := make([]string, 0, len(squadIDs)+len(clubIDs))
	for _, id := range squadIDs {
		keys = append(keys, squadKey(id))
	}
	for _, id := range clubIDs {
		keys = append(keys, clubKey(id))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("roster cache invalidation failed", zap.Error(err))
	}
}

func (c *RosterCache) get(ctx context.Context, key string) ([]domain.MemberDetail, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("roster cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var members []domain.MemberDetail
	if err := json.Unmarshal(raw, &members); err != nil {
		c.logger.Debug("roster cache decode failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return members, true
}

func (c *RosterCache) set(ctx context.Context, key string, members []domain.MemberDetail) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, rosterTTL).Err(); err != nil {
		c.logger.Debug("roster cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func squadKey(id int64) string { return fmt.Sprintf("roster:squad:%d", id) }
func clubKey(id int64) string  { return fmt.Sprintf("roster:club:%d", id) }
