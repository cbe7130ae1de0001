package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// IndexFeedKey is the fixed namespace for the global feed snapshot.
	// It is deliberately not keyed by viewer or query parameters: every
	// reader shares one time-boxed snapshot of the full ordered post list.
	IndexFeedKey = "feed:index"

	UserKeyPrefix  = "user:%d"
	GroupKeyPrefix = "group:%s"
)

const (
	UserTTL  = 5 * time.Minute
	GroupTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}

// InvalidateIndexFeed drops the global feed snapshot. Post creation does not
// call this: readers tolerate staleness up to the TTL, and an explicit clear
// is an operator/test action.
func InvalidateIndexFeed(ctx context.Context) {
	Invalidate(ctx, IndexFeedKey)
}
