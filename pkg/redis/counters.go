package redis

import (
	"fmt"
	"strconv"
	"time"
)

// Badge counter keys. Counters are advisory (menu badges); the ledgers in
// the database stay the source of truth, so a stale counter self-heals via
// TTL or an explicit refresh after listing.
const (
	PendingFriendKeyPrefix = "tm:pending:friend:"
	PendingShareKeyPrefix  = "tm:pending:share:"

	counterTTL = 24 * time.Hour
)

// IncrPendingFriendRequests bumps the friend-request badge for a user.
func IncrPendingFriendRequests(userID uint) error {
	return incrCounter(pendingFriendKey(userID))
}

// DecrPendingFriendRequests drops the friend-request badge, never below zero.
func DecrPendingFriendRequests(userID uint) error {
	return decrCounter(pendingFriendKey(userID))
}

// IncrPendingShares bumps the trip-invitation badge for a user.
func IncrPendingShares(userID uint) error {
	return incrCounter(pendingShareKey(userID))
}

// DecrPendingShares drops the trip-invitation badge, never below zero.
func DecrPendingShares(userID uint) error {
	return decrCounter(pendingShareKey(userID))
}

// GetPendingCounts reads both badges for a user. Missing keys count as zero.
func GetPendingCounts(userID uint) (friendRequests, shareInvites int64, err error) {
	if client == nil {
		return 0, 0, fmt.Errorf("redis client not initialized")
	}
	friendRequests, err = getCounter(pendingFriendKey(userID))
	if err != nil {
		return 0, 0, err
	}
	shareInvites, err = getCounter(pendingShareKey(userID))
	if err != nil {
		return 0, 0, err
	}
	return friendRequests, shareInvites, nil
}

// SetPendingCounts overwrites both badges, used to resync from the ledgers.
func SetPendingCounts(userID uint, friendRequests, shareInvites int64) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := client.Set(ctx, pendingFriendKey(userID), friendRequests, counterTTL).Err(); err != nil {
		return err
	}
	return client.Set(ctx, pendingShareKey(userID), shareInvites, counterTTL).Err()
}

func pendingFriendKey(userID uint) string {
	return fmt.Sprintf("%s%d", PendingFriendKeyPrefix, userID)
}

func pendingShareKey(userID uint) string {
	return fmt.Sprintf("%s%d", PendingShareKeyPrefix, userID)
}

func incrCounter(key string) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("increment counter failed: %w", err)
	}
	// TTL keeps abandoned badges from living forever
	if err := client.Expire(ctx, key, counterTTL).Err(); err != nil {
		return fmt.Errorf("set counter TTL failed: %w", err)
	}
	return nil
}

func decrCounter(key string) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	n, err := client.Decr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("decrement counter failed: %w", err)
	}
	if n < 0 {
		return client.Set(ctx, key, 0, counterTTL).Err()
	}
	return nil
}

func getCounter(key string) (int64, error) {
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		if IsNil(err) {
			return 0, nil
		}
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}
