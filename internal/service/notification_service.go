package service

import (
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"
	"travelmate/pkg/redis"

	"go.uber.org/zap"
)

// PendingCounts are the menu badges: open friend requests and open trip
// invitations addressed to the user.
type PendingCounts struct {
	FriendRequests int64 `json:"friend_requests"`
	TripInvites    int64 `json:"trip_invites"`
}

// NotificationService serves badge counts. Redis is the fast path; on a
// cache failure the counts are recomputed from the ledgers and written
// back, so the badges can never drift for long.
type NotificationService struct {
	friendships repository.FriendshipStore
	shares      repository.SharingStore
	log         *zap.Logger
}

func NewNotificationService(friendships repository.FriendshipStore, shares repository.SharingStore) *NotificationService {
	return &NotificationService{friendships: friendships, shares: shares, log: zap.L()}
}

// Counts returns the user's pending badges.
func (s *NotificationService) Counts(userID uint) (*PendingCounts, error) {
	friendRequests, tripInvites, err := redis.GetPendingCounts(userID)
	if err == nil {
		return &PendingCounts{FriendRequests: friendRequests, TripInvites: tripInvites}, nil
	}
	s.log.Warn("badge counter read failed, recomputing", zap.Error(err))

	friendRequests, err = s.friendships.CountPendingReceivedBy(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "count notifications failed")
	}
	tripInvites, err = s.shares.CountPendingFor(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "count notifications failed")
	}

	if err := redis.SetPendingCounts(userID, friendRequests, tripInvites); err != nil {
		s.log.Warn("badge counter write failed", zap.Error(err))
	}
	return &PendingCounts{FriendRequests: friendRequests, TripInvites: tripInvites}, nil
}
