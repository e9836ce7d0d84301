package service

import (
	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"
	"travelmate/pkg/redis"
	"travelmate/pkg/ws"

	"go.uber.org/zap"
)

// Respond actions shared by both ledgers.
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

// FriendshipWithUser pairs a ledger row with the counterpart resolved for
// display.
type FriendshipWithUser struct {
	Friendship  *model.Friendship
	Counterpart *model.User
}

// FriendshipService runs the friendship ledger. Relationships are
// undirected in meaning but stored directionally: the requester asked, and
// only the addressee may accept or decline. Every pair lookup is symmetric.
type FriendshipService struct {
	friendships repository.FriendshipStore
	users       repository.UserStore
	log         *zap.Logger
}

func NewFriendshipService(friendships repository.FriendshipStore, users repository.UserStore) *FriendshipService {
	return &FriendshipService{friendships: friendships, users: users, log: zap.L()}
}

// SendRequest opens a pending friendship from requester to addressee. Any
// existing row between the pair, in any state and either direction, blocks
// a new request. Check and insert run in one transaction; the normalized
// pair unique index backstops the race.
func (s *FriendshipService) SendRequest(requesterID, addresseeID uint) (*model.Friendship, error) {
	if requesterID == addresseeID {
		return nil, apperr.New(apperr.KindSelfReferential, "cannot send a friend request to yourself")
	}

	if _, err := s.users.GetByID(addresseeID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "send friend request failed")
	}

	friendship := &model.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      model.FriendshipStatusPending,
	}

	err := s.friendships.InTx(func(tx repository.FriendshipStore) error {
		existing, err := tx.FindBetween(requesterID, addresseeID)
		if err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "send friend request failed")
		}
		if existing != nil {
			return apperr.New(apperr.KindInvalidState, existsMessage(existing.Status))
		}
		if err := tx.Create(friendship); err != nil {
			if repository.IsDuplicateKey(err) {
				return apperr.New(apperr.KindInvalidState, "a relationship between these users already exists")
			}
			return apperr.Wrap(err, apperr.KindInternal, "send friend request failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyPendingFriend(addresseeID, requesterID)
	return friendship, nil
}

func existsMessage(status string) string {
	switch status {
	case model.FriendshipStatusAccepted:
		return "you are already friends"
	case model.FriendshipStatusPending:
		return "a friend request is already pending"
	case model.FriendshipStatusDeclined:
		return "a previous request was declined"
	case model.FriendshipStatusBlocked:
		return "this relationship is blocked"
	default:
		return "a relationship between these users already exists"
	}
}

// Respond accepts or declines a pending request. Only the addressee may
// respond; the status guard in the update rejects non-pending rows.
func (s *FriendshipService) Respond(friendshipID, responderID uint, action string) (*model.Friendship, error) {
	var toStatus string
	switch action {
	case ActionAccept:
		toStatus = model.FriendshipStatusAccepted
	case ActionDecline:
		toStatus = model.FriendshipStatusDeclined
	default:
		return nil, apperr.New(apperr.KindValidation, "action must be accept or decline")
	}

	f, err := s.friendships.GetByID(friendshipID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "friend request not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "respond to friend request failed")
	}
	if f.AddresseeID != responderID {
		return nil, apperr.New(apperr.KindUnauthorized, "only the addressee can respond to this request")
	}

	rows, err := s.friendships.UpdateStatus(friendshipID, model.FriendshipStatusPending, toStatus)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "respond to friend request failed")
	}
	if rows == 0 {
		return nil, apperr.New(apperr.KindInvalidState, "this request is no longer pending")
	}
	f.Status = toStatus

	if err := redis.DecrPendingFriendRequests(responderID); err != nil {
		s.log.Warn("badge counter update failed", zap.Error(err))
	}
	if toStatus == model.FriendshipStatusAccepted {
		ws.GetManager().Notify(f.RequesterID, ws.EventFriendAccepted, map[string]interface{}{
			"friendship_id": f.ID,
			"user_id":       responderID,
		})
	}
	return f, nil
}

// Block marks the relationship blocked. Either party may block, from any
// state, and there is no transition out of blocked.
func (s *FriendshipService) Block(friendshipID, actorID uint) (*model.Friendship, error) {
	f, err := s.friendships.GetByID(friendshipID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "friendship not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "block failed")
	}
	if !f.Involves(actorID) {
		return nil, apperr.New(apperr.KindUnauthorized, "only a member of this relationship can block it")
	}

	wasPending := f.Status == model.FriendshipStatusPending
	if err := s.friendships.SetStatus(friendshipID, model.FriendshipStatusBlocked); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "block failed")
	}
	f.Status = model.FriendshipStatusBlocked

	// a blocked pending request no longer counts toward the badge
	if wasPending {
		if err := redis.DecrPendingFriendRequests(f.AddresseeID); err != nil {
			s.log.Warn("badge counter update failed", zap.Error(err))
		}
	}
	return f, nil
}

// Remove deletes an accepted friendship, returning the pair to absent.
// Rows in any other state are left alone.
func (s *FriendshipService) Remove(user1ID, user2ID uint) error {
	return s.friendships.InTx(func(tx repository.FriendshipStore) error {
		f, err := tx.FindBetween(user1ID, user2ID)
		if err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "remove friend failed")
		}
		if f == nil || f.Status != model.FriendshipStatusAccepted {
			return apperr.New(apperr.KindInvalidState, "you are not friends with this user")
		}
		if err := tx.Delete(f.ID); err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "remove friend failed")
		}
		return nil
	})
}

// FindBetween looks up the pair's row regardless of request direction.
func (s *FriendshipService) FindBetween(user1ID, user2ID uint) (*model.Friendship, error) {
	f, err := s.friendships.FindBetween(user1ID, user2ID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "friendship lookup failed")
	}
	return f, nil
}

// AreFriends reports whether the pair has an accepted row. Symmetric by
// construction.
func (s *FriendshipService) AreFriends(user1ID, user2ID uint) (bool, error) {
	f, err := s.FindBetween(user1ID, user2ID)
	if err != nil {
		return false, err
	}
	return f != nil && f.Status == model.FriendshipStatusAccepted, nil
}

// FriendsOf lists accepted counterparts with their user records.
func (s *FriendshipService) FriendsOf(userID uint) ([]*FriendshipWithUser, error) {
	rows, err := s.friendships.ListAcceptedOf(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list friends failed")
	}
	return s.resolveCounterparts(userID, rows)
}

// PendingReceivedBy lists open requests addressed to the user.
func (s *FriendshipService) PendingReceivedBy(userID uint) ([]*FriendshipWithUser, error) {
	rows, err := s.friendships.ListPendingReceivedBy(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list friend requests failed")
	}
	return s.resolveCounterparts(userID, rows)
}

// PendingSentBy lists open requests the user initiated.
func (s *FriendshipService) PendingSentBy(userID uint) ([]*FriendshipWithUser, error) {
	rows, err := s.friendships.ListPendingSentBy(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list sent requests failed")
	}
	return s.resolveCounterparts(userID, rows)
}

func (s *FriendshipService) resolveCounterparts(userID uint, rows []*model.Friendship) ([]*FriendshipWithUser, error) {
	ids := make([]uint, 0, len(rows))
	for _, f := range rows {
		ids = append(ids, f.CounterpartOf(userID))
	}
	users, err := s.users.GetByIDs(ids)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "resolve users failed")
	}

	out := make([]*FriendshipWithUser, 0, len(rows))
	for _, f := range rows {
		out = append(out, &FriendshipWithUser{
			Friendship:  f,
			Counterpart: users[f.CounterpartOf(userID)],
		})
	}
	return out, nil
}

func (s *FriendshipService) notifyPendingFriend(addresseeID, requesterID uint) {
	if err := redis.IncrPendingFriendRequests(addresseeID); err != nil {
		s.log.Warn("badge counter update failed", zap.Error(err))
	}
	ws.GetManager().Notify(addresseeID, ws.EventFriendRequest, map[string]interface{}{
		"requester_id": requesterID,
	})
}
