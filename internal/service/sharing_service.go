package service

import (
	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"
	"travelmate/pkg/redis"
	"travelmate/pkg/ws"

	"go.uber.org/zap"
)

// SharingWithTrip pairs a grant with its trip and owner resolved for
// display.
type SharingWithTrip struct {
	Sharing *model.TripSharing
	Trip    *model.Trip
	Owner   *model.User
}

// SharingService runs the trip sharing ledger: directed invitations from a
// trip owner to a friend, carrying a view or edit permission.
type SharingService struct {
	shares      repository.SharingStore
	trips       repository.TripStore
	users       repository.UserStore
	friendships *FriendshipService
	access      *AccessService
	log         *zap.Logger
}

func NewSharingService(
	shares repository.SharingStore,
	trips repository.TripStore,
	users repository.UserStore,
	friendships *FriendshipService,
	access *AccessService,
) *SharingService {
	return &SharingService{
		shares:      shares,
		trips:       trips,
		users:       users,
		friendships: friendships,
		access:      access,
		log:         zap.L(),
	}
}

// Share invites a friend to a trip. The caller must own the trip and be
// friends with the invitee; any prior row for the (trip, invitee) pair, in
// any status, blocks re-sharing. The existence check and insert run in one
// transaction.
func (s *SharingService) Share(tripID, ownerID, friendID uint, permission string) (*model.TripSharing, error) {
	if ownerID == friendID {
		return nil, apperr.New(apperr.KindSelfReferential, "cannot share a trip with yourself")
	}
	if !model.ValidPermission(permission) {
		return nil, apperr.New(apperr.KindValidation, "permission must be view or edit")
	}

	if _, err := s.access.AuthorizeOwner(tripID, ownerID); err != nil {
		return nil, err
	}

	friends, err := s.friendships.AreFriends(ownerID, friendID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, apperr.New(apperr.KindRelationshipRequired, "you can only share trips with friends")
	}

	sharing := &model.TripSharing{
		TripID:       tripID,
		OwnerID:      ownerID,
		SharedWithID: friendID,
		Permission:   permission,
		Status:       model.SharingStatusPending,
	}

	err = s.shares.InTx(func(tx repository.SharingStore) error {
		existing, err := tx.FindByTripAndUser(tripID, friendID)
		if err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "share trip failed")
		}
		if existing != nil {
			return apperr.New(apperr.KindInvalidState, "this trip is already shared with that user")
		}
		if err := tx.Create(sharing); err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "share trip failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := redis.IncrPendingShares(friendID); err != nil {
		s.log.Warn("badge counter update failed", zap.Error(err))
	}
	ws.GetManager().Notify(friendID, ws.EventTripInvite, map[string]interface{}{
		"sharing_id": sharing.ID,
		"trip_id":    tripID,
		"owner_id":   ownerID,
		"permission": permission,
	})
	return sharing, nil
}

// Respond accepts or declines an invitation. Only the invitee may respond;
// the status guard rejects rows that are no longer pending.
func (s *SharingService) Respond(invitationID, responderID uint, action string) (*model.TripSharing, error) {
	var toStatus string
	switch action {
	case ActionAccept:
		toStatus = model.SharingStatusAccepted
	case ActionDecline:
		toStatus = model.SharingStatusDeclined
	default:
		return nil, apperr.New(apperr.KindValidation, "action must be accept or decline")
	}

	sharing, err := s.shares.GetByID(invitationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "invitation not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "respond to invitation failed")
	}
	if sharing.SharedWithID != responderID {
		return nil, apperr.New(apperr.KindUnauthorized, "only the invited user can respond")
	}

	rows, err := s.shares.UpdateStatus(invitationID, model.SharingStatusPending, toStatus)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "respond to invitation failed")
	}
	if rows == 0 {
		return nil, apperr.New(apperr.KindInvalidState, "this invitation is no longer pending")
	}
	sharing.Status = toStatus

	if err := redis.DecrPendingShares(responderID); err != nil {
		s.log.Warn("badge counter update failed", zap.Error(err))
	}
	if toStatus == model.SharingStatusAccepted {
		ws.GetManager().Notify(sharing.OwnerID, ws.EventShareAccepted, map[string]interface{}{
			"sharing_id": sharing.ID,
			"trip_id":    sharing.TripID,
			"user_id":    responderID,
		})
	}
	return sharing, nil
}

// Revoke deletes the grant for (trip, user) entirely. Owner only. Deleting
// a declined row is how an owner clears the way for a fresh invitation.
func (s *SharingService) Revoke(tripID, ownerID, userID uint) error {
	if _, err := s.access.AuthorizeOwner(tripID, ownerID); err != nil {
		return err
	}

	var wasPending bool
	err := s.shares.InTx(func(tx repository.SharingStore) error {
		existing, err := tx.FindByTripAndUser(tripID, userID)
		if err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "revoke failed")
		}
		if existing == nil {
			return apperr.New(apperr.KindNotFound, "this trip is not shared with that user")
		}
		wasPending = existing.Status == model.SharingStatusPending
		if _, err := tx.DeleteByTripAndUser(tripID, userID); err != nil {
			return apperr.Wrap(err, apperr.KindInternal, "revoke failed")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if wasPending {
		if err := redis.DecrPendingShares(userID); err != nil {
			s.log.Warn("badge counter update failed", zap.Error(err))
		}
	}
	ws.GetManager().Notify(userID, ws.EventShareRevoked, map[string]interface{}{
		"trip_id": tripID,
	})
	return nil
}

// SharedTripsFor lists accepted grants where the user is the invitee, with
// trips and owners resolved.
func (s *SharingService) SharedTripsFor(userID uint) ([]*SharingWithTrip, error) {
	rows, err := s.shares.ListAcceptedFor(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list shared trips failed")
	}
	return s.resolve(rows)
}

// PendingInvitationsFor lists open invitations addressed to the user.
func (s *SharingService) PendingInvitationsFor(userID uint) ([]*SharingWithTrip, error) {
	rows, err := s.shares.ListPendingFor(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list invitations failed")
	}
	return s.resolve(rows)
}

func (s *SharingService) resolve(rows []*model.TripSharing) ([]*SharingWithTrip, error) {
	tripIDs := make([]uint, 0, len(rows))
	ownerIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		tripIDs = append(tripIDs, row.TripID)
		ownerIDs = append(ownerIDs, row.OwnerID)
	}

	trips, err := s.trips.ListByIDs(tripIDs)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "resolve trips failed")
	}
	tripByID := make(map[uint]*model.Trip, len(trips))
	for _, t := range trips {
		tripByID[t.ID] = t
	}

	owners, err := s.users.GetByIDs(ownerIDs)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "resolve users failed")
	}

	out := make([]*SharingWithTrip, 0, len(rows))
	for _, row := range rows {
		trip, ok := tripByID[row.TripID]
		if !ok {
			// grant left dangling by a trip removed outside the cascade;
			// hide it rather than render a broken card
			continue
		}
		out = append(out, &SharingWithTrip{
			Sharing: row,
			Trip:    trip,
			Owner:   owners[row.OwnerID],
		})
	}
	return out, nil
}
