package service

import (
	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"
)

// AccessLevel is the outcome of resolving a user against a trip.
type AccessLevel int

const (
	AccessDenied AccessLevel = iota
	AccessSharedView
	AccessSharedEdit
	AccessOwner
)

func (l AccessLevel) String() string {
	switch l {
	case AccessOwner:
		return "owner"
	case AccessSharedEdit:
		return "shared_edit"
	case AccessSharedView:
		return "shared_view"
	default:
		return "denied"
	}
}

// Permission demanded by an operation.
type RequiredPermission int

const (
	ViewAccess RequiredPermission = iota
	EditAccess
)

// AccessService is the single authorization choke point for trip-scoped
// operations. It never caches: every call re-reads ownership and the
// sharing ledger so a concurrent revoke takes effect immediately.
type AccessService struct {
	trips  repository.TripStore
	shares repository.SharingStore
}

func NewAccessService(trips repository.TripStore, shares repository.SharingStore) *AccessService {
	return &AccessService{trips: trips, shares: shares}
}

// ResolveAccess determines the user's level on a trip. A missing trip is a
// NotFound error, which also covers sharing rows left dangling by outside
// deletion.
func (s *AccessService) ResolveAccess(tripID, userID uint) (AccessLevel, *model.Trip, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		if repository.IsNotFound(err) {
			return AccessDenied, nil, apperr.New(apperr.KindNotFound, "trip not found")
		}
		return AccessDenied, nil, apperr.Wrap(err, apperr.KindInternal, "resolve access failed")
	}

	if trip.UserID == userID {
		return AccessOwner, trip, nil
	}

	grant, err := s.shares.FindAccepted(tripID, userID)
	if err != nil {
		return AccessDenied, nil, apperr.Wrap(err, apperr.KindInternal, "resolve access failed")
	}
	if grant == nil {
		return AccessDenied, trip, nil
	}

	if grant.Permission == model.PermissionEdit {
		return AccessSharedEdit, trip, nil
	}
	return AccessSharedView, trip, nil
}

// Authorize resolves access and checks it against the required permission.
// Owner and shared-edit satisfy everything; shared-view satisfies view only.
// Returns the trip on success so callers avoid a second lookup.
func (s *AccessService) Authorize(tripID, userID uint, required RequiredPermission) (AccessLevel, *model.Trip, error) {
	level, trip, err := s.ResolveAccess(tripID, userID)
	if err != nil {
		return AccessDenied, nil, err
	}

	allowed := false
	switch required {
	case ViewAccess:
		allowed = level >= AccessSharedView
	case EditAccess:
		allowed = level >= AccessSharedEdit
	}
	if !allowed {
		return level, nil, apperr.New(apperr.KindUnauthorized, "you do not have access to this trip")
	}
	return level, trip, nil
}

// AuthorizeOwner admits only the trip's owner (share, revoke, delete).
func (s *AccessService) AuthorizeOwner(tripID, userID uint) (*model.Trip, error) {
	level, trip, err := s.ResolveAccess(tripID, userID)
	if err != nil {
		return nil, err
	}
	if level != AccessOwner {
		return nil, apperr.New(apperr.KindUnauthorized, "only the trip owner can do this")
	}
	return trip, nil
}
