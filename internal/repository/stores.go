package repository

import (
	"travelmate/internal/model"
)

// Store interfaces sit between the services and the gorm repositories so
// the ledger logic can be exercised against in-memory fakes. The concrete
// repositories below are the production implementations.

// UserStore persistence surface of the user directory.
type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByIDs(ids []uint) (map[uint]*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByUsernameOrEmail(identifier string) (*model.User, error)
	Search(query string, limit int) ([]*model.User, error)
}

// FriendshipStore persistence surface of the friendship ledger.
type FriendshipStore interface {
	InTx(fn func(FriendshipStore) error) error
	Create(f *model.Friendship) error
	GetByID(id uint) (*model.Friendship, error)
	FindBetween(user1ID, user2ID uint) (*model.Friendship, error)
	UpdateStatus(id uint, fromStatus, toStatus string) (int64, error)
	SetStatus(id uint, status string) error
	Delete(id uint) error
	ListAcceptedOf(userID uint) ([]*model.Friendship, error)
	ListPendingReceivedBy(userID uint) ([]*model.Friendship, error)
	ListPendingSentBy(userID uint) ([]*model.Friendship, error)
	CountPendingReceivedBy(userID uint) (int64, error)
}

// TripStore persistence surface of the trip aggregate.
type TripStore interface {
	Create(trip *model.Trip) error
	GetByID(id uint) (*model.Trip, error)
	GetAggregate(id uint) (*model.Trip, error)
	ListByOwner(userID uint) ([]*model.Trip, error)
	ListByIDs(ids []uint) ([]*model.Trip, error)
	Update(trip *model.Trip) error
	DeleteCascade(tripID uint) error

	AddAccommodation(a *model.Accommodation) error
	GetAccommodation(tripID, id uint) (*model.Accommodation, error)
	UpdateAccommodation(a *model.Accommodation) error
	DeleteAccommodation(tripID, id uint) error
	ListAccommodations(tripID uint) ([]*model.Accommodation, error)
	ReorderAccommodations(tripID uint, orderedIDs []uint) error

	AddTravel(t *model.Travel) error
	GetTravel(tripID, id uint) (*model.Travel, error)
	UpdateTravel(t *model.Travel) error
	DeleteTravel(tripID, id uint) error
	ListTravels(tripID uint) ([]*model.Travel, error)
	ReorderTravels(tripID uint, orderedIDs []uint) error
}

// SharingStore persistence surface of the trip sharing ledger.
type SharingStore interface {
	InTx(fn func(SharingStore) error) error
	Create(s *model.TripSharing) error
	GetByID(id uint) (*model.TripSharing, error)
	FindByTripAndUser(tripID, userID uint) (*model.TripSharing, error)
	FindAccepted(tripID, userID uint) (*model.TripSharing, error)
	UpdateStatus(id uint, fromStatus, toStatus string) (int64, error)
	DeleteByTripAndUser(tripID, userID uint) (int64, error)
	ListAcceptedFor(userID uint) ([]*model.TripSharing, error)
	ListPendingFor(userID uint) ([]*model.TripSharing, error)
	CountPendingFor(userID uint) (int64, error)
}
