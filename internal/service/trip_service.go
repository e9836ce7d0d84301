package service

import (
	"strings"
	"time"

	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"

	"go.uber.org/zap"
)

// TripView is a trip aggregate plus the access level it was resolved under,
// so the presentation layer can hide edit controls for view-only guests.
type TripView struct {
	Trip   *model.Trip
	Access AccessLevel
}

// TripService manages the trip aggregate. Every operation resolves access
// through the gateway first; nothing here trusts the caller's claim.
type TripService struct {
	trips  repository.TripStore
	access *AccessService
	log    *zap.Logger
}

func NewTripService(trips repository.TripStore, access *AccessService) *TripService {
	return &TripService{trips: trips, access: access, log: zap.L()}
}

// CreateTrip records a new trip for the owner. The end date may not
// precede the start date.
func (s *TripService) CreateTrip(ownerID uint, destination string, startDate, endDate time.Time, description string) (*model.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, apperr.New(apperr.KindValidation, "destination is required")
	}
	if endDate.Before(startDate) {
		return nil, apperr.New(apperr.KindValidation, "end date cannot be before start date")
	}

	trip := &model.Trip{
		UserID:      ownerID,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
	}
	if err := s.trips.Create(trip); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "create trip failed")
	}

	s.log.Info("trip created", zap.Uint("trip_id", trip.ID), zap.Uint("user_id", ownerID))
	return trip, nil
}

// ListOwn returns the caller's trips, newest start date first.
func (s *TripService) ListOwn(ownerID uint) ([]*model.Trip, error) {
	trips, err := s.trips.ListByOwner(ownerID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "list trips failed")
	}
	return trips, nil
}

// GetTrip loads the full aggregate for anyone with at least view access.
func (s *TripService) GetTrip(tripID, actorID uint) (*TripView, error) {
	level, _, err := s.access.Authorize(tripID, actorID, ViewAccess)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.GetAggregate(tripID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "trip not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "load trip failed")
	}
	return &TripView{Trip: trip, Access: level}, nil
}

// UpdateTrip edits the trip record. Requires edit access.
func (s *TripService) UpdateTrip(tripID, actorID uint, destination string, startDate, endDate time.Time, description string) (*model.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, apperr.New(apperr.KindValidation, "destination is required")
	}
	if endDate.Before(startDate) {
		return nil, apperr.New(apperr.KindValidation, "end date cannot be before start date")
	}

	_, trip, err := s.access.Authorize(tripID, actorID, EditAccess)
	if err != nil {
		return nil, err
	}

	trip.Destination = destination
	trip.StartDate = startDate
	trip.EndDate = endDate
	trip.Description = description
	if err := s.trips.Update(trip); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "update trip failed")
	}
	return trip, nil
}

// DeleteTrip removes the trip aggregate and its sharing rows. Owner only.
func (s *TripService) DeleteTrip(tripID, actorID uint) error {
	if _, err := s.access.AuthorizeOwner(tripID, actorID); err != nil {
		return err
	}
	if err := s.trips.DeleteCascade(tripID); err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "delete trip failed")
	}
	s.log.Info("trip deleted", zap.Uint("trip_id", tripID), zap.Uint("user_id", actorID))
	return nil
}

// AddAccommodation appends a lodging entry at the end of the display order.
func (s *TripService) AddAccommodation(tripID, actorID uint, a *model.Accommodation) (*model.Accommodation, error) {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil, apperr.New(apperr.KindValidation, "accommodation name is required")
	}

	existing, err := s.trips.ListAccommodations(tripID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "add accommodation failed")
	}
	a.TripID = tripID
	a.OrderIndex = len(existing)
	if err := s.trips.AddAccommodation(a); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "add accommodation failed")
	}
	return a, nil
}

// UpdateAccommodation edits a lodging entry.
func (s *TripService) UpdateAccommodation(tripID, actorID uint, a *model.Accommodation) (*model.Accommodation, error) {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return nil, err
	}
	current, err := s.trips.GetAccommodation(tripID, a.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "accommodation not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "update accommodation failed")
	}
	a.TripID = tripID
	a.OrderIndex = current.OrderIndex
	if err := s.trips.UpdateAccommodation(a); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "update accommodation failed")
	}
	return a, nil
}

// DeleteAccommodation removes a lodging entry.
func (s *TripService) DeleteAccommodation(tripID, actorID, accommodationID uint) error {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return err
	}
	if _, err := s.trips.GetAccommodation(tripID, accommodationID); err != nil {
		if repository.IsNotFound(err) {
			return apperr.New(apperr.KindNotFound, "accommodation not found")
		}
		return apperr.Wrap(err, apperr.KindInternal, "delete accommodation failed")
	}
	if err := s.trips.DeleteAccommodation(tripID, accommodationID); err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "delete accommodation failed")
	}
	return nil
}

// ReorderAccommodations rewrites the display order to the given ids.
func (s *TripService) ReorderAccommodations(tripID, actorID uint, orderedIDs []uint) error {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return err
	}
	if len(orderedIDs) == 0 {
		return apperr.New(apperr.KindValidation, "order must list at least one id")
	}
	if err := s.trips.ReorderAccommodations(tripID, orderedIDs); err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "reorder accommodations failed")
	}
	return nil
}

// AddTravel appends a journey leg at the end of the display order.
func (s *TripService) AddTravel(tripID, actorID uint, t *model.Travel) (*model.Travel, error) {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return nil, err
	}
	if strings.TrimSpace(t.Mode) == "" || strings.TrimSpace(t.FromLocation) == "" || strings.TrimSpace(t.ToLocation) == "" {
		return nil, apperr.New(apperr.KindValidation, "mode, origin and destination are required")
	}

	existing, err := s.trips.ListTravels(tripID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "add travel failed")
	}
	t.TripID = tripID
	t.OrderIndex = len(existing)
	if err := s.trips.AddTravel(t); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "add travel failed")
	}
	return t, nil
}

// UpdateTravel edits a journey leg.
func (s *TripService) UpdateTravel(tripID, actorID uint, t *model.Travel) (*model.Travel, error) {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return nil, err
	}
	current, err := s.trips.GetTravel(tripID, t.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "travel not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "update travel failed")
	}
	t.TripID = tripID
	t.OrderIndex = current.OrderIndex
	if err := s.trips.UpdateTravel(t); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "update travel failed")
	}
	return t, nil
}

// DeleteTravel removes a journey leg.
func (s *TripService) DeleteTravel(tripID, actorID, travelID uint) error {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return err
	}
	if _, err := s.trips.GetTravel(tripID, travelID); err != nil {
		if repository.IsNotFound(err) {
			return apperr.New(apperr.KindNotFound, "travel not found")
		}
		return apperr.Wrap(err, apperr.KindInternal, "delete travel failed")
	}
	if err := s.trips.DeleteTravel(tripID, travelID); err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "delete travel failed")
	}
	return nil
}

// ReorderTravels rewrites the display order to the given ids.
func (s *TripService) ReorderTravels(tripID, actorID uint, orderedIDs []uint) error {
	if _, _, err := s.access.Authorize(tripID, actorID, EditAccess); err != nil {
		return err
	}
	if len(orderedIDs) == 0 {
		return apperr.New(apperr.KindValidation, "order must list at least one id")
	}
	if err := s.trips.ReorderTravels(tripID, orderedIDs); err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "reorder travels failed")
	}
	return nil
}
