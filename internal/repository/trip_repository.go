package repository

import (
	"travelmate/internal/model"

	"gorm.io/gorm"
)

// TripRepository persists trips with their accommodations and travels.
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(trip *model.Trip) error {
	return r.db.Create(trip).Error
}

func (r *TripRepository) GetByID(id uint) (*model.Trip, error) {
	var t model.Trip
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAggregate loads the trip with accommodations and travels in display
// order (order_index, not insertion id).
func (r *TripRepository) GetAggregate(id uint) (*model.Trip, error) {
	var t model.Trip
	err := r.db.
		Preload("Accommodations", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Travels", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByOwner returns the user's own trips, newest start date first.
func (r *TripRepository) ListByOwner(userID uint) ([]*model.Trip, error) {
	var trips []*model.Trip
	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripRepository) ListByIDs(ids []uint) ([]*model.Trip, error) {
	var trips []*model.Trip
	if len(ids) == 0 {
		return trips, nil
	}
	err := r.db.Where("id IN ?", ids).
		Order("start_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripRepository) Update(trip *model.Trip) error {
	return r.db.Model(&model.Trip{}).
		Where("id = ?", trip.ID).
		Updates(map[string]interface{}{
			"destination": trip.Destination,
			"start_date":  trip.StartDate,
			"end_date":    trip.EndDate,
			"description": trip.Description,
		}).Error
}

// DeleteCascade removes a trip together with its accommodations, travels
// and sharing rows in one transaction, so no dangling grants survive.
func (r *TripRepository) DeleteCascade(tripID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&model.Accommodation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&model.Travel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&model.TripSharing{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Trip{}, tripID).Error
	})
}

func (r *TripRepository) AddAccommodation(a *model.Accommodation) error {
	return r.db.Create(a).Error
}

func (r *TripRepository) GetAccommodation(tripID, id uint) (*model.Accommodation, error) {
	var a model.Accommodation
	if err := r.db.Where("id = ? AND trip_id = ?", id, tripID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *TripRepository) UpdateAccommodation(a *model.Accommodation) error {
	return r.db.Model(&model.Accommodation{}).
		Where("id = ? AND trip_id = ?", a.ID, a.TripID).
		Updates(map[string]interface{}{
			"name":        a.Name,
			"address":     a.Address,
			"check_in":    a.CheckIn,
			"check_out":   a.CheckOut,
			"notes":       a.Notes,
			"order_index": a.OrderIndex,
		}).Error
}

func (r *TripRepository) DeleteAccommodation(tripID, id uint) error {
	return r.db.Where("id = ? AND trip_id = ?", id, tripID).Delete(&model.Accommodation{}).Error
}

func (r *TripRepository) ListAccommodations(tripID uint) ([]*model.Accommodation, error) {
	var rows []*model.Accommodation
	err := r.db.Where("trip_id = ?", tripID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ReorderAccommodations rewrites order_index to match the given id order.
func (r *TripRepository) ReorderAccommodations(tripID uint, orderedIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Accommodation{}).
				Where("id = ? AND trip_id = ?", id, tripID).
				Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TripRepository) AddTravel(t *model.Travel) error {
	return r.db.Create(t).Error
}

func (r *TripRepository) GetTravel(tripID, id uint) (*model.Travel, error) {
	var t model.Travel
	if err := r.db.Where("id = ? AND trip_id = ?", id, tripID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) UpdateTravel(t *model.Travel) error {
	return r.db.Model(&model.Travel{}).
		Where("id = ? AND trip_id = ?", t.ID, t.TripID).
		Updates(map[string]interface{}{
			"mode":          t.Mode,
			"from_location": t.FromLocation,
			"to_location":   t.ToLocation,
			"depart_at":     t.DepartAt,
			"arrive_at":     t.ArriveAt,
			"order_index":   t.OrderIndex,
		}).Error
}

func (r *TripRepository) DeleteTravel(tripID, id uint) error {
	return r.db.Where("id = ? AND trip_id = ?", id, tripID).Delete(&model.Travel{}).Error
}

func (r *TripRepository) ListTravels(tripID uint) ([]*model.Travel, error) {
	var rows []*model.Travel
	err := r.db.Where("trip_id = ?", tripID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ReorderTravels rewrites order_index to match the given id order.
func (r *TripRepository) ReorderTravels(tripID uint, orderedIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Travel{}).
				Where("id = ? AND trip_id = ?", id, tripID).
				Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
