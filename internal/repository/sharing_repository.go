package repository

import (
	"travelmate/internal/model"

	"gorm.io/gorm"
)

// SharingRepository persists the trip sharing ledger.
type SharingRepository struct {
	db *gorm.DB
}

func NewSharingRepository(db *gorm.DB) *SharingRepository {
	return &SharingRepository{db: db}
}

// InTx runs fn against a repository bound to one transaction, the same
// race guard as the friendship ledger's check-then-insert.
func (r *SharingRepository) InTx(fn func(SharingStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&SharingRepository{db: tx})
	})
}

func (r *SharingRepository) Create(s *model.TripSharing) error {
	return r.db.Create(s).Error
}

func (r *SharingRepository) GetByID(id uint) (*model.TripSharing, error) {
	var s model.TripSharing
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByTripAndUser returns the row for the (trip, invitee) pair in any
// status, nil without error when absent. Any existing row blocks re-sharing.
func (r *SharingRepository) FindByTripAndUser(tripID, userID uint) (*model.TripSharing, error) {
	var s model.TripSharing
	err := r.db.Where("trip_id = ? AND shared_with_id = ?", tripID, userID).First(&s).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// FindAccepted returns the accepted grant for the pair, nil when absent.
func (r *SharingRepository) FindAccepted(tripID, userID uint) (*model.TripSharing, error) {
	var s model.TripSharing
	err := r.db.Where("trip_id = ? AND shared_with_id = ? AND status = ?",
		tripID, userID, model.SharingStatusAccepted).First(&s).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// UpdateStatus transitions a row, guarded by its current status.
func (r *SharingRepository) UpdateStatus(id uint, fromStatus, toStatus string) (int64, error) {
	res := r.db.Model(&model.TripSharing{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}

// DeleteByTripAndUser removes the grant entirely (revocation).
func (r *SharingRepository) DeleteByTripAndUser(tripID, userID uint) (int64, error) {
	res := r.db.Where("trip_id = ? AND shared_with_id = ?", tripID, userID).
		Delete(&model.TripSharing{})
	return res.RowsAffected, res.Error
}

// ListAcceptedFor returns accepted grants where the user is the invitee.
func (r *SharingRepository) ListAcceptedFor(userID uint) ([]*model.TripSharing, error) {
	var rows []*model.TripSharing
	err := r.db.Where("shared_with_id = ? AND status = ?", userID, model.SharingStatusAccepted).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListPendingFor returns open invitations addressed to the user.
func (r *SharingRepository) ListPendingFor(userID uint) ([]*model.TripSharing, error) {
	var rows []*model.TripSharing
	err := r.db.Where("shared_with_id = ? AND status = ?", userID, model.SharingStatusPending).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountPendingFor backs the badge counter resync.
func (r *SharingRepository) CountPendingFor(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&model.TripSharing{}).
		Where("shared_with_id = ? AND status = ?", userID, model.SharingStatusPending).
		Count(&n).Error
	return n, err
}
