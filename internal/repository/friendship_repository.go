package repository

import (
	"travelmate/internal/model"

	"gorm.io/gorm"
)

// FriendshipRepository persists the friendship ledger. All lookups on a
// pair of users are symmetric; the direction columns only matter for
// provenance and authorization.
type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// InTx runs fn against a repository bound to one transaction. Ledger
// check-then-insert sequences must go through here so two concurrent
// requests cannot both pass the existence check.
func (r *FriendshipRepository) InTx(fn func(FriendshipStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&FriendshipRepository{db: tx})
	})
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	return r.db.Create(f).Error
}

func (r *FriendshipRepository) GetByID(id uint) (*model.Friendship, error) {
	var f model.Friendship
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindBetween returns the row for a pair regardless of who requested,
// nil without error when the pair has no row.
func (r *FriendshipRepository) FindBetween(user1ID, user2ID uint) (*model.Friendship, error) {
	lo, hi := model.NormalizePair(user1ID, user2ID)
	var f model.Friendship
	err := r.db.Where("pair_lo = ? AND pair_hi = ?", lo, hi).First(&f).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// UpdateStatus transitions a row, guarded by its current status. Returns
// the number of rows changed so callers can detect lost races.
func (r *FriendshipRepository) UpdateStatus(id uint, fromStatus, toStatus string) (int64, error) {
	res := r.db.Model(&model.Friendship{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}

// SetStatus transitions a row unconditionally (blocking is allowed from
// any state).
func (r *FriendshipRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&model.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *FriendshipRepository) Delete(id uint) error {
	return r.db.Delete(&model.Friendship{}, id).Error
}

// ListAcceptedOf returns accepted rows where the user is on either side.
func (r *FriendshipRepository) ListAcceptedOf(userID uint) ([]*model.Friendship, error) {
	var rows []*model.Friendship
	err := r.db.Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
		userID, userID, model.FriendshipStatusAccepted).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListPendingReceivedBy returns pending requests addressed to the user.
func (r *FriendshipRepository) ListPendingReceivedBy(userID uint) ([]*model.Friendship, error) {
	var rows []*model.Friendship
	err := r.db.Where("addressee_id = ? AND status = ?", userID, model.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListPendingSentBy returns pending requests the user initiated.
func (r *FriendshipRepository) ListPendingSentBy(userID uint) ([]*model.Friendship, error) {
	var rows []*model.Friendship
	err := r.db.Where("requester_id = ? AND status = ?", userID, model.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountPendingReceivedBy backs the badge counter resync.
func (r *FriendshipRepository) CountPendingReceivedBy(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&model.Friendship{}).
		Where("addressee_id = ? AND status = ?", userID, model.FriendshipStatusPending).
		Count(&n).Error
	return n, err
}
