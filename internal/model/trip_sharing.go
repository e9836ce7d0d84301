package model

import (
	"time"
)

// Trip sharing statuses and permissions.
const (
	SharingStatusPending  = "pending"
	SharingStatusAccepted = "accepted"
	SharingStatusDeclined = "declined"

	PermissionView = "view"
	PermissionEdit = "edit"
)

// TripSharing is a directed grant from the trip owner to an invitee. A
// permission tag rides along with the invitation status. Revocation deletes
// the row, there is no separate terminal state.
type TripSharing struct {
	ID           uint      `gorm:"primaryKey"`
	TripID       uint      `gorm:"not null;index:idx_sharing_trip_user"`
	OwnerID      uint      `gorm:"not null;index"`
	SharedWithID uint      `gorm:"not null;index:idx_sharing_trip_user"`
	Permission   string    `gorm:"type:varchar(20);not null;default:'view'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TripSharing) TableName() string { return "trip_sharing" }

// ValidPermission reports whether p is a known permission tag.
func ValidPermission(p string) bool {
	return p == PermissionView || p == PermissionEdit
}
