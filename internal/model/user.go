package model

import (
	"time"

	"gorm.io/gorm"
)

// User account record. Only the password hash is stored, never the
// plaintext. Identity fields are immutable after registration.
type User struct {
	ID           uint           `gorm:"primaryKey"`
	Username     string         `gorm:"type:varchar(80);not null;uniqueIndex"`
	Email        string         `gorm:"type:varchar(120);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(200);not null"`
	FirstName    string         `gorm:"type:varchar(50);not null"`
	LastName     string         `gorm:"type:varchar(50);not null"`
	IsActive     bool           `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string { return "user" }

// FullName joins first and last name with a space.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
