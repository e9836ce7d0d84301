package model

import (
	"time"

	"gorm.io/gorm"
)

// Trip is owned by exactly one user. Accommodations and travels belong
// exclusively to the trip and are removed together with it.
type Trip struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      uint           `gorm:"not null;index"`
	Destination string         `gorm:"type:varchar(100);not null"`
	StartDate   time.Time      `gorm:"type:date;not null"`
	EndDate     time.Time      `gorm:"type:date;not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Accommodations []Accommodation `gorm:"foreignKey:TripID"`
	Travels        []Travel        `gorm:"foreignKey:TripID"`
}

func (Trip) TableName() string { return "trip" }

// DurationDays counts calendar days, inclusive of both endpoints.
func (t *Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// IsUpcoming reports whether the trip starts after today.
func (t *Trip) IsUpcoming() bool {
	return t.StartDate.After(today())
}

// IsCurrent reports whether today falls inside the trip dates.
func (t *Trip) IsCurrent() bool {
	now := today()
	return !t.StartDate.After(now) && !t.EndDate.Before(now)
}

// IsPast reports whether the trip ended before today.
func (t *Trip) IsPast() bool {
	return t.EndDate.Before(today())
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Accommodation is a lodging entry within a trip. OrderIndex fixes the
// display order independently of insertion ids.
type Accommodation struct {
	ID         uint      `gorm:"primaryKey"`
	TripID     uint      `gorm:"not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Address    string    `gorm:"type:varchar(200)"`
	CheckIn    time.Time `gorm:"type:date"`
	CheckOut   time.Time `gorm:"type:date"`
	Notes      string    `gorm:"type:text"`
	OrderIndex int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Accommodation) TableName() string { return "accommodation" }

// Travel is a single leg of the journey (flight, train, ...).
type Travel struct {
	ID           uint      `gorm:"primaryKey"`
	TripID       uint      `gorm:"not null;index"`
	Mode         string    `gorm:"type:varchar(50);not null"`
	FromLocation string    `gorm:"type:varchar(100);not null"`
	ToLocation   string    `gorm:"type:varchar(100);not null"`
	DepartAt     time.Time
	ArriveAt     time.Time
	OrderIndex   int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Travel) TableName() string { return "travel" }
