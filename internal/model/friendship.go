package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Friendship statuses. Declined and blocked are terminal.
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusDeclined = "declined"
	FriendshipStatusBlocked  = "blocked"
)

// Friendship stores an undirected relationship directionally: the requester
// asked, only the addressee may accept or decline. PairLo/PairHi hold the
// normalized pair (min, max of the two user ids) so a unique index prevents
// both A->B and B->A from existing at once.
type Friendship struct {
	ID          uint      `gorm:"primaryKey"`
	RequesterID uint      `gorm:"not null;index"`
	AddresseeID uint      `gorm:"not null;index"`
	PairLo      uint      `gorm:"not null;uniqueIndex:idx_friendship_pair"`
	PairHi      uint      `gorm:"not null;uniqueIndex:idx_friendship_pair"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Friendship) TableName() string { return "friendship" }

// BeforeSave keeps the normalized pair columns in sync with the direction
// columns on every insert and update.
func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	if f.RequesterID == 0 || f.AddresseeID == 0 {
		return fmt.Errorf("friendship requires two user ids")
	}
	if f.RequesterID == f.AddresseeID {
		return fmt.Errorf("friendship cannot reference a single user")
	}
	f.PairLo, f.PairHi = NormalizePair(f.RequesterID, f.AddresseeID)
	return nil
}

// CounterpartOf returns the other user of the pair, 0 if userID is not part
// of the friendship.
func (f *Friendship) CounterpartOf(userID uint) uint {
	switch userID {
	case f.RequesterID:
		return f.AddresseeID
	case f.AddresseeID:
		return f.RequesterID
	default:
		return 0
	}
}

// Involves reports whether userID is one of the two parties.
func (f *Friendship) Involves(userID uint) bool {
	return userID == f.RequesterID || userID == f.AddresseeID
}

// NormalizePair orders two user ids as (min, max).
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}
