package response

import (
	"travelmate/internal/model"
)

const dateLayout = "2006-01-02"
const timeLayout = "2006-01-02 15:04:05"

// UserInfo public view of a user, sensitive fields stripped.
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

// FilterUserInfo strips credentials from a user record.
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		CreatedAt: user.CreatedAt.Format(timeLayout),
	}
}

// LoginResponse returned by register and login.
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// TripInfo trip record with derived date helpers, matching what the
// presentation layer renders on trip cards.
type TripInfo struct {
	ID             uint                 `json:"id"`
	UserID         uint                 `json:"user_id"`
	Destination    string               `json:"destination"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	Description    string               `json:"description"`
	DurationDays   int                  `json:"duration_days"`
	IsUpcoming     bool                 `json:"is_upcoming"`
	IsCurrent      bool                 `json:"is_current"`
	IsPast         bool                 `json:"is_past"`
	CreatedAt      string               `json:"created_at"`
	Access         string               `json:"access,omitempty"`
	Accommodations []*AccommodationInfo `json:"accommodations,omitempty"`
	Travels        []*TravelInfo        `json:"travels,omitempty"`
}

// FilterTripInfo converts a trip aggregate for transport.
func FilterTripInfo(trip *model.Trip) *TripInfo {
	if trip == nil {
		return nil
	}

	info := &TripInfo{
		ID:           trip.ID,
		UserID:       trip.UserID,
		Destination:  trip.Destination,
		StartDate:    trip.StartDate.Format(dateLayout),
		EndDate:      trip.EndDate.Format(dateLayout),
		Description:  trip.Description,
		DurationDays: trip.DurationDays(),
		IsUpcoming:   trip.IsUpcoming(),
		IsCurrent:    trip.IsCurrent(),
		IsPast:       trip.IsPast(),
		CreatedAt:    trip.CreatedAt.Format(timeLayout),
	}
	for i := range trip.Accommodations {
		info.Accommodations = append(info.Accommodations, FilterAccommodationInfo(&trip.Accommodations[i]))
	}
	for i := range trip.Travels {
		info.Travels = append(info.Travels, FilterTravelInfo(&trip.Travels[i]))
	}
	return info
}

// AccommodationInfo lodging entry.
type AccommodationInfo struct {
	ID         uint   `json:"id"`
	TripID     uint   `json:"trip_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Notes      string `json:"notes"`
	OrderIndex int    `json:"order_index"`
}

func FilterAccommodationInfo(a *model.Accommodation) *AccommodationInfo {
	if a == nil {
		return nil
	}
	return &AccommodationInfo{
		ID:         a.ID,
		TripID:     a.TripID,
		Name:       a.Name,
		Address:    a.Address,
		CheckIn:    a.CheckIn.Format(dateLayout),
		CheckOut:   a.CheckOut.Format(dateLayout),
		Notes:      a.Notes,
		OrderIndex: a.OrderIndex,
	}
}

// TravelInfo journey leg.
type TravelInfo struct {
	ID           uint   `json:"id"`
	TripID       uint   `json:"trip_id"`
	Mode         string `json:"mode"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	DepartAt     string `json:"depart_at"`
	ArriveAt     string `json:"arrive_at"`
	OrderIndex   int    `json:"order_index"`
}

func FilterTravelInfo(t *model.Travel) *TravelInfo {
	if t == nil {
		return nil
	}
	return &TravelInfo{
		ID:           t.ID,
		TripID:       t.TripID,
		Mode:         t.Mode,
		FromLocation: t.FromLocation,
		ToLocation:   t.ToLocation,
		DepartAt:     t.DepartAt.Format(timeLayout),
		ArriveAt:     t.ArriveAt.Format(timeLayout),
		OrderIndex:   t.OrderIndex,
	}
}

// FriendshipInfo one relationship row with the counterpart resolved for
// display ("who asked" is preserved via requester_id).
type FriendshipInfo struct {
	ID          uint      `json:"id"`
	RequesterID uint      `json:"requester_id"`
	AddresseeID uint      `json:"addressee_id"`
	Status      string    `json:"status"`
	Counterpart *UserInfo `json:"counterpart,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

func FilterFriendshipInfo(f *model.Friendship, counterpart *model.User) *FriendshipInfo {
	if f == nil {
		return nil
	}
	return &FriendshipInfo{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      f.Status,
		Counterpart: FilterUserInfo(counterpart),
		CreatedAt:   f.CreatedAt.Format(timeLayout),
		UpdatedAt:   f.UpdatedAt.Format(timeLayout),
	}
}

// SharingInfo one invitation/grant row with trip and counterpart resolved.
type SharingInfo struct {
	ID           uint      `json:"id"`
	TripID       uint      `json:"trip_id"`
	OwnerID      uint      `json:"owner_id"`
	SharedWithID uint      `json:"shared_with_id"`
	Permission   string    `json:"permission"`
	Status       string    `json:"status"`
	Trip         *TripInfo `json:"trip,omitempty"`
	Owner        *UserInfo `json:"owner,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

func FilterSharingInfo(s *model.TripSharing, trip *model.Trip, owner *model.User) *SharingInfo {
	if s == nil {
		return nil
	}
	return &SharingInfo{
		ID:           s.ID,
		TripID:       s.TripID,
		OwnerID:      s.OwnerID,
		SharedWithID: s.SharedWithID,
		Permission:   s.Permission,
		Status:       s.Status,
		Trip:         FilterTripInfo(trip),
		Owner:        FilterUserInfo(owner),
		CreatedAt:    s.CreatedAt.Format(timeLayout),
		UpdatedAt:    s.UpdatedAt.Format(timeLayout),
	}
}
