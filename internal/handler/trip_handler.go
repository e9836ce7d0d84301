package handler

import (
	"time"

	"travelmate/internal/model"
	"travelmate/internal/service"
	"travelmate/pkg/jwt"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"
const timeLayout = "2006-01-02 15:04:05"

type TripHandler struct {
	service *service.TripService
}

func NewTripHandler(s *service.TripService) *TripHandler {
	return &TripHandler{service: s}
}

type tripRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
}

func (r *tripRequest) dates() (start, end time.Time, ok bool) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return start, end, false
	}
	return start, end, true
}

// Create records a new trip owned by the caller.
func (h *TripHandler) Create(c *gin.Context) {
	var r tripRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	start, end, ok := r.dates()
	if !ok {
		response.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}

	trip, err := h.service.CreateTrip(jwt.CurrentUserID(c), r.Destination, start, end, r.Description)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "trip created", response.FilterTripInfo(trip))
}

// List returns the caller's own trips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.service.ListOwn(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	infos := make([]*response.TripInfo, 0, len(trips))
	for _, t := range trips {
		infos = append(infos, response.FilterTripInfo(t))
	}
	response.Success(c, infos)
}

// Get returns the full trip aggregate for owners and invited guests.
func (h *TripHandler) Get(c *gin.Context) {
	view, err := h.service.GetTrip(uintParam(c, "trip_id"), jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	info := response.FilterTripInfo(view.Trip)
	info.Access = view.Access.String()
	response.Success(c, info)
}

// Update edits the trip record.
func (h *TripHandler) Update(c *gin.Context) {
	var r tripRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	start, end, ok := r.dates()
	if !ok {
		response.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}

	trip, err := h.service.UpdateTrip(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.Destination, start, end, r.Description)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "trip updated", response.FilterTripInfo(trip))
}

// Delete removes the trip aggregate.
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteTrip(uintParam(c, "trip_id"), jwt.CurrentUserID(c)); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "trip deleted", nil)
}

type accommodationRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Notes    string `json:"notes"`
}

func (r *accommodationRequest) toModel() *model.Accommodation {
	a := &model.Accommodation{
		Name:    r.Name,
		Address: r.Address,
		Notes:   r.Notes,
	}
	if t, err := time.Parse(dateLayout, r.CheckIn); err == nil {
		a.CheckIn = t
	}
	if t, err := time.Parse(dateLayout, r.CheckOut); err == nil {
		a.CheckOut = t
	}
	return a
}

// AddAccommodation appends a lodging entry to the trip.
func (h *TripHandler) AddAccommodation(c *gin.Context) {
	var r accommodationRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.AddAccommodation(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.toModel())
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "accommodation added", response.FilterAccommodationInfo(a))
}

// UpdateAccommodation edits a lodging entry.
func (h *TripHandler) UpdateAccommodation(c *gin.Context) {
	var r accommodationRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a := r.toModel()
	a.ID = uintParam(c, "acc_id")
	updated, err := h.service.UpdateAccommodation(uintParam(c, "trip_id"), jwt.CurrentUserID(c), a)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "accommodation updated", response.FilterAccommodationInfo(updated))
}

// DeleteAccommodation removes a lodging entry.
func (h *TripHandler) DeleteAccommodation(c *gin.Context) {
	err := h.service.DeleteAccommodation(uintParam(c, "trip_id"), jwt.CurrentUserID(c), uintParam(c, "acc_id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "accommodation deleted", nil)
}

type orderRequest struct {
	OrderedIDs []uint `json:"ordered_ids" binding:"required"`
}

// ReorderAccommodations rewrites the lodging display order.
func (h *TripHandler) ReorderAccommodations(c *gin.Context) {
	var r orderRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.ReorderAccommodations(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.OrderedIDs)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "order updated", nil)
}

type travelRequest struct {
	Mode         string `json:"mode" binding:"required"`
	FromLocation string `json:"from_location" binding:"required"`
	ToLocation   string `json:"to_location" binding:"required"`
	DepartAt     string `json:"depart_at"`
	ArriveAt     string `json:"arrive_at"`
}

func (r *travelRequest) toModel() *model.Travel {
	t := &model.Travel{
		Mode:         r.Mode,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
	}
	if ts, err := time.Parse(timeLayout, r.DepartAt); err == nil {
		t.DepartAt = ts
	}
	if ts, err := time.Parse(timeLayout, r.ArriveAt); err == nil {
		t.ArriveAt = ts
	}
	return t
}

// AddTravel appends a journey leg to the trip.
func (h *TripHandler) AddTravel(c *gin.Context) {
	var r travelRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.AddTravel(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.toModel())
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "travel added", response.FilterTravelInfo(t))
}

// UpdateTravel edits a journey leg.
func (h *TripHandler) UpdateTravel(c *gin.Context) {
	var r travelRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t := r.toModel()
	t.ID = uintParam(c, "travel_id")
	updated, err := h.service.UpdateTravel(uintParam(c, "trip_id"), jwt.CurrentUserID(c), t)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "travel updated", response.FilterTravelInfo(updated))
}

// DeleteTravel removes a journey leg.
func (h *TripHandler) DeleteTravel(c *gin.Context) {
	err := h.service.DeleteTravel(uintParam(c, "trip_id"), jwt.CurrentUserID(c), uintParam(c, "travel_id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "travel deleted", nil)
}

// ReorderTravels rewrites the journey-leg display order.
func (h *TripHandler) ReorderTravels(c *gin.Context) {
	var r orderRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.ReorderTravels(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.OrderedIDs)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "order updated", nil)
}
