package handler

import (
	"travelmate/internal/service"
	"travelmate/pkg/jwt"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type SharingHandler struct {
	service *service.SharingService
}

func NewSharingHandler(s *service.SharingService) *SharingHandler {
	return &SharingHandler{service: s}
}

// Share invites a friend to the trip with view or edit permission.
func (h *SharingHandler) Share(c *gin.Context) {
	type req struct {
		FriendID   uint   `json:"friend_id" binding:"required"`
		Permission string `json:"permission" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sharing, err := h.service.Share(uintParam(c, "trip_id"), jwt.CurrentUserID(c), r.FriendID, r.Permission)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "trip shared", response.FilterSharingInfo(sharing, nil, nil))
}

// Respond accepts or declines an invitation.
func (h *SharingHandler) Respond(c *gin.Context) {
	type req struct {
		Action string `json:"action" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sharing, err := h.service.Respond(uintParam(c, "id"), jwt.CurrentUserID(c), r.Action)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "response recorded", response.FilterSharingInfo(sharing, nil, nil))
}

// Revoke withdraws a grant from a user, whatever its status.
func (h *SharingHandler) Revoke(c *gin.Context) {
	err := h.service.Revoke(uintParam(c, "trip_id"), jwt.CurrentUserID(c), uintParam(c, "user_id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "sharing revoked", nil)
}

// SharedTrips lists trips shared with the caller and accepted.
func (h *SharingHandler) SharedTrips(c *gin.Context) {
	rows, err := h.service.SharedTripsFor(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, filterSharings(rows))
}

// PendingInvitations lists open invitations addressed to the caller.
func (h *SharingHandler) PendingInvitations(c *gin.Context) {
	rows, err := h.service.PendingInvitationsFor(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, filterSharings(rows))
}

func filterSharings(rows []*service.SharingWithTrip) []*response.SharingInfo {
	out := make([]*response.SharingInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, response.FilterSharingInfo(row.Sharing, row.Trip, row.Owner))
	}
	return out
}
