package handler

import (
	"travelmate/internal/service"
	"travelmate/pkg/jwt"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service *service.FriendshipService
}

func NewFriendHandler(s *service.FriendshipService) *FriendHandler {
	return &FriendHandler{service: s}
}

// SendRequest opens a pending friendship toward another user.
func (h *FriendHandler) SendRequest(c *gin.Context) {
	type req struct {
		AddresseeID uint `json:"addressee_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	friendship, err := h.service.SendRequest(jwt.CurrentUserID(c), r.AddresseeID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "friend request sent", response.FilterFriendshipInfo(friendship, nil))
}

// Respond accepts or declines a received request.
func (h *FriendHandler) Respond(c *gin.Context) {
	type req struct {
		Action string `json:"action" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	friendship, err := h.service.Respond(uintParam(c, "id"), jwt.CurrentUserID(c), r.Action)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "response recorded", response.FilterFriendshipInfo(friendship, nil))
}

// Block marks the relationship blocked.
func (h *FriendHandler) Block(c *gin.Context) {
	friendship, err := h.service.Block(uintParam(c, "id"), jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "user blocked", response.FilterFriendshipInfo(friendship, nil))
}

// Remove unfriends the given user.
func (h *FriendHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(jwt.CurrentUserID(c), uintParam(c, "user_id")); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "friend removed", nil)
}

// List returns the caller's accepted friends.
func (h *FriendHandler) List(c *gin.Context) {
	rows, err := h.service.FriendsOf(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, filterFriendships(rows))
}

// PendingReceived returns open requests addressed to the caller.
func (h *FriendHandler) PendingReceived(c *gin.Context) {
	rows, err := h.service.PendingReceivedBy(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, filterFriendships(rows))
}

// PendingSent returns open requests the caller initiated.
func (h *FriendHandler) PendingSent(c *gin.Context) {
	rows, err := h.service.PendingSentBy(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, filterFriendships(rows))
}

func filterFriendships(rows []*service.FriendshipWithUser) []*response.FriendshipInfo {
	out := make([]*response.FriendshipInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, response.FilterFriendshipInfo(row.Friendship, row.Counterpart))
	}
	return out
}
