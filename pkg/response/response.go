package response

import (
	"net/http"

	"travelmate/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Response unified JSON envelope. Code 0 means success.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"` // details, debug mode only
}

// Success 200 envelope with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 200 envelope with a custom message.
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error generic error envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails attaches the underlying error in debug mode.
func ErrorWithDetails(c *gin.Context, code int, message string, err error) {
	response := Response{
		Code:    code,
		Message: message,
	}

	if gin.Mode() == gin.DebugMode && err != nil {
		response.Error = err.Error()
	}

	c.JSON(http.StatusOK, response)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// FromAppError maps an application error kind onto the envelope. Every
// handler funnels service failures through here so one kind always renders
// the same way.
func FromAppError(c *gin.Context, err error) {
	msg := apperr.UserMessage(err)
	switch apperr.KindOf(err) {
	case apperr.KindDuplicateIdentity,
		apperr.KindSelfReferential,
		apperr.KindInvalidState,
		apperr.KindRelationshipRequired,
		apperr.KindValidation:
		BadRequest(c, msg)
	case apperr.KindInvalidCredentials:
		Unauthorized(c, msg)
	case apperr.KindUnauthorized:
		Forbidden(c, msg)
	case apperr.KindNotFound:
		NotFound(c, msg)
	default:
		InternalError(c, "internal error")
	}
}
