package response

import (
	"net/http"

	"mysterystays/errors"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// Success writes {"status": "success"} merged with fields.
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"status": StatusSuccess}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// JSON writes data as-is with 200.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Failed reports a lookup miss. Clients get 200 and must read the status field.
func Failed(c *gin.Context, reason string) {
	c.JSON(http.StatusOK, gin.H{
		"status": StatusFailed,
		"reason": reason,
	})
}

// Error writes {"status": "error", "message": message} with the given HTTP status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"status":  StatusError,
		"message": message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// FromError maps an error to the response for its AppError code.
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c, err.Error())
		return
	}

	switch appErr.Code {
	case errors.ErrCodePropertyNotFound, errors.ErrCodeBookingNotFound:
		Failed(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeInvalidOperation:
		Conflict(c, appErr.Message)
	default:
		ServerError(c, appErr.Error())
	}
}
