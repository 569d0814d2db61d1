package handler

import (
	"net/http"

	"frontdesk/internal/apperror"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the response envelope
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)

	if appErr, ok := apperror.As(err); ok {
		message := appErr.Message
		if appErr.Code == apperror.CodeInvalidStatus && appErr.Err != nil {
			message = appErr.Err.Error() + ": " + appErr.Message
		}
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
		c.JSON(status, response.ValidationError(status, message, appErr.Fields))
		return
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, response.Error(status, "Internal server error"))
		return
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}
