package api

import (
	"errors"
	"net/http"

	"github.com/etnz/sip"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  int              `json:"status"`
	Message string           `json:"message"`
	Fields  []sip.FieldError `json:"fields,omitempty"`
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Status: status, Message: message})
}

// writeComputeError maps the engine errors to HTTP statuses.
func writeComputeError(c *gin.Context, err error) {
	var verr *sip.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
			Status:  http.StatusUnprocessableEntity,
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	case errors.Is(err, sip.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, sip.ErrPlanNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
