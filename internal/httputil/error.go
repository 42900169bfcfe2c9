package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/finsight/backend/internal/forecast"
	"github.com/finsight/backend/internal/report"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"budget limits must not be negative"`
}

// NewError writes an HTTPError response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrorHandler maps errors from the analytical components to HTTP
// responses. Caller mistakes become a 400 with the error message,
// everything else becomes a 500 that only exposes the request id.
func ErrorHandler(c *gin.Context, err error) {
	if errors.Is(err, report.ErrInvalidLimit) || errors.Is(err, forecast.ErrInsufficientData) {
		NewError(c, http.StatusBadRequest, err)
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
}
