package v1

import (
	"errors"
	"net/http"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden), errors.Is(err, errCleanupDisabled):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrTooManyRequests):
		return http.StatusTooManyRequests
	}

	return http.StatusBadRequest
}

// respondError writes the error with the matching status. Server errors
// are logged in full, the client only gets the generic message.
func respondError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = models.ErrGeneral
	}

	c.JSON(s, httpError{
		Error: err.Error(),
	})
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errCleanupDisabled     = errors.New("deleting all data is disabled on this instance")
)

var errFactorGroup = errors.New("the group query parameter must be one of energy, transport, food, housing, consumption, waste, lifestyle, offsets")
