package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const contextUser = "auth.user"

// UserLoader loads the user a token was issued for.
type UserLoader interface {
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// bearer extracts the token from the Authorization header.
func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// Middleware authenticates requests with a bearer token and stores
// the user in the context.
func Middleware(issuer *Issuer, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			httputil.NewError(c, http.StatusUnauthorized, ErrMissingToken)
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("rejected token")
			httputil.NewError(c, http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		id, _ := claims.UserID()
		user, err := users.UserByID(c.Request.Context(), id)
		if errors.Is(err, models.ErrResourceNotFound) {
			httputil.NewError(c, http.StatusUnauthorized, ErrInvalidToken)
			return
		} else if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("loading token user")
			httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated user.
func UserFromContext(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(contextUser)
	if !ok {
		return models.User{}, false
	}

	user, ok := v.(models.User)
	return user, ok
}

// Self verifies that the authenticated user is the one with the ID.
func Self(c *gin.Context, id uuid.UUID) (models.User, error) {
	user, ok := UserFromContext(c)
	if !ok {
		return models.User{}, ErrMissingToken
	}

	if user.ID != id {
		return models.User{}, ErrForbidden
	}

	return user, nil
}
