package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", co.Limiter.Middleware(), co.Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Log in
// @Description	Returns an access token for the user. Login attempts are rate limited per client IP.
// @Tags			Authentication
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		429			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		respondError(c, err)
		return
	}

	user, err := co.Store.UserByName(c.Request.Context(), strings.TrimSpace(credentials.Username))
	if errors.Is(err, models.ErrResourceNotFound) {
		respondError(c, auth.ErrInvalidCredentials)
		return
	} else if err != nil {
		respondError(c, err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		respondError(c, err)
		return
	}

	token, err := co.Issuer.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Data: Login{
			Token: token,
			User:  newUser(c, user),
		},
	})
}
