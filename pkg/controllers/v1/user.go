package v1

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.POST("", co.CreateUser)
	}

	// Authenticated user
	{
		r.OPTIONS("/me", OptionsMe)
		r.GET("/me", co.authenticate(), co.GetMe)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", co.authenticate(), co.GetUser)
		r.PATCH("/:id", co.authenticate(), co.UpdateUser)
	}

	co.RegisterDayRoutes(r.Group("/:id/days"))
	co.RegisterMonthRoutes(r.Group("/:id/months"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Register
// @Description	Creates a new user
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var create UserCreate
	if err := httputil.BindData(c, &create); err != nil {
		respondError(c, err)
		return
	}

	if err := models.ValidatePassword(create.Password); err != nil {
		respondError(c, err)
		return
	}

	hash, err := auth.HashPassword(create.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := co.Store.CreateUser(c.Request.Context(), create.Username, hash)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: newUser(c, user)})
}

// @Summary		Current user
// @Description	Returns the user the bearer token was issued for
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/users/me [get]
func (co Controller) GetMe(c *gin.Context) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		respondError(c, auth.ErrMissingToken)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: newUser(c, user)})
}

// @Summary		Get user
// @Description	Returns a specific user. Users can only read themselves.
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/v1/users/{id} [get]
func (co Controller) GetUser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	user, err := auth.Self(c, uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: newUser(c, user)})
}

// @Summary		Update user
// @Description	Updates the username or password of a user. Only the specified fields are updated.
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the user"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func (co Controller) UpdateUser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	current, err := auth.Self(c, uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	update := models.UserUpdate{Username: editable.Username}
	if editable.Password != nil {
		if err := models.ValidatePassword(*editable.Password); err != nil {
			respondError(c, err)
			return
		}

		hash, err := auth.HashPassword(*editable.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		update.PasswordHash = &hash
	}

	user, err := co.Store.UpdateUser(c.Request.Context(), uri.ID.UUID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	// Cached rankings contain the username
	if user.Username != current.Username {
		co.Leaderboard.InvalidateAll(c.Request.Context())
	}

	c.JSON(http.StatusOK, UserResponse{Data: newUser(c, user)})
}
