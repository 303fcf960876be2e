package v1

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Users      string `json:"users" example:"https://example.com/api/v1/users"`               // URL of the user registration endpoint
	Me         string `json:"me" example:"https://example.com/api/v1/users/me"`               // URL of the authenticated user
	Login      string `json:"login" example:"https://example.com/api/v1/auth/login"`          // URL of the login endpoint
	Footprints string `json:"footprints" example:"https://example.com/api/v1/footprints"`     // URL of the footprint calculation endpoint
	Factors    string `json:"factors" example:"https://example.com/api/v1/factors"`           // URL of the emission factor table
	Tips       string `json:"tips" example:"https://example.com/api/v1/tips"`                 // URL of the reduction tips
	Rankings   string `json:"rankings" example:"https://example.com/api/v1/rankings/YYYY-MM"` // URL template of the monthly rankings
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:      url + "/v1/users",
			Me:         url + "/v1/users/me",
			Login:      url + "/v1/auth/login",
			Footprints: url + "/v1/footprints",
			Factors:    url + "/v1/factors",
			Tips:       url + "/v1/tips",
			Rankings:   url + "/v1/rankings/YYYY-MM",
		},
	})
}

// @Summary		Delete everything
// @Description	Permanently deletes all users and daily records. Only available when ENABLE_CLEANUP is set to true.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	if !co.EnableCleanup {
		respondError(c, errCleanupDisabled)
		return
	}

	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		respondError(c, errCleanupConfirmation)
		return
	}

	err = co.Store.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	co.Leaderboard.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
