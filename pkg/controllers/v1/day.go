package v1

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterDayRoutes registers the routes for daily records with
// the RouterGroup that is passed.
func (co Controller) RegisterDayRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:date", OptionsDay)
	r.GET("/:date", co.authenticate(), co.GetDay)
	r.PUT("/:date", co.authenticate(), co.SaveDay)
	r.DELETE("/:date", co.authenticate(), co.DeleteDay)
}

// bindDay binds the URI and verifies that it belongs to the authenticated user.
func bindDay(c *gin.Context) (URIDay, error) {
	var uri URIDay
	if err := c.ShouldBindUri(&uri); err != nil {
		return URIDay{}, err
	}

	if _, err := auth.Self(c, uri.ID.UUID); err != nil {
		return URIDay{}, err
	}

	return uri, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Days
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			date	path		string	true	"Day in YYYY-MM-DD format"
// @Router			/v1/users/{id}/days/{date} [options]
func OptionsDay(c *gin.Context) {
	var uri URIDay
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get daily record
// @Description	Returns the footprint a user logged for a day
// @Tags			Days
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			date	path		string	true	"Day in YYYY-MM-DD format"
// @Router			/v1/users/{id}/days/{date} [get]
func (co Controller) GetDay(c *gin.Context) {
	uri, err := bindDay(c)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := co.Store.Daily(c.Request.Context(), uri.ID.UUID, uri.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: record})
}

// @Summary		Save daily record
// @Description	Calculates the footprint of the activity data and saves it for the day. An existing record for the day is replaced.
// @Tags			Days
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the user"
// @Param			date	path		string			true	"Day in YYYY-MM-DD format"
// @Param			input	body		footprint.Input	true	"Activity data"
// @Router			/v1/users/{id}/days/{date} [put]
func (co Controller) SaveDay(c *gin.Context) {
	uri, err := bindDay(c)
	if err != nil {
		respondError(c, err)
		return
	}

	in, err := bindInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := co.Store.SaveDaily(c.Request.Context(), models.NewDailyRecord(uri.ID.UUID, uri.Date, in))
	if err != nil {
		respondError(c, err)
		return
	}

	dailyRecordsSaved.Inc()
	co.Leaderboard.Invalidate(c.Request.Context(), uri.Date.Month())

	c.JSON(http.StatusOK, DayResponse{Data: record})
}

// @Summary		Delete daily record
// @Description	Deletes the record of a day
// @Tags			Days
// @Security		BearerAuth
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			date	path		string	true	"Day in YYYY-MM-DD format"
// @Router			/v1/users/{id}/days/{date} [delete]
func (co Controller) DeleteDay(c *gin.Context) {
	uri, err := bindDay(c)
	if err != nil {
		respondError(c, err)
		return
	}

	err = co.Store.DeleteDaily(c.Request.Context(), uri.ID.UUID, uri.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	co.Leaderboard.Invalidate(c.Request.Context(), uri.Date.Month())
	c.Status(http.StatusNoContent)
}
