package v1

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/achievement"
	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for monthly summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", co.authenticate(), co.GetMonth)

	r.OPTIONS("/:month/achievements", OptionsMonth)
	r.GET("/:month/achievements", co.authenticate(), co.GetAchievements)
}

// bindMonth binds the URI and verifies that it belongs to the authenticated user.
func bindMonth(c *gin.Context) (URIMonth, error) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		return URIMonth{}, err
	}

	if _, err := auth.Self(c, uri.ID.UUID); err != nil {
		return URIMonth{}, err
	}

	return uri, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/users/{id}/months/{month} [options]
// @Router			/v1/users/{id}/months/{month}/achievements [options]
func OptionsMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns the total of a month, the number of days logged, the total of each day and the emissions per category
// @Tags			Months
// @Produce		json
// @Security		BearerAuth
// @Success		200				{object}	MonthResponse
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		403				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		string	true	"ID of the user"
// @Param			month			path		string	true	"Month in YYYY-MM format"
// @Param			Accept-Language	header		string	false	"Language of the feedback message, en or pt-BR"
// @Router			/v1/users/{id}/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	uri, err := bindMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	total, _, err := co.Store.MonthlyTotal(c.Request.Context(), uri.ID.UUID, uri.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := co.Store.DailyInMonth(c.Request.Context(), uri.ID.UUID, uri.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{
		Data: Month{
			MonthSummary: models.Summarize(uri.Month, total, records),
			Feedback:     newFeedback(footprint.NewLocalizer(c.GetHeader("Accept-Language")), total),
			Equivalents:  footprint.Equivalents(total),
		},
	})
}

// @Summary		Get achievements
// @Description	Returns the achievements of a user for a month
// @Tags			Months
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	AchievementResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/users/{id}/months/{month}/achievements [get]
func (co Controller) GetAchievements(c *gin.Context) {
	uri, err := bindMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := co.Store.DailyInMonth(c.Request.Context(), uri.ID.UUID, uri.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AchievementResponse{Data: achievement.Evaluate(uri.Month, records)})
}
