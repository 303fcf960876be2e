package v1

import (
	"net/http"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/leaderboard"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/gin-gonic/gin"
)

type RankingQueryFilter struct {
	Limit int    `form:"limit"` // Maximum number of entries, 1 to 100. Defaults to 10.
	Order string `form:"order"` // desc for the highest totals first, asc for the lowest. Defaults to desc.
	Match string `form:"match"` // Glob for usernames, e.g. green*
}

type Ranking struct {
	Month   types.Month           `json:"month" swaggertype:"string" example:"2025-03"`
	Order   store.Order           `json:"order" example:"desc" enums:"desc,asc"`
	Entries []models.RankingEntry `json:"entries"`
}

type RankingResponse struct {
	Data Ranking `json:"data"`
}

// RegisterRankingRoutes registers the routes for rankings with
// the RouterGroup that is passed.
func (co Controller) RegisterRankingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsRanking)
	r.GET("/:month", co.GetRanking)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rankings
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/rankings/{month} [options]
func OptionsRanking(c *gin.Context) {
	var uri URIRankingMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get ranking
// @Description	Returns the users ranked by their total of the month. Only users with at least one record in the month are ranked. Ties are ordered by username.
// @Tags			Rankings
// @Produce		json
// @Success		200		{object}	RankingResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Param			limit	query		int		false	"Maximum number of entries, 1 to 100. Defaults to 10."
// @Param			order	query		string	false	"desc or asc. Defaults to desc."
// @Param			match	query		string	false	"Glob for usernames"
// @Router			/v1/rankings/{month} [get]
func (co Controller) GetRanking(c *gin.Context) {
	var uri URIRankingMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	var filter RankingQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, httputil.ErrInvalidQueryString)
		return
	}

	q := leaderboard.Query{
		Month: uri.Month,
		Limit: filter.Limit,
		Order: store.Order(filter.Order),
		Match: filter.Match,
	}

	entries, err := co.Leaderboard.Ranking(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	order := q.Order
	if order == "" {
		order = store.OrderDescending
	}

	c.JSON(http.StatusOK, RankingResponse{
		Data: Ranking{
			Month:   uri.Month,
			Order:   order,
			Entries: entries,
		},
	})
}
