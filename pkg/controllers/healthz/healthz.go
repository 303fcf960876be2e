// Package healthz reports whether the backend can reach its database.
package healthz

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/config"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	Store store.Store
	Cache string            // Name of the ranking cache
	Mongo *config.MongoInfo // Set when the mongo backend is used
}

type Response struct {
	Data Health `json:"data"`
}

type Health struct {
	Backend string            `json:"backend" example:"sqlite" enums:"sqlite,mongo"` // Database backend in use
	Cache   string            `json:"cache" example:"memory" enums:"memory,redis"`   // Ranking cache in use
	Redis   bool              `json:"redis" example:"false"`                         // Is the ranking cache Redis?
	Mongo   *config.MongoInfo `json:"mongo,omitempty"`                               // Connection details without credentials, mongo backend only
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Pings the database and returns the backends in use. When the database cannot be reached, an error is returned.
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.Store.Ping(c.Request.Context()); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("healthz")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.JSON(http.StatusOK, Response{
		Data: Health{
			Backend: co.Store.Backend(),
			Cache:   co.Cache,
			Redis:   co.Cache == "redis",
			Mongo:   co.Mongo,
		},
	})
}
