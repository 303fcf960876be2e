// Package version reports the running version of the backend.
package version

import (
	"net/http"
	"runtime"

	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Set by RegisterRoutes from the version the binary was built with.
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version   string `json:"version" example:"1.4.0"`      // Version of the EcoEchos backend
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go release the binary was built with
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:   apiVersion,
			GoVersion: runtime.Version(),
		},
	})
}
