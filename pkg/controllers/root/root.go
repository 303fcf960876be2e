package root

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

const unit = "kgCO2e"

type Response struct {
	Data  Service `json:"data"`
	Links Links   `json:"links"`
}

// Service describes what the API estimates.
type Service struct {
	Name      string   `json:"name" example:"EcoEchos"`
	Unit      string   `json:"unit" example:"kgCO2e"`        // Unit of every emission value
	Languages []string `json:"languages" example:"en,pt-BR"` // Languages available for feedback, selected with Accept-Language
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Database and cache health
	Version string `json:"version" example:"https://example.com/api/version"`      // Version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // Footprints, users, daily records and rankings
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API. Describes the service and links all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Data: Service{
			Name:      "EcoEchos",
			Unit:      unit,
			Languages: footprint.Languages(),
		},
		Links: Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
