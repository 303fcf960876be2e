package v1

import (
	"net/http"

	"github.com/ecoechos/backend/pkg/emission"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterFootprintRoutes registers the routes for calculations, the factor
// table and tips with the RouterGroup that is passed.
func (co Controller) RegisterFootprintRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/footprints", OptionsFootprints)
	r.POST("/footprints", co.CalculateFootprint)

	r.OPTIONS("/factors", OptionsFactors)
	r.GET("/factors", GetFactors)

	r.OPTIONS("/tips", OptionsTips)
	r.GET("/tips", GetTips)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Footprints
// @Success		204
// @Router			/v1/footprints [options]
func OptionsFootprints(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Footprints
// @Success		204
// @Router			/v1/factors [options]
func OptionsFactors(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Footprints
// @Success		204
// @Router			/v1/tips [options]
func OptionsTips(c *gin.Context) {
	httputil.OptionsGet(c)
}

// bindInput binds the request body to an input with defaults and validates it.
func bindInput(c *gin.Context) (footprint.Input, error) {
	in := footprint.NewInput()
	if err := httputil.BindData(c, &in); err != nil {
		return footprint.Input{}, err
	}

	if err := in.Validate(); err != nil {
		return footprint.Input{}, err
	}

	return in, nil
}

// @Summary		Calculate footprint
// @Description	Calculates the footprint of the activity data without saving it. The feedback message is localized with the Accept-Language header.
// @Tags			Footprints
// @Produce		json
// @Success		200				{object}	FootprintResponse
// @Failure		400				{object}	httpError
// @Param			input			body		footprint.Input	true	"Activity data"
// @Param			Accept-Language	header		string			false	"Language of the feedback message, en or pt-BR"
// @Router			/v1/footprints [post]
func (co Controller) CalculateFootprint(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result := footprint.Calculate(in)
	footprintCalculations.Inc()

	c.JSON(http.StatusOK, FootprintResponse{
		Data: Footprint{
			Result:      result,
			Categories:  result.Categories(),
			Feedback:    newFeedback(footprint.NewLocalizer(c.GetHeader("Accept-Language")), result.Total),
			Advice:      footprint.Advise(result, co.Picker),
			Equivalents: footprint.Equivalents(result.Total),
		},
	})
}

// @Summary		List emission factors
// @Description	Returns the emission factor table
// @Tags			Footprints
// @Produce		json
// @Success		200		{object}	FactorListResponse
// @Failure		400		{object}	httpError
// @Param			group	query		string	false	"Filter by group"
// @Router			/v1/factors [get]
func GetFactors(c *gin.Context) {
	var filter FactorQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, httputil.ErrInvalidQueryString)
		return
	}

	if filter.Group == "" {
		c.JSON(http.StatusOK, FactorListResponse{Data: emission.All()})
		return
	}

	group := emission.Group(filter.Group)
	if !slices.Contains(emission.Groups(), group) {
		respondError(c, errFactorGroup)
		return
	}

	c.JSON(http.StatusOK, FactorListResponse{Data: emission.ByGroup(group)})
}

// @Summary		List tips
// @Description	Returns the reduction tips for each category
// @Tags			Footprints
// @Produce		json
// @Success		200	{object}	TipListResponse
// @Router			/v1/tips [get]
func GetTips(c *gin.Context) {
	data := make([]CategoryTips, 0)
	for _, g := range emission.Groups() {
		tips := footprint.Tips(g)
		if len(tips) == 0 {
			continue
		}

		data = append(data, CategoryTips{Category: g, Tips: tips})
	}

	c.JSON(http.StatusOK, TipListResponse{Data: data})
}
