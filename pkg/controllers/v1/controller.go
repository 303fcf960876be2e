// Package v1 implements the v1 API.
package v1

import (
	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/leaderboard"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Store         store.Store
	Leaderboard   *leaderboard.Service
	Issuer        *auth.Issuer
	Limiter       *auth.Limiter
	EnableCleanup bool

	// Picker selects the advice tips. The first tips are used when nil.
	Picker footprint.Picker
}

// authenticate requires a valid bearer token.
func (co Controller) authenticate() gin.HandlerFunc {
	return auth.Middleware(co.Issuer, co.Store)
}

// RegisterRoutes registers all v1 routes with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", co.Get)
		r.DELETE("", co.Cleanup)
		r.OPTIONS("", Options)
	}

	co.RegisterUserRoutes(r.Group("/users"))
	co.RegisterAuthRoutes(r.Group("/auth"))
	co.RegisterFootprintRoutes(r)
	co.RegisterRankingRoutes(r.Group("/rankings"))
}
