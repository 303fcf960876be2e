package test

import (
	"testing"
	"time"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/controllers/healthz"
	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/leaderboard"
	"github.com/ecoechos/backend/pkg/router"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/stretchr/testify/require"
)

// Secret signs the tokens of the test controllers.
const Secret = "test-secret"

// Controllers returns controllers backed by a temporary SQLite database
// and an in-memory ranking cache. The database is closed when the test ends.
func Controllers(t *testing.T) router.Controllers {
	s, err := store.OpenSQLite(TmpFile(t))
	require.NoError(t, err, "Database connection failed")
	t.Cleanup(func() { s.Close() })

	cache := leaderboard.NewMemory(leaderboard.DefaultTTL)

	return router.Controllers{
		V1: v1.Controller{
			Store:         s,
			Leaderboard:   leaderboard.New(s, cache),
			Issuer:        auth.NewIssuer(Secret, time.Hour),
			Limiter:       auth.NewLimiter(1000),
			EnableCleanup: true,
		},
		Healthz: healthz.Controller{
			Store: s,
			Cache: cache.Name(),
		},
	}
}
