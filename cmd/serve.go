package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/config"
	"github.com/ecoechos/backend/pkg/controllers/healthz"
	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/leaderboard"
	"github.com/ecoechos/backend/pkg/router"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	cache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	if r, ok := cache.(*leaderboard.Redis); ok {
		defer r.Close()
	}

	health := healthz.Controller{Store: s, Cache: cache.Name()}
	if cfg.DBBackend == store.BackendMongo {
		info := cfg.MongoInfo()
		health.Mongo = &info
	}

	controllers := router.Controllers{
		V1: v1.Controller{
			Store:         s,
			Leaderboard:   leaderboard.New(s, cache),
			Issuer:        auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
			Limiter:       auth.NewLimiter(cfg.LoginRatePerMinute),
			EnableCleanup: cfg.EnableCleanup,
			Picker:        rand.IntN,
		},
		Healthz: health,
	}

	// Validate has already checked the URL
	url, _ := cfg.URL()

	r, teardown, err := router.Config(url)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(controllers, r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	log.Info().Int("port", cfg.Port).Str("database", s.Backend()).Str("cache", cache.Name()).Str("version", router.Version()).Msg("starting server")
	if err := serveHTTP(ctx, srv, ln, shutdownTimeout); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// serveHTTP serves on ln until ctx is done. It returns after in-flight
// requests have drained or the timeout has expired, so the store and
// cache can be closed afterwards.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-drained
	return nil
}

// openStore connects to the configured database backend.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBBackend {
	case store.BackendMongo:
		return store.OpenMongo(ctx, cfg.MongoConnectionURI(), cfg.MongoDatabase)
	case store.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm); err != nil {
			return nil, err
		}
		return store.OpenSQLite(cfg.SQLitePath)
	}

	return nil, fmt.Errorf("%w '%s'", store.ErrUnknownBackend, cfg.DBBackend)
}

// openCache connects to Redis when it is configured and falls back to
// an in-memory cache otherwise.
func openCache(ctx context.Context, cfg *config.Config) (leaderboard.Cache, error) {
	if cfg.RedisAddr == "" {
		return leaderboard.NewMemory(cfg.RankingCacheTTL), nil
	}

	return leaderboard.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RankingCacheTTL)
}
