package app

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/travisksimons/vibe-check-movies/internal/config"
	http_health "github.com/travisksimons/vibe-check-movies/internal/delivery/http/health"
	http_init "github.com/travisksimons/vibe-check-movies/internal/delivery/http/init"
	http_ratelimit_middleware "github.com/travisksimons/vibe-check-movies/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/travisksimons/vibe-check-movies/internal/delivery/http/movie"
	http_session "github.com/travisksimons/vibe-check-movies/internal/delivery/http/session"
	ws_session "github.com/travisksimons/vibe-check-movies/internal/delivery/ws/session"
	completion_client "github.com/travisksimons/vibe-check-movies/internal/infra/completion"
	infra_pg_init "github.com/travisksimons/vibe-check-movies/internal/infra/postgres/init"
	infra_postgres_session "github.com/travisksimons/vibe-check-movies/internal/infra/postgres/session"
	infra_redis_init "github.com/travisksimons/vibe-check-movies/internal/infra/redis/init"
	infra_movie_cache "github.com/travisksimons/vibe-check-movies/internal/infra/redis/moviecache"
	infra_redis_ratelimit "github.com/travisksimons/vibe-check-movies/internal/infra/redis/ratelimit"
	tmdb_client "github.com/travisksimons/vibe-check-movies/internal/infra/tmdb"
	"github.com/travisksimons/vibe-check-movies/internal/service/catalog"
	"github.com/travisksimons/vibe-check-movies/internal/service/recommender"
	"github.com/travisksimons/vibe-check-movies/internal/service/retention"
	usecase_movie "github.com/travisksimons/vibe-check-movies/internal/usecase/movie"
	usecase_session "github.com/travisksimons/vibe-check-movies/internal/usecase/session"
)

const movieCacheTTL = 24 * time.Hour

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	infra_pg_init.MustInitSchema(pgConn)

	sessionRepository := infra_postgres_session.New(pgConn)

	hub := ws_session.New(slog.Default())

	completionClient := completion_client.New(cfg.Completion)
	synthesizer := recommender.New(completionClient)

	sessionUC := usecase_session.New(sessionRepository, synthesizer, hub)

	tmdbClient := tmdb_client.New(cfg.TMDB)
	movieCache := infra_movie_cache.New(redisConn, "movie_cache", movieCacheTTL)
	movieUC := usecase_movie.New(tmdbClient, movieCache, catalog.Default())

	maxAge := time.Duration(cfg.Retention.MaxAgeHours) * time.Hour
	sweeper := retention.New(sessionRepository, maxAge, cfg.Retention.SweepSpec)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start retention sweeper: %v", err)
	}
	defer sweeper.Stop()

	limitCounter := infra_redis_ratelimit.New(redisConn, "create_limit")
	limiter := http_ratelimit_middleware.New(limitCounter, cfg.App.SessionCreateLimit, time.Hour)

	controllerPool := http_init.NewControllerPool(strings.Split(cfg.App.AllowedOrigins, ","))
	controllerPool.Add(http_session.New(sessionUC, limiter, cfg.App.ShareBaseURL))
	controllerPool.Add(http_movie.New(movieUC))
	controllerPool.AddRoot(http_health.New())
	controllerPool.AddRoot(ws_session.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
