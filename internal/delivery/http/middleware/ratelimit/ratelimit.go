package http_ratelimit_middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/travisksimons/vibe-check-movies/internal/delivery/http/common"
)

//go:generate mockery --name=Counter --output=./mocks/ratelimit/counter --filename=counter.go
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type Middleware struct {
	counter Counter
	limit   int64
	window  time.Duration
	logger  *slog.Logger
}

func New(
	counter Counter,
	limit int,
	window time.Duration,
) *Middleware {
	return &Middleware{
		counter: counter,
		limit:   int64(limit),
		window:  window,
		logger:  slog.Default(),
	}
}

// Limit caps how often a single client may pass through within the window.
// When the counter backend is unreachable the request goes through, creating
// a session matters more than enforcing the cap.
func (m *Middleware) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		n, err := m.counter.Incr(ctx, ctx.ClientIP(), m.window)
		if err != nil {
			m.logger.Warn("rate limit counter unavailable", slog.String("error", err.Error()))
			ctx.Next()
			return
		}

		if n > m.limit {
			m.logger.Info("rate limit exceeded",
				slog.String("client", ctx.ClientIP()),
				slog.Int64("count", n))
			ctx.JSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Message: "too many sessions created, try again later",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
