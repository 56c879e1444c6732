package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

//go:generate mockery --name=Store --output=./mocks/retention/store --filename=store.go
type Store interface {
	DeleteExpired(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Sweeper removes sessions older than maxAge. Participants go with them
// through the cascade, so a single delete covers the whole party.
type Sweeper struct {
	store  Store
	maxAge time.Duration
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

type Option func(*Sweeper)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) {
		s.logger = logger
	}
}

func New(
	store Store,
	maxAge time.Duration,
	spec string,
	opts ...Option,
) *Sweeper {
	s := &Sweeper{
		store:  store,
		maxAge: maxAge,
		spec:   spec,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start sweeps once right away, so a restart never leaves expired sessions
// waiting for the next tick, then keeps sweeping on the configured schedule.
func (s *Sweeper) Start() error {
	s.RunOnce(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() {
		s.RunOnce(context.Background())
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c

	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) {
	deleted, err := s.store.DeleteExpired(ctx, s.maxAge)
	if err != nil {
		s.logger.Error("retention sweep failed", slog.Any("error", err))
		return
	}
	if deleted > 0 {
		s.logger.Info("retention sweep removed expired sessions", slog.Int64("deleted", deleted))
	}
}
