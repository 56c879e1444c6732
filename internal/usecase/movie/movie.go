package usecase_movie

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/travisksimons/vibe-check-movies/internal/model"
)

const DefaultQuizSize = 15

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoMoviesAvailable = errors.New("no movies available")
)

//go:generate mockery --name=Lookup --output=./mocks/movie/lookup --filename=lookup.go
type Lookup interface {
	FetchMovie(ctx context.Context, id int64) (*model.MovieDetails, error)
}

//go:generate mockery --name=Cache --output=./mocks/movie/cache --filename=cache.go
type Cache interface {
	Get(ctx context.Context, id int64) (*model.MovieDetails, error)
	Set(ctx context.Context, details model.MovieDetails) error
}

type Usecase struct {
	lookup Lookup
	cache  Cache
	pool   []int64
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	lookup Lookup,
	cache Cache,
	pool []int64,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		lookup: lookup,
		cache:  cache,
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Quiz samples count movies from the pool and resolves their details,
// preferring the cache over the upstream catalog. Movies that cannot be
// resolved are dropped rather than failing the whole quiz.
func (u *Usecase) Quiz(ctx context.Context, count int) ([]*model.MovieDetails, error) {
	if count <= 0 {
		count = DefaultQuizSize
	}
	if len(u.pool) == 0 {
		return nil, ErrNoMoviesAvailable
	}
	if count > len(u.pool) {
		count = len(u.pool)
	}

	ids := u.sample(count)
	slots := make([]*model.MovieDetails, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()

			details, err := u.resolve(ctx, id)
			if err != nil {
				u.logger.Warn("failed to resolve movie",
					slog.Int64("movie_id", id),
					slog.Any("error", err),
				)
				return
			}
			slots[i] = details
		}()
	}
	wg.Wait()

	movies := make([]*model.MovieDetails, 0, len(slots))
	for _, details := range slots {
		if details != nil {
			movies = append(movies, details)
		}
	}
	if len(movies) == 0 {
		return nil, ErrNoMoviesAvailable
	}

	return movies, nil
}

func (u *Usecase) resolve(ctx context.Context, id int64) (*model.MovieDetails, error) {
	cached, err := u.cache.Get(ctx, id)
	if err != nil {
		u.logger.Warn("movie cache lookup failed",
			slog.Int64("movie_id", id),
			slog.Any("error", err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	details, err := u.lookup.FetchMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, nil
	}

	if err := u.cache.Set(ctx, *details); err != nil {
		u.logger.Warn("movie cache store failed",
			slog.Int64("movie_id", id),
			slog.Any("error", err),
		)
	}

	return details, nil
}

func (u *Usecase) sample(count int) []int64 {
	ids := make([]int64, len(u.pool))
	copy(ids, u.pool)
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	return ids[:count]
}
