//go:build !integration
// +build !integration

package usecase_movie

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/travisksimons/vibe-check-movies/internal/model"
	cache_mocks "github.com/travisksimons/vibe-check-movies/internal/usecase/movie/mocks/movie/cache"
	lookup_mocks "github.com/travisksimons/vibe-check-movies/internal/usecase/movie/mocks/movie/lookup"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	lookup  *lookup_mocks.Lookup
	cache   *cache_mocks.Cache
	ctx     context.Context
}

func initResources(t provider.T, pool []int64) *resources {
	lookup := lookup_mocks.NewLookup(t)
	cache := cache_mocks.NewCache(t)
	usecase := New(lookup, cache, pool)

	return &resources{
		usecase: usecase,
		lookup:  lookup,
		cache:   cache,
		ctx:     context.Background(),
	}
}

type MovieDetailsBuilder struct {
	d model.MovieDetails
}

func NewMovieDetailsBuilder() *MovieDetailsBuilder {
	return &MovieDetailsBuilder{
		d: model.MovieDetails{
			ID:         550,
			Title:      "Fight Club",
			Year:       1999,
			PosterLink: "https://image.tmdb.org/t/p/w500/poster.jpg",
			Genres:     []string{"Drama"},
			Rating:     8.4,
			Overview:   "An insomniac office worker crosses paths with a soap maker.",
		},
	}
}

func (b *MovieDetailsBuilder) WithID(id int64) *MovieDetailsBuilder {
	b.d.ID = id
	return b
}

func (b *MovieDetailsBuilder) Build() model.MovieDetails {
	return b.d
}

func (suite *UsecaseMovieUnitSuite) TestQuiz(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		pool          []int64
		count         int
		setupMocks    func(r *resources)
		expectedLen   int
		expectError   bool
		expectedError error
	}{
		{
			name:  "Should serve cached movies without hitting the catalog",
			pool:  []int64{550, 680},
			count: 2,
			setupMocks: func(r *resources) {
				for _, id := range []int64{550, 680} {
					details := NewMovieDetailsBuilder().WithID(id).Build()
					r.cache.On("Get", r.ctx, id).Return(&details, nil).Once()
				}
			},
			expectedLen: 2,
			expectError: false,
		},
		{
			name:  "Should fetch misses from the catalog and backfill the cache",
			pool:  []int64{550, 680},
			count: 2,
			setupMocks: func(r *resources) {
				for _, id := range []int64{550, 680} {
					details := NewMovieDetailsBuilder().WithID(id).Build()
					r.cache.On("Get", r.ctx, id).Return(nil, nil).Once()
					r.lookup.On("FetchMovie", r.ctx, id).Return(&details, nil).Once()
					r.cache.On("Set", r.ctx, details).Return(nil).Once()
				}
			},
			expectedLen: 2,
			expectError: false,
		},
		{
			name:  "Should drop movies the catalog cannot resolve",
			pool:  []int64{550, 680, 13},
			count: 3,
			setupMocks: func(r *resources) {
				details := NewMovieDetailsBuilder().WithID(550).Build()
				r.cache.On("Get", r.ctx, mock.AnythingOfType("int64")).Return(nil, nil).Times(3)
				r.lookup.On("FetchMovie", r.ctx, int64(550)).Return(&details, nil).Once()
				r.lookup.On("FetchMovie", r.ctx, int64(680)).Return(nil, errors.New("fetch error")).Once()
				r.lookup.On("FetchMovie", r.ctx, int64(13)).Return(nil, nil).Once()
				r.cache.On("Set", r.ctx, details).Return(nil).Once()
			},
			expectedLen: 1,
			expectError: false,
		},
		{
			name:  "Should report no movies when nothing resolves",
			pool:  []int64{550, 680},
			count: 2,
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, mock.AnythingOfType("int64")).Return(nil, nil).Times(2)
				r.lookup.On("FetchMovie", r.ctx, mock.AnythingOfType("int64")).Return(nil, errors.New("fetch error")).Times(2)
			},
			expectError:   true,
			expectedError: ErrNoMoviesAvailable,
		},
		{
			name:  "Should report no movies when the pool is empty",
			pool:  []int64{},
			count: 5,
			setupMocks: func(r *resources) {
			},
			expectError:   true,
			expectedError: ErrNoMoviesAvailable,
		},
		{
			name:  "Should cap the quiz at the pool size",
			pool:  []int64{550, 680},
			count: 10,
			setupMocks: func(r *resources) {
				for _, id := range []int64{550, 680} {
					details := NewMovieDetailsBuilder().WithID(id).Build()
					r.cache.On("Get", r.ctx, id).Return(&details, nil).Once()
				}
			},
			expectedLen: 2,
			expectError: false,
		},
		{
			name:  "Should degrade to the catalog when the cache is down",
			pool:  []int64{550},
			count: 1,
			setupMocks: func(r *resources) {
				details := NewMovieDetailsBuilder().WithID(550).Build()
				r.cache.On("Get", r.ctx, int64(550)).Return(nil, errors.New("cache error")).Once()
				r.lookup.On("FetchMovie", r.ctx, int64(550)).Return(&details, nil).Once()
				r.cache.On("Set", r.ctx, details).Return(errors.New("cache error")).Once()
			},
			expectedLen: 1,
			expectError: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t, tc.pool)
			tc.setupMocks(r)

			movies, err := r.usecase.Quiz(r.ctx, tc.count)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, movies)
			} else {
				assert.NoError(t, err)
				assert.Len(t, movies, tc.expectedLen)
			}
			r.lookup.AssertExpectations(t)
			r.cache.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseMovieUnitSuite) TestQuizUsesDefaultSize(t provider.T) {
	t.Parallel()

	pool := make([]int64, 0, 2*DefaultQuizSize)
	for i := 0; i < 2*DefaultQuizSize; i++ {
		pool = append(pool, int64(i+1))
	}
	r := initResources(t, pool)

	r.cache.On("Get", r.ctx, mock.AnythingOfType("int64")).Return(nil, nil).Times(DefaultQuizSize)
	r.lookup.On("FetchMovie", r.ctx, mock.AnythingOfType("int64")).
		Return(func(_ context.Context, id int64) *model.MovieDetails {
			details := NewMovieDetailsBuilder().WithID(id).Build()
			return &details
		}, nil).Times(DefaultQuizSize)
	r.cache.On("Set", r.ctx, mock.AnythingOfType("model.MovieDetails")).Return(nil).Times(DefaultQuizSize)

	movies, err := r.usecase.Quiz(r.ctx, 0)

	assert.NoError(t, err)
	assert.Len(t, movies, DefaultQuizSize)
	r.lookup.AssertExpectations(t)
	r.cache.AssertExpectations(t)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}
