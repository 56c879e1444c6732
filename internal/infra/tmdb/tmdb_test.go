package tmdb_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/travisksimons/vibe-check-movies/internal/config"
)

type TMDBClientSuite struct {
	suite.Suite
}

func newTestClient(baseURL string) *HTTPMovieClient {
	return New(config.TMDB{
		APIKey:       "test-key",
		BaseURL:      baseURL,
		ImageBaseURL: "https://image.test/t/p",
	})
}

func (suite *TMDBClientSuite) TestFetchMovie(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 550,
			"title": "Fight Club",
			"release_date": "1999-10-15",
			"poster_path": "/fight-club.jpg",
			"overview": "An insomniac office worker...",
			"vote_average": 8.4,
			"genres": [{"id": 18, "name": "Drama"}, {"id": 53, "name": "Thriller"}]
		}`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).FetchMovie(context.Background(), 550)

	assert.NoError(t, err)
	assert.Equal(t, int64(550), details.ID)
	assert.Equal(t, "Fight Club", details.Title)
	assert.Equal(t, 1999, details.Year)
	assert.Equal(t, "https://image.test/t/p/w500/fight-club.jpg", details.PosterLink)
	assert.Equal(t, []string{"Drama", "Thriller"}, details.Genres)
	assert.Equal(t, 8.4, details.Rating)
}

func (suite *TMDBClientSuite) TestFetchMovieUnknownID(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).FetchMovie(context.Background(), 999999999)

	assert.NoError(t, err)
	assert.Nil(t, details)
}

func (suite *TMDBClientSuite) TestFetchMovieServerError(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).FetchMovie(context.Background(), 550)

	assert.Error(t, err)
	assert.Nil(t, details)
}

func (suite *TMDBClientSuite) TestFetchMovieBadPayload(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).FetchMovie(context.Background(), 550)

	assert.Error(t, err)
	assert.Nil(t, details)
}

func (suite *TMDBClientSuite) TestFetchMovieWithoutKey(t provider.T) {
	t.Parallel()

	client := New(config.TMDB{BaseURL: "http://tmdb.invalid"})

	details, err := client.FetchMovie(context.Background(), 550)

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, details)
}

func TestTMDBClientSuite(t *testing.T) {
	suite.RunSuite(t, new(TMDBClientSuite))
}
