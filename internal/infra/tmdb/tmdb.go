package tmdb_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/travisksimons/vibe-check-movies/internal/config"
	"github.com/travisksimons/vibe-check-movies/internal/model"
)

var ErrNotConfigured = errors.New("tmdb api key is not configured")

const defaultPosterSize = "w500"

type HTTPMovieClient struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
	logger       *slog.Logger
}

func New(cfg config.TMDB) *HTTPMovieClient {
	return &HTTPMovieClient{
		baseURL:      cfg.BaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		apiKey:       cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: slog.Default(),
	}
}

type movieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// FetchMovie resolves a single movie by TMDB id. An id TMDB does not know
// comes back as (nil, nil) so callers can drop it without failing the batch.
func (c *HTTPMovieClient) FetchMovie(ctx context.Context, id int64) (*model.MovieDetails, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	url := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status: %d", resp.StatusCode)
	}

	var movieResp movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&movieResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return c.buildDetails(movieResp), nil
}

func (c *HTTPMovieClient) buildDetails(resp movieResponse) *model.MovieDetails {
	details := &model.MovieDetails{
		ID:       resp.ID,
		Title:    resp.Title,
		Rating:   resp.VoteAverage,
		Overview: resp.Overview,
	}

	if len(resp.ReleaseDate) >= 4 {
		if year, err := strconv.Atoi(resp.ReleaseDate[:4]); err == nil {
			details.Year = year
		}
	}
	if resp.PosterPath != "" {
		details.PosterLink = c.imageBaseURL + "/" + defaultPosterSize + resp.PosterPath
	}
	for _, genre := range resp.Genres {
		details.Genres = append(details.Genres, genre.Name)
	}

	return details
}
