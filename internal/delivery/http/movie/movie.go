package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/travisksimons/vibe-check-movies/internal/delivery/http/common"
	"github.com/travisksimons/vibe-check-movies/internal/model"
	usecase_movie "github.com/travisksimons/vibe-check-movies/internal/usecase/movie"
)

// MovieResponseDTO a quiz card with everything the client renders
type MovieResponseDTO struct {
	ID         int64    `json:"id" example:"550"`
	Title      string   `json:"title" example:"Fight Club"`
	Year       int      `json:"year" example:"1999"`
	Rating     float64  `json:"rating" example:"8.4"`
	Genres     []string `json:"genres" example:"Drama"`
	Overview   string   `json:"overview" example:"An insomniac office worker crosses paths with a soap maker."`
	PosterLink string   `json:"posterLink" example:"https://image.tmdb.org/t/p/w500/poster.jpg"`
}

// QuizResponseDTO the sampled movie list for one quiz run
type QuizResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
}

func ConvertFromMovieDetails(details model.MovieDetails) MovieResponseDTO {
	return MovieResponseDTO{
		ID:         details.ID,
		Title:      details.Title,
		Year:       details.Year,
		Rating:     details.Rating,
		Genres:     details.Genres,
		Overview:   details.Overview,
		PosterLink: details.PosterLink,
	}
}

func ConvertFromMovieDetailsList(list []*model.MovieDetails) []MovieResponseDTO {
	movies := make([]MovieResponseDTO, len(list))
	for i, details := range list {
		movies[i] = ConvertFromMovieDetails(*details)
	}
	return movies
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("/quiz", c.quiz)
}

// @Summary Quiz movies
// @Description Samples the curated pool and returns movie cards for one quiz run
// @Tags Movies operations
// @Produce json
// @Param count query int false "How many movies to sample" default(15)
// @Success 200 {object} QuizResponseDTO "Movies sampled"
// @Failure 503 {object} http_common.ErrorResponse "Movie catalog unavailable"
// @Router /movies/quiz [get]
func (c *Controller) quiz(ctx *gin.Context) {
	count, err := strconv.Atoi(ctx.DefaultQuery("count", "0"))
	if err != nil {
		count = 0
	}

	movies, err := c.uc.Quiz(ctx.Request.Context(), count)
	if err != nil {
		c.logger.Error("failed to build quiz", slog.String("error", err.Error()))
		if errors.Is(err, usecase_movie.ErrNoMoviesAvailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "movie catalog unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, QuizResponseDTO{
		Movies: ConvertFromMovieDetailsList(movies),
	})
}
