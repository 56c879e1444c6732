package http_session

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/travisksimons/vibe-check-movies/internal/delivery/http/common"
	http_ratelimit_middleware "github.com/travisksimons/vibe-check-movies/internal/delivery/http/middleware/ratelimit"
	"github.com/travisksimons/vibe-check-movies/internal/model"
	usecase_session "github.com/travisksimons/vibe-check-movies/internal/usecase/session"
)

// CreateSessionRequestDTO request to open a new session
type CreateSessionRequestDTO struct {
	HostName string `json:"hostName" binding:"required" example:"Ada"`
}

// CreateSessionResponseDTO response for a freshly opened session
type CreateSessionResponseDTO struct {
	ID            string `json:"id" example:"k3v9x2"`
	Link          string `json:"link" example:"http://localhost:5173/join/k3v9x2"`
	ParticipantID string `json:"participantId" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// JoinRequestDTO request to join an existing session
type JoinRequestDTO struct {
	Name string `json:"name" binding:"required" example:"Lin"`
}

// JoinResponseDTO response for a successful join
type JoinResponseDTO struct {
	ID      string             `json:"id"`
	Session SessionResponseDTO `json:"session"`
}

// ParticipantResponseDTO one participant in the roster
type ParticipantResponseDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// SessionResponseDTO session together with its roster
type SessionResponseDTO struct {
	ID             string                   `json:"id"`
	Status         string                   `json:"status"`
	HostName       string                   `json:"hostName"`
	CreatedAt      int64                    `json:"createdAt"`
	Participants   []ParticipantResponseDTO `json:"participants"`
	CompletedCount int                      `json:"completedCount"`
}

// AnswerDTO a single movie vote
type AnswerDTO struct {
	MovieID string `json:"movieId" binding:"required"`
	Title   string `json:"title"`
	Vote    string `json:"vote" binding:"required,oneof=love like pass havent_seen"`
}

// SubmitRequestDTO request carrying a participant's votes
type SubmitRequestDTO struct {
	ParticipantID string               `json:"participantId" binding:"required"`
	Answers       map[string]AnswerDTO `json:"answers" binding:"required,dive"`
}

// SubmitResponseDTO acknowledgement for a submission
type SubmitResponseDTO struct {
	Success      bool `json:"success"`
	AllCompleted bool `json:"allCompleted"`
}

// ResultsResponseDTO session together with synthesized results
type ResultsResponseDTO struct {
	Session      SessionResponseDTO          `json:"session"`
	Participants []ParticipantResponseDTO    `json:"participants"`
	Results      *model.RecommendationResult `json:"results"`
}

func (r *SubmitRequestDTO) ConvertToAnswerSet() model.AnswerSet {
	answers := make(model.AnswerSet, len(r.Answers))
	for movieID, a := range r.Answers {
		answers[movieID] = model.Answer{
			MovieID: a.MovieID,
			Title:   a.Title,
			Vote:    a.Vote,
		}
	}
	return answers
}

func ConvertFromParticipant(p model.Participant) ParticipantResponseDTO {
	return ParticipantResponseDTO{
		ID:        p.ID.String(),
		Name:      p.Name,
		Completed: p.Completed,
	}
}

func ConvertFromSession(session model.Session, roster []model.Participant) SessionResponseDTO {
	participants := make([]ParticipantResponseDTO, len(roster))
	completed := 0
	for i, p := range roster {
		participants[i] = ConvertFromParticipant(p)
		if p.Completed {
			completed++
		}
	}

	return SessionResponseDTO{
		ID:             string(session.ID),
		Status:         session.Status,
		HostName:       session.HostName,
		CreatedAt:      session.CreatedAt,
		Participants:   participants,
		CompletedCount: completed,
	}
}

type Controller struct {
	usecase      *usecase_session.Usecase
	limiter      *http_ratelimit_middleware.Middleware
	shareBaseURL string

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_session.Usecase,
	limiter *http_ratelimit_middleware.Middleware,
	shareBaseURL string,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:      usecase,
		limiter:      limiter,
		shareBaseURL: shareBaseURL,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/session")
	{
		sessions.POST("", c.limiter.Limit(), c.create)
		sessions.GET("/:session_id", c.get)
		sessions.POST("/:session_id/join", c.join)
		sessions.POST("/:session_id/generate", c.generate)
		sessions.POST("/:session_id/submit", c.submit)
		sessions.POST("/:session_id/close", c.close)
		sessions.GET("/:session_id/results", c.results)
	}
}

// @Summary Create session
// @Description Opens a new lobby with the caller as host
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequestDTO true "Host name"
// @Success 201 {object} CreateSessionResponseDTO "Session created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 429 {object} http_common.ErrorResponse "Too many sessions"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateSessionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	session, host, err := c.usecase.Create(ctx.Request.Context(), req.HostName)
	if err != nil {
		c.logger.Error("failed to create session", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_session.ErrEmptyName):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "name is required",
			})
		case errors.Is(err, usecase_session.ErrCodeConflict):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, CreateSessionResponseDTO{
		ID:            string(session.ID),
		Link:          fmt.Sprintf("%s/join/%s", c.shareBaseURL, session.ID),
		ParticipantID: host.ID.String(),
	})
}

// @Summary Get session
// @Description Returns the session with its participant roster
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session code"
// @Success 200 {object} SessionResponseDTO "Session state"
// @Failure 404 {object} http_common.ErrorResponse "Session not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	session, roster, err := c.usecase.Get(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("failed to get session", slog.String("error", err.Error()))
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSession(session, roster))
}

// @Summary Join session
// @Description Adds a participant to the session and announces the arrival
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session code"
// @Param request body JoinRequestDTO true "Participant name"
// @Success 201 {object} JoinResponseDTO "Joined"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Session not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id}/join [post]
func (c *Controller) join(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	participant, _, err := c.usecase.Join(ctx.Request.Context(), sessionID, req.Name)
	if err != nil {
		c.logger.Error("failed to join session", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_session.ErrEmptyName):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "name is required",
			})
		case errors.Is(err, usecase_session.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	session, roster, err := c.usecase.Get(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("failed to load roster", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, JoinResponseDTO{
		ID:      participant.ID.String(),
		Session: ConvertFromSession(session, roster),
	})
}

// @Summary Start quiz
// @Description Moves the lobby into collecting and tells clients the questions are ready
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session code"
// @Success 200 "Quiz started"
// @Failure 404 {object} http_common.ErrorResponse "Session not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id}/generate [post]
func (c *Controller) generate(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	if err := c.usecase.StartQuiz(ctx.Request.Context(), sessionID); err != nil {
		c.logger.Error("failed to start quiz", slog.String("error", err.Error()))
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Submit answers
// @Description Records a participant's votes; the submission that completes the roster triggers synthesis
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session code"
// @Param request body SubmitRequestDTO true "Participant votes"
// @Success 200 {object} SubmitResponseDTO "Answers recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Session or participant not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id}/submit [post]
func (c *Controller) submit(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid participant id",
		})
		return
	}

	allCompleted, err := c.usecase.SubmitAnswers(ctx.Request.Context(), sessionID, participantID, req.ConvertToAnswerSet())
	if err != nil {
		c.logger.Error("failed to submit answers",
			slog.String("error", err.Error()),
			slog.String("participant_id", participantID.String()),
		)
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, SubmitResponseDTO{
		Success:      true,
		AllCompleted: allCompleted,
	})
}

// @Summary Close session early
// @Description Synthesizes results from everyone who already finished, without waiting for the rest
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session code"
// @Success 200 {object} model.RecommendationResult "Results"
// @Failure 400 {object} http_common.ErrorResponse "Nobody finished yet"
// @Failure 404 {object} http_common.ErrorResponse "Session not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id}/close [post]
func (c *Controller) close(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	results, err := c.usecase.CloseEarly(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("failed to close session", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_session.ErrNothingToClose):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "nobody has finished the quiz yet",
			})
		case errors.Is(err, usecase_session.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// @Summary Session results
// @Description Returns the session, its roster and the synthesized recommendations
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session code"
// @Success 200 {object} ResultsResponseDTO "Results"
// @Failure 404 {object} http_common.ErrorResponse "Session not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /session/{session_id}/results [get]
func (c *Controller) results(ctx *gin.Context) {
	sessionID := model.SessionID(ctx.Param("session_id"))

	session, roster, err := c.usecase.Get(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("failed to get results", slog.String("error", err.Error()))
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	participants := make([]ParticipantResponseDTO, len(roster))
	for i, p := range roster {
		participants[i] = ConvertFromParticipant(p)
	}

	ctx.JSON(http.StatusOK, ResultsResponseDTO{
		Session:      ConvertFromSession(session, roster),
		Participants: participants,
		Results:      session.Results,
	})
}
