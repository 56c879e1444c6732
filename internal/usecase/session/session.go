package usecase_session

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/travisksimons/vibe-check-movies/internal/model"
	"github.com/travisksimons/vibe-check-movies/internal/service/sanitize"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrEmptyName        = errors.New("name is required")
	ErrNothingToClose   = errors.New("nobody has finished the quiz yet")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=SessionRepository --output=./mocks/session/repository --filename=repository.go
type SessionRepository interface {
	CreateSession(ctx context.Context, session model.Session) error
	SessionByID(ctx context.Context, id model.SessionID) (model.Session, error)
	SetStatusIf(ctx context.Context, id model.SessionID, from, to model.SessionStatus) (bool, error)
	ClaimCompletion(ctx context.Context, id model.SessionID) (bool, error)
	SaveResults(ctx context.Context, id model.SessionID, results model.RecommendationResult) error

	CreateParticipant(ctx context.Context, participant model.Participant) error
	ParticipantByID(ctx context.Context, sessionID model.SessionID, participantID uuid.UUID) (model.Participant, error)
	ParticipantsBySession(ctx context.Context, sessionID model.SessionID) ([]model.Participant, error)
	SaveAnswers(ctx context.Context, sessionID model.SessionID, participantID uuid.UUID, answers model.AnswerSet) error
}

//go:generate mockery --name=Synthesizer --output=./mocks/session/synthesizer --filename=synthesizer.go
type Synthesizer interface {
	Synthesize(ctx context.Context, participants []model.Participant) model.RecommendationResult
}

//go:generate mockery --name=Broadcaster --output=./mocks/session/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	Publish(sessionID model.SessionID, event model.Event)
}

type Usecase struct {
	SessionRepository SessionRepository
	Synthesizer       Synthesizer
	Broadcaster       Broadcaster
}

func New(
	SessionRepository SessionRepository,
	Synthesizer Synthesizer,
	Broadcaster Broadcaster,
) *Usecase {
	return &Usecase{
		SessionRepository: SessionRepository,
		Synthesizer:       Synthesizer,
		Broadcaster:       Broadcaster,
	}
}

const (
	codeLen       = 6
	codeAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	createRetries = 3
)

// Create opens a new lobby and registers the host as its first participant.
func (u *Usecase) Create(ctx context.Context, hostName string) (model.Session, model.Participant, error) {
	name := sanitize.DisplayName(hostName)
	if name == "" {
		return model.Session{}, model.Participant{}, ErrEmptyName
	}

	session, err := u.createSessionLobby(ctx, name)
	if err != nil {
		return model.Session{}, model.Participant{}, err
	}

	host := model.Participant{
		ID:        uuid.New(),
		SessionID: session.ID,
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}
	if err := u.SessionRepository.CreateParticipant(ctx, host); err != nil {
		return model.Session{}, model.Participant{}, errors.Join(ErrInternal, err)
	}

	return session, host, nil
}

// Join adds a participant to an existing session. Joining stays open for the
// whole lifetime of the session, so somebody arriving after the quiz started
// still counts towards the completion roster.
func (u *Usecase) Join(ctx context.Context, sessionID model.SessionID, rawName string) (model.Participant, model.Session, error) {
	name := sanitize.DisplayName(rawName)
	if name == "" {
		return model.Participant{}, model.Session{}, ErrEmptyName
	}

	session, err := u.SessionRepository.SessionByID(ctx, sessionID)
	if err != nil {
		return model.Participant{}, model.Session{}, err
	}

	participant := model.Participant{
		ID:        uuid.New(),
		SessionID: session.ID,
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}
	if err := u.SessionRepository.CreateParticipant(ctx, participant); err != nil {
		return model.Participant{}, model.Session{}, errors.Join(ErrInternal, err)
	}

	u.Broadcaster.Publish(session.ID, model.Event{
		Type:    model.EventParticipantJoined,
		Payload: map[string]any{"name": name},
	})

	return participant, session, nil
}

// StartQuiz moves a lobby into collecting. Statuses only move forward, so
// calling it again (or on an already complete session) changes nothing but
// still re-emits the start event for clients that missed it.
func (u *Usecase) StartQuiz(ctx context.Context, sessionID model.SessionID) error {
	session, err := u.SessionRepository.SessionByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.Status == model.StatusLobby {
		if _, err := u.SessionRepository.SetStatusIf(ctx, sessionID, model.StatusLobby, model.StatusCollecting); err != nil {
			return errors.Join(ErrInternal, err)
		}
	}

	u.Broadcaster.Publish(sessionID, model.Event{
		Type:    model.EventQuestionsReady,
		Payload: map[string]any{},
	})

	return nil
}

// SubmitAnswers records one participant's quiz answers. A resubmission simply
// overwrites the previous set. When the submission completes the roster, the
// submitter that wins the completion claim synthesizes results; every other
// concurrent submitter sees allCompleted=true and walks away.
func (u *Usecase) SubmitAnswers(ctx context.Context, sessionID model.SessionID, participantID uuid.UUID, answers model.AnswerSet) (bool, error) {
	participant, err := u.SessionRepository.ParticipantByID(ctx, sessionID, participantID)
	if err != nil {
		return false, err
	}

	if err := u.SessionRepository.SaveAnswers(ctx, sessionID, participantID, answers); err != nil {
		return false, err
	}

	u.Broadcaster.Publish(sessionID, model.Event{
		Type:    model.EventAnswerSubmitted,
		Payload: map[string]any{"participantName": participant.Name},
	})

	roster, err := u.SessionRepository.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if !allCompleted(roster) {
		return false, nil
	}

	claimed, err := u.SessionRepository.ClaimCompletion(ctx, sessionID)
	if err != nil {
		return true, errors.Join(ErrInternal, err)
	}
	if !claimed {
		return true, nil
	}

	if _, err := u.completeSession(ctx, sessionID, completedOf(roster)); err != nil {
		return true, err
	}

	return true, nil
}

// CloseEarly finishes the session with whoever is done, without waiting for
// stragglers. Closing an already complete session reruns synthesis and
// overwrites the stored results.
func (u *Usecase) CloseEarly(ctx context.Context, sessionID model.SessionID) (model.RecommendationResult, error) {
	if _, err := u.SessionRepository.SessionByID(ctx, sessionID); err != nil {
		return model.RecommendationResult{}, err
	}

	roster, err := u.SessionRepository.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return model.RecommendationResult{}, errors.Join(ErrInternal, err)
	}

	completed := completedOf(roster)
	if len(completed) == 0 {
		return model.RecommendationResult{}, ErrNothingToClose
	}

	return u.completeSession(ctx, sessionID, completed)
}

// Get returns the session together with its roster.
func (u *Usecase) Get(ctx context.Context, sessionID model.SessionID) (model.Session, []model.Participant, error) {
	session, err := u.SessionRepository.SessionByID(ctx, sessionID)
	if err != nil {
		return model.Session{}, nil, err
	}

	roster, err := u.SessionRepository.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return model.Session{}, nil, errors.Join(ErrInternal, err)
	}

	return session, roster, nil
}

func (u *Usecase) completeSession(ctx context.Context, sessionID model.SessionID, completed []model.Participant) (model.RecommendationResult, error) {
	results := u.Synthesizer.Synthesize(ctx, completed)

	if err := u.SessionRepository.SaveResults(ctx, sessionID, results); err != nil {
		return model.RecommendationResult{}, errors.Join(ErrInternal, err)
	}

	u.Broadcaster.Publish(sessionID, model.Event{
		Type:    model.EventResultsReady,
		Payload: map[string]any{"results": results},
	})

	return results, nil
}

func (u *Usecase) createSessionLobby(ctx context.Context, hostName string) (model.Session, error) {
	var lastErr error
	for i := 0; i < createRetries; i++ {
		session := model.Session{
			ID:        buildSessionCode(),
			Status:    model.StatusLobby,
			HostName:  hostName,
			CreatedAt: time.Now().Unix(),
		}

		err := u.SessionRepository.CreateSession(ctx, session)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, ErrCodeConflict) {
			return model.Session{}, errors.Join(ErrInternal, err)
		}
		lastErr = err
	}

	return model.Session{}, errors.Join(ErrCodeConflict, lastErr)
}

func buildSessionCode() model.SessionID {
	var sb strings.Builder
	for i := 0; i < codeLen; i++ {
		sb.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}

	return model.SessionID(sb.String())
}

func allCompleted(roster []model.Participant) bool {
	if len(roster) == 0 {
		return false
	}
	for _, p := range roster {
		if !p.Completed {
			return false
		}
	}

	return true
}

func completedOf(roster []model.Participant) []model.Participant {
	completed := make([]model.Participant, 0, len(roster))
	for _, p := range roster {
		if p.Completed {
			completed = append(completed, p)
		}
	}

	return completed
}
