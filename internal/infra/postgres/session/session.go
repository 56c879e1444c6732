package infra_postgres_session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/travisksimons/vibe-check-movies/internal/model"
	usecase_session "github.com/travisksimons/vibe-check-movies/internal/usecase/session"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type sessionDTO struct {
	ID        string         `db:"id"`
	Status    string         `db:"status"`
	HostName  string         `db:"host_name"`
	Results   sql.NullString `db:"results"`
	CreatedAt int64          `db:"created_at"`
}

type participantDTO struct {
	ID        uuid.UUID      `db:"id"`
	SessionID string         `db:"session_id"`
	Name      string         `db:"name"`
	Answers   sql.NullString `db:"answers"`
	Completed bool           `db:"completed"`
	CreatedAt int64          `db:"created_at"`
}

func (dto sessionDTO) toModel() model.Session {
	session := model.Session{
		ID:        model.SessionID(dto.ID),
		Status:    dto.Status,
		HostName:  dto.HostName,
		CreatedAt: dto.CreatedAt,
	}
	if dto.Results.Valid {
		session.Results = model.DecodeRecommendation([]byte(dto.Results.String))
	}

	return session
}

func (dto participantDTO) toModel() model.Participant {
	participant := model.Participant{
		ID:        dto.ID,
		SessionID: model.SessionID(dto.SessionID),
		Name:      dto.Name,
		Completed: dto.Completed,
		CreatedAt: dto.CreatedAt,
	}
	if dto.Answers.Valid {
		participant.Answers = model.DecodeAnswers([]byte(dto.Answers.String))
	}

	return participant
}

func (d *Driver) CreateSession(ctx context.Context, session model.Session) error {
	dto := sessionDTO{
		ID:        string(session.ID),
		Status:    session.Status,
		HostName:  session.HostName,
		CreatedAt: session.CreatedAt,
	}

	query := `
		INSERT INTO sessions (id, status, host_name, created_at)
		VALUES (:id, :status, :host_name, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_session.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) SessionByID(ctx context.Context, id model.SessionID) (model.Session, error) {
	var dto sessionDTO

	query := `
        SELECT id, status, host_name, results, created_at
        FROM sessions
        WHERE id = $1
    `

	err := d.db.GetContext(ctx, &dto, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_session.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) SetStatusIf(ctx context.Context, id model.SessionID, from, to model.SessionStatus) (bool, error) {
	query := `
        UPDATE sessions
        SET status = $1
        WHERE id = $2 AND status = $3
    `

	result, err := d.db.ExecContext(ctx, query, to, string(id), from)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// ClaimCompletion flips the session to complete and reports whether this call
// made the flip. Concurrent last submitters race on this row update; the
// database serializes them and exactly one caller sees an affected row.
func (d *Driver) ClaimCompletion(ctx context.Context, id model.SessionID) (bool, error) {
	query := `
        UPDATE sessions
        SET status = $1
        WHERE id = $2 AND status <> $1
    `

	result, err := d.db.ExecContext(ctx, query, model.StatusComplete, string(id))
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) SaveResults(ctx context.Context, id model.SessionID, results model.RecommendationResult) error {
	encoded, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	query := `
        UPDATE sessions
        SET status = $1, results = $2
        WHERE id = $3
    `

	result, err := d.db.ExecContext(ctx, query, model.StatusComplete, string(encoded), string(id))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_session.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) CreateParticipant(ctx context.Context, participant model.Participant) error {
	dto := participantDTO{
		ID:        participant.ID,
		SessionID: string(participant.SessionID),
		Name:      participant.Name,
		Completed: participant.Completed,
		CreatedAt: participant.CreatedAt,
	}

	query := `
		INSERT INTO participants (id, session_id, name, completed, created_at)
		VALUES (:id, :session_id, :name, :completed, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		// The referenced session may have been swept away in between.
		if strings.Contains(err.Error(), "foreign key") {
			return usecase_session.ErrResourceNotFound
		}
		return err
	}
	return nil
}

func (d *Driver) ParticipantByID(ctx context.Context, sessionID model.SessionID, participantID uuid.UUID) (model.Participant, error) {
	var dto participantDTO

	query := `
        SELECT id, session_id, name, answers, completed, created_at
        FROM participants
        WHERE id = $1 AND session_id = $2
    `

	err := d.db.GetContext(ctx, &dto, query, participantID, string(sessionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Participant{}, usecase_session.ErrResourceNotFound
		}
		return model.Participant{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) ParticipantsBySession(ctx context.Context, sessionID model.SessionID) ([]model.Participant, error) {
	var dtos []participantDTO

	query := `
        SELECT id, session_id, name, answers, completed, created_at
        FROM participants
        WHERE session_id = $1
        ORDER BY created_at
    `

	err := d.db.SelectContext(ctx, &dtos, query, string(sessionID))
	if err != nil {
		return nil, err
	}

	participants := make([]model.Participant, 0, len(dtos))
	for _, dto := range dtos {
		participants = append(participants, dto.toModel())
	}

	return participants, nil
}

func (d *Driver) SaveAnswers(ctx context.Context, sessionID model.SessionID, participantID uuid.UUID, answers model.AnswerSet) error {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
        UPDATE participants
        SET answers = $1, completed = TRUE
        WHERE id = $2 AND session_id = $3
    `

	result, err := d.db.ExecContext(ctx, query, string(encoded), participantID, string(sessionID))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_session.ErrResourceNotFound
	}

	return nil
}

// DeleteExpired drops every session older than maxAge. Participants go with
// their session through the cascade.
func (d *Driver) DeleteExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	query := `
        DELETE FROM sessions
        WHERE created_at < $1
    `

	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := d.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
