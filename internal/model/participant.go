package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Vote = string

const (
	VoteLove       Vote = "love"
	VoteLike       Vote = "like"
	VotePass       Vote = "pass"
	VoteHaventSeen Vote = "havent_seen"
)

type Answer struct {
	MovieID string `json:"movieId"`
	Title   string `json:"title"`
	Vote    Vote   `json:"vote"`
}

// AnswerSet is keyed by the movie identifier the participant swiped on.
type AnswerSet map[string]Answer

type Participant struct {
	ID        uuid.UUID
	SessionID SessionID
	Name      string

	// Answers stays nil until the participant submits.
	Answers   AnswerSet
	Completed bool

	CreatedAt int64
}

// DecodeAnswers parses a stored answer blob. Unreadable blobs count as absent.
func DecodeAnswers(raw []byte) AnswerSet {
	if len(raw) == 0 {
		return nil
	}
	var set AnswerSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil
	}
	return set
}
