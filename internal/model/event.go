package model

const (
	EventParticipantJoined = "participant_joined"
	EventQuestionsReady    = "questions_ready"
	EventAnswerSubmitted   = "answer_submitted"
	EventResultsReady      = "results_ready"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
