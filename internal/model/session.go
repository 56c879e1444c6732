package model

type SessionID string

const EmptySessionID SessionID = ""

type SessionStatus = string

const (
	StatusLobby      SessionStatus = "lobby"
	StatusCollecting SessionStatus = "collecting"
	StatusComplete   SessionStatus = "complete"
)

type Session struct {
	ID       SessionID
	Status   SessionStatus
	HostName string

	// Results is nil until the session reaches StatusComplete.
	Results *RecommendationResult

	CreatedAt int64
}
