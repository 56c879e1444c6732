package recommender

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/travisksimons/vibe-check-movies/internal/model"
)

//go:generate mockery --name=CompletionClient --output=./mocks/recommender/completion --filename=completion.go
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	client CompletionClient
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(client CompletionClient, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Synthesize turns everyone's answers into group picks. It never fails: when
// the completion backend is unreachable or replies with something that is not
// the agreed JSON shape, a deterministic fallback result is returned so the
// session can still complete.
func (s *Service) Synthesize(ctx context.Context, participants []model.Participant) model.RecommendationResult {
	raw, err := s.client.Complete(ctx, buildPrompt(participants))
	if err != nil {
		s.logger.Warn("completion failed, using fallback result", "error", err)
		return fallbackResult(participants)
	}

	result, ok := extractResult(raw)
	if !ok {
		s.logger.Warn("completion reply had no usable payload, using fallback result")
		return fallbackResult(participants)
	}

	return result
}

// extractResult pulls the JSON object out of the reply. Models tend to wrap
// it in prose or markdown fences, so everything outside the outermost braces
// is ignored.
func extractResult(raw string) (model.RecommendationResult, bool) {
	var result model.RecommendationResult

	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return result, false
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return result, false
	}

	normalize(&result)
	return result, true
}

func normalize(result *model.RecommendationResult) {
	if result.Recommendations == nil {
		result.Recommendations = []model.RankedPick{}
	}
	if result.IndividualWriteups == nil {
		result.IndividualWriteups = []model.Writeup{}
	}
	for i := range result.IndividualWriteups {
		if result.IndividualWriteups[i].PersonalRecs == nil {
			result.IndividualWriteups[i].PersonalRecs = []string{}
		}
	}
}

func fallbackResult(participants []model.Participant) model.RecommendationResult {
	writeups := make([]model.Writeup, 0, len(participants))
	for _, p := range participants {
		writeups = append(writeups, model.Writeup{
			Name:         p.Name,
			TasteSummary: "Votes recorded, but automatic analysis is unavailable right now.",
			PersonalRecs: []string{},
		})
	}

	return model.RecommendationResult{
		GroupSummary: "We couldn't reach the recommendation engine, so there are no automatic picks this time. " +
			"Everyone's votes were saved, and closing the session again later may work.",
		Recommendations:    []model.RankedPick{},
		IndividualWriteups: writeups,
	}
}
