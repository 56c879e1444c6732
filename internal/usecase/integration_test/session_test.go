//go:build integration

package integrationtest

import (
	"context"
	"testing"

	infra_pg_init "github.com/travisksimons/vibe-check-movies/internal/infra/postgres/init"
	infra_postgres_session "github.com/travisksimons/vibe-check-movies/internal/infra/postgres/session"
	"github.com/travisksimons/vibe-check-movies/internal/model"
	usecase_session "github.com/travisksimons/vibe-check-movies/internal/usecase/session"
	broadcaster_mocks "github.com/travisksimons/vibe-check-movies/internal/usecase/session/mocks/session/broadcaster"
	synth_mocks "github.com/travisksimons/vibe-check-movies/internal/usecase/session/mocks/session/synthesizer"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseSessionIntegrationSuite struct {
	suite.Suite
}

func initSessionUsecase(t provider.T) *usecase_session.Usecase {
	cfg := getConfig()

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	infra_pg_init.MustInitSchema(pgConn)
	repository := infra_postgres_session.New(pgConn)

	synthesizer := synth_mocks.NewSynthesizer(t)
	synthesizer.On("Synthesize", mock.Anything, mock.Anything).Return(model.RecommendationResult{
		GroupSummary:       "a night of slow-burn thrillers",
		Recommendations:    []model.RankedPick{},
		IndividualWriteups: []model.Writeup{},
	}).Maybe()

	broadcaster := broadcaster_mocks.NewBroadcaster(t)
	broadcaster.On("Publish", mock.Anything, mock.Anything).Maybe()

	return usecase_session.New(repository, synthesizer, broadcaster)
}

func answersFor(vote model.Vote) model.AnswerSet {
	return model.AnswerSet{
		"550": {MovieID: "550", Title: "Fight Club", Vote: vote},
	}
}

func (s *UsecaseSessionIntegrationSuite) TestIntegrationLifecycle(t provider.T) {
	ctx := context.Background()
	uc := initSessionUsecase(t)

	session, host, err := uc.Create(ctx, "Ada")
	assert.NoError(t, err)
	assert.Len(t, string(session.ID), 6)
	assert.Equal(t, model.StatusLobby, session.Status)
	assert.Equal(t, "Ada", host.Name)

	guest, _, err := uc.Join(ctx, session.ID, "Lin")
	assert.NoError(t, err)

	err = uc.StartQuiz(ctx, session.ID)
	assert.NoError(t, err)

	current, roster, err := uc.Get(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCollecting, current.Status)
	assert.Len(t, roster, 2)

	allDone, err := uc.SubmitAnswers(ctx, session.ID, host.ID, answersFor(model.VoteLove))
	assert.NoError(t, err)
	assert.False(t, allDone)

	allDone, err = uc.SubmitAnswers(ctx, session.ID, guest.ID, answersFor(model.VotePass))
	assert.NoError(t, err)
	assert.True(t, allDone)

	final, _, err := uc.Get(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusComplete, final.Status)
	assert.NotNil(t, final.Results)
	assert.Equal(t, "a night of slow-burn thrillers", final.Results.GroupSummary)
}

func (s *UsecaseSessionIntegrationSuite) TestIntegrationCloseEarly(t provider.T) {
	ctx := context.Background()
	uc := initSessionUsecase(t)

	session, host, err := uc.Create(ctx, "Ada")
	assert.NoError(t, err)

	_, _, err = uc.Join(ctx, session.ID, "Lin")
	assert.NoError(t, err)

	err = uc.StartQuiz(ctx, session.ID)
	assert.NoError(t, err)

	_, err = uc.CloseEarly(ctx, session.ID)
	assert.ErrorIs(t, err, usecase_session.ErrNothingToClose)

	_, err = uc.SubmitAnswers(ctx, session.ID, host.ID, answersFor(model.VoteLike))
	assert.NoError(t, err)

	results, err := uc.CloseEarly(ctx, session.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, results.GroupSummary)

	final, _, err := uc.Get(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusComplete, final.Status)
}

func TestSessionIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSessionIntegrationSuite))
}
