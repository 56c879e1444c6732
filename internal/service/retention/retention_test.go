package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	store_mocks "github.com/travisksimons/vibe-check-movies/internal/service/retention/mocks/retention/store"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type RetentionUnitSuite struct {
	suite.Suite
}

type resources struct {
	sweeper *Sweeper
	store   *store_mocks.Store
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	store := store_mocks.NewStore(t)
	sweeper := New(store, 24*time.Hour, "@hourly")

	return &resources{
		sweeper: sweeper,
		store:   store,
		ctx:     context.Background(),
	}
}

func (suite *RetentionUnitSuite) TestRunOnce(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
	}{
		{
			name: "Should delete expired sessions with the configured age",
			setupMocks: func(r *resources) {
				r.store.On("DeleteExpired", r.ctx, 24*time.Hour).Return(int64(3), nil).Once()
			},
		},
		{
			name: "Should swallow store errors and keep running",
			setupMocks: func(r *resources) {
				r.store.On("DeleteExpired", r.ctx, 24*time.Hour).Return(int64(0), errors.New("delete error")).Once()
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			r.sweeper.RunOnce(r.ctx)

			r.store.AssertExpectations(t)
		})
	}
}

func (suite *RetentionUnitSuite) TestStartSweepsImmediately(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.store.On("DeleteExpired", mock.Anything, 24*time.Hour).Return(int64(0), nil).Once()

	err := r.sweeper.Start()
	defer r.sweeper.Stop()

	assert.NoError(t, err)
	r.store.AssertExpectations(t)
}

func (suite *RetentionUnitSuite) TestStartRejectsBadSchedule(t provider.T) {
	t.Parallel()

	store := store_mocks.NewStore(t)
	store.On("DeleteExpired", mock.Anything, 24*time.Hour).Return(int64(0), nil).Once()
	sweeper := New(store, 24*time.Hour, "not a schedule")

	err := sweeper.Start()

	assert.Error(t, err)
}

func TestRetentionUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RetentionUnitSuite))
}
