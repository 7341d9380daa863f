package usecases_test

import (
	"context"
	"testing"

	"stall-booking-service/internal/module/settings/mocks"
	"stall-booking-service/internal/module/settings/models/request"
	"stall-booking-service/internal/module/settings/usecases"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"
	log_internal "stall-booking-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestShowOpenDates(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repoMock.On("FindOpenDates", ctx).Return([]string{"2026-09-05", "2026-09-06"}, nil)

		resp, err := uc.ShowOpenDates(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"2026-09-05", "2026-09-06"}, resp.Dates)
	})
}

func TestReplaceOpenDates(t *testing.T) {
	ctx := context.Background()

	t.Run("success sorts and dedupes", func(t *testing.T) {
		setup()
		defer teardown()

		// 2026-09-05 saturday, 2026-09-06 sunday
		payload := request.ReplaceOpenDates{
			Dates: []string{"2026-09-06", "2026-09-05", "2026-09-06"},
		}

		repoMock.On("ReplaceOpenDates", ctx, []string{"2026-09-05", "2026-09-06"}).Return(nil)

		resp, err := uc.ReplaceOpenDates(ctx, &payload)

		assert.NoError(t, err)
		assert.Equal(t, []string{"2026-09-05", "2026-09-06"}, resp.Dates)
	})

	t.Run("weekday rejected", func(t *testing.T) {
		setup()
		defer teardown()

		// 2026-09-07 is a monday
		payload := request.ReplaceOpenDates{
			Dates: []string{"2026-09-05", "2026-09-07"},
		}

		_, err := uc.ReplaceOpenDates(ctx, &payload)

		assert.Error(t, err)
		assert.Equal(t, 422, errors.GetStatus(err))
		repoMock.AssertNotCalled(t, "ReplaceOpenDates", ctx, mock.Anything)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.ReplaceOpenDates{
			Dates: []string{"05-09-2026"},
		}

		_, err := uc.ReplaceOpenDates(ctx, &payload)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})

	t.Run("empty list clears calendar", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.ReplaceOpenDates{Dates: []string{}}

		repoMock.On("ReplaceOpenDates", ctx, []string{}).Return(nil)

		resp, err := uc.ReplaceOpenDates(ctx, &payload)

		assert.NoError(t, err)
		assert.Empty(t, resp.Dates)
	})
}
