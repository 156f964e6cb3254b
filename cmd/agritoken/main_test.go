package main

import (
	"context"
	"testing"

	domainerrors "agritoken/internal/domain/errors"
	mockUsecase "agritoken/internal/mocks/usecase"
	"agritoken/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRehydrate(t *testing.T) {
	t.Parallel()

	t.Run("replayed log lets startup continue", func(t *testing.T) {
		t.Parallel()

		rehydration := mockUsecase.NewMockRehydrationUsecase(t)
		rehydration.EXPECT().Rehydrate(mock.Anything).
			Return(&usecase.RehydrationReport{TopicRef: "agritoken-events", Applied: 3, CaughtUp: true}, nil).Once()

		assert.NoError(t, rehydrate(context.Background(), rehydrateParams{Rehydration: rehydration}))
	})

	t.Run("replay failure aborts startup", func(t *testing.T) {
		t.Parallel()

		rehydration := mockUsecase.NewMockRehydrationUsecase(t)
		rehydration.EXPECT().Rehydrate(mock.Anything).
			Return(nil, domainerrors.ErrTopicUnavailable).Once()

		err := rehydrate(context.Background(), rehydrateParams{Rehydration: rehydration})
		assert.ErrorIs(t, err, domainerrors.ErrTopicUnavailable)
	})
}
