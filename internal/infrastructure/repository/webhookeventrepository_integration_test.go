package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/domain/billing"
	apperrors "sips/internal/shared/errors"
)

func TestWebhookEventRepository_Record(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	event, err := billing.NewWebhookEvent("evt_abc", "checkout.session.completed")
	require.NoError(t, err)

	require.NoError(t, repo.Record(ctx, event))
}

func TestWebhookEventRepository_Record_Replay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	first, err := billing.NewWebhookEvent("evt_replay", "invoice.paid")
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, first))

	replay, err := billing.NewWebhookEvent("evt_replay", "invoice.paid")
	require.NoError(t, err)

	err = repo.Record(ctx, replay)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestWebhookEventRepository_DistinctEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	for _, id := range []string{"evt_1", "evt_2", "evt_3"} {
		event, err := billing.NewWebhookEvent(id, "invoice.paid")
		require.NoError(t, err)
		require.NoError(t, repo.Record(ctx, event))
	}
}
