package controllers

import (
	"context"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/feedback-arcade/api/controllers/testing"
	"github.com/alex-pricope/feedback-arcade/api/models"
	"github.com/alex-pricope/feedback-arcade/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScores(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Happy path - empty store", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/scores", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)

		scores, err := testutils.Decode[[]models.ScoreResponse](res)
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("Happy path - both tiers", func(t *testing.T) {
		require.NoError(t, env.scores.Put(context.Background(), &storage.BestScore{Tier: "hard", Moves: 20}))
		require.NoError(t, env.scores.Put(context.Background(), &storage.BestScore{Tier: "easy", Moves: 8}))

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/scores", nil, nil)
		scores, err := testutils.Decode[[]models.ScoreResponse](res)
		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.Equal(t, "easy", scores[0].Tier)
		assert.Equal(t, 8, scores[0].Moves)
		assert.Equal(t, "hard", scores[1].Tier)
		assert.Equal(t, 20, scores[1].Moves)
	})
}

func TestDeleteScore(t *testing.T) {
	env := setupTestRouter(t)
	require.NoError(t, env.scores.Put(context.Background(), &storage.BestScore{Tier: "easy", Moves: 8}))

	t.Run("Unhappy path - missing admin token", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/admin/scores/easy", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - invalid tier", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/admin/scores/legendary", nil,
			map[string]string{"x-admin-token": "secret"})
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Happy path - clear tier", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/admin/scores/easy", nil,
			map[string]string{"x-admin-token": "secret"})
		assert.Equal(t, http.StatusOK, res.Code)

		best, err := env.scores.Get(context.Background(), "easy")
		require.NoError(t, err)
		assert.Nil(t, best)
	})
}
