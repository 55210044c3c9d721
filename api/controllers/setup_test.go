package controllers

import (
	"math/rand/v2"
	"testing"

	"github.com/alex-pricope/feedback-arcade/feedback"
	"github.com/alex-pricope/feedback-arcade/game"
	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/alex-pricope/feedback-arcade/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type testEnv struct {
	router *gin.Engine
	clock  *scheduler.Fake
	scores *storage.MemoryScoreStorage
	forms  *FormController
	games  *GameController
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", "secret")

	clock := scheduler.NewFake()
	scores := storage.NewMemoryScoreStorage()

	formController := NewFormController(feedback.WithScheduler(clock))
	gameController := NewGameController(scores,
		game.WithScheduler(clock),
		game.WithRand(rand.New(rand.NewPCG(42, 42))),
	)
	scoreController := NewScoreController(scores)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	formController.RegisterRoutes(r)
	gameController.RegisterRoutes(r)
	scoreController.RegisterRoutes(r)

	t.Cleanup(func() {
		formController.Close()
		gameController.Close()
	})

	return &testEnv{
		router: r,
		clock:  clock,
		scores: scores,
		forms:  formController,
		games:  gameController,
	}
}
