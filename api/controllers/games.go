package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/alex-pricope/feedback-arcade/api/models"
	"github.com/alex-pricope/feedback-arcade/game"
	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/alex-pricope/feedback-arcade/storage"
	"github.com/gin-gonic/gin"
)

type GameController struct {
	games  *registry[*game.Session]
	scores storage.ScoreStorage
	opts   []game.Option
}

func NewGameController(scores storage.ScoreStorage, opts ...game.Option) *GameController {
	return &GameController{
		games:  newRegistry[*game.Session]("GAME"),
		scores: scores,
		opts:   opts,
	}
}

func (c *GameController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/games")

	group.POST("", c.create)
	group.GET("/:id", c.get)
	group.POST("/:id/start", c.start)
	group.POST("/:id/reset", c.start)
	group.PUT("/:id/difficulty", c.setDifficulty)
	group.POST("/:id/tiles/:index", c.flip)
	group.DELETE("/:id", c.delete)
}

// Close stops the timers of every live session.
func (c *GameController) Close() {
	c.games.closeAll()
}

// EvictIdle closes sessions that were not used for ttl, checking every
// interval. A closed session stops its round timer.
func (c *GameController) EvictIdle(sched scheduler.Scheduler, ttl, interval time.Duration) {
	c.games.evictIdle(sched, ttl, interval)
}

// @Summary Open a game session
// @Description The session starts idle; an unknown difficulty plays as easy
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.CreateGameRequest false "Difficulty"
// @Success 201 {object} models.GameResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/games [post]
func (c *GameController) create(g *gin.Context) {
	var req models.CreateGameRequest
	// an empty body is fine, the session defaults to easy
	if err := g.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	opts := append([]game.Option{game.WithScoreStore(c.scores)}, c.opts...)
	opts = append(opts, game.WithDifficulty(game.ParseDifficulty(req.Difficulty)))
	session := game.NewSession(opts...)

	id, err := c.games.add(session)
	if err != nil {
		session.Close()
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not open game"})
		return
	}
	logging.Log.Infof("GAME: opened session %s", id)
	c.respond(g, http.StatusCreated, id, session)
}

// @Summary Get a game session
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id} [get]
func (c *GameController) get(g *gin.Context) {
	id := g.Param("id")
	session, ok := c.games.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}
	c.respond(g, http.StatusOK, id, session)
}

// @Summary Start or reset a round
// @Description Deals a fresh board at the session's difficulty and restarts the timer
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id}/start [post]
// @Router /api/games/{id}/reset [post]
func (c *GameController) start(g *gin.Context) {
	id := g.Param("id")
	session, ok := c.games.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}
	session.Start()
	c.respond(g, http.StatusOK, id, session)
}

// @Summary Change difficulty
// @Description Discards the round in progress and returns the session to idle
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body models.DifficultyRequest true "Difficulty"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id}/difficulty [put]
func (c *GameController) setDifficulty(g *gin.Context) {
	id := g.Param("id")
	session, ok := c.games.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}

	var req models.DifficultyRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "difficulty is required"})
		return
	}
	session.SetDifficulty(game.ParseDifficulty(req.Difficulty))
	c.respond(g, http.StatusOK, id, session)
}

// @Summary Flip a tile
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Param index path int true "Tile index"
// @Success 200 {object} models.FlipResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Click ignored"
// @Router /api/games/{id}/tiles/{index} [post]
func (c *GameController) flip(g *gin.Context) {
	id := g.Param("id")
	session, ok := c.games.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}
	index, err := strconv.Atoi(g.Param("index"))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid tile index"})
		return
	}

	res, err := session.Flip(g.Request.Context(), index)
	switch {
	case errors.Is(err, game.ErrTileOutOfRange):
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, game.ErrNotPlaying), errors.Is(err, game.ErrBoardLocked), errors.Is(err, game.ErrTileUnavailable):
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		logging.Log.Errorf("GAME: flip on %s failed: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not flip tile"})
		return
	}

	g.JSON(http.StatusOK, models.FlipResponse{
		FlipResult: res,
		Game:       c.view(g.Request.Context(), id, session),
	})
}

// @Summary Discard a game session
// @Tags games
// @Param id path string true "Game ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id} [delete]
func (c *GameController) delete(g *gin.Context) {
	id := g.Param("id")
	if !c.games.remove(id) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}
	logging.Log.Infof("GAME: closed session %s", id)
	g.Status(http.StatusNoContent)
}

func (c *GameController) respond(g *gin.Context, status int, id string, session *game.Session) {
	g.JSON(status, c.view(g.Request.Context(), id, session))
}

func (c *GameController) view(ctx context.Context, id string, session *game.Session) models.GameResponse {
	v := session.View()
	resp := models.GameResponse{ID: id, View: v}

	best, err := c.scores.Get(ctx, string(v.Difficulty))
	if err != nil {
		logging.Log.Warnf("GAME: could not load best score for %s: %v", v.Difficulty, err)
		return resp
	}
	if best != nil {
		resp.Best = &best.Moves
	}
	return resp
}
