package controllers

import (
	"net/http"

	"github.com/alex-pricope/feedback-arcade/api/models"
	"github.com/alex-pricope/feedback-arcade/api/transport"
	"github.com/alex-pricope/feedback-arcade/game"
	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/storage"
	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	storage storage.ScoreStorage
}

func NewScoreController(s storage.ScoreStorage) *ScoreController {
	return &ScoreController{storage: s}
}

func (c *ScoreController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/scores", c.getAll)
	engine.DELETE("/api/admin/scores/:tier", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Best scores per difficulty
// @Tags scores
// @Produce json
// @Success 200 {array} models.ScoreResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores [get]
func (c *ScoreController) getAll(g *gin.Context) {
	scores, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SCORES: failed to list scores: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load scores"})
		return
	}

	responses := make([]models.ScoreResponse, 0, len(scores))
	for _, s := range scores {
		responses = append(responses, models.TransformScoreFromStorage(s))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Clear the best score of a tier
// @Tags admin
// @Produce json
// @Param tier path string true "Difficulty tier"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/scores/{tier} [delete]
func (c *ScoreController) delete(g *gin.Context) {
	tier := g.Param("tier")
	if !validTier(tier) {
		logging.Log.Warnf("ADMIN: invalid tier requested: %s", tier)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid tier"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), tier); err != nil {
		logging.Log.Errorf("ADMIN: failed to clear tier %s: %v", tier, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not clear score"})
		return
	}
	logging.Log.Infof("ADMIN: cleared best score for %s", tier)
	g.JSON(http.StatusOK, gin.H{"deleted": tier})
}

func validTier(tier string) bool {
	for _, d := range game.Difficulties {
		if string(d) == tier {
			return true
		}
	}
	return false
}
