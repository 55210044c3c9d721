package models

import (
	"github.com/alex-pricope/feedback-arcade/game"
)

type CreateGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type DifficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

type GameResponse struct {
	ID string `json:"id"`
	game.View
	// Best is the stored lowest move count for the session's tier, if any.
	Best *int `json:"best"`
}

type FlipResponse struct {
	game.FlipResult
	Game GameResponse `json:"game"`
}
