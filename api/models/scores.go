package models

import (
	"time"

	"github.com/alex-pricope/feedback-arcade/storage"
)

type ScoreResponse struct {
	Tier      string    `json:"tier"`
	Moves     int       `json:"moves"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func TransformScoreFromStorage(s *storage.BestScore) ScoreResponse {
	return ScoreResponse{
		Tier:      s.Tier,
		Moves:     s.Moves,
		UpdatedAt: s.UpdatedAt,
	}
}
