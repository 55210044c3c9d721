package storage

import (
	"context"
	"strconv"
	"strings"

	"github.com/alex-pricope/feedback-arcade/logging"
)

// ScoreStorage persists best scores keyed by tier. Get returns nil, nil when
// the tier has no usable record.
type ScoreStorage interface {
	Get(ctx context.Context, tier string) (*BestScore, error)
	GetAll(ctx context.Context) ([]*BestScore, error)
	// Put stores score unconditionally.
	Put(ctx context.Context, score *BestScore) error
	// PutIfLower stores score only when the tier has no usable record or
	// the recorded count is higher, as one atomic step. It reports whether
	// the score was written.
	PutIfLower(ctx context.Context, score *BestScore) (bool, error)
	Delete(ctx context.Context, tier string) error
}

// decodeItem turns a stored item into a score. Values that are not a
// positive decimal integer are treated as no record.
func decodeItem(item scoreItem) *BestScore {
	moves, err := strconv.Atoi(strings.TrimSpace(item.Value))
	if err != nil || moves <= 0 {
		logging.Log.Warnf("SCORES: ignoring unparsable value %q for tier %s", item.Value, item.Tier)
		return nil
	}
	return &BestScore{Tier: item.Tier, Moves: moves, UpdatedAt: item.UpdatedAt}
}

func encodeItem(score *BestScore) (scoreItem, error) {
	if score.Moves <= 0 {
		return scoreItem{}, ErrInvalidMoves
	}
	return scoreItem{
		Tier:      score.Tier,
		Value:     strconv.Itoa(score.Moves),
		Moves:     score.Moves,
		UpdatedAt: score.UpdatedAt.UTC(),
	}, nil
}
