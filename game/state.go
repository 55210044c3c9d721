package game

import (
	"errors"
	"fmt"

	"github.com/alex-pricope/feedback-arcade/scheduler"
)

var (
	ErrNotPlaying      = errors.New("no round in progress")
	ErrBoardLocked     = errors.New("board is locked")
	ErrTileOutOfRange  = errors.New("tile index out of range")
	ErrTileUnavailable = errors.New("tile is already face up")
)

// Phase is the lifecycle stage of a session's round.
type Phase int

const (
	Idle Phase = iota
	Playing
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "idle"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*p = Idle
	case "playing":
		*p = Playing
	case "won":
		*p = Won
	default:
		return fmt.Errorf("unknown phase %q", b)
	}
	return nil
}

// selection is what the player is holding between clicks. A pending pair
// is the locked board: no third tile can be held.
type selection interface {
	isSelection()
}

type noneHeld struct{}

type oneHeld struct {
	first int
}

type pairPending struct {
	first, second int
	hide          scheduler.Timer
}

func (noneHeld) isSelection()    {}
func (oneHeld) isSelection()     {}
func (pairPending) isSelection() {}

// Outcome describes what a tile flip did.
type Outcome string

const (
	Revealed   Outcome = "revealed"
	Matched    Outcome = "matched"
	Mismatched Outcome = "mismatched"
	RoundWon   Outcome = "won"
)

type FlipResult struct {
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
	Matches int     `json:"matches"`
	// Best is the stored best for the tier after a won round.
	Best        int  `json:"best,omitempty"`
	BestUpdated bool `json:"bestUpdated"`
}

type TileView struct {
	Index    int    `json:"index"`
	Icon     string `json:"icon,omitempty"`
	Revealed bool   `json:"revealed"`
	Matched  bool   `json:"matched"`
}

// View is a point-in-time copy of a session for rendering. Icons of tiles
// that are face down are left out.
type View struct {
	Phase      Phase      `json:"phase"`
	Difficulty Difficulty `json:"difficulty"`
	Columns    int        `json:"columns"`
	Pairs      int        `json:"pairs"`
	Moves      int        `json:"moves"`
	Matches    int        `json:"matches"`
	Elapsed    int        `json:"elapsedSeconds"`
	Running    bool       `json:"running"`
	Locked     bool       `json:"locked"`
	Tiles      []TileView `json:"tiles,omitempty"`
}
