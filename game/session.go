// Package game implements the memory-matching game: dealing, the
// reveal/match state machine, the round timer and best-score tracking.
package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/alex-pricope/feedback-arcade/storage"
)

const (
	DefaultMismatchDelay = 800 * time.Millisecond
	DefaultTickInterval  = time.Second
)

// ScoreStore keeps the lowest move count per tier. PutIfLower must compare
// and write atomically since sessions win concurrently.
type ScoreStore interface {
	Get(ctx context.Context, tier string) (*storage.BestScore, error)
	PutIfLower(ctx context.Context, score *storage.BestScore) (bool, error)
}

type Option func(*Session)

func WithScheduler(s scheduler.Scheduler) Option {
	return func(g *Session) { g.sched = s }
}

func WithScoreStore(s ScoreStore) Option {
	return func(g *Session) { g.scores = s }
}

func WithRand(r *rand.Rand) Option {
	return func(g *Session) { g.rng = r }
}

func WithMismatchDelay(d time.Duration) Option {
	return func(g *Session) { g.mismatchDelay = d }
}

func WithTickInterval(d time.Duration) Option {
	return func(g *Session) { g.tickInterval = d }
}

func WithDifficulty(d Difficulty) Option {
	return func(g *Session) { g.difficulty = d }
}

// Session is one player's game. All methods and timer callbacks are
// serialised on mu.
type Session struct {
	mu sync.Mutex

	sched         scheduler.Scheduler
	scores        ScoreStore
	rng           *rand.Rand
	mismatchDelay time.Duration
	tickInterval  time.Duration

	difficulty Difficulty
	phase      Phase
	tiles      []Tile
	moves      int
	matches    int
	elapsed    int
	sel        selection
	ticker     scheduler.Timer

	// generation changes whenever the round is replaced so that timer
	// callbacks from an older round can recognise themselves.
	generation uint64
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		sched:         scheduler.Real(),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		mismatchDelay: DefaultMismatchDelay,
		tickInterval:  DefaultTickInterval,
		difficulty:    Easy,
		phase:         Idle,
		sel:           noneHeld{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a fresh round at the current difficulty, replacing any round
// in progress.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startRound()
}

// Reset is Start under the name of the board's reset button.
func (s *Session) Reset() {
	s.Start()
}

func (s *Session) startRound() {
	s.stopTicker()
	s.dropSelection()
	s.generation++
	s.tiles = Deal(s.difficulty, s.rng)
	s.moves, s.matches, s.elapsed = 0, 0, 0
	s.phase = Playing

	gen := s.generation
	s.ticker = s.sched.Every(s.tickInterval, func() { s.tick(gen) })
	logging.Log.Debugf("GAME: started %s round with %d tiles", s.difficulty, len(s.tiles))
}

// SetDifficulty discards the current round and returns to Idle without
// dealing a new board.
func (s *Session) SetDifficulty(d Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTicker()
	s.dropSelection()
	s.generation++
	s.difficulty = d
	s.tiles = nil
	s.moves, s.matches, s.elapsed = 0, 0, 0
	s.phase = Idle
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.phase != Playing {
		return
	}
	s.elapsed++
}

// dropSelection forgets held tiles and cancels a pending hide.
func (s *Session) dropSelection() {
	if p, ok := s.sel.(pairPending); ok {
		p.hide.Stop()
	}
	s.sel = noneHeld{}
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// Flip is a click on the tile at index.
func (s *Session) Flip(ctx context.Context, index int) (FlipResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != Playing {
		return FlipResult{}, ErrNotPlaying
	}
	if _, locked := s.sel.(pairPending); locked {
		return FlipResult{}, ErrBoardLocked
	}
	if index < 0 || index >= len(s.tiles) {
		return FlipResult{}, ErrTileOutOfRange
	}
	tile := &s.tiles[index]
	if tile.Revealed || tile.Matched {
		return FlipResult{}, ErrTileUnavailable
	}
	tile.Revealed = true

	held, ok := s.sel.(oneHeld)
	if !ok {
		s.sel = oneHeld{first: index}
		return s.result(Revealed), nil
	}

	s.moves++
	first := &s.tiles[held.first]
	if first.Icon != tile.Icon {
		gen := s.generation
		hide := s.sched.AfterFunc(s.mismatchDelay, func() { s.hidePair(gen, held.first, index) })
		s.sel = pairPending{first: held.first, second: index, hide: hide}
		return s.result(Mismatched), nil
	}

	first.Matched = true
	tile.Matched = true
	s.matches++
	s.sel = noneHeld{}

	if s.matches < s.difficulty.Pairs() {
		return s.result(Matched), nil
	}
	return s.win(ctx), nil
}

func (s *Session) hidePair(gen uint64, first, second int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.tiles[first].Revealed = false
	s.tiles[second].Revealed = false
	s.sel = noneHeld{}
}

func (s *Session) win(ctx context.Context) FlipResult {
	s.stopTicker()
	s.phase = Won
	res := s.result(RoundWon)
	logging.Log.Infof("GAME: %s round won in %d moves and %ds", s.difficulty, s.moves, s.elapsed)

	if s.scores == nil {
		return res
	}
	tier := string(s.difficulty)
	score := &storage.BestScore{Tier: tier, Moves: s.moves, UpdatedAt: time.Now().UTC()}
	updated, err := s.scores.PutIfLower(ctx, score)
	if err != nil {
		logging.Log.Errorf("GAME: failed to store best score for %s: %v", tier, err)
	}
	if updated {
		res.Best = s.moves
		res.BestUpdated = true
		logging.Log.Infof("GAME: new best for %s: %d moves", tier, s.moves)
		return res
	}

	best, err := s.scores.Get(ctx, tier)
	if err != nil {
		logging.Log.Errorf("GAME: failed to read best score for %s: %v", tier, err)
		return res
	}
	if best != nil {
		res.Best = best.Moves
	}
	return res
}

func (s *Session) result(o Outcome) FlipResult {
	return FlipResult{Outcome: o, Moves: s.moves, Matches: s.matches}
}

// Difficulty returns the tier the next round will be dealt at.
func (s *Session) Difficulty() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, locked := s.sel.(pairPending)
	v := View{
		Phase:      s.phase,
		Difficulty: s.difficulty,
		Columns:    s.difficulty.Columns(),
		Pairs:      s.difficulty.Pairs(),
		Moves:      s.moves,
		Matches:    s.matches,
		Elapsed:    s.elapsed,
		Running:    s.phase == Playing,
		Locked:     locked,
	}
	if s.phase == Idle {
		return v
	}
	v.Tiles = make([]TileView, len(s.tiles))
	for i, t := range s.tiles {
		v.Tiles[i] = TileView{Index: t.Index, Revealed: t.Revealed, Matched: t.Matched}
		if t.Revealed || t.Matched {
			v.Tiles[i].Icon = t.Icon
		}
	}
	return v
}

// Close stops every timer owned by the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTicker()
	s.dropSelection()
	s.generation++
}
