package match3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/session"
)

// SessionStore loads and saves game snapshots. Implementations return
// nil, nil from LoadSession when the session has no stored state.
type SessionStore interface {
	LoadSession(ctx context.Context, id string) (*Snapshot, error)
	SaveSession(ctx context.Context, id string, snap Snapshot) error
}

// HighScoreStore holds the best score ever reached.
type HighScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	WriteHighScore(ctx context.Context, score int) error
}

// ScoreRecorder receives the final score of every finished game.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, difficulty string, score int) error
}

// SessionUpdater is implemented by session stores that can run a whole
// load, change, save cycle as one transaction, serializing writers that do
// not share a process. fn receives the stored snapshot (nil when there is
// none) and a load error, which is only ever an ErrCorruptSnapshot. The
// snapshot fn returns is saved; nil leaves the stored row untouched and an
// error rolls the cycle back.
type SessionUpdater interface {
	UpdateSession(ctx context.Context, id string, fn func(*Snapshot, error) (*Snapshot, error)) error
}

// SourceFactory creates the tile source for one call. turn is 0 when a
// board is dealt and the number of moves already used plus one when a
// swap is resolved.
type SourceFactory func(turn int) TileSource

// GameView is what a caller sees of a game between moves.
type GameView struct {
	SessionID    string   `json:"session_id"`
	Difficulty   string   `json:"difficulty"`
	Board        [][]Tile `json:"board"`
	Score        int      `json:"score"`
	MovesLeft    int      `json:"moves_left"`
	TargetScore  int      `json:"target_score"`
	Status       Status   `json:"status"`
	NewHighScore bool     `json:"new_high_score"`
}

// MoveResult is the outcome of RequestSwap.
type MoveResult struct {
	Steps []ChainStep `json:"steps"`
	Combo int         `json:"combo"`
	GameView
}

// Controller validates swaps, resolves them against stored sessions and
// applies scoring. It keeps no game state between calls.
type Controller struct {
	rules      Rules
	sessions   SessionStore
	highScores HighScoreStore
	recorder   ScoreRecorder
	newSource  SourceFactory
	locks      *session.Locks
	logger     *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithSource makes every call draw from src. The source is shared, so
// this suits tests and single-session tools.
func WithSource(src TileSource) Option {
	return func(c *Controller) {
		c.newSource = func(int) TileSource { return src }
	}
}

// WithSourceFactory sets the function creating a tile source per call.
func WithSourceFactory(f SourceFactory) Option {
	return func(c *Controller) {
		c.newSource = f
	}
}

// WithRecorder records final scores of finished games.
func WithRecorder(r ScoreRecorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates a controller over the given stores.
func NewController(rules Rules, sessions SessionStore, highScores HighScoreStore, opts ...Option) *Controller {
	c := &Controller{
		rules:      rules,
		sessions:   sessions,
		highScores: highScores,
		locks:      session.NewLocks(),
		logger:     log.New(io.Discard),
	}
	c.newSource = func(int) TileSource {
		return NewRandSource(time.Now().UnixNano(), c.rules.Palette)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rules returns the rules the controller plays by.
func (c *Controller) Rules() Rules {
	return c.rules
}

// game is the working copy of one session during a call.
type game struct {
	difficulty   string
	board        *Board
	score        *ScoreModel
	newHighScore bool
}

func (g *game) snapshot() Snapshot {
	return Snapshot{
		Difficulty:   g.difficulty,
		Size:         g.board.Size(),
		Grid:         g.board.Grid(),
		Score:        g.score.Score,
		MovesLeft:    g.score.MovesLeft,
		TargetScore:  g.score.TargetScore,
		Status:       g.score.Status(),
		NewHighScore: g.newHighScore,
	}
}

func (g *game) view(id string) GameView {
	return GameView{
		SessionID:    id,
		Difficulty:   g.difficulty,
		Board:        g.board.Grid(),
		Score:        g.score.Score,
		MovesLeft:    g.score.MovesLeft,
		TargetScore:  g.score.TargetScore,
		Status:       g.score.Status(),
		NewHighScore: g.newHighScore,
	}
}

// NewGame discards any stored state for the session and starts a fresh
// board with the named difficulty profile.
func (c *Controller) NewGame(ctx context.Context, id, difficulty string) (GameView, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	g := c.newGame(difficulty)
	if err := c.sessions.SaveSession(ctx, id, g.snapshot()); err != nil {
		return GameView{}, err
	}

	c.logger.Info("new game", "session", id, "difficulty", g.difficulty,
		"target", g.score.TargetScore, "moves", g.score.MovesLeft)
	return g.view(id), nil
}

// State returns the current game for the session, starting one when none
// is stored or the stored one is corrupt.
func (c *Controller) State(ctx context.Context, id string) (GameView, error) {
	g, err := c.update(ctx, id, func(_ *game, fresh bool) (bool, error) {
		return fresh, nil
	})
	if err != nil {
		return GameView{}, err
	}
	return g.view(id), nil
}

// RequestSwap swaps (r1,c1) with (r2,c2) and resolves the resulting chain.
// Invalid coordinates are rejected before any state is loaded. A swap that
// matches nothing is reverted and costs no move. The session is saved
// exactly once per accepted call; the high score and score history are
// only written after that save succeeds.
func (c *Controller) RequestSwap(ctx context.Context, id string, r1, c1, r2, c2 int) (MoveResult, error) {
	if err := c.validateSwap(r1, c1, r2, c2); err != nil {
		return MoveResult{}, err
	}

	from, to := At(r1, c1), At(r2, c2)
	var res Resolution
	g, err := c.update(ctx, id, func(g *game, _ bool) (bool, error) {
		if status := g.score.Status(); status.Terminal() {
			return false, fmt.Errorf("%w: status is %s", ErrGameFinished, status)
		}

		g.board.Swap(r1, c1, r2, c2)

		resolver := Resolver{Source: c.newSource(c.turn(g)), MaxSteps: c.rules.MaxChainSteps}
		var err error
		res, err = resolver.ResolveSwap(g.board, from, to)
		if err != nil {
			c.logger.Error("chain did not settle", "session", id, "steps", res.Combo, "error", err)
			return false, err
		}

		for i, step := range res.Steps {
			c.logger.Debug("chain step", "session", id, "step", i+1,
				"matched", step.Matched.Len(), "falls", len(step.Refill.Falls), "spawns", len(step.Refill.Spawns))
		}
		g.score.Apply(res)

		if g.score.Status().Terminal() {
			best, err := c.highScores.HighScore(ctx)
			if err != nil {
				return false, err
			}
			g.newHighScore = g.score.Score > best
		}
		return true, nil
	})
	if err != nil {
		return MoveResult{}, err
	}

	if g.score.Status().Terminal() {
		if err := c.finish(ctx, id, g); err != nil {
			return MoveResult{}, err
		}
	}

	return MoveResult{
		Steps:    res.Steps,
		Combo:    res.Combo,
		GameView: g.view(id),
	}, nil
}

// HighScore returns the stored best score.
func (c *Controller) HighScore(ctx context.Context) (int, error) {
	return c.highScores.HighScore(ctx)
}

// ResetHighScore clears the stored best score.
func (c *Controller) ResetHighScore(ctx context.Context) error {
	c.logger.Info("high score reset")
	return c.highScores.WriteHighScore(ctx, 0)
}

func (c *Controller) validateSwap(r1, c1, r2, c2 int) error {
	fields := []struct {
		name  string
		value int
	}{{"r1", r1}, {"c1", c1}, {"r2", r2}, {"c2", c2}}

	for _, f := range fields {
		if f.value < 0 || f.value >= c.rules.Size {
			return &ValidationError{Field: f.name, Value: f.value, Err: ErrOutOfRange}
		}
	}

	from, to := At(r1, c1), At(r2, c2)
	if !from.Adjacent(to) {
		dist := abs(r1-r2) + abs(c1-c2)
		return &ValidationError{Field: "distance", Value: dist, Err: ErrNotAdjacent}
	}
	return nil
}

// finish runs once the finished game is saved: it writes the new high
// score and adds the game to the score history.
func (c *Controller) finish(ctx context.Context, id string, g *game) error {
	if g.newHighScore {
		if err := c.highScores.WriteHighScore(ctx, g.score.Score); err != nil {
			return err
		}
	}

	if c.recorder != nil {
		if err := c.recorder.RecordScore(ctx, g.difficulty, g.score.Score); err != nil {
			// History is best-effort; the game result stands regardless
			c.logger.Warn("could not record score", "session", id, "error", err)
		}
	}

	c.logger.Info("game finished", "session", id, "status", g.score.Status(),
		"score", g.score.Score, "new_high_score", g.newHighScore)
	return nil
}

// update runs fn on the session's game as one critical section: load, fn,
// then a single save when fn asks for one. Stores implementing
// SessionUpdater run the section inside their own transaction.
func (c *Controller) update(ctx context.Context, id string, fn func(g *game, fresh bool) (save bool, err error)) (*game, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	var g *game
	apply := func(snap *Snapshot, loadErr error) (*Snapshot, error) {
		var fresh bool
		g, fresh = c.load(id, snap, loadErr)
		save, err := fn(g, fresh)
		if err != nil || !save {
			return nil, err
		}
		out := g.snapshot()
		return &out, nil
	}

	if u, ok := c.sessions.(SessionUpdater); ok {
		if err := u.UpdateSession(ctx, id, apply); err != nil {
			return nil, err
		}
		return g, nil
	}

	snap, err := c.sessions.LoadSession(ctx, id)
	if err != nil && !errors.Is(err, ErrCorruptSnapshot) {
		return nil, err
	}
	out, err := apply(snap, err)
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err := c.sessions.SaveSession(ctx, id, *out); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// load restores a loaded snapshot. fresh reports that a new game was
// created because nothing usable was stored.
func (c *Controller) load(id string, snap *Snapshot, loadErr error) (g *game, fresh bool) {
	if loadErr != nil {
		c.logger.Warn("discarding unreadable session", "session", id, "error", loadErr)
		return c.newGame(c.rules.DefaultProfile), true
	}
	if snap == nil {
		c.logger.Info("no stored session, starting new game", "session", id)
		return c.newGame(c.rules.DefaultProfile), true
	}

	g, err := c.restore(*snap)
	if err != nil {
		c.logger.Warn("discarding corrupt session", "session", id, "error", err)
		return c.newGame(snap.Difficulty), true
	}
	return g, false
}

// turn is the source factory argument for the next swap of g.
func (c *Controller) turn(g *game) int {
	used := c.rules.Profile(g.difficulty).StartingMoves - g.score.MovesLeft
	if used < 0 {
		used = 0
	}
	return used + 1
}

func (c *Controller) restore(snap Snapshot) (*game, error) {
	if err := snap.Validate(c.rules.Size); err != nil {
		return nil, err
	}
	board, err := BoardFromGrid(snap.Grid)
	if err != nil {
		return nil, err
	}

	profile := c.rules.Profile(snap.Difficulty)
	score := NewScoreModel(profile, c.rules.Scoring)
	score.Score = snap.Score
	score.MovesLeft = snap.MovesLeft
	score.TargetScore = snap.TargetScore

	return &game{
		difficulty:   profile.Name,
		board:        board,
		score:        score,
		newHighScore: snap.NewHighScore,
	}, nil
}

func (c *Controller) newGame(difficulty string) *game {
	profile := c.rules.Profile(difficulty)
	board := NewBoard(c.rules.Size)
	board.Initialize(c.newSource(0))

	return &game{
		difficulty: profile.Name,
		board:      board,
		score:      NewScoreModel(profile, c.rules.Scoring),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
