package engine

import (
	"math/rand"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// Status is the lifecycle state of a game session.
type Status uint8

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusCompleted
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPlaying:
		return "Playing"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Listener receives engine events for presentation. All callbacks are
// invoked synchronously from the session's own goroutine; the cascade
// trace is complete when OnMatch fires, and the presentation layer
// replays it at whatever pace it chooses.
type Listener interface {
	OnBoardChanged(b *Board)
	OnMatch(groupsByDepth [][]Group)
	OnScoreChanged(delta, total int)
	OnPowerUpCreated(at core.Coord, effect Effect)
	OnSessionEnded(status Status)
}

// Params configures a new session. Target 0 means no score target
// (endless play); MoveBudget 0 means unlimited moves, for modes whose
// resource (time) is owned by the caller.
type Params struct {
	Size       int
	Kinds      int
	Target     int
	MoveBudget int
	Seed       int64
}

// Session owns one board and the cumulative state of a single game:
// score, remaining moves and lifecycle status. It replaces the global
// mutable state of older match-3 implementations; callers hold the
// session and pass nothing else around. The session is not safe for
// concurrent use: callers must serialize TryMove and Activate.
type Session struct {
	board    *Board
	resolver *Resolver

	score     int
	target    int
	movesLeft int
	hasBudget bool
	lastDepth int
	status    Status

	listener Listener
}

// NewSession creates an idle session with a freshly generated board.
// Size and kind count are clamped to workable minimums (4 and 3) and
// kinds never exceeds KindCount.
func NewSession(p Params, listener Listener) *Session {
	size := core.Max(p.Size, 4)
	kinds := core.Clamp(p.Kinds, MinRunLength, int(KindCount))
	rng := rand.New(rand.NewSource(p.Seed))

	return &Session{
		board:     NewBoard(size, kinds, rng),
		resolver:  NewResolver(kinds, rng),
		target:    p.Target,
		movesLeft: p.MoveBudget,
		hasBudget: p.MoveBudget > 0,
		status:    StatusIdle,
		listener:  listener,
	}
}

// Start moves the session from idle to playing and announces the
// initial board.
func (s *Session) Start() {
	if s.status != StatusIdle {
		return
	}
	s.status = StatusPlaying
	if s.listener != nil {
		s.listener.OnBoardChanged(s.board)
	}
}

// Board returns the session's board. Callers must treat it as read-only;
// TryMove and Activate are the only mutating entry points.
func (s *Session) Board() *Board {
	return s.board
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Target returns the score target, 0 if none.
func (s *Session) Target() int {
	return s.target
}

// MovesLeft returns the remaining move budget. Unlimited-move sessions
// always report 0.
func (s *Session) MovesLeft() int {
	if !s.hasBudget {
		return 0
	}
	return s.movesLeft
}

// LastCascadeDepth returns the cascade depth of the most recent
// accepted move or activation.
func (s *Session) LastCascadeDepth() int {
	return s.lastDepth
}

// Status returns the session lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// TryMove is the sole mutating entry point for player moves. Rejected
// moves (non-adjacent, or non-productive swaps) change no state and do
// not consume the move budget.
func (s *Session) TryMove(from, to core.Coord) MoveResult {
	if s.status != StatusPlaying {
		return MoveResult{}
	}

	result := s.resolver.TryMove(s.board, from, to)
	if !result.Accepted {
		return result
	}

	if s.hasBudget {
		s.movesLeft--
	}
	s.applyOutcome(result.Outcome)
	return result
}

// Activate triggers the special tile at c; its cleared cells feed the
// ordinary cascade pipeline. Activation does not consume the move
// budget. Returns the set of cells cleared by the effect itself.
func (s *Session) Activate(c core.Coord) []core.Coord {
	if s.status != StatusPlaying {
		return nil
	}

	cleared, out, ok := s.resolver.Activate(s.board, c)
	if !ok {
		return nil
	}
	s.applyOutcome(out)
	return cleared
}

// ExpireTime reports that the caller-owned time budget ran out.
// The session fails unless it already completed.
func (s *Session) ExpireTime() {
	if s.status != StatusPlaying {
		return
	}
	s.end(StatusFailed)
}

// applyOutcome folds a cascade outcome into the session state, fires
// listener events and settles the lifecycle transitions.
func (s *Session) applyOutcome(out Outcome) {
	s.lastDepth = out.Depth
	s.score += out.ScoreDelta

	if s.listener != nil {
		s.listener.OnBoardChanged(s.board)
		if len(out.GroupsByDepth) > 0 {
			s.listener.OnMatch(out.GroupsByDepth)
		}
		if out.ScoreDelta != 0 {
			s.listener.OnScoreChanged(out.ScoreDelta, s.score)
		}
		for _, p := range out.PowerUps {
			s.listener.OnPowerUpCreated(p.At, p.Effect)
		}
	}

	switch {
	case s.target > 0 && s.score >= s.target:
		s.end(StatusCompleted)
	case s.hasBudget && s.movesLeft <= 0:
		s.end(StatusFailed)
	}
}

// end transitions to a terminal status and notifies the listener.
func (s *Session) end(status Status) {
	s.status = status
	if s.listener != nil {
		s.listener.OnSessionEnded(status)
	}
}
