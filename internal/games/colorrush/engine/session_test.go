package engine

import (
	"testing"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// recorder captures listener callbacks for inspection.
type recorder struct {
	boardChanges int
	matches      [][][]Group
	scoreDeltas  []int
	scoreTotals  []int
	powerUps     []PowerUp
	ended        []Status
}

func (r *recorder) OnBoardChanged(*Board) { r.boardChanges++ }
func (r *recorder) OnMatch(g [][]Group)   { r.matches = append(r.matches, g) }
func (r *recorder) OnScoreChanged(d, tot int) {
	r.scoreDeltas = append(r.scoreDeltas, d)
	r.scoreTotals = append(r.scoreTotals, tot)
}
func (r *recorder) OnPowerUpCreated(at core.Coord, e Effect) {
	r.powerUps = append(r.powerUps, PowerUp{At: at, Effect: e})
}
func (r *recorder) OnSessionEnded(s Status) { r.ended = append(r.ended, s) }

// plantProductiveMove swaps the session board for a crafted one where
// moving (3,1) to (3,2) completes an orange run of 3 scoring 50.
func plantProductiveMove(s *Session) {
	b := newCheckerBoard()
	setKind(b, 1, 2, KindOrange)
	setKind(b, 2, 2, KindOrange)
	setKind(b, 3, 1, KindOrange)
	s.board = b
}

func TestNewSessionClampsParams(t *testing.T) {
	s := NewSession(Params{Size: 2, Kinds: 1, Seed: 1}, nil)
	if s.board.Size != 4 {
		t.Errorf("size should clamp to 4, got %d", s.board.Size)
	}
	if s.resolver.Kinds != MinRunLength {
		t.Errorf("kinds should clamp to %d, got %d", MinRunLength, s.resolver.Kinds)
	}

	s = NewSession(Params{Size: 8, Kinds: 99, Seed: 1}, nil)
	if s.resolver.Kinds != int(KindCount) {
		t.Errorf("kinds should clamp to %d, got %d", KindCount, s.resolver.Kinds)
	}
}

func TestSessionStart(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, Seed: 1}, rec)

	if s.Status() != StatusIdle {
		t.Fatalf("new session should be idle, got %v", s.Status())
	}
	s.Start()
	if s.Status() != StatusPlaying {
		t.Errorf("started session should be playing, got %v", s.Status())
	}
	if rec.boardChanges != 1 {
		t.Errorf("start should announce the board once, got %d", rec.boardChanges)
	}

	s.Start() // second call is a no-op
	if rec.boardChanges != 1 {
		t.Error("repeated Start must not re-announce the board")
	}
}

func TestSessionRejectsMovesBeforeStart(t *testing.T) {
	s := NewSession(Params{Size: 8, Kinds: 7, Seed: 1}, nil)
	plantProductiveMove(s)

	res := s.TryMove(core.C(3, 1), core.C(3, 2))
	if res.Accepted {
		t.Error("idle session must reject moves")
	}
	if s.Score() != 0 {
		t.Errorf("idle session score must stay 0, got %d", s.Score())
	}
}

func TestSessionAcceptedMoveScoresAndNotifies(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, MoveBudget: 5, Seed: 1}, rec)
	plantProductiveMove(s)
	s.Start()

	res := s.TryMove(core.C(3, 1), core.C(3, 2))
	if !res.Accepted {
		t.Fatal("planted move must be accepted")
	}
	if s.Score() != res.Outcome.ScoreDelta {
		t.Errorf("session score %d should equal outcome delta %d", s.Score(), res.Outcome.ScoreDelta)
	}
	if s.MovesLeft() != 4 {
		t.Errorf("accepted move should consume budget, left=%d", s.MovesLeft())
	}
	if s.LastCascadeDepth() != res.Outcome.Depth {
		t.Errorf("last depth %d should equal outcome depth %d", s.LastCascadeDepth(), res.Outcome.Depth)
	}
	if len(rec.matches) != 1 {
		t.Errorf("expected one match notification, got %d", len(rec.matches))
	}
	if len(rec.scoreDeltas) != 1 || rec.scoreDeltas[0] != res.Outcome.ScoreDelta {
		t.Errorf("score notification mismatch: %v", rec.scoreDeltas)
	}
	if rec.scoreTotals[0] != s.Score() {
		t.Errorf("score total notification %d should equal %d", rec.scoreTotals[0], s.Score())
	}
}

func TestSessionRejectedMoveKeepsBudget(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, MoveBudget: 3, Seed: 1}, rec)
	s.board = newCheckerBoard() // matchless: every swap is non-productive
	s.Start()

	res := s.TryMove(core.C(0, 0), core.C(1, 0))
	if res.Accepted {
		t.Fatal("checkerboard swap must be rejected")
	}
	if s.MovesLeft() != 3 {
		t.Errorf("rejected move must not consume budget, left=%d", s.MovesLeft())
	}
	if len(rec.matches) != 0 || len(rec.scoreDeltas) != 0 {
		t.Error("rejected move must fire no match or score events")
	}
}

func TestSessionCompletesOnTarget(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, Target: 50, MoveBudget: 10, Seed: 1}, rec)
	plantProductiveMove(s)
	s.Start()

	res := s.TryMove(core.C(3, 1), core.C(3, 2))
	if !res.Accepted {
		t.Fatal("planted move must be accepted")
	}
	if s.Status() != StatusCompleted {
		t.Errorf("reaching the target should complete the session, got %v", s.Status())
	}
	if len(rec.ended) != 1 || rec.ended[0] != StatusCompleted {
		t.Errorf("expected a Completed end event, got %v", rec.ended)
	}

	// Terminal sessions accept no further input.
	plantProductiveMove(s)
	if s.TryMove(core.C(3, 1), core.C(3, 2)).Accepted {
		t.Error("completed session must reject moves")
	}
}

func TestSessionFailsOnExhaustedBudget(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, Target: 1_000_000, MoveBudget: 1, Seed: 1}, rec)
	plantProductiveMove(s)
	s.Start()

	res := s.TryMove(core.C(3, 1), core.C(3, 2))
	if !res.Accepted {
		t.Fatal("planted move must be accepted")
	}
	if s.Status() != StatusFailed {
		t.Errorf("exhausting the budget short of the target should fail, got %v", s.Status())
	}
	if len(rec.ended) != 1 || rec.ended[0] != StatusFailed {
		t.Errorf("expected a Failed end event, got %v", rec.ended)
	}
}

func TestSessionCompletionWinsOverExhaustedBudget(t *testing.T) {
	// Reaching the target on the last move is a completion, not a fail.
	s := NewSession(Params{Size: 8, Kinds: 7, Target: 50, MoveBudget: 1, Seed: 1}, nil)
	plantProductiveMove(s)
	s.Start()

	if !s.TryMove(core.C(3, 1), core.C(3, 2)).Accepted {
		t.Fatal("planted move must be accepted")
	}
	if s.Status() != StatusCompleted {
		t.Errorf("target reached on the last move should complete, got %v", s.Status())
	}
}

func TestSessionExpireTime(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, Seed: 1}, rec)
	s.Start()

	s.ExpireTime()
	if s.Status() != StatusFailed {
		t.Errorf("time expiry should fail the session, got %v", s.Status())
	}

	s.ExpireTime() // no-op on a terminal session
	if len(rec.ended) != 1 {
		t.Errorf("expected exactly one end event, got %d", len(rec.ended))
	}
}

func TestSessionActivate(t *testing.T) {
	rec := &recorder{}
	s := NewSession(Params{Size: 8, Kinds: 7, MoveBudget: 5, Seed: 1}, rec)
	b := newCheckerBoard()
	at := core.C(3, 6)
	b.Set(at, FilledCell(Tile{Kind: KindOrange, Effect: EffectLineClear}))
	s.board = b
	s.Start()

	// An ordinary cell is a no-op.
	if cleared := s.Activate(core.C(0, 0)); cleared != nil {
		t.Errorf("activating an ordinary tile should return nil, got %v", cleared)
	}

	cleared := s.Activate(at)
	if len(cleared) != b.Size {
		t.Errorf("line clear should remove the whole row, got %d cells", len(cleared))
	}
	if s.MovesLeft() != 5 {
		t.Errorf("activation must not consume the move budget, left=%d", s.MovesLeft())
	}
}
