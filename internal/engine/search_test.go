package engine

import (
	"testing"
	"time"

	"chessengine/internal/chess"
)

func TestEvalStartingPositionIsBalanced(t *testing.T) {
	b := chess.NewBoard()
	if score := Eval(b, DefaultConfig); score != 0 {
		t.Errorf("Eval(start) = %d, want 0", score)
	}
}

func TestEvalFavorsMaterialAdvantage(t *testing.T) {
	b := &chess.Board{}
	if err := b.SetFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if score := Eval(b, DefaultConfig); score <= 0 {
		t.Errorf("Eval(up a pawn) = %d, want > 0", score)
	}
}

func TestSearchTimeFindsMateInOne(t *testing.T) {
	b := &chess.Board{}
	// White to move, rook a1-a8 is a back-rank mate: the king is boxed in
	// by its own pawns and nothing can reach a8.
	if err := b.SetFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	s := NewSearcher(4, DefaultConfig)
	res := s.SearchTime(b, 4, 2*time.Second)
	if res.BestMove == chess.NoMove {
		t.Fatal("expected a move, got NoMove")
	}
	if res.Score < MateScore-10 {
		t.Errorf("expected a near-mate score, got %d", res.Score)
	}
}

func TestSearchTimeRespectsBudget(t *testing.T) {
	b := chess.NewBoard()
	s := NewSearcher(4, DefaultConfig)
	start := time.Now()
	res := s.SearchTime(b, 64, 100*time.Millisecond)
	elapsed := time.Since(start)
	if res.BestMove == chess.NoMove {
		t.Fatal("expected a move from the starting position")
	}
	if elapsed > 2*time.Second {
		t.Errorf("search ran far past its budget: %v", elapsed)
	}
}
