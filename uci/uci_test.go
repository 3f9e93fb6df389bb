package uci

import (
	"bytes"
	"strings"
	"testing"

	"chessengine/internal/chess"
)

func TestParseMoveQuiet(t *testing.T) {
	b := chess.NewBoard()
	m, err := ParseMove(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !m.IsDoublePawnPush() {
		t.Errorf("e2e4 should decode to a double pawn push, got flag %v", m.Flag())
	}
}

func TestParseMoveRejectsIllegal(t *testing.T) {
	b := chess.NewBoard()
	if _, err := ParseMove(b, "e2e5"); err == nil {
		t.Error("expected e2e5 to be rejected as illegal from the starting position")
	}
}

func TestParseMovePromotion(t *testing.T) {
	b := &chess.Board{}
	if err := b.SetFEN("8/4P3/8/8/8/8/k7/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	m, err := ParseMove(b, "e7e8q")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.PromotionPiece() != chess.Queen {
		t.Errorf("expected queen promotion, got %v", m.PromotionPiece())
	}
}

func TestHandshakeAndNewGame(t *testing.T) {
	in := strings.NewReader("uci\nisready\nucinewgame\nquit\n")
	var out bytes.Buffer
	Run(in, &out)

	got := out.String()
	for _, want := range []string{"uciok", "readyok", EngineName} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestPositionAndGoEmitsBestmove(t *testing.T) {
	in := strings.NewReader("position startpos moves e2e4 e7e5\ngo movetime 50\nquit\n")
	var out bytes.Buffer
	Run(in, &out)

	if !strings.Contains(out.String(), "bestmove") {
		t.Errorf("expected a bestmove line, got %q", out.String())
	}
}
