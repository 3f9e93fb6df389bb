package chess

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		b := NewBoard()
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("perft(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN(KiwipeteFEN); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if got, want := Perft(b, 3), uint64(97862); got != want {
		t.Errorf("perft(kiwipete, 3) = %d, want %d", got, want)
	}
}

func TestPerftPosition3(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if got, want := Perft(b, 4), uint64(43238); got != want {
		t.Errorf("perft(pos3, 4) = %d, want %d", got, want)
	}
}

func TestPerftPosition4(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if got, want := Perft(b, 3), uint64(9467); got != want {
		t.Errorf("perft(pos4, 3) = %d, want %d", got, want)
	}
}

func TestEnPassantLegalCapture(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := GenerateLegal(b)
	found := false
	for _, m := range moves {
		if m.IsEnPassant() && m.From() == E5 && m.To() == F6 {
			found = true
		}
	}
	if !found {
		t.Error("expected e5xf6 en passant to be legal")
	}
}

func TestEnPassantPinnedByDiscoveredCheck(t *testing.T) {
	// White king b5, pawn d5, black pawn e5 (just double-pushed from e7),
	// black rook h5: capturing dxe6 en passant would clear both d5 and e5
	// off rank 5, exposing the king to the rook along the rank.
	b := &Board{}
	if err := b.SetFEN("8/8/8/1K1Pp2r/8/8/8/4k3 w - e6 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := GenerateLegal(b)
	for _, m := range moves {
		if m.IsEnPassant() {
			t.Errorf("en passant dxe6 should be illegal (horizontal discovered check), got %v", m)
		}
	}
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := GenerateLegal(b)
	want := map[PieceType]bool{Queen: false, Rook: false, Bishop: false, Knight: false}
	for _, m := range moves {
		if m.From() == E7 && m.To() == E8 && m.IsPromotion() {
			want[m.PromotionPiece()] = true
		}
	}
	for pt, ok := range want {
		if !ok {
			t.Errorf("missing promotion to %v", pt)
		}
	}
}

func TestCastlingBothSidesAndRookCaptureClearsRight(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := GenerateLegal(b)
	var king, queen bool
	for _, m := range moves {
		if m.Flag() == FlagCastleKingside && m.From() == E1 {
			king = true
		}
		if m.Flag() == FlagCastleQueenside && m.From() == E1 {
			queen = true
		}
	}
	if !king || !queen {
		t.Fatalf("expected both castling moves to be legal, king=%v queen=%v", king, queen)
	}

	capture := NewMove(A1, A8, FlagCapture)
	b.MakeMove(capture)
	if b.CastleRights[Black][Queenside] {
		t.Error("capturing a8 rook should clear black queenside rights")
	}
	if !b.CastleRights[Black][Kingside] {
		t.Error("black kingside rights should be unaffected by a rook capture on a8")
	}
	b.UnmakeMove(capture)
	if !b.CastleRights[Black][Queenside] {
		t.Error("unmake should restore black queenside rights")
	}
}

func TestPinnedPawnCannotCaptureOffPinRay(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("4k3/8/8/8/4r3/8/4P3/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := GenerateLegal(b)
	for _, m := range moves {
		if m.From() == E2 && m.To() != E3 && m.To() != E4 {
			t.Errorf("pinned pawn made illegal move off the pin ray: %v", m)
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN(KiwipeteFEN); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	before := *b
	for _, m := range GenerateLegal(b) {
		hashBefore := b.Hash
		b.MakeMove(m)
		b.UnmakeMove(m)
		if b.Hash != hashBefore {
			t.Errorf("hash mismatch after make/unmake of %v", m)
		}
		if b.pieceBB != before.pieceBB || b.colorBB != before.colorBB || b.mailbox != before.mailbox {
			t.Errorf("board state mismatch after make/unmake of %v", m)
		}
	}
}

func TestGeneratorEmitsNoDuplicateMoves(t *testing.T) {
	positions := []string{
		StartFEN,
		KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range positions {
		b := &Board{}
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		seen := make(map[Move]bool)
		for _, m := range GenerateLegal(b) {
			if seen[m] {
				t.Errorf("duplicate move %v generated for %q", m, fen)
			}
			seen[m] = true
		}
	}
}

func TestZobristEqualityAcrossMoveOrders(t *testing.T) {
	apply := func(b *Board, from, to Square) {
		for _, m := range GenerateLegal(b) {
			if m.From() == from && m.To() == to {
				b.MakeMove(m)
				return
			}
		}
		t.Fatalf("no legal move %v%v in current position", from, to)
	}

	// Both orders develop the same two white knights and push the same
	// black pawn twice, reaching identical logical positions.
	b1 := NewBoard()
	apply(b1, G1, F3)
	apply(b1, A7, A6)
	apply(b1, B1, C3)
	apply(b1, A6, A5)

	b2 := NewBoard()
	apply(b2, B1, C3)
	apply(b2, A7, A6)
	apply(b2, G1, F3)
	apply(b2, A6, A5)

	if b1.pieceBB != b2.pieceBB || b1.colorBB != b2.colorBB || b1.mailbox != b2.mailbox {
		t.Fatalf("test positions are not actually identical, fix the move sequences")
	}
	if b1.Hash != b2.Hash {
		t.Errorf("same logical position reached via different move orders hashed differently: %#x vs %#x", b1.Hash, b2.Hash)
	}
}

func TestNoLegalMoveLeavesOwnKingInCheck(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN(KiwipeteFEN); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	for _, m := range GenerateLegal(b) {
		b.MakeMove(m)
		if b.IsAttacked(b.King(b.SideToMove.Opp()), b.SideToMove) {
			t.Errorf("move %v leaves mover's own king in check", m)
		}
		b.UnmakeMove(m)
	}
}
