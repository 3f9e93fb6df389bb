package fen

import "testing"

func TestParseAndEncodeRoundTrip(t *testing.T) {
	b, err := Parse(StartPosition)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Encode(b); got != StartPosition {
		t.Errorf("Encode(Parse(start)) = %q, want %q", got, StartPosition)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	if _, err := Parse("not a fen string"); err == nil {
		t.Error("expected an error for malformed FEN")
	}
}

func TestParseKiwipete(t *testing.T) {
	kiwi := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := Parse(kiwi)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Encode(b); got != kiwi {
		t.Errorf("Encode(Parse(kiwipete)) = %q, want %q", got, kiwi)
	}
}
