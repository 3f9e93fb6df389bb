package polyglot

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeRecord(buf *bytes.Buffer, key uint64, move, weight uint16, learn uint32) {
	var raw [recordSize]byte
	binary.BigEndian.PutUint64(raw[0:8], key)
	binary.BigEndian.PutUint16(raw[8:10], move)
	binary.BigEndian.PutUint16(raw[10:12], weight)
	binary.BigEndian.PutUint32(raw[12:16], learn)
	buf.Write(raw[:])
}

func TestLoadDecodesMoveAndPicksHighestWeight(t *testing.T) {
	var buf bytes.Buffer
	// e2e4: from e2 (rank1 file4), to e4 (rank3 file4), no promotion.
	e2e4 := uint16(4) | uint16(3)<<3 | uint16(4)<<6 | uint16(1)<<9
	writeRecord(&buf, 0xABCD, e2e4, 10, 0)
	// Same key, higher weight, should win.
	writeRecord(&buf, 0xABCD, e2e4, 50, 0)

	book, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	entry, ok := book[0xABCD]
	if !ok {
		t.Fatal("expected an entry for key 0xABCD")
	}
	if entry.Move != "e2e4" {
		t.Errorf("Move = %q, want e2e4", entry.Move)
	}
	if entry.Weight != 50 {
		t.Errorf("Weight = %d, want 50 (the higher-weighted duplicate)", entry.Weight)
	}
}

func TestLoadDecodesPromotion(t *testing.T) {
	var buf bytes.Buffer
	// e7e8q: from e7 (rank6 file4), to e8 (rank7 file4), promo=4 (queen).
	e7e8q := uint16(4) | uint16(7)<<3 | uint16(4)<<6 | uint16(6)<<9 | uint16(4)<<12
	writeRecord(&buf, 0x1, e7e8q, 1, 0)

	book, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if book[0x1].Move != "e7e8q" {
		t.Errorf("Move = %q, want e7e8q", book[0x1].Move)
	}
}

func TestLoadRejectsTruncatedRecord(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3})
	if _, err := Load(buf); err == nil {
		t.Error("expected an error for a truncated record")
	}
}
