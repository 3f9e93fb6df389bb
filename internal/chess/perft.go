package chess

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Perft counts leaf nodes of the legal move tree to the given depth,
// the standard move-generator correctness and performance benchmark
// (spec §8). PerftWithTable can be given a small memoization table keyed
// on (hash, depth) so repeated positions at the same depth reuse their
// subtree count, matching the transposition-table-assisted perft the
// teacher ran under core/perft_test.go; Perft itself runs without one.
type perftEntry struct {
	hash  uint64
	depth int
	nodes uint64
	valid bool
}

// PerftTable is a fixed-size direct-mapped memo table for Perft. Allocate
// one with NewPerftTable; a nil *PerftTable disables memoization.
type PerftTable struct {
	entries []perftEntry
}

// NewPerftTable allocates a memo table with 2^bits entries.
func NewPerftTable(bits uint) *PerftTable {
	return &PerftTable{entries: make([]perftEntry, 1<<bits)}
}

func (t *PerftTable) index(hash uint64) uint64 {
	return hash & uint64(len(t.entries)-1)
}

func (t *PerftTable) get(hash uint64, depth int) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	e := t.entries[t.index(hash)]
	if e.valid && e.hash == hash && e.depth == depth {
		return e.nodes, true
	}
	return 0, false
}

func (t *PerftTable) put(hash uint64, depth int, nodes uint64) {
	if t == nil {
		return
	}
	t.entries[t.index(hash)] = perftEntry{hash: hash, depth: depth, nodes: nodes, valid: true}
}

// Perft returns the number of legal move sequences of length depth
// reachable from b's current position. b is left unchanged.
func Perft(b *Board, depth int) uint64 {
	return PerftWithTable(b, depth, nil)
}

// PerftWithTable is Perft backed by an explicit memo table, shared across
// calls by the caller to amortize repeated positions (transpositions).
func PerftWithTable(b *Board, depth int, t *PerftTable) uint64 {
	if depth == 0 {
		return 1
	}
	if nodes, ok := t.get(b.Hash, depth); ok {
		return nodes
	}
	moves := GenerateLegal(b)
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			b.MakeMove(m)
			nodes += PerftWithTable(b, depth-1, t)
			b.UnmakeMove(m)
		}
	}
	t.put(b.Hash, depth, nodes)
	return nodes
}

// DividePerft returns, for each legal move in the current position, the
// perft count of the subtree it leads to at depth-1 plies further. It is
// the standard per-move breakdown used to localize a move generator bug
// against a reference count.
func DividePerft(b *Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth < 1 {
		return result
	}
	for _, m := range GenerateLegal(b) {
		b.MakeMove(m)
		result[m.UCI()] = Perft(b, depth-1)
		b.UnmakeMove(m)
	}
	return result
}

// FormatDivide renders a DividePerft breakdown as one "move: count" line
// per move plus a thousands-separated total, the form a perft command
// prints to a UCI-adjacent debug console.
func FormatDivide(divide map[string]uint64) string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder
	var total uint64
	for move, nodes := range divide {
		fmt.Fprintf(&sb, "%s: %s\n", move, p.Sprintf("%d", nodes))
		total += nodes
	}
	fmt.Fprintf(&sb, "\nnodes searched: %s\n", p.Sprintf("%d", total))
	return sb.String()
}
