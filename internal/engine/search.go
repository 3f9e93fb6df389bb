package engine

import (
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	"chessengine/internal/chess"
)

var log = logging.MustGetLogger("engine")

// maxPly bounds the killer-move table and the mate-distance scoring window.
const maxPly = 64

// quiescenceMaxPly caps the capture-only search, grounded on the teacher's
// QuiesenceSearchDepth, generalized to a ply cap rather than a fixed depth
// since quiescence in this engine recurses until captures run out or the
// cap is hit, whichever comes first.
const quiescenceMaxPly = 16

// ttFlag classifies what bound a transposition table entry represents.
type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttAlpha
	ttBeta
)

type ttEntry struct {
	hash     uint64
	depth    int
	value    int
	flag     ttFlag
	best     chess.Move
	occupied bool
}

// transpositionTable is a fixed-size, always-replace hash table keyed by
// the board's Zobrist hash modulo its length, grounded on the teacher's
// Searcher.ttable.
type transpositionTable struct {
	entries []ttEntry
}

func newTranspositionTable(sizeMB int) *transpositionTable {
	n := (sizeMB * 1024 * 1024) / 32
	if n < 1024 {
		n = 1024
	}
	return &transpositionTable{entries: make([]ttEntry, n)}
}

func (t *transpositionTable) slot(hash uint64) *ttEntry {
	return &t.entries[hash%uint64(len(t.entries))]
}

func (t *transpositionTable) probe(hash uint64, depth, alpha, beta int) (int, chess.Move, bool) {
	e := t.slot(hash)
	if !e.occupied || e.hash != hash {
		return 0, chess.NoMove, false
	}
	if e.depth < depth {
		return 0, e.best, false
	}
	switch e.flag {
	case ttExact:
		return e.value, e.best, true
	case ttAlpha:
		if e.value <= alpha {
			return alpha, e.best, true
		}
	case ttBeta:
		if e.value >= beta {
			return beta, e.best, true
		}
	}
	return 0, e.best, false
}

func (t *transpositionTable) store(hash uint64, depth, value int, flag ttFlag, best chess.Move) {
	e := t.slot(hash)
	e.hash = hash
	e.depth = depth
	e.value = value
	e.flag = flag
	e.best = best
	e.occupied = true
}

// Result reports the outcome of a finished or time-cut search.
type Result struct {
	BestMove Move
	Score    int
	Depth    int
	Nodes    uint64
}

// Move is a type alias kept local to the engine package's public surface
// so callers don't need to import chess just to read a Result.
type Move = chess.Move

// Searcher holds the mutable state of one search run: the board under
// search, its transposition table, and the killer/history tables that
// persist across iterative-deepening iterations (grounded on the
// teacher's Searcher struct).
type Searcher struct {
	Config Config

	tt      *transpositionTable
	killers killerMoves
	hist    history

	nodes   uint64
	stop    int32 // atomic cancellation flag
	deadline time.Time
}

// NewSearcher builds a Searcher with a transposition table of the given
// size in megabytes.
func NewSearcher(ttSizeMB int, cfg Config) *Searcher {
	return &Searcher{Config: cfg, tt: newTranspositionTable(ttSizeMB)}
}

// SearchTime runs iterative deepening until maxDepth is reached or budget
// elapses, whichever comes first. A worker goroutine owns the actual
// search and is always joined before SearchTime returns, via the done
// channel below, fixing the unjoined-search-thread hazard: the caller
// never observes a result from a goroutine that outlives this call.
func (s *Searcher) SearchTime(b *chess.Board, maxDepth int, budget time.Duration) Result {
	s.nodes = 0
	atomic.StoreInt32(&s.stop, 0)
	s.deadline = time.Now().Add(budget)

	type iteration struct {
		result Result
		ok     bool
	}
	done := make(chan iteration, 1)
	timer := time.AfterFunc(budget, func() { atomic.StoreInt32(&s.stop, 1) })
	defer timer.Stop()

	go func() {
		boardCopy := *b
		best := firstLegalResult(&boardCopy)
		for depth := 1; depth <= maxDepth; depth++ {
			if atomic.LoadInt32(&s.stop) != 0 {
				break
			}
			move, score, completed := s.rootSearch(&boardCopy, depth)
			if !completed {
				break
			}
			best = Result{BestMove: move, Score: score, Depth: depth, Nodes: s.nodes}
			log.Debugf("depth %d score %d nodes %d move %v", depth, score, s.nodes, move)
			if score > MateScore-maxPly || score < -MateScore+maxPly {
				break
			}
		}
		done <- iteration{result: best, ok: true}
	}()

	res := <-done
	return res.result
}

// firstLegalResult is SearchTime's fallback per spec §7: if the time
// budget expires before even depth 1 completes, the search still returns
// the first legal move with score 0 rather than chess.NoMove, so callers
// never have to paper over an empty result themselves.
func firstLegalResult(b *chess.Board) Result {
	legal := chess.GenerateLegal(b)
	if len(legal) == 0 {
		return Result{BestMove: chess.NoMove, Score: 0}
	}
	return Result{BestMove: legal[0], Score: 0}
}

// rootSearch runs one iterative-deepening iteration at the given depth,
// returning the best move/score found, and false if the search was
// cancelled partway through (in which case the caller discards the
// partial result rather than reporting an incomplete best move).
func (s *Searcher) rootSearch(b *chess.Board, depth int) (chess.Move, int, bool) {
	moves := chess.GenerateLegal(b)
	if len(moves) == 0 {
		return chess.NoMove, 0, true
	}
	orderMoves(b, moves, &s.killers, &s.hist, 0, depth)

	alpha, beta := -Infinity, Infinity
	best := moves[0]
	bestScore := -Infinity

	for _, m := range moves {
		if s.cancelled() {
			return chess.NoMove, 0, false
		}
		b.MakeMove(m)
		score := -s.alphabeta(b, depth-1, -beta, -alpha, 1)
		b.UnmakeMove(m)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	if s.cancelled() {
		return chess.NoMove, 0, false
	}
	return best, bestScore, true
}

func (s *Searcher) cancelled() bool {
	return atomic.LoadInt32(&s.stop) != 0
}

// alphabeta is the main negamax search with alpha-beta pruning, a
// transposition table, and quiescence at the frontier, grounded on the
// teacher's Searcher.negamax.
func (s *Searcher) alphabeta(b *chess.Board, depth, alpha, beta, ply int) int {
	if s.cancelled() {
		return 0
	}
	if value, _, ok := s.tt.probe(b.Hash, depth, alpha, beta); ok {
		return value
	}
	if depth <= 0 {
		s.nodes++
		return s.quiescence(b, alpha, beta, 0)
	}

	moves := chess.GenerateLegal(b)
	if len(moves) == 0 {
		if b.InCheck() {
			return -MateScore + ply
		}
		return DrawScore
	}
	orderMoves(b, moves, &s.killers, &s.hist, ply, depth)

	flag := ttAlpha
	best := moves[0]
	origAlpha := alpha

	for _, m := range moves {
		b.MakeMove(m)
		score := -s.alphabeta(b, depth-1, -beta, -alpha, ply+1)
		b.UnmakeMove(m)

		if score >= beta {
			s.tt.store(b.Hash, depth, beta, ttBeta, m)
			recordCutoff(m, &s.killers, &s.hist, ply, depth)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
			flag = ttExact
		}
	}
	if alpha == origAlpha {
		flag = ttAlpha
	}
	s.tt.store(b.Hash, depth, alpha, flag, best)
	return alpha
}

// quiescence extends search along capturing lines only, to avoid the
// horizon effect at the frontier of the main search, grounded on the
// teacher's Searcher.quiescence.
func (s *Searcher) quiescence(b *chess.Board, alpha, beta, ply int) int {
	s.nodes++
	standPat := Eval(b, s.Config)
	if ply >= quiescenceMaxPly {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	moves := chess.GenerateCaptures(b)
	orderMoves(b, moves, &s.killers, &s.hist, ply, 0)

	for _, m := range moves {
		if s.cancelled() {
			return alpha
		}
		b.MakeMove(m)
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
