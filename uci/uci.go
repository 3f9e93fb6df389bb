// Package uci implements the Universal Chess Interface protocol loop: a
// thin text-command boundary between a GUI and the engine core. Move
// parsing, position setup, and search dispatch live here; board
// representation and search algorithms do not.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"chessengine/internal/chess"
	"chessengine/internal/engine"
	"chessengine/polyglot"
)

var log = logging.MustGetLogger("uci")

const (
	EngineName   = "chessengine 0.1"
	EngineAuthor = "the student"
)

// defaultMoveBudget is used when a "go" command carries no time control at
// all (e.g. analysis mode), grounded on the teacher's
// TimeThreshHoldForBulletPlay fallback behavior.
const defaultMoveBudget = 5 * time.Second

// Engine is the long-lived UCI session state: the board under play, the
// searcher (and its transposition table, kept warm across moves), an
// optional opening book, and the game-time budget recorded from the first
// "go" command of the game (UCI carries only the clock *remaining*, not
// the original time control, so the first sighting of wtime/btime stands
// in for spec §4.7's game_ms thereafter).
type Engine struct {
	board    *chess.Board
	searcher *engine.Searcher
	book     map[uint64]polyglot.Entry
	gameMS   int
}

// NewEngine constructs an Engine ready to receive UCI commands.
func NewEngine() *Engine {
	return &Engine{
		board:    chess.NewBoard(),
		searcher: engine.NewSearcher(64, engine.DefaultConfig),
	}
}

// LoadBook attempts to load a Polyglot opening book; failure is logged and
// otherwise non-fatal, matching the teacher's "play without a book" stance.
func (e *Engine) LoadBook(path string) {
	book, err := polyglot.LoadFile(path)
	if err != nil {
		log.Warningf("opening book unavailable: %v", err)
		return
	}
	e.book = book
}

// Run drives the UCI command loop against r, writing responses to w, until
// a "quit" command or EOF.
func Run(r io.Reader, w io.Writer) {
	e := NewEngine()
	e.LoadBook("book.bin")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if e.handleCommand(line, w) {
			return
		}
	}
}

// handleCommand processes one line of UCI input and reports whether the
// session should terminate.
func (e *Engine) handleCommand(line string, w io.Writer) (quit bool) {
	switch {
	case line == "uci":
		fmt.Fprintf(w, "id name %s\n", EngineName)
		fmt.Fprintf(w, "id author %s\n", EngineAuthor)
		fmt.Fprintf(w, "uciok\n")
	case line == "isready":
		fmt.Fprintf(w, "readyok\n")
	case line == "ucinewgame":
		e.board = chess.NewBoard()
		e.searcher = engine.NewSearcher(64, e.searcher.Config)
		e.gameMS = 0
	case strings.HasPrefix(line, "position"):
		e.handlePosition(line)
	case strings.HasPrefix(line, "go"):
		e.handleGo(line, w)
	case line == "stop":
		// The worker goroutine checks its deadline cooperatively; this
		// engine has no separate async search in flight between "go"
		// calls to cancel.
	case line == "quit":
		return true
	}
	return false
}

func (e *Engine) handlePosition(line string) {
	args := strings.TrimPrefix(line, "position ")
	var movesStr string

	switch {
	case strings.HasPrefix(args, "startpos"):
		e.board = chess.NewBoard()
		movesStr = strings.TrimPrefix(args, "startpos")
	case strings.HasPrefix(args, "fen"):
		rest := strings.Fields(strings.TrimPrefix(args, "fen "))
		if len(rest) < 6 {
			log.Errorf("malformed position fen command: %q", line)
			return
		}
		fenStr := strings.Join(rest[:6], " ")
		b := &chess.Board{}
		if err := b.SetFEN(fenStr); err != nil {
			log.Errorf("bad fen in position command: %v", err)
			return
		}
		e.board = b
		movesStr = strings.Join(rest[6:], " ")
	}

	movesStr = strings.TrimSpace(movesStr)
	movesStr = strings.TrimPrefix(movesStr, "moves")
	for _, tok := range strings.Fields(movesStr) {
		m, err := ParseMove(e.board, tok)
		if err != nil {
			log.Errorf("illegal move in position command: %v", err)
			return
		}
		e.board.MakeMove(m)
	}
}

func (e *Engine) handleGo(line string, w io.Writer) {
	if move := e.tryBookMove(); move != chess.NoMove {
		fmt.Fprintf(w, "bestmove %v\n", move.UCI())
		return
	}

	budget := e.parseBudget(line)
	res := e.searcher.SearchTime(e.board, 64, budget)
	if res.BestMove == chess.NoMove {
		// SearchTime only returns NoMove when the position itself has no
		// legal move (checkmate/stalemate); an aborted search still falls
		// back to a real first-legal-move result, so this is not reached
		// on a mere time-budget cutoff.
		fmt.Fprintf(w, "bestmove 0000\n")
		return
	}
	fmt.Fprintf(w, "info depth %d score cp %d nodes %d\n", res.Depth, res.Score, res.Nodes)
	fmt.Fprintf(w, "bestmove %v\n", res.BestMove.UCI())
}

func (e *Engine) tryBookMove() chess.Move {
	entry, ok := e.book[e.board.Hash]
	if !ok {
		return chess.NoMove
	}
	for _, m := range chess.GenerateLegal(e.board) {
		if m.UCI() == entry.Move {
			return m
		}
	}
	return chess.NoMove
}

// parseBudget derives a per-move time budget from a "go" command's wtime/
// btime/movetime fields. An explicit "movetime" always wins; otherwise the
// remaining clock (wtime/btime) is our_ms and, on the first "go" of the
// game, also doubles as game_ms for spec §4.7's search_time formula.
func (e *Engine) parseBudget(line string) time.Duration {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "movetime" && i+1 < len(fields) {
			if ms, err := strconv.Atoi(fields[i+1]); err == nil {
				return time.Duration(ms) * time.Millisecond
			}
		}
	}

	timeKey := "wtime"
	if e.board.SideToMove == chess.Black {
		timeKey = "btime"
	}
	for i, f := range fields {
		if f != timeKey || i+1 >= len(fields) {
			continue
		}
		ourMS, err := strconv.Atoi(fields[i+1])
		if err != nil {
			break
		}
		if e.gameMS == 0 {
			e.gameMS = ourMS
		}
		return searchTimeBudget(e.gameMS, ourMS)
	}
	return defaultMoveBudget
}

// searchTimeBudget implements spec §4.7's search_time(game_ms, our_ms)
// exactly: budget = min(our_ms/5, game_ms/60).
func searchTimeBudget(gameMS, ourMS int) time.Duration {
	budget := ourMS / 5
	if perGame := gameMS / 60; perGame < budget {
		budget = perGame
	}
	if budget < 0 {
		budget = 0
	}
	return time.Duration(budget) * time.Millisecond
}

// ParseMove converts UCI coordinate notation (e.g. "e2e4", "e7e8q") into
// the legal Move it names on b, matching promotion/en-passant/castle
// flags up from the actual legal move list rather than reconstructing
// flags from the string alone.
func ParseMove(b *chess.Board, s string) (chess.Move, error) {
	if len(s) < 4 {
		return chess.NoMove, fmt.Errorf("uci: malformed move %q", s)
	}
	from, err := chess.SquareFromCoords(s[0:2])
	if err != nil {
		return chess.NoMove, err
	}
	to, err := chess.SquareFromCoords(s[2:4])
	if err != nil {
		return chess.NoMove, err
	}
	var promo chess.PieceType = chess.None
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = chess.Queen
		case 'r':
			promo = chess.Rook
		case 'b':
			promo = chess.Bishop
		case 'n':
			promo = chess.Knight
		}
	}

	for _, m := range chess.GenerateLegal(b) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotionPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != chess.None {
			continue
		}
		return m, nil
	}
	return chess.NoMove, fmt.Errorf("uci: %q is not a legal move in the current position", s)
}
