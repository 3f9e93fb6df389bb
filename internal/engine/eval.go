// Package engine implements static evaluation and alpha-beta search on top
// of the chess package's board representation and move generator.
package engine

import "chessengine/internal/chess"

// Infinity bounds are kept well inside int range so mate-distance scores
// (MateScore - ply) never overflow, grounded on the teacher's PosInf/NegInf.
const (
	Infinity = 1000000
	MateScore = Infinity - 1000
	DrawScore = 0
)

// Config toggles optional evaluation refinements beyond the canonical
// material count (spec §4.5 names material scoring as the baseline; PST
// is an additive refinement, off by default to keep Eval's output matching
// the spec's testable material-only values).
type Config struct {
	UsePST bool
}

// DefaultConfig is pure material evaluation, matching spec §4.5 exactly.
var DefaultConfig = Config{UsePST: false}

// Eval returns a static score for b from the side-to-move's perspective, in
// centipawns: positive favors the side to move.
func Eval(b *chess.Board, cfg Config) int {
	white := materialFor(b, chess.White)
	black := materialFor(b, chess.Black)
	if cfg.UsePST {
		white += pstFor(b, chess.White)
		black += pstFor(b, chess.Black)
		white += kingSafetyFor(b, chess.White)
		black += kingSafetyFor(b, chess.Black)
	}
	score := white - black
	if b.SideToMove == chess.Black {
		return -score
	}
	return score
}

func materialFor(b *chess.Board, c chess.Color) int {
	total := 0
	for pt := chess.Pawn; pt <= chess.King; pt++ {
		if pt == chess.King {
			continue
		}
		count := (b.PieceBB(pt) & b.ColorBB(c)).Popcount()
		total += count * chess.Value[pt]
	}
	return total
}

// pieceSquareTables holds a positional bonus per piece type and square,
// from White's perspective (Black mirrors the rank). Grounded on the
// teacher's PieceSquareTables; values condensed to the three piece types
// where placement matters most at this engine's depth.
var pieceSquareTables = map[chess.PieceType][64]int{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	chess.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

func pstFor(b *chess.Board, c chess.Color) int {
	total := 0
	for pt, table := range pieceSquareTables {
		pieces := b.PieceBB(pt) & b.ColorBB(c)
		for pieces != 0 {
			sq := chess.PopLSB(&pieces)
			idx := int(sq)
			if c == chess.White {
				idx = int(sq) ^ 56
			}
			total += table[idx]
		}
	}
	return total
}

// kingSafetyPenalty scores how threatening an enemy piece is when it sits
// adjacent to a king, grounded on the teacher's piecesAroundKingValues.
var kingSafetyPenalty = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Knight: 12,
	chess.Bishop: 12,
	chess.Rook:   16,
	chess.Queen:  88,
	chess.King:   4,
}

// kingSafetyFor penalizes c's king for enemy pieces occupying its
// immediate surroundings, a cheap proxy for attack potential.
func kingSafetyFor(b *chess.Board, c chess.Color) int {
	king := b.King(c)
	surrounding := chess.KingMoves(king)
	enemy := surrounding & b.ColorBB(c.Opp())

	score := 0
	for enemy != 0 {
		sq := chess.PopLSB(&enemy)
		score -= kingSafetyPenalty[b.PieceOn(sq)]
	}
	return score
}
