package engine

import "chessengine/internal/chess"

const (
	firstKillerBonus  = 150
	secondKillerBonus = 100
)

// killerMoves records, per ply, the up-to-two quiet moves that most
// recently caused a beta cutoff at that depth (grounded on the teacher's
// Searcher.killerMoves).
type killerMoves [maxPly][2]chess.Move

// history accumulates a depth^2 bonus for quiet moves that caused a beta
// cutoff anywhere in the tree, grounded on the teacher's
// Searcher.searchHistory.
type history [64][64]int

// orderMoves sorts moves in place, most-promising first, using MVV-LVA for
// captures, a flat bonus for promotions, and killer/history heuristics for
// quiet moves.
func orderMoves(b *chess.Board, moves []chess.Move, km *killerMoves, h *history, ply, depth int) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(b, m, km, h, ply, depth)
	}
	sortMovesByScore(moves, scores)
}

// scoreMove implements spec §4.5's move-ordering formula exactly: MVV-LVA
// for captures (10 * value[captured] - value[mover]), a flat queen-value
// bonus for any promotion regardless of the piece chosen, a recapture
// penalty when the destination square is defended by an opponent pawn, and
// killer/history heuristics for everything else.
func scoreMove(b *chess.Board, m chess.Move, km *killerMoves, h *history, ply, depth int) int {
	mover := b.PieceOn(m.From())
	var score int
	switch {
	case m.IsCapture():
		victim := chess.Pawn
		if !m.IsEnPassant() {
			victim = b.PieceOn(m.To())
		}
		score = 10*chess.Value[victim] - chess.Value[mover]
	case m.IsPromotion():
		score = chess.Value[chess.Queen]
	case ply < maxPly && km[ply][0] == m:
		score = firstKillerBonus
	case ply < maxPly && km[ply][1] == m:
		score = secondKillerBonus
	default:
		score = h[m.From()][m.To()]
	}
	if m.IsPromotion() && m.IsCapture() {
		score += chess.Value[chess.Queen]
	}
	if isPawnAttacked(b, m.To()) {
		score -= chess.Value[mover]
	}
	return score
}

// isPawnAttacked reports whether sq is attacked by one of the opponent's
// pawns in b's current position (spec §4.5's recapture penalty). A white
// pawn's attack squares from sq coincide with the squares a black pawn
// would stand on to attack sq, and vice versa, so the opponent's pawn
// attackers of sq are found by looking up PawnAttacks from the mover's own
// side and intersecting with the opponent's pawns.
func isPawnAttacked(b *chess.Board, sq chess.Square) bool {
	them := b.SideToMove.Opp()
	attackers := chess.PawnAttacks(b.SideToMove, sq) & b.PieceBB(chess.Pawn) & b.ColorBB(them)
	return attackers != 0
}

// recordCutoff stores a killer/history bonus for the quiet move that just
// caused a beta cutoff at ply/depth.
func recordCutoff(m chess.Move, km *killerMoves, h *history, ply, depth int) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	if ply < maxPly {
		if km[ply][0] != m {
			km[ply][1] = km[ply][0]
			km[ply][0] = m
		}
	}
	h[m.From()][m.To()] += depth * depth
}

// sortMovesByScore is an insertion sort, grounded on the teacher's
// sortMoves: move lists at any one node are short enough (rarely over 40)
// that insertion sort beats the constant overhead of sort.Slice.
func sortMovesByScore(moves []chess.Move, scores []int) {
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}
