package chess

// MaxMoves bounds the legal move list capacity, per spec §4.4.
const MaxMoves = 256

// genState holds the per-call scratch computed once at the top of move
// generation and threaded through each piece-class emitter.
type genState struct {
	b          *Board
	us, them   Color
	occ        Bitboard
	usBB       Bitboard
	theirBB    Bitboard
	ksq        Square
	checkers   Bitboard
	nCheckers  int
	checkMask  Bitboard
	pinned     Bitboard
	pinRay     [64]Bitboard
	capturesOnly bool
}

// GenerateLegal returns every fully legal move for the side to move.
func GenerateLegal(b *Board) []Move {
	return generate(b, false)
}

// GenerateCaptures returns every fully legal capturing move for the side
// to move (en passant and capturing promotions included; non-capturing
// promotions are not), used by quiescence search.
func GenerateCaptures(b *Board) []Move {
	return generate(b, true)
}

func generate(b *Board, capturesOnly bool) []Move {
	moves := make([]Move, 0, MaxMoves)

	us, them := b.SideToMove, b.SideToMove.Opp()
	occ := b.Occupied()
	usBB := b.colorBB[us]
	theirBB := b.colorBB[them]
	ksq := b.King(us)

	occNoKing := occ ^ ksq.Bitboard()
	checkers := b.AttackersTo(ksq, them, occNoKing)
	nCheckers := checkers.Popcount()

	st := &genState{
		b: b, us: us, them: them,
		occ: occ, usBB: usBB, theirBB: theirBB, ksq: ksq,
		checkers: checkers, nCheckers: nCheckers,
		capturesOnly: capturesOnly,
	}
	st.computeCheckMask()
	st.computePins(occNoKing)

	st.genKingMoves(&moves)
	if nCheckers >= 2 {
		return moves
	}
	if nCheckers == 0 {
		st.genCastling(&moves)
	}
	st.genPawnMoves(&moves)
	st.genKnightMoves(&moves)
	st.genSliderMoves(Bishop, &moves)
	st.genSliderMoves(Rook, &moves)
	st.genSliderMoves(Queen, &moves)
	st.genEnPassant(&moves)
	return moves
}

func (st *genState) computeCheckMask() {
	switch st.nCheckers {
	case 0:
		st.checkMask = Full
	case 1:
		checkerSq := st.checkers.BitscanForward()
		mask := st.checkers
		pt := st.b.PieceOn(checkerSq)
		if pt == Bishop || pt == Rook || pt == Queen {
			mask |= LinesBetween(st.ksq, checkerSq)
		}
		st.checkMask = mask
	default:
		st.checkMask = 0
	}
}

// computePins finds absolutely pinned pieces via xray_attacks, per spec
// §4.4, and records each one's allowed destination mask (the squares
// between the king and the pinner, pinner square included so the pinner
// itself can be captured).
func (st *genState) computePins(occNoKing Bitboard) {
	b := st.b
	enemyBishops := st.theirBB & (b.pieceBB[Bishop] | b.pieceBB[Queen])
	enemyRooks := st.theirBB & (b.pieceBB[Rook] | b.pieceBB[Queen])

	pinnersB := XrayAttacks(Bishop, st.occ, st.usBB, st.ksq) & enemyBishops
	pinnersR := XrayAttacks(Rook, st.occ, st.usBB, st.ksq) & enemyRooks
	pinners := pinnersB | pinnersR

	for pinners != 0 {
		p := PopLSB(&pinners)
		between := LinesBetween(st.ksq, p) & st.usBB
		if between.Popcount() != 1 {
			continue
		}
		pinnedSq := between.BitscanForward()
		st.pinned |= pinnedSq.Bitboard()
		st.pinRay[pinnedSq] = LinesBetween(st.ksq, p) | p.Bitboard()
	}
	_ = occNoKing
}

// destMask returns the legal-destination filter for a piece standing on
// `from`: not-ours, inside the check mask, and (if pinned) along the pin
// ray.
func (st *genState) destMask(from Square) Bitboard {
	mask := ^st.usBB & st.checkMask
	if st.pinned&from.Bitboard() != 0 {
		mask &= st.pinRay[from]
	}
	return mask
}

func (st *genState) emitFromBB(from Square, targets Bitboard, moves *[]Move) {
	for targets != 0 {
		to := PopLSB(&targets)
		flag := FlagQuiet
		if st.theirBB&to.Bitboard() != 0 {
			flag = FlagCapture
		} else if st.capturesOnly {
			continue
		}
		*moves = append(*moves, NewMove(from, to, flag))
	}
}

func (st *genState) genKingMoves(moves *[]Move) {
	b := st.b
	targets := KingMoves(st.ksq) & ^st.usBB
	occNoKing := st.occ ^ st.ksq.Bitboard()
	for targets != 0 {
		to := PopLSB(&targets)
		if b.AttackersTo(to, st.them, occNoKing) != 0 {
			continue
		}
		flag := FlagQuiet
		if st.theirBB&to.Bitboard() != 0 {
			flag = FlagCapture
		} else if st.capturesOnly {
			continue
		}
		*moves = append(*moves, NewMove(st.ksq, to, flag))
	}
}

var castleClearSquares = [2][2]Bitboard{
	White: {Kingside: F1.Bitboard() | G1.Bitboard(), Queenside: B1.Bitboard() | C1.Bitboard() | D1.Bitboard()},
	Black: {Kingside: F8.Bitboard() | G8.Bitboard(), Queenside: B8.Bitboard() | C8.Bitboard() | D8.Bitboard()},
}

// castleSafeSquares are the squares the king must not be attacked on
// (start, transit, destination) for each side, excluding the start square
// which is already guaranteed empty of attacks (not in check, checked by
// caller).
var castleSafeSquares = [2][2][2]Square{
	White: {Kingside: {F1, G1}, Queenside: {D1, C1}},
	Black: {Kingside: {F8, G8}, Queenside: {D8, C8}},
}

func (st *genState) genCastling(moves *[]Move) {
	b := st.b
	us := st.us
	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if !b.CastleRights[us][side] {
			continue
		}
		if st.occ&castleClearSquares[us][side] != 0 {
			continue
		}
		safe := true
		for _, sq := range castleSafeSquares[us][side] {
			if b.AttackersTo(sq, st.them, st.occ) != 0 {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		kf, kt := castleKingSquares[us][side][0], castleKingSquares[us][side][1]
		flag := FlagCastleKingside
		if side == Queenside {
			flag = FlagCastleQueenside
		}
		*moves = append(*moves, NewMove(kf, kt, flag))
	}
}

func (st *genState) genKnightMoves(moves *[]Move) {
	b := st.b
	knights := b.pieceBB[Knight] & st.usBB
	for knights != 0 {
		from := PopLSB(&knights)
		st.emitFromBB(from, KnightMoves(from)&st.destMask(from), moves)
	}
}

func (st *genState) genSliderMoves(pt PieceType, moves *[]Move) {
	b := st.b
	pieces := b.pieceBB[pt] & st.usBB
	for pieces != 0 {
		from := PopLSB(&pieces)
		st.emitFromBB(from, SlidingAttacks(pt, from, st.occ)&st.destMask(from), moves)
	}
}

func forward(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func (st *genState) genPawnMoves(moves *[]Move) {
	b := st.b
	us := st.us
	pawns := b.pieceBB[Pawn] & st.usBB
	fwd := forward(us)
	startRank := 1
	if us == Black {
		startRank = 6
	}

	pushPawns := pawns
	for pushPawns != 0 {
		from := PopLSB(&pushPawns)
		one := Square(int(from) + fwd)
		if one < A1 || one > H8 || st.occ&one.Bitboard() != 0 {
			continue
		}
		allowed := st.checkMask
		if st.pinned&from.Bitboard() != 0 {
			allowed &= st.pinRay[from]
		}
		if allowed&one.Bitboard() != 0 {
			st.emitPawnQuiet(from, one, moves)
		}
		if from.Rank() == startRank {
			two := Square(int(one) + fwd)
			if st.occ&two.Bitboard() == 0 && allowed&two.Bitboard() != 0 {
				if !st.capturesOnly {
					*moves = append(*moves, NewMove(from, two, FlagDoublePawnPush))
				}
			}
		}
	}

	capPawns := pawns
	for capPawns != 0 {
		from := PopLSB(&capPawns)
		targets := PawnAttacks(us, from) & st.theirBB
		allowed := st.checkMask
		if st.pinned&from.Bitboard() != 0 {
			allowed &= st.pinRay[from]
		}
		targets &= allowed
		for targets != 0 {
			to := PopLSB(&targets)
			st.emitPawnCapture(from, to, moves)
		}
	}
}

func (st *genState) emitPawnQuiet(from, to Square, moves *[]Move) {
	if st.capturesOnly {
		return
	}
	if to.Rank() == promotionRank(st.us) {
		st.emitPromotions(from, to, FlagQuiet, moves)
		return
	}
	*moves = append(*moves, NewMove(from, to, FlagQuiet))
}

func (st *genState) emitPawnCapture(from, to Square, moves *[]Move) {
	if to.Rank() == promotionRank(st.us) {
		st.emitPromotions(from, to, FlagCapture, moves)
		return
	}
	*moves = append(*moves, NewMove(from, to, FlagCapture))
}

func (st *genState) emitPromotions(from, to Square, kind MoveFlag, moves *[]Move) {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		quiet, capture := promotionFlags(pt)
		if kind == FlagCapture {
			*moves = append(*moves, NewMove(from, to, capture))
		} else {
			*moves = append(*moves, NewMove(from, to, quiet))
		}
	}
}

// genEnPassant handles the one unusual legality check in the generator: an
// en-passant capture may expose the king to a horizontal discovered check
// once both the capturing and captured pawns vanish from the fourth/fifth
// rank (spec §4.4 point 6).
func (st *genState) genEnPassant(moves *[]Move) {
	b := st.b
	if b.EPSquare == NoSquare {
		return
	}
	us, them := st.us, st.them
	to := b.EPSquare
	capSq := to + 8
	if us == White {
		capSq = to - 8
	}

	candidates := PawnAttacks(them, to) & b.pieceBB[Pawn] & st.usBB
	for candidates != 0 {
		from := PopLSB(&candidates)
		if st.pinned&from.Bitboard() != 0 && st.pinRay[from]&to.Bitboard() == 0 {
			continue
		}
		if st.nCheckers == 1 {
			inMask := st.checkMask&to.Bitboard() != 0 || st.checkMask&capSq.Bitboard() != 0
			if !inMask {
				continue
			}
		}
		occAfter := st.occ
		occAfter &^= from.Bitboard()
		occAfter &^= capSq.Bitboard()
		occAfter |= to.Bitboard()
		if b.AttackersTo(st.ksq, them, occAfter) != 0 {
			continue
		}
		*moves = append(*moves, NewMove(from, to, FlagEnPassant))
	}
}

// perftNodes counts leaf nodes of the legal move tree to the given depth
// without memoization. Nothing in the package calls it; Perft goes through
// PerftWithTable instead.
func perftNodes(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += perftNodes(b, depth-1)
		b.UnmakeMove(m)
	}
	return nodes
}
