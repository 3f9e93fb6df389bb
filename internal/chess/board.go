package chess

import (
	"fmt"
	"strings"

	"github.com/clinaresl/table"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("chess")

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// KiwipeteFEN is a tricky position commonly used to stress-test move
// generators (castling, en passant, and pins all interact).
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// undoState holds the irreversible per-ply information needed to unmake a
// move (spec §3 "history").
type undoState struct {
	castleRights  [2][2]bool
	epSquare      Square
	captured      PieceType
	capturedColor Color
	halfmoveClock int
	hash          uint64
}

// Board is the mutable bitboard/mailbox board representation (spec §3).
type Board struct {
	pieceBB [6]Bitboard
	colorBB [2]Bitboard
	mailbox [64]PieceType

	SideToMove    Color
	CastleRights  [2][2]bool // [Color][CastleSide]
	EPSquare      Square
	HalfmoveClock int
	FullmoveNumber int
	Hash          uint64

	history []undoState
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	if err := b.SetFEN(StartFEN); err != nil {
		panic("chess: invalid built-in start FEN: " + err.Error())
	}
	return b
}

// PieceBB returns the color-agnostic bitboard for a piece type.
func (b *Board) PieceBB(pt PieceType) Bitboard { return b.pieceBB[pt] }

// ColorBB returns the bitboard of all pieces of a color.
func (b *Board) ColorBB(c Color) Bitboard { return b.colorBB[c] }

// Occupied returns the union of both colors' pieces.
func (b *Board) Occupied() Bitboard { return b.colorBB[White] | b.colorBB[Black] }

// PieceOn returns the piece type on sq, or None if empty.
func (b *Board) PieceOn(sq Square) PieceType { return b.mailbox[sq] }

// ColorOn returns the color of the piece on sq. Only meaningful when
// PieceOn(sq) != None.
func (b *Board) ColorOn(sq Square) Color {
	if b.colorBB[White]&sq.Bitboard() != 0 {
		return White
	}
	return Black
}

// King returns the square of the given color's king.
func (b *Board) King(c Color) Square {
	return (b.pieceBB[King] & b.colorBB[c]).BitscanForward()
}

// clearSquare removes whatever piece (if any) sits on sq from all bitboards
// and the mailbox, without touching the hash.
func (b *Board) clearSquare(sq Square) {
	pt := b.mailbox[sq]
	if pt == None {
		return
	}
	c := b.ColorOn(sq)
	bit := sq.Bitboard()
	b.pieceBB[pt] &^= bit
	b.colorBB[c] &^= bit
	b.mailbox[sq] = None
}

// setSquare places piece pt of color c on sq, without touching the hash.
func (b *Board) setSquare(sq Square, pt PieceType, c Color) {
	bit := sq.Bitboard()
	b.pieceBB[pt] |= bit
	b.colorBB[c] |= bit
	b.mailbox[sq] = pt
}

// movePiece relocates a piece from `from` to `to` (assumed empty), updating
// the incremental Zobrist hash. `to` must already be clear.
func (b *Board) movePiece(from, to Square) {
	pt := b.mailbox[from]
	c := b.ColorOn(from)
	b.Hash ^= pieceHash(c, pt, from)
	b.clearSquare(from)
	b.setSquare(to, pt, c)
	b.Hash ^= pieceHash(c, pt, to)
}

// MakeMove mutates the board to reflect playing m, pushing irreversible
// state onto the history stack (spec §4.3).
func (b *Board) MakeMove(m Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	moved := b.mailbox[from]
	if moved == None {
		panic("chess: MakeMove on empty square")
	}
	us := b.SideToMove

	st := undoState{
		castleRights:  b.CastleRights,
		epSquare:      b.EPSquare,
		captured:      None,
		halfmoveClock: b.HalfmoveClock,
		hash:          b.Hash,
	}

	b.removeEPHashTerm()

	switch flag {
	case FlagCastleKingside, FlagCastleQueenside:
		side := Kingside
		if flag == FlagCastleQueenside {
			side = Queenside
		}
		kf, kt := castleKingSquares[us][side][0], castleKingSquares[us][side][1]
		rf, rt := castleRookSquares[us][side][0], castleRookSquares[us][side][1]
		b.movePiece(kf, kt)
		b.movePiece(rf, rt)
	case FlagEnPassant:
		capSq := to + 8
		if us == White {
			capSq = to - 8
		}
		st.captured = Pawn
		st.capturedColor = us.Opp()
		b.Hash ^= pieceHash(us.Opp(), Pawn, capSq)
		b.clearSquare(capSq)
		b.movePiece(from, to)
	default:
		if flag == FlagCapture || m.IsPromotion() && m.IsCapture() {
			capPt := b.mailbox[to]
			capColor := b.ColorOn(to)
			st.captured = capPt
			st.capturedColor = capColor
			b.Hash ^= pieceHash(capColor, capPt, to)
			b.clearSquare(to)
		}
		b.movePiece(from, to)
		if m.IsPromotion() {
			promo := m.PromotionPiece()
			b.Hash ^= pieceHash(us, Pawn, to)
			b.clearSquare(to)
			b.setSquare(to, promo, us)
			b.Hash ^= pieceHash(us, promo, to)
		}
	}

	b.updateCastleRightsAfterMove(from, to)
	b.clearCastleHashDiff(st.castleRights)

	b.EPSquare = NoSquare
	if flag == FlagDoublePawnPush {
		if us == White {
			b.EPSquare = from + 8
		} else {
			b.EPSquare = from - 8
		}
	}

	if moved == Pawn || st.captured != None {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if us == Black {
		b.FullmoveNumber++
	}

	b.SideToMove = us.Opp()
	b.Hash ^= sideToMoveHash()
	b.addEPHashTerm()

	b.history = append(b.history, st)
}

// UnmakeMove reverses the most recent MakeMove call. Precondition: the
// history stack is non-empty and m is the move that produced its top.
func (b *Board) UnmakeMove(m Move) {
	n := len(b.history)
	if n == 0 {
		panic("chess: UnmakeMove with empty history")
	}
	st := b.history[n-1]
	b.history = b.history[:n-1]

	b.SideToMove = b.SideToMove.Opp()
	us := b.SideToMove
	from, to, flag := m.From(), m.To(), m.Flag()

	switch flag {
	case FlagCastleKingside, FlagCastleQueenside:
		side := Kingside
		if flag == FlagCastleQueenside {
			side = Queenside
		}
		kf, kt := castleKingSquares[us][side][0], castleKingSquares[us][side][1]
		rf, rt := castleRookSquares[us][side][0], castleRookSquares[us][side][1]
		b.relocateQuiet(kt, kf)
		b.relocateQuiet(rt, rf)
	case FlagEnPassant:
		capSq := to + 8
		if us == White {
			capSq = to - 8
		}
		b.relocateQuiet(to, from)
		b.setSquare(capSq, Pawn, st.capturedColor)
	default:
		if m.IsPromotion() {
			b.clearSquare(to)
			b.setSquare(from, Pawn, us)
		} else {
			b.relocateQuiet(to, from)
		}
		if st.captured != None {
			b.setSquare(to, st.captured, st.capturedColor)
		}
	}

	b.CastleRights = st.castleRights
	b.EPSquare = st.epSquare
	b.HalfmoveClock = st.halfmoveClock
	if us == Black {
		b.FullmoveNumber--
	}
	b.Hash = st.hash
}

// relocateQuiet moves whatever sits on `from` to `to` (assumed empty),
// without any hash bookkeeping (used during UnmakeMove, where the hash is
// restored wholesale from the history record instead).
func (b *Board) relocateQuiet(from, to Square) {
	pt := b.mailbox[from]
	c := b.ColorOn(from)
	b.clearSquare(from)
	b.setSquare(to, pt, c)
}

// castle square tables: castleKingSquares[color][side] = {from, to} for the
// king; castleRookSquares[color][side] = {from, to} for the rook.
var castleKingSquares = [2][2][2]Square{
	White: {Kingside: {E1, G1}, Queenside: {E1, C1}},
	Black: {Kingside: {E8, G8}, Queenside: {E8, C8}},
}
var castleRookSquares = [2][2][2]Square{
	White: {Kingside: {H1, F1}, Queenside: {A1, D1}},
	Black: {Kingside: {H8, F8}, Queenside: {A8, D8}},
}

// updateCastleRightsAfterMove clears rights made stale by a king or rook
// leaving (or a rook being captured on) its home square.
func (b *Board) updateCastleRightsAfterMove(from, to Square) {
	clearIfHome := func(sq Square, c Color, side CastleSide, home Square) {
		if sq == home {
			b.CastleRights[c][side] = false
		}
	}
	if from == E1 || to == E1 {
		if b.mailbox[E1] != King {
			b.CastleRights[White][Kingside] = false
			b.CastleRights[White][Queenside] = false
		}
	}
	if from == E8 || to == E8 {
		if b.mailbox[E8] != King {
			b.CastleRights[Black][Kingside] = false
			b.CastleRights[Black][Queenside] = false
		}
	}
	clearIfHome(from, White, Kingside, H1)
	clearIfHome(to, White, Kingside, H1)
	clearIfHome(from, White, Queenside, A1)
	clearIfHome(to, White, Queenside, A1)
	clearIfHome(from, Black, Kingside, H8)
	clearIfHome(to, Black, Kingside, H8)
	clearIfHome(from, Black, Queenside, A8)
	clearIfHome(to, Black, Queenside, A8)
}

// clearCastleHashDiff XORs out the hash terms for any right present in
// `before` but no longer present in b.CastleRights.
func (b *Board) clearCastleHashDiff(before [2][2]bool) {
	for c := White; c <= Black; c++ {
		for s := Kingside; s <= Queenside; s++ {
			if before[c][s] && !b.CastleRights[c][s] {
				b.Hash ^= castleHash(c, s)
			}
		}
	}
}

func (b *Board) removeEPHashTerm() {
	if b.EPSquare != NoSquare && b.epCaptureIsPossible() {
		b.Hash ^= epFileHash(b.EPSquare)
	}
}

func (b *Board) addEPHashTerm() {
	if b.EPSquare != NoSquare && b.epCaptureIsPossible() {
		b.Hash ^= epFileHash(b.EPSquare)
	}
}

// epCaptureIsPossible reports whether an enemy pawn actually sits adjacent
// to the double-pushed pawn and could capture en passant, per spec §4.8.
func (b *Board) epCaptureIsPossible() bool {
	capturer := b.SideToMove
	pushed := b.EPSquare - 8
	if capturer == Black {
		pushed = b.EPSquare + 8
	}
	rank, file := pushed.Rank(), pushed.File()
	capturerPawns := b.pieceBB[Pawn] & b.colorBB[capturer]
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		sq := Square(rank*8 + f)
		if capturerPawns&sq.Bitboard() != 0 {
			return true
		}
	}
	return false
}

// SetFEN resets the board to the position described by fen.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("chess: malformed FEN %q: need at least 4 fields", fen)
	}

	b.pieceBB = [6]Bitboard{}
	b.colorBB = [2]Bitboard{}
	b.mailbox = [64]PieceType{}
	for i := range b.mailbox {
		b.mailbox[i] = None
	}
	b.CastleRights = [2][2]bool{}
	b.history = b.history[:0]
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1

	sq := A8
	for _, r := range fields[0] {
		switch {
		case r == '/':
			sq -= 16
		case r >= '1' && r <= '8':
			sq += Square(r - '0')
		default:
			pt, c, err := pieceFromLetter(byte(r))
			if err != nil {
				return err
			}
			b.setSquare(sq, pt, c)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return fmt.Errorf("chess: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				b.CastleRights[White][Kingside] = true
			case 'Q':
				b.CastleRights[White][Queenside] = true
			case 'k':
				b.CastleRights[Black][Kingside] = true
			case 'q':
				b.CastleRights[Black][Queenside] = true
			}
		}
	}

	epSq, err := SquareFromCoords(fields[3])
	if err != nil {
		return fmt.Errorf("chess: malformed FEN %q: %w", fen, err)
	}
	b.EPSquare = epSq

	if len(fields) >= 6 {
		fmt.Sscanf(fields[4], "%d", &b.HalfmoveClock)
		fmt.Sscanf(fields[5], "%d", &b.FullmoveNumber)
	}

	b.Hash = computeZobrist(b)
	return nil
}

func pieceFromLetter(r byte) (PieceType, Color, error) {
	c := White
	lower := r
	if r >= 'a' && r <= 'z' {
		c = Black
	} else {
		lower = r - 'A' + 'a'
	}
	switch lower {
	case 'p':
		return Pawn, c, nil
	case 'n':
		return Knight, c, nil
	case 'b':
		return Bishop, c, nil
	case 'r':
		return Rook, c, nil
	case 'q':
		return Queen, c, nil
	case 'k':
		return King, c, nil
	}
	return None, c, fmt.Errorf("chess: bad piece letter %q", string(r))
}

// FEN renders the current position back into FEN notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pt := b.mailbox[sq]
			if pt == None {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			letter := pieceLetters[pt]
			if b.ColorOn(sq) == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if b.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	rights := ""
	if b.CastleRights[White][Kingside] {
		rights += "K"
	}
	if b.CastleRights[White][Queenside] {
		rights += "Q"
	}
	if b.CastleRights[Black][Kingside] {
		rights += "k"
	}
	if b.CastleRights[Black][Queenside] {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	fmt.Fprintf(&sb, " %v %d %d", b.EPSquare, b.HalfmoveClock, b.FullmoveNumber)
	return sb.String()
}

var pieceGlyphs = map[PieceType][2]rune{
	Pawn:   {'P', 'p'},
	Knight: {'N', 'n'},
	Bishop: {'B', 'b'},
	Rook:   {'R', 'r'},
	Queen:  {'Q', 'q'},
	King:   {'K', 'k'},
}

// String renders the board as a bordered Unicode table alongside its
// side-to-move, castling rights, en passant square, and hash.
func (b *Board) String() string {
	tab, err := table.NewTable("||cccccccc||")
	if err != nil {
		return b.FEN()
	}
	tab.AddDoubleRule()
	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pt := b.mailbox[sq]
			if pt == None {
				row[file] = "."
				continue
			}
			glyph := pieceGlyphs[pt]
			if b.ColorOn(sq) == White {
				row[file] = string(glyph[0])
			} else {
				row[file] = string(glyph[1])
			}
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%v\n", tab)
	fmt.Fprintf(&sb, "side to move: %v\n", b.SideToMove)
	fmt.Fprintf(&sb, "en passant: %v\n", b.EPSquare)
	fmt.Fprintf(&sb, "castling: %v\n", castleRightsString(b.CastleRights))
	fmt.Fprintf(&sb, "halfmove clock: %d  fullmove: %d\n", b.HalfmoveClock, b.FullmoveNumber)
	fmt.Fprintf(&sb, "hash: 0x%016x\n", b.Hash)
	return sb.String()
}

func castleRightsString(cr [2][2]bool) string {
	s := ""
	if cr[White][Kingside] {
		s += "K"
	}
	if cr[White][Queenside] {
		s += "Q"
	}
	if cr[Black][Kingside] {
		s += "k"
	}
	if cr[Black][Queenside] {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// InCheck reports whether the side to move's king is currently attacked.
func (b *Board) InCheck() bool {
	us := b.SideToMove
	return b.IsAttacked(b.King(us), us.Opp())
}

// IsAttacked reports whether sq is attacked by any piece of color by, given
// the board's actual occupancy.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.AttackersTo(sq, by, b.Occupied()) != 0
}

// AttackersTo returns a bitboard of every piece of color `by` that attacks
// sq, using the supplied occupancy (callers computing king-safety pass an
// occupancy with the king removed, per spec §4.4).
func (b *Board) AttackersTo(sq Square, by Color, occ Bitboard) Bitboard {
	enemy := b.colorBB[by]
	var attackers Bitboard
	attackers |= KnightMoves(sq) & enemy & b.pieceBB[Knight]
	attackers |= KingMoves(sq) & enemy & b.pieceBB[King]
	attackers |= PawnAttacks(by.Opp(), sq) & enemy & b.pieceBB[Pawn]
	attackers |= SlidingAttacks(Bishop, sq, occ) & enemy & (b.pieceBB[Bishop] | b.pieceBB[Queen])
	attackers |= SlidingAttacks(Rook, sq, occ) & enemy & (b.pieceBB[Rook] | b.pieceBB[Queen])
	return attackers
}
