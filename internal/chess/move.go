package chess

import "fmt"

// MoveFlag classifies a Move into one of the disjoint move kinds named in
// spec §3. The high bit of the flag nibble indicates promotion; bit 2
// indicates capture (with en passant as the stated exception).
type MoveFlag uint16

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePawnPush
	FlagCastleKingside
	FlagCastleQueenside
	FlagCapture
	FlagEnPassant
	_ // reserved
	_ // reserved
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoKnightCapture
	FlagPromoBishopCapture
	FlagPromoRookCapture
	FlagPromoQueenCapture
)

// Move is a 16-bit packed value: (flag<<12) | (from<<6) | to.
type Move uint16

const (
	moveToMask   = 0x003F
	moveFromMask = 0x0FC0
	moveFlagMask = 0xF000
)

// NoMove is the zero value, never produced by the generator.
const NoMove Move = 0

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(flag)<<12 | uint16(from)<<6 | uint16(to))
}

// From returns the origin square.
func (m Move) From() Square { return Square((uint16(m) & moveFromMask) >> 6) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint16(m) & moveToMask) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag((uint16(m) & moveFlagMask) >> 12) }

// IsCapture reports whether the move captures a piece (en passant included).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant ||
		f == FlagPromoKnightCapture || f == FlagPromoBishopCapture ||
		f == FlagPromoRookCapture || f == FlagPromoQueenCapture
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag()&0x8 != 0 }

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool { return m.Flag() == FlagDoublePawnPush }

// PromotionPiece returns the piece type a promotion move becomes. Only
// valid when IsPromotion() is true.
func (m Move) PromotionPiece() PieceType {
	switch m.Flag() {
	case FlagPromoKnight, FlagPromoKnightCapture:
		return Knight
	case FlagPromoBishop, FlagPromoBishopCapture:
		return Bishop
	case FlagPromoRook, FlagPromoRookCapture:
		return Rook
	case FlagPromoQueen, FlagPromoQueenCapture:
		return Queen
	}
	return None
}

var promoLetters = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// UCI renders the move in UCI coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%c", m.From(), m.To(), promoLetters[m.PromotionPiece()])
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

func (m Move) String() string { return m.UCI() }

// promotionFlags returns the (quiet, capture) promotion flag pair for pt.
func promotionFlags(pt PieceType) (quiet, capture MoveFlag) {
	switch pt {
	case Knight:
		return FlagPromoKnight, FlagPromoKnightCapture
	case Bishop:
		return FlagPromoBishop, FlagPromoBishopCapture
	case Rook:
		return FlagPromoRook, FlagPromoRookCapture
	case Queen:
		return FlagPromoQueen, FlagPromoQueenCapture
	}
	return FlagQuiet, FlagCapture
}
