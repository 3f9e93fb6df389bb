// Package chess implements the bitboard board representation, legal move
// generator, and Polyglot-compatible Zobrist hashing for the engine core.
package chess

import "fmt"

// Square is a board index in [0, 63]. A1 = 0, H1 = 7, A8 = 56, H8 = 63
// (little-endian rank-file mapping).
type Square int8

// NoSquare is the sentinel used for "no en passant target".
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Rank returns the 0-indexed rank of the square (0 = rank 1).
func (s Square) Rank() int { return int(s) / 8 }

// File returns the 0-indexed file of the square (0 = file A).
func (s Square) File() int { return int(s) % 8 }

// Bitboard returns the single-bit bitboard for this square.
func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// SquareFromCoords parses algebraic notation such as "e4" into a Square.
func SquareFromCoords(coord string) (Square, error) {
	if coord == "-" {
		return NoSquare, nil
	}
	if len(coord) != 2 {
		return NoSquare, fmt.Errorf("chess: bad square coordinate %q", coord)
	}
	file := coord[0] - 'a'
	rank := coord[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: bad square coordinate %q", coord)
	}
	return Square(int(rank)*8 + int(file)), nil
}

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Opp returns the opposing color.
func (c Color) Opp() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType enumerates piece kinds. None is used only in the mailbox for
// empty squares, never as a bitboard index.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	None
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// pieceLetters maps a piece type to its uppercase (White) FEN letter.
var pieceLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Value holds the classical material value of each piece type, in
// centipawns, per spec §4.5/§4.6.
var Value = [6]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Direction is one of the eight compass rays, used for sliding attacks,
// pin detection, and the between-squares table.
type Direction int8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NoDirection
)

// Castling side.
type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)
