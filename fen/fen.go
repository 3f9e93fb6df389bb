// Package fen converts between Forsyth-Edwards Notation strings and board
// positions. It is the engine's sole boundary with the outside world for
// describing a position; the search core never parses FEN itself.
package fen

import "chessengine/internal/chess"

// StartPosition is the standard initial position, re-exported from chess
// so callers of this package need not import chess solely for the
// constant.
const StartPosition = chess.StartFEN

// Parse decodes a FEN string into a fresh Board.
func Parse(s string) (*chess.Board, error) {
	b := &chess.Board{}
	if err := b.SetFEN(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Encode renders b back into FEN notation.
func Encode(b *chess.Board) string {
	return b.FEN()
}
