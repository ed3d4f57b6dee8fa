package chess

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Game bundles a Board, whose turn it is, and the move history needed to
// undo.
type Game struct {
	id      string
	board   *Board
	side    Side
	history []Move
	log     zerolog.Logger
}

// NewGame returns a Game on a standard 8x8 starting position with Bottom
// to move.
func NewGame() *Game {
	return NewGameFromBoard(NewStandardBoard(), Bottom)
}

// NewGameFromBoard returns a Game seeded from an arbitrary board and side
// to move, for custom-size scenarios.
func NewGameFromBoard(b *Board, side Side) *Game {
	id := uuid.NewString()
	g := &Game{id: id, board: b, side: side, log: gameLogger(id)}
	g.log.Info().Int("height", b.height).Int("width", b.width).Str("side", side.String()).Msg("game created")
	return g
}

// ID is an opaque log-correlation handle with no gameplay semantics.
func (g *Game) ID() string {
	return g.id
}

// Dimensions returns the board's (height, width).
func (g *Game) Dimensions() (int, int) {
	return g.board.Dimensions()
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() Side {
	return g.side
}

// PieceAt delegates to the board with the same bounds contract.
func (g *Game) PieceAt(r, c int) (*Piece, error) {
	return g.board.Get(r, c)
}

// History returns the moves made so far, earliest first. The returned
// slice is a defensive copy.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// BoardCopy returns an independent snapshot of the current board, for the
// search engine to mutate freely.
func (g *Game) BoardCopy() *Board {
	return g.board.Copy()
}

// LegalTargetsFrom returns the distinct destination positions reachable by
// a legal move of the side to move from (r, c). It fails with
// *ErrOutOfBounds on an invalid index; otherwise it is empty if the square
// is empty, owned by the opponent, or has no legal moves.
func (g *Game) LegalTargetsFrom(r, c int) ([]Position, error) {
	if _, err := g.board.Get(r, c); err != nil {
		return nil, err
	}
	src := Position{Row: r, Col: c}
	seen := make(map[Position]bool)
	var out []Position
	for _, m := range g.board.LegalMovesFrom(g.side, src) {
		if !seen[m.Dst] {
			seen[m.Dst] = true
			out = append(out, m.Dst)
		}
	}
	return out, nil
}

// IsGameOver reports whether the side to move has no legal moves.
func (g *Game) IsGameOver() bool {
	return len(g.board.LegalMoves(g.side)) == 0
}

// MakeMove applies the legal move of the side to move matching (sr,sc) ->
// (dr,dc), if one exists, and flips the side to move. It fails with
// *ErrInvalidMove otherwise.
func (g *Game) MakeMove(sr, sc, dr, dc int) error {
	src := Position{Row: sr, Col: sc}
	dst := Position{Row: dr, Col: dc}

	piece, err := g.board.Get(sr, sc)
	if err != nil {
		g.log.Debug().Stringer("src", src).Msg("rejected move: source square out of bounds")
		return &ErrInvalidMove{Src: src, Dst: dst, Reason: "source square is out of bounds"}
	}
	if piece == nil {
		g.log.Debug().Stringer("src", src).Msg("rejected move: empty source square")
		return &ErrInvalidMove{Src: src, Dst: dst, Reason: "source square is empty"}
	}
	if piece.Owner != g.side {
		g.log.Debug().Stringer("src", src).Msg("rejected move: piece does not belong to side to move")
		return &ErrInvalidMove{Src: src, Dst: dst, Reason: "piece does not belong to side to move"}
	}

	for _, m := range g.board.LegalMovesFrom(g.side, src) {
		if m.Dst != dst {
			continue
		}
		mv := m
		if err := mv.Apply(g.board); err != nil {
			return err
		}
		g.history = append(g.history, mv)
		g.side = g.side.Opponent()
		g.log.Debug().Stringer("src", src).Stringer("dst", dst).Str("tag", mv.Tag.String()).Msg("move applied")
		return nil
	}

	g.log.Debug().Stringer("src", src).Stringer("dst", dst).Msg("rejected move: no legal move matches")
	return &ErrInvalidMove{Src: src, Dst: dst, Reason: "no legal move matches source and destination"}
}

// UndoLastMove reverses the most recent move and flips the side to move
// back. It fails with *ErrInvalidUndo if the history is empty.
func (g *Game) UndoLastMove() error {
	if len(g.history) == 0 {
		g.log.Debug().Msg("rejected undo: history is empty")
		return &ErrInvalidUndo{}
	}
	last := g.history[len(g.history)-1]
	if err := last.Undo(g.board); err != nil {
		return err
	}
	g.history = g.history[:len(g.history)-1]
	g.side = g.side.Opponent()
	g.log.Debug().Msg("move undone")
	return nil
}

// Restart resets the game to a standard 8x8 starting position.
func (g *Game) Restart() {
	g.board = NewStandardBoard()
	g.side = Bottom
	g.history = nil
	g.log.Info().Msg("game restarted")
}
