package chess

// Pseudo-legal move generation: geometry and blocking rules only, no king
// safety. Each piece kind's moves come from a direction-vector loop over
// its legal step/slide pattern, bounded by board edges and blocking
// pieces.

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenDirs = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var knightHops = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
var kingSteps = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece at pos,
// including castling candidates for a king. It fails with *ErrOutOfBounds
// if pos is outside b, and returns nil if the square is empty.
func (b *Board) PseudoLegalMovesFrom(pos Position) ([]Move, error) {
	p, err := b.GetAt(pos)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	switch p.Kind {
	case Pawn:
		return b.pawnMoves(pos, *p), nil
	case Knight:
		return b.leaperMoves(pos, *p, knightHops[:]), nil
	case Bishop:
		return b.sliderMoves(pos, *p, bishopDirs[:]), nil
	case Rook:
		return b.sliderMoves(pos, *p, rookDirs[:]), nil
	case Queen:
		return b.sliderMoves(pos, *p, queenDirs[:]), nil
	case King:
		moves := b.leaperMoves(pos, *p, kingSteps[:])
		moves = append(moves, b.castlingMoves(pos, *p)...)
		return moves, nil
	default:
		return nil, nil
	}
}

// AllPseudoLegalMoves returns the union of pseudo-legal moves over every
// piece owned by side.
func (b *Board) AllPseudoLegalMoves(side Side) []Move {
	var moves []Move
	b.forEachPiece(func(pos Position, p *Piece) {
		if p.Owner != side {
			return
		}
		ms, _ := b.PseudoLegalMovesFrom(pos)
		moves = append(moves, ms...)
	})
	return moves
}

func (b *Board) sliderMoves(from Position, p Piece, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		cur := from
		for {
			cur = cur.add(d[0], d[1])
			target, err := b.GetAt(cur)
			if err != nil {
				break // off the edge of the board
			}
			if target == nil {
				moves = append(moves, NewRegularMove(from, cur))
				continue
			}
			if target.Owner != p.Owner {
				moves = append(moves, NewRegularMove(from, cur))
			}
			break
		}
	}
	return moves
}

func (b *Board) leaperMoves(from Position, p Piece, hops [][2]int) []Move {
	var moves []Move
	for _, d := range hops {
		to := from.add(d[0], d[1])
		target, err := b.GetAt(to)
		if err != nil {
			continue
		}
		if target == nil || target.Owner != p.Owner {
			moves = append(moves, NewRegularMove(from, to))
		}
	}
	return moves
}

func (b *Board) pawnForwardDir(side Side) int {
	if side == Top {
		return -1
	}
	return 1
}

func (b *Board) promotionRow(side Side) int {
	if side == Top {
		return 0
	}
	return b.height - 1
}

func (b *Board) pawnMoves(from Position, p Piece) []Move {
	var moves []Move
	dir := b.pawnForwardDir(p.Owner)
	promoRow := b.promotionRow(p.Owner)

	emit := func(to Position) {
		if to.Row == promoRow {
			moves = append(moves, NewPromotionMove(from, to))
		} else {
			moves = append(moves, NewRegularMove(from, to))
		}
	}

	oneAhead := from.add(dir, 0)
	if sq, err := b.GetAt(oneAhead); err == nil && sq == nil {
		emit(oneAhead)
		if !p.HasMoved {
			twoAhead := from.add(2*dir, 0)
			if sq2, err2 := b.GetAt(twoAhead); err2 == nil && sq2 == nil {
				emit(twoAhead)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := from.add(dir, dc)
		sq, err := b.GetAt(target)
		if err != nil || sq == nil {
			continue
		}
		if sq.Owner != p.Owner {
			emit(target)
		}
	}
	return moves
}

// castlingMoves emits castling candidates for the king at `from`. A
// candidate requires: the king unmoved, a same-row rook of the same owner
// unmoved with only empty squares between them, and the king's current,
// traversed, and destination squares unattacked by the opponent.
//
// The king moves 2 squares toward the rook when at least 2 squares
// separate them, or 1 square (landing adjacent to the rook, which then
// swaps to the king's vacated square) when only a single square separates
// them -- the generalization needed once boards are narrower than 8 files.
func (b *Board) castlingMoves(from Position, king Piece) []Move {
	if king.HasMoved {
		return nil
	}
	var moves []Move
	for _, dir := range [2]int{1, -1} {
		rookPos, ok := b.firstPieceBeyond(from, dir)
		if !ok {
			continue
		}
		rook, _ := b.GetAt(rookPos)
		if rook == nil || rook.Kind != Rook || rook.Owner != king.Owner || rook.HasMoved {
			continue
		}
		gap := abs(rookPos.Col-from.Col) - 1
		if gap < 1 {
			continue
		}
		steps := 2
		if gap < 2 {
			steps = 1
		}
		kingDst := from.add(0, dir*steps)
		rookDst := kingDst.add(0, -dir)

		if b.attackedBy(from, king.Owner.Opponent()) {
			continue
		}
		blocked := false
		for step := 1; step <= steps; step++ {
			sq := from.add(0, dir*step)
			if b.attackedBy(sq, king.Owner.Opponent()) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		moves = append(moves, NewCastlingMove(from, kingDst, rookPos, rookDst))
	}
	return moves
}

// firstPieceBeyond scans from `from` in direction dir along its row and
// returns the position of the first non-empty square and true, or false if
// the scan reaches the board edge without meeting a piece. Every square
// strictly between from and a returned square is empty, since scanning
// stops at the first occupant.
func (b *Board) firstPieceBeyond(from Position, dir int) (Position, bool) {
	cur := from
	for {
		cur = cur.add(0, dir)
		p, err := b.GetAt(cur)
		if err != nil {
			return Position{}, false
		}
		if p != nil {
			return cur, true
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
