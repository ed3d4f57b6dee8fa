package chess

// Legal-move filtering: turn pseudo-legal moves into legal ones by
// rejecting any move that would leave the mover's king attacked.

// attackedBy reports whether any piece belonging to `by` pseudo-legally
// attacks pos. It is computed directly per piece kind rather than by
// calling AllPseudoLegalMoves, so that it never re-enters castling
// emission -- castling emission calls this to check squares the king must
// not cross while in check, and a king's own pseudo-legal castling moves
// are not "attacks" on anything.
func (b *Board) attackedBy(pos Position, by Side) bool {
	dir := b.pawnForwardDir(by)
	for _, dc := range [2]int{-1, 1} {
		src := pos.add(-dir, -dc)
		if p, err := b.GetAt(src); err == nil && p != nil && p.Owner == by && p.Kind == Pawn {
			return true
		}
	}
	for _, d := range knightHops {
		src := pos.add(d[0], d[1])
		if p, err := b.GetAt(src); err == nil && p != nil && p.Owner == by && p.Kind == Knight {
			return true
		}
	}
	for _, d := range kingSteps {
		src := pos.add(d[0], d[1])
		if p, err := b.GetAt(src); err == nil && p != nil && p.Owner == by && p.Kind == King {
			return true
		}
	}
	for _, d := range bishopDirs {
		if b.slidingAttackFrom(pos, d, by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range rookDirs {
		if b.slidingAttackFrom(pos, d, by, Rook, Queen) {
			return true
		}
	}
	return false
}

func (b *Board) slidingAttackFrom(pos Position, d [2]int, by Side, kinds ...Kind) bool {
	cur := pos
	for {
		cur = cur.add(d[0], d[1])
		p, err := b.GetAt(cur)
		if err != nil {
			return false
		}
		if p == nil {
			continue
		}
		if p.Owner == by {
			for _, k := range kinds {
				if p.Kind == k {
					return true
				}
			}
		}
		return false
	}
}

// LegalMoves returns every legal move of side on b: a pseudo-legal move is
// accepted if it captures the opponent's king outright, or if -- after
// applying and before undoing it -- the mover's king is not attacked.
func (b *Board) LegalMoves(side Side) []Move {
	kingPos, hasKing := b.KingPosition(side)
	if !hasKing {
		return nil
	}
	var legal []Move
	for _, m := range b.AllPseudoLegalMoves(side) {
		target, _ := b.GetAt(m.Dst)
		if target != nil && target.Kind == King && target.Owner != side {
			legal = append(legal, m)
			continue
		}

		mv := m
		if err := mv.Apply(b); err != nil {
			continue
		}
		kp := kingPos
		if mv.Src == kingPos {
			kp = mv.Dst
		}
		safe := !b.attackedBy(kp, side.Opponent())
		_ = mv.Undo(b)
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom narrows LegalMoves to those originating at src.
func (b *Board) LegalMovesFrom(side Side, src Position) []Move {
	var out []Move
	for _, m := range b.LegalMoves(side) {
		if m.Src == src {
			out = append(out, m)
		}
	}
	return out
}
