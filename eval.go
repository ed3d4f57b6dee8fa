package chess

// Evaluation: material + pawn-structure + mobility, pluggable behind the
// Evaluator type so search.go never hard-codes the weights below.

// MaxScore and MinScore strictly exceed any value DefaultEvaluator can
// return, so search code can safely use them as +/-infinity sentinels and
// as terminal (checkmate) scores.
const (
	MaxScore = 1 << 30
	MinScore = -MaxScore
)

// Evaluator scores a position from rootSide's perspective: higher is
// better for rootSide. Terminal (no-legal-move) positions are handled by
// the search itself, not by the evaluator.
type Evaluator func(b *Board, rootSide Side) int

func pieceWeight(k Kind) int {
	switch k {
	case Pawn:
		return 10
	case Knight, Bishop:
		return 30
	case Rook:
		return 50
	case Queen:
		return 90
	case King:
		return 900
	default:
		return 0
	}
}

// pawnAdvancement is a proxy for promotion proximity: how many rows a pawn
// has traveled from its own back rank, generalized to work on any board
// height rather than assuming a fixed starting row.
func (b *Board) pawnAdvancement(pos Position, side Side) int {
	if side == Bottom {
		return pos.Row
	}
	return b.height - 1 - pos.Row
}

func pawnStructureBonus(b *Board, side Side) int {
	bonus := 0
	dir := b.pawnForwardDir(side)
	b.forEachPiece(func(pos Position, p *Piece) {
		if p.Owner != side || p.Kind != Pawn {
			return
		}
		bonus += b.pawnAdvancement(pos, side)

		ahead := pos.add(dir, 0)
		blocker, err := b.GetAt(ahead)
		if err != nil || blocker == nil {
			return
		}
		bonus += 5
		if blocker.Owner == side && blocker.Kind == Pawn {
			bonus += 5
		}
	})
	return bonus
}

// DefaultEvaluator implements the material/positional/mobility formula
// above. Mobility counts fully legal moves, not pseudo-legal ones, so it
// already accounts for king safety.
func DefaultEvaluator(b *Board, rootSide Side) int {
	opponent := rootSide.Opponent()
	score := 0

	b.forEachPiece(func(pos Position, p *Piece) {
		w := pieceWeight(p.Kind)
		if p.Owner == rootSide {
			score += w
		} else {
			score -= w
		}
	})

	score += pawnStructureBonus(b, rootSide)
	score += len(b.LegalMoves(rootSide)) - len(b.LegalMoves(opponent))

	return score
}
