package chess

// MoveTag discriminates the three Move variants.
type MoveTag uint8

const (
	Regular MoveTag = iota
	Castling
	Promotion
)

func (t MoveTag) String() string {
	switch t {
	case Castling:
		return "castling"
	case Promotion:
		return "promotion"
	default:
		return "regular"
	}
}

// Move is a tagged variant: Regular, Castling, or Promotion. Equality (see
// Equal) is defined over (Tag, Src, Dst) only, never over the undo state
// recorded by Apply: two moves that travel the same path are the same move,
// regardless of what they happen to capture or how they're later undone.
// Move has no hash method, and Go's == on Move values also compares the
// recorded undo state.
//
// For Castling, RookSrc/RookDst are structural (determined at generation
// time, not by Apply) and participate in Apply/Undo but not in Equal.
type Move struct {
	Tag      MoveTag
	Src, Dst Position

	RookSrc, RookDst Position // meaningful only when Tag == Castling

	applied         bool
	srcPieceBefore  Piece
	dstCaptured     *Piece
	rookPieceBefore Piece
}

// NewRegularMove constructs a non-castling, non-promotion move.
func NewRegularMove(src, dst Position) Move {
	return Move{Tag: Regular, Src: src, Dst: dst}
}

// NewPromotionMove constructs a pawn-promotion move.
func NewPromotionMove(src, dst Position) Move {
	return Move{Tag: Promotion, Src: src, Dst: dst}
}

// NewCastlingMove constructs a castling move. kingDst/rookDst must already
// be resolved by the caller (see movegen.go's castling emission).
func NewCastlingMove(kingSrc, kingDst, rookSrc, rookDst Position) Move {
	return Move{Tag: Castling, Src: kingSrc, Dst: kingDst, RookSrc: rookSrc, RookDst: rookDst}
}

// Equal compares moves purely by tag and endpoints, ignoring any undo state
// recorded by a prior Apply.
func (m Move) Equal(other Move) bool {
	return m.Tag == other.Tag && m.Src == other.Src && m.Dst == other.Dst
}

// Apply mutates b according to m and records the minimal state needed for
// an exact Undo. Applying an already-applied move without an intervening
// Undo is a programming error (see assert.go).
func (m *Move) Apply(b *Board) error {
	debugAssert(!m.applied, "move applied twice without undo")

	switch m.Tag {
	case Castling:
		king, err := b.GetAt(m.Src)
		if err != nil {
			return err
		}
		debugAssert(king != nil && king.Kind == King, "castling move source is not a king")
		rook, err := b.GetAt(m.RookSrc)
		if err != nil {
			return err
		}
		debugAssert(rook != nil && rook.Kind == Rook, "castling move rook source is not a rook")

		m.srcPieceBefore = *king
		m.rookPieceBefore = *rook
		newKing := king.WithMoved(true)
		newRook := rook.WithMoved(true)

		sources := [2]Position{m.Src, m.RookSrc}
		targets := map[Position]*Piece{m.Dst: &newKing, m.RookDst: &newRook}
		for _, s := range sources {
			if _, isTarget := targets[s]; !isTarget {
				if err := b.SetAt(s, nil); err != nil {
					return err
				}
			}
		}
		for pos, p := range targets {
			if err := b.SetAt(pos, p); err != nil {
				return err
			}
		}

	default: // Regular, Promotion
		src, err := b.GetAt(m.Src)
		if err != nil {
			return err
		}
		debugAssert(src != nil, "move source square is empty")
		dst, err := b.GetAt(m.Dst)
		if err != nil {
			return err
		}
		m.srcPieceBefore = *src
		if dst != nil {
			cp := *dst
			m.dstCaptured = &cp
		} else {
			m.dstCaptured = nil
		}

		landing := src.WithMoved(true)
		if m.Tag == Promotion {
			landing = Piece{Owner: src.Owner, Kind: Queen, HasMoved: true}
		}
		if err := b.SetAt(m.Dst, &landing); err != nil {
			return err
		}
		if err := b.SetAt(m.Src, nil); err != nil {
			return err
		}
	}

	m.applied = true
	return nil
}

// Undo exactly reverses the effect of the matching Apply. Undoing a move
// that was not most recently applied (or was never applied) is a
// programming error (see assert.go).
func (m *Move) Undo(b *Board) error {
	debugAssert(m.applied, "undo called without a matching apply")

	switch m.Tag {
	case Castling:
		targetsNow := [2]Position{m.Dst, m.RookDst}
		sources := map[Position]Piece{m.Src: m.srcPieceBefore, m.RookSrc: m.rookPieceBefore}
		for _, t := range targetsNow {
			if _, isSource := sources[t]; !isSource {
				if err := b.SetAt(t, nil); err != nil {
					return err
				}
			}
		}
		for pos, p := range sources {
			pp := p
			if err := b.SetAt(pos, &pp); err != nil {
				return err
			}
		}

	default: // Regular, Promotion
		before := m.srcPieceBefore
		if err := b.SetAt(m.Src, &before); err != nil {
			return err
		}
		if err := b.SetAt(m.Dst, m.dstCaptured); err != nil {
			return err
		}
	}

	m.applied = false
	return nil
}
