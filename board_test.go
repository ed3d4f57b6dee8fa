package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewStandardBoardSetup(t *testing.T) {
	b := NewStandardBoard()
	h, w := b.Dimensions()
	require.Equal(t, 8, h)
	require.Equal(t, 8, w)

	p, err := b.Get(0, 4)
	require.NoError(t, err)
	require.Equal(t, &Piece{Owner: Bottom, Kind: King}, p)

	p, err = b.Get(7, 4)
	require.NoError(t, err)
	require.Equal(t, &Piece{Owner: Top, Kind: King}, p)

	for c := 0; c < 8; c++ {
		p, err := b.Get(1, c)
		require.NoError(t, err)
		require.Equal(t, Pawn, p.Kind)
		require.Equal(t, Bottom, p.Owner)
	}

	p, err = b.Get(3, 3)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestBoardGetSetOutOfBounds(t *testing.T) {
	b := NewBoard(6, 6)
	_, err := b.Get(6, 0)
	require.Error(t, err)
	var oob *ErrOutOfBounds
	require.ErrorAs(t, err, &oob)

	err = b.Set(-1, 0, nil)
	require.Error(t, err)
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewStandardBoard()
	c := b.Copy()
	require.True(t, b.Equal(c))

	knight := Piece{Owner: Bottom, Kind: Knight}
	require.NoError(t, c.Set(3, 3, &knight))
	require.False(t, b.Equal(c))

	orig, _ := b.Get(3, 3)
	require.Nil(t, orig)
}

func TestBoardEqualIgnoresIdentity(t *testing.T) {
	a := NewBoard(6, 6)
	bb := NewBoard(6, 6)
	p1 := Piece{Owner: Top, Kind: Rook}
	p2 := Piece{Owner: Top, Kind: Rook}
	require.NoError(t, a.Set(2, 2, &p1))
	require.NoError(t, bb.Set(2, 2, &p2))
	require.True(t, a.Equal(bb))
	if diff := cmp.Diff(a.Signature(), bb.Signature()); diff != "" {
		t.Fatalf("signatures differ though boards are equal:\n%s", diff)
	}
}

func TestBoardSignatureDistinguishesHasMoved(t *testing.T) {
	a := NewBoard(6, 6)
	bb := NewBoard(6, 6)
	moved := Piece{Owner: Top, Kind: Rook, HasMoved: true}
	unmoved := Piece{Owner: Top, Kind: Rook}
	require.NoError(t, a.Set(2, 2, &moved))
	require.NoError(t, bb.Set(2, 2, &unmoved))
	require.NotEqual(t, a.Signature(), bb.Signature())
	require.False(t, a.Equal(bb))
}

func TestKingPosition(t *testing.T) {
	b := NewStandardBoard()
	pos, ok := b.KingPosition(Bottom)
	require.True(t, ok)
	require.Equal(t, Position{Row: 0, Col: 4}, pos)

	empty := NewBoard(4, 4)
	_, ok = empty.KingPosition(Top)
	require.False(t, ok)
}
