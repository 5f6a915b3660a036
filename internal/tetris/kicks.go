package tetris

// SRS wall-kick tables. Each rotation transition lists five candidate
// (dCol, dRow) offsets tried in order, (0,0) first. dRow is negated
// relative to the usual SRS notation because board rows grow downward.
//
// The I piece uses its own table; J, L, S, T, Z share one. O never needs a
// kick: all four of its orientation matrices are identical, so the trivial
// candidate always succeeds.

type kickKey struct {
	from, to Orientation
}

// Offset is a (column, row) displacement in board space.
type Offset struct {
	DCol, DRow int
}

var jlstzKicks = map[kickKey][]Offset{
	{Orient0, OrientR}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{OrientR, Orient0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{OrientR, Orient2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Orient2, OrientR}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Orient2, OrientL}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{OrientL, Orient2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{OrientL, Orient0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Orient0, OrientL}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[kickKey][]Offset{
	{Orient0, OrientR}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{OrientR, Orient0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{OrientR, Orient2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{Orient2, OrientR}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{Orient2, OrientL}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{OrientL, Orient2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{OrientL, Orient0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{Orient0, OrientL}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var trivialKick = []Offset{{0, 0}}

// KickOffsets returns the ordered candidate offsets for rotating the given
// piece type through a (from → to) transition.
func KickOffsets(t PieceType, from, to Orientation) []Offset {
	var table map[kickKey][]Offset
	if t == PieceI {
		table = iKicks
	} else {
		table = jlstzKicks
	}
	if offs, ok := table[kickKey{from, to}]; ok {
		return offs
	}
	return trivialKick
}

// TryRotate attempts to rotate the piece one step (cw or ccw) against the
// board, testing each kick candidate in order. On success it returns the
// rotated, possibly translated piece and true; on failure the original
// piece and false.
func TryRotate(b *Board, p Piece, cw bool) (Piece, bool) {
	target := p.Rot.CW()
	if !cw {
		target = p.Rot.CCW()
	}

	for _, off := range KickOffsets(p.Type, p.Rot, target) {
		trial := Piece{
			Type: p.Type,
			Rot:  target,
			Col:  p.Col + off.DCol,
			Row:  p.Row + off.DRow,
		}
		if !Collides(b, trial) {
			return trial, true
		}
	}
	return p, false
}
