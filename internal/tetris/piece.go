// Package tetris implements the deterministic falling-block simulation:
// piece generation, SRS rotation with wall kicks, DAS/ARR horizontal
// movement, gravity with lock delay, and line clearing. It contains no
// platform dependencies so every timing rule is unit-testable.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions (visible playfield). Pieces may occupy negative rows
// while spawning; those cells are legal but never rendered or merged.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// PieceType identifies one of the seven tetrominoes.
type PieceType int8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of distinct tetromino types.
const PieceCount = 7

// String returns the canonical one-letter name.
func (t PieceType) String() string {
	if t < 0 || t >= PieceCount {
		return "?"
	}
	return string("IJLOSTZ"[t])
}

// Color returns the display color for this tetromino.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceI:
		return core.ColorBrightCyan
	case PieceJ:
		return core.ColorBrightBlue
	case PieceL:
		return core.ColorOrange
	case PieceO:
		return core.ColorBrightYellow
	case PieceS:
		return core.ColorBrightGreen
	case PieceT:
		return core.ColorBrightMagenta
	case PieceZ:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// Orientation is one of the four rotation states: 0 (spawn), R (one
// clockwise step), 2 (180°), L (one counter-clockwise step). The cycle
// wraps in both directions.
type Orientation int8

const (
	Orient0 Orientation = iota
	OrientR
	Orient2
	OrientL
)

// CW returns the orientation one clockwise step ahead.
func (o Orientation) CW() Orientation {
	return (o + 1) % 4
}

// CCW returns the orientation one counter-clockwise step back.
func (o Orientation) CCW() Orientation {
	return (o + 3) % 4
}

// baseShapes holds the spawn-orientation matrix of each tetromino in its
// minimal bounding box. 1 is a filled cell.
var baseShapes = [PieceCount][][]int{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceO: {
		{1, 1},
		{1, 1},
	},
	PieceS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	PieceT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
}

// shapes holds every (type, orientation) matrix, derived once at package
// init by successive clockwise rotations of the base shapes.
var shapes [PieceCount][4][][]int

func init() {
	for t := PieceType(0); t < PieceCount; t++ {
		m := baseShapes[t]
		for o := Orientation(0); o < 4; o++ {
			shapes[t][o] = m
			m = rotateCW(m)
		}
	}
}

// rotateCW returns a new matrix rotated 90° clockwise.
func rotateCW(m [][]int) [][]int {
	n := len(m)
	out := make([][]int, n)
	for y := range out {
		out[y] = make([]int, n)
		for x := range out[y] {
			out[y][x] = m[n-1-x][y]
		}
	}
	return out
}

// Shape returns the cell matrix for a (type, orientation) pair.
// Callers must not mutate the returned matrix.
func Shape(t PieceType, o Orientation) [][]int {
	return shapes[t][o]
}

// Piece is the currently falling tetromino. Col/Row locate the top-left
// corner of its shape matrix in board space; Row may be negative while the
// piece is still above the visible top.
type Piece struct {
	Type PieceType
	Rot  Orientation
	Col  int
	Row  int
}

// Spawn creates a piece at its spawn position: orientation 0, horizontally
// centered, shifted up so at most two empty leading matrix rows hide above
// the visible top.
func Spawn(t PieceType) Piece {
	shape := shapes[t][Orient0]
	w := len(shape[0])

	emptyTop := 0
	for _, row := range shape {
		filled := false
		for _, v := range row {
			if v != 0 {
				filled = true
				break
			}
		}
		if filled {
			break
		}
		emptyTop++
	}

	return Piece{
		Type: t,
		Rot:  Orient0,
		Col:  (BoardWidth - w) / 2,
		Row:  -core.Min(emptyTop, 2),
	}
}

// Shape returns the matrix for the piece's current orientation.
func (p Piece) Shape() [][]int {
	return shapes[p.Type][p.Rot]
}

// Translated returns a copy of the piece shifted by (dCol, dRow).
func (p Piece) Translated(dCol, dRow int) Piece {
	p.Col += dCol
	p.Row += dRow
	return p
}

// EachCell calls fn for every filled board cell of the piece.
func (p Piece) EachCell(fn func(col, row int)) {
	for y, row := range p.Shape() {
		for x, v := range row {
			if v != 0 {
				fn(p.Col+x, p.Row+y)
			}
		}
	}
}
