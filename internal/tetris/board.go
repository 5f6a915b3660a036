package tetris

// Cell is one board position. CellEmpty means unoccupied; otherwise the
// cell holds CellFor(t) of the tetromino that locked there.
type Cell int8

// CellEmpty is the zero value of a fresh board.
const CellEmpty Cell = 0

// CellFor returns the board cell value for a locked tetromino type.
func CellFor(t PieceType) Cell {
	return Cell(t) + 1
}

// Type returns the tetromino type stored in a non-empty cell.
func (c Cell) Type() PieceType {
	return PieceType(c - 1)
}

// Board is the fixed-size playfield of locked cells. It is mutated only by
// Merge and Sweep; everything else treats it as read-only.
type Board struct {
	cells [BoardHeight][BoardWidth]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the cell at (col, row). Positions outside the visible grid
// read as empty; collision rules handle bounds separately.
func (b *Board) At(col, row int) Cell {
	if col < 0 || col >= BoardWidth || row < 0 || row >= BoardHeight {
		return CellEmpty
	}
	return b.cells[row][col]
}

// rowFull reports whether every column of a row is occupied.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < BoardWidth; col++ {
		if b.cells[row][col] == CellEmpty {
			return false
		}
	}
	return true
}

// Collides reports whether the piece overlaps a locked cell, crosses either
// wall, or extends below the floor. Cells above the visible top are legal;
// they are how tall pieces spawn partially hidden.
func Collides(b *Board, p Piece) bool {
	hit := false
	p.EachCell(func(col, row int) {
		if hit {
			return
		}
		if col < 0 || col >= BoardWidth || row >= BoardHeight {
			hit = true
			return
		}
		if row >= 0 && b.cells[row][col] != CellEmpty {
			hit = true
		}
	})
	return hit
}

// Merge writes the piece's cells into the board permanently. Cells still
// above the visible top are discarded. No collision check is performed;
// callers lock only pieces already validated by Collides.
func Merge(b *Board, p Piece) {
	cell := CellFor(p.Type)
	p.EachCell(func(col, row int) {
		if row >= 0 && row < BoardHeight && col >= 0 && col < BoardWidth {
			b.cells[row][col] = cell
		}
	})
}

// Sweep removes every full row, shifts the rows above down, and returns the
// number of rows cleared. Remaining rows keep their top-to-bottom order.
func Sweep(b *Board) int {
	cleared := 0
	row := BoardHeight - 1
	for row >= 0 {
		if !b.rowFull(row) {
			row--
			continue
		}
		for y := row; y > 0; y-- {
			b.cells[y] = b.cells[y-1]
		}
		b.cells[0] = [BoardWidth]Cell{}
		cleared++
		// Re-examine the same index: the row shifted into it may be full.
	}
	return cleared
}

// GhostRow returns the lowest row the piece could occupy from its current
// position without colliding. Neither the board nor the piece is mutated.
func GhostRow(b *Board, p Piece) int {
	for {
		p.Row++
		if Collides(b, p) {
			return p.Row - 1
		}
	}
}
