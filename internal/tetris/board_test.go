package tetris

import "testing"

func TestCollidesWalls(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name string
		p    Piece
		want bool
	}{
		{"inside", Piece{Type: PieceO, Col: 4, Row: 10}, false},
		{"left wall", Piece{Type: PieceO, Col: -1, Row: 10}, true},
		{"right wall", Piece{Type: PieceO, Col: 9, Row: 10}, true},
		{"flush right", Piece{Type: PieceO, Col: 8, Row: 10}, false},
		{"below floor", Piece{Type: PieceO, Col: 4, Row: 19}, true},
		{"on floor", Piece{Type: PieceO, Col: 4, Row: 18}, false},
		{"above top is legal", Piece{Type: PieceO, Col: 4, Row: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(b, tt.p); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCollidesLockedCells(t *testing.T) {
	b := NewBoard()
	Merge(b, Piece{Type: PieceO, Col: 4, Row: 18})

	if !Collides(b, Piece{Type: PieceO, Col: 4, Row: 17}) {
		t.Error("piece overlapping locked cells should collide")
	}
	if Collides(b, Piece{Type: PieceO, Col: 4, Row: 16}) {
		t.Error("piece resting directly above locked cells should not collide")
	}
	if Collides(b, Piece{Type: PieceO, Col: 6, Row: 18}) {
		t.Error("piece beside locked cells should not collide")
	}
}

func TestMergeSkipsHiddenRows(t *testing.T) {
	b := NewBoard()
	// I piece at spawn sits one matrix row above the top; only row 0 cells
	// may land on the board.
	p := Piece{Type: PieceI, Col: 3, Row: -1}
	Merge(b, p)

	for col := 3; col < 7; col++ {
		if b.At(col, 0) != CellFor(PieceI) {
			t.Errorf("cell (%d,0) = %v, want %v", col, b.At(col, 0), CellFor(PieceI))
		}
	}
	count := 0
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.At(col, row) != CellEmpty {
				count++
			}
		}
	}
	if count != 4 {
		t.Errorf("merged %d cells, want 4", count)
	}
}

func TestSweep(t *testing.T) {
	b := NewBoard()

	fillRow := func(row int) {
		for col := 0; col < BoardWidth; col++ {
			b.cells[row][col] = CellFor(PieceJ)
		}
	}

	// Marker cells to verify the shift: one above each full row.
	fillRow(15)
	fillRow(17)
	b.cells[14][0] = CellFor(PieceT)
	b.cells[16][9] = CellFor(PieceZ)
	b.cells[19][5] = CellFor(PieceL)

	if got := Sweep(b); got != 2 {
		t.Fatalf("Sweep() = %d, want 2", got)
	}

	// Both markers shifted down past the removed rows, in order.
	if b.At(0, 16) != CellFor(PieceT) {
		t.Errorf("marker above first full row should land on row 16, got %v at (0,16)", b.At(0, 16))
	}
	if b.At(9, 17) != CellFor(PieceZ) {
		t.Errorf("marker between full rows should land on row 17, got %v at (9,17)", b.At(9, 17))
	}
	if b.At(5, 19) != CellFor(PieceL) {
		t.Errorf("cell below both full rows should stay on row 19, got %v at (5,19)", b.At(5, 19))
	}

	for row := 0; row < 16; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.At(col, row) != CellEmpty {
				t.Fatalf("row %d should be empty after sweep", row)
			}
		}
	}
}

func TestSweepAdjacentRows(t *testing.T) {
	b := NewBoard()
	for row := 16; row < 20; row++ {
		for col := 0; col < BoardWidth; col++ {
			b.cells[row][col] = CellFor(PieceI)
		}
	}

	if got := Sweep(b); got != 4 {
		t.Errorf("Sweep() = %d, want 4", got)
	}
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.At(col, row) != CellEmpty {
				t.Fatalf("board should be empty after sweeping all four rows")
			}
		}
	}
}

func TestGhostRow(t *testing.T) {
	b := NewBoard()

	p := Piece{Type: PieceO, Col: 4, Row: 0}
	if got := GhostRow(b, p); got != 18 {
		t.Errorf("GhostRow on empty board = %d, want 18", got)
	}

	Merge(b, Piece{Type: PieceO, Col: 4, Row: 18})
	if got := GhostRow(b, p); got != 16 {
		t.Errorf("GhostRow above a stack = %d, want 16", got)
	}

	// A piece already resting ghosts to its own row.
	resting := Piece{Type: PieceO, Col: 4, Row: 16}
	if got := GhostRow(b, resting); got != 16 {
		t.Errorf("GhostRow of resting piece = %d, want 16", got)
	}
}
