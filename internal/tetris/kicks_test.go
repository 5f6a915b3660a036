package tetris

import "testing"

func TestKickOffsetsShape(t *testing.T) {
	for _, pt := range []PieceType{PieceI, PieceJ, PieceL, PieceS, PieceT, PieceZ} {
		for from := Orientation(0); from < 4; from++ {
			for _, to := range []Orientation{from.CW(), from.CCW()} {
				offs := KickOffsets(pt, from, to)
				if len(offs) != 5 {
					t.Errorf("%v %v->%v: %d candidates, want 5", pt, from, to, len(offs))
				}
				if offs[0] != (Offset{0, 0}) {
					t.Errorf("%v %v->%v: first candidate %v, want (0,0)", pt, from, to, offs[0])
				}
			}
		}
	}
}

func TestTryRotateOpenField(t *testing.T) {
	b := NewBoard()
	p := Spawn(PieceT)

	rotated, ok := TryRotate(b, p, true)
	if !ok {
		t.Fatal("rotation in open field should succeed")
	}
	if rotated.Rot != OrientR {
		t.Errorf("Rot = %v, want %v", rotated.Rot, OrientR)
	}
	if rotated.Col != p.Col || rotated.Row != p.Row {
		t.Errorf("open-field rotation should not kick, moved to (%d,%d)", rotated.Col, rotated.Row)
	}
}

func TestTryRotateFullCycle(t *testing.T) {
	b := NewBoard()
	p := Piece{Type: PieceJ, Col: 4, Row: 5}

	for i := 0; i < 4; i++ {
		var ok bool
		p, ok = TryRotate(b, p, true)
		if !ok {
			t.Fatalf("step %d: rotation should succeed mid-board", i)
		}
	}
	if p.Rot != Orient0 {
		t.Errorf("four clockwise steps should return to spawn orientation, got %v", p.Rot)
	}
	if p.Col != 4 || p.Row != 5 {
		t.Errorf("four open-field rotations should end where they started, got (%d,%d)", p.Col, p.Row)
	}
}

func TestTryRotateWallKickI(t *testing.T) {
	b := NewBoard()
	// Vertical I flush against the left wall: column 2 of its matrix holds
	// the cells, so Col -2 puts them in board column 0. The trivial
	// candidate for R->2 exits the wall; the (+2,0) alternate must fire.
	p := Piece{Type: PieceI, Rot: OrientR, Col: -2, Row: 5}
	if Collides(b, p) {
		t.Fatal("setup: vertical I at the wall should be legal")
	}

	rotated, ok := TryRotate(b, p, true)
	if !ok {
		t.Fatal("I rotation at the wall should succeed via a kick")
	}
	if rotated.Rot != Orient2 {
		t.Errorf("Rot = %v, want %v", rotated.Rot, Orient2)
	}
	if rotated.Col != 0 {
		t.Errorf("kick should shift the piece to Col 0, got %d", rotated.Col)
	}
	if Collides(b, rotated) {
		t.Error("kicked piece must not collide")
	}
}

func TestTryRotateRejected(t *testing.T) {
	b := NewBoard()
	// Box the T in completely so every kick candidate collides.
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			b.cells[row][col] = CellFor(PieceJ)
		}
	}
	p := Piece{Type: PieceT, Col: 3, Row: 5}
	b.cells[6][4] = CellEmpty
	b.cells[6][3] = CellEmpty
	b.cells[6][5] = CellEmpty
	b.cells[5][4] = CellEmpty

	if Collides(b, p) {
		t.Fatal("setup: carved pocket should fit the T exactly")
	}

	got, ok := TryRotate(b, p, true)
	if ok {
		t.Fatal("rotation inside a tight pocket should be rejected")
	}
	if got != p {
		t.Errorf("rejected rotation must leave the piece unchanged, got %+v", got)
	}
}

func TestORotationNeverKicks(t *testing.T) {
	b := NewBoard()
	// O has identical matrices in all orientations, so rotation succeeds
	// in place even flush against a wall.
	p := Piece{Type: PieceO, Col: 0, Row: 18}
	rotated, ok := TryRotate(b, p, true)
	if !ok {
		t.Fatal("O rotation should always succeed")
	}
	if rotated.Col != p.Col || rotated.Row != p.Row {
		t.Errorf("O rotation should not move, got (%d,%d)", rotated.Col, rotated.Row)
	}
}
