package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	Board    [BoardHeight][BoardWidth]Cell
	Piece    PieceType
	Rot      Orientation
	Col      int
	Row      int
	GhostRow int
	Next     PieceType
	RNGState uint32
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var cells [BoardHeight][BoardWidth]Cell
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cells[row][col] = g.board.At(col, row)
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Board:    cells,
		Piece:    g.current.Type,
		Rot:      g.current.Rot,
		Col:      g.current.Col,
		Row:      g.current.Row,
		GhostRow: GhostRow(g.board, g.current),
		Next:     g.next,
		RNGState: g.seq.State(),
		State:    state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	h = h*31 + snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Piece)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rot)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Col)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Row)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GhostRow) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RNGState)
	for row := range snap.Board {
		for col := range snap.Board[row] {
			h = h*31 + uint64(snap.Board[row][col]) //#nosec G115 -- hash computation
		}
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	return h
}
