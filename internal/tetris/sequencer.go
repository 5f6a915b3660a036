package tetris

// Sequencer generates the piece order with a 32-bit linear congruential
// generator and NES-style single-shot repeat rejection: a candidate equal
// to the previous piece is re-rolled exactly once with probability 1/2.
// Repeats stay possible, droughts stay possible, but back-to-back pieces
// are rarer than uniform.
//
// Every draw consumes exactly three generator advances (candidate, coin,
// alternate) no matter which path is taken, so the stream position never
// depends on rejection outcomes. The optional first-piece rule re-rolls on
// a forked copy of the state for the same reason: toggling it changes at
// most the first selection, never any later draw.
type Sequencer struct {
	state         uint32
	prev          int8 // previous piece index, -1 before the first draw
	avoidSZOFirst bool
}

// LCG parameters (the common 32-bit multiplier/increment pair).
const (
	lcgMultiplier = 0x41C64E6D
	lcgIncrement  = 0x3039
)

// NewSequencer creates a sequencer seeded with the given 32-bit state.
func NewSequencer(seed uint32, avoidSZOFirst bool) *Sequencer {
	return &Sequencer{
		state:         seed,
		prev:          -1,
		avoidSZOFirst: avoidSZOFirst,
	}
}

// lcgNext advances the state and returns it. Overflow wraps, which is the
// mod 2^32 the algorithm wants.
func (s *Sequencer) lcgNext() uint32 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return s.state
}

// rand returns a 15-bit pseudo-random value from the high bits of the
// advanced state.
func (s *Sequencer) rand() uint32 {
	return (s.lcgNext() >> 16) & 0x7FFF
}

// choice7 maps one advance to a piece index in [0,6].
func (s *Sequencer) choice7() int8 {
	return int8(s.rand() % PieceCount)
}

// State returns the current LCG state, for snapshots.
func (s *Sequencer) State() uint32 {
	return s.state
}

// Next draws the next piece type.
func (s *Sequencer) Next() PieceType {
	cand := s.choice7()
	coin := s.rand() & 1
	alt := s.choice7()

	result := cand
	if s.prev >= 0 && cand == s.prev && coin == 1 {
		result = alt
	}

	first := s.prev < 0
	// prev tracks the raw stream pick even when the first-piece rule swaps
	// the returned value, so later rejection decisions are identical with
	// the rule on or off.
	s.prev = result

	if first && s.avoidSZOFirst {
		return PieceType(s.firstPiece(result))
	}
	return PieceType(result)
}

// firstPiece applies the first-piece rule: S, Z and O are forbidden as the
// opening piece. Re-rolls run on a fork of the state so the shared stream
// advances identically whether or not the rule fires.
func (s *Sequencer) firstPiece(cand int8) int8 {
	fork := Sequencer{state: s.state}
	for isSZO(cand) {
		cand = fork.choice7()
	}
	return cand
}

func isSZO(idx int8) bool {
	t := PieceType(idx)
	return t == PieceS || t == PieceZ || t == PieceO
}
