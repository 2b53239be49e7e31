package board

import "math/rand"

// TileSource supplies new tiles for construction and column refill.
// Implementations are not safe for concurrent use; give each session its own.
type TileSource interface {
	NextTile() Tile
}

// RandSource draws kinds uniformly from 1..kinds.
type RandSource struct {
	rng   *rand.Rand
	kinds int
}

// NewRandSource wraps rng. kinds must be at least 1.
func NewRandSource(rng *rand.Rand, kinds int) (*RandSource, error) {
	if kinds < 1 {
		return nil, &InvalidConfigError{Field: "kinds", Value: kinds, Want: ">= 1"}
	}
	return &RandSource{rng: rng, kinds: kinds}, nil
}

func (s *RandSource) NextTile() Tile { return Tile(1 + s.rng.Intn(s.kinds)) }

// Kinds returns the alphabet size.
func (s *RandSource) Kinds() int { return s.kinds }

type sequence struct {
	tiles []Tile
	next  int
}

// Sequence returns a source that cycles through tiles in order.
// It panics if tiles is empty.
func Sequence(tiles ...Tile) TileSource {
	if len(tiles) == 0 {
		panic("board: Sequence needs at least one tile")
	}
	return &sequence{tiles: append([]Tile(nil), tiles...)}
}

func (s *sequence) NextTile() Tile {
	t := s.tiles[s.next]
	s.next = (s.next + 1) % len(s.tiles)
	return t
}
