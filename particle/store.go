package particle

import (
	"slices"

	"github.com/oklog/ulid/v2"
)

// Store is the ordered set of live sprites
// Insertion order is render order, so older batches draw underneath newer ones
type Store struct {
	sprites []Sprite
	live    map[ID]struct{}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sprites: make([]Sprite, 0, 64),
		live:    make(map[ID]struct{}),
	}
}

// Add appends every sprite of the batch, existing sprites are kept
func (st *Store) Add(b Batch) {
	for _, sp := range b.Sprites {
		if _, dup := st.live[sp.ID]; dup {
			continue
		}
		st.live[sp.ID] = struct{}{}
		st.sprites = append(st.sprites, sp)
	}
}

// Remove deletes one sprite, false when it was already gone
func (st *Store) Remove(id ID) bool {
	if _, ok := st.live[id]; !ok {
		return false
	}
	delete(st.live, id)
	st.sprites = slices.DeleteFunc(st.sprites, func(sp Sprite) bool { return sp.ID == id })
	return true
}

// RemoveBatch deletes the sprites of a batch still present and returns how many
func (st *Store) RemoveBatch(batch ulid.ULID) int {
	before := len(st.sprites)
	st.sprites = slices.DeleteFunc(st.sprites, func(sp Sprite) bool {
		if sp.Batch != batch {
			return false
		}
		delete(st.live, sp.ID)
		return true
	})
	return before - len(st.sprites)
}

// Batch returns copies of the live sprites of a batch in render order
func (st *Store) Batch(batch ulid.ULID) []Sprite {
	var out []Sprite
	for _, sp := range st.sprites {
		if sp.Batch == batch {
			out = append(out, sp)
		}
	}
	return out
}

// Has reports whether id is live
func (st *Store) Has(id ID) bool {
	_, ok := st.live[id]
	return ok
}

// Len returns the live sprite count
func (st *Store) Len() int {
	return len(st.sprites)
}

// Snapshot returns a copy of the live sprites in render order
func (st *Store) Snapshot() []Sprite {
	return slices.Clone(st.sprites)
}
