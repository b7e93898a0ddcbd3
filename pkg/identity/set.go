package identity

import "sort"

// Set is an immutable collection of keys, used for the favorites list.
type Set struct {
	keys map[Key]struct{}
}

// NewSet creates a Set holding keys.
func NewSet(keys ...Key) Set {
	s := Set{keys: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Contains reports whether key is in the set. The zero Set is empty.
func (s Set) Contains(key Key) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys in sorted order.
func (s Set) Keys() []Key {
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DefaultFavorites returns the built-in favorites.
func DefaultFavorites() Set {
	return NewSet(
		"allen_robinson",
		"aj_dillon",
		"mike_williams",
		"jalen_hurts",
		"chase_edmonds",
		"gabe_davis",
		"courtland_sutton",
		"allen_lazard",
		"michael_pittman_jr",
	)
}
