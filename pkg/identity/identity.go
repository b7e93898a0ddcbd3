// Package identity turns player display names into canonical identity keys.
//
// Every data source spells names its own way ("Gabriel Davis" versus
// "Gabe Davis", "Melvin Gordon III" versus "Melvin Gordon"). A Normalizer
// resolves known variants through an exact-match alias table and falls back
// to a deterministic transform for everything else.
package identity

import (
	"strings"
)

// Key is the canonical identity of a player across all sources.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Normalizer maps display names to keys. It is safe for concurrent use
// because it is never mutated after construction.
type Normalizer struct {
	aliases map[string]Key
}

// NewNormalizer creates a Normalizer over the given alias table.
// The table is copied. A nil table disables aliasing.
func NewNormalizer(aliases map[string]Key) *Normalizer {
	copied := make(map[string]Key, len(aliases))
	for name, key := range aliases {
		copied[name] = key
	}
	return &Normalizer{aliases: copied}
}

// NewDefaultNormalizer creates a Normalizer over the built-in alias table.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultAliases())
}

// Normalize returns the key for a display name. Alias lookup is an exact,
// case-sensitive string match; anything else goes through Transform.
func (n *Normalizer) Normalize(displayName string) Key {
	if n != nil {
		if key, ok := n.aliases[displayName]; ok {
			return key
		}
	}
	return Transform(displayName)
}

// Aliases returns a copy of the alias table.
func (n *Normalizer) Aliases() map[string]Key {
	copied := make(map[string]Key, len(n.aliases))
	for name, key := range n.aliases {
		copied[name] = key
	}
	return copied
}

// Transform is the default key derivation: each space becomes an underscore,
// periods are removed and the result is lowercased. Generational suffixes are
// kept ("Odell Beckham Jr." becomes "odell_beckham_jr").
func Transform(displayName string) Key {
	key := strings.ReplaceAll(displayName, " ", "_")
	key = strings.ReplaceAll(key, ".", "")
	return Key(strings.ToLower(key))
}

// DefaultAliases returns the built-in alias table of known name variants.
func DefaultAliases() map[string]Key {
	return map[string]Key{
		"Travis Etienne Jr.":    "travis_etienne",
		"Travis Etienne":        "travis_etienne",
		"Melvin Gordon III":     "melvin_gordon",
		"Melvin Gordon":         "melvin_gordon",
		"Ronald Jones II":       "ronald_jones",
		"Ronald Jones":          "ronald_jones",
		"Darrell Henderson":     "darrell_henderson",
		"Darrell Henderson Jr.": "darrell_henderson",
		"Mark Ingram":           "mark_ingram",
		"Mark Ingram II":        "mark_ingram",
		"Isaih Pacheco":         "isiah_pacheco",
		"Isiah Pacheco":         "isiah_pacheco",
		"Brian Robinson Jr.":    "brian_robinson",
		"Brian Robinson":        "brian_robinson",
		"Jeffery Wilson":        "jeffery_wilson",
		"Jeff Wilson Jr.":       "jeffery_wilson",
		"Allen Robinson":        "allen_robinson",
		"Allen Robinson II":     "allen_robinson",
		"Gabriel Davis":         "gabe_davis",
		"Gabe Davis":            "gabe_davis",
		"Josh Palmer":           "josh_palmer",
		"Joshua Palmer":         "josh_palmer",
		"Robby Anderson":        "robbie_anderson",
		"Robbie Anderson":       "robbie_anderson",
		"Marvin Jones":          "marvin_jones",
		"Marvin Jones Jr.":      "marvin_jones",
		"Robert Tonyan Jr.":     "robert_tonyan",
		"Robert Tonyan":         "robert_tonyan",
	}
}
