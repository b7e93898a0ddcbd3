package identity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/identity"
)

func TestNormalize(t *testing.T) {
	n := identity.NewDefaultNormalizer()

	tests := []struct {
		name string
		in   string
		want identity.Key
	}{
		{"alias with suffix", "Travis Etienne Jr.", "travis_etienne"},
		{"alias without suffix", "Travis Etienne", "travis_etienne"},
		{"alias misspelling", "Isaih Pacheco", "isiah_pacheco"},
		{"alias nickname", "Gabriel Davis", "gabe_davis"},
		{"default transform", "Justin Jefferson", "justin_jefferson"},
		{"initials", "A.J. Brown", "aj_brown"},
		{"suffix without alias stays", "Odell Beckham Jr.", "odell_beckham_jr"},
		{"multiple spaces each become underscore", "Amon  Ra St. Brown", "amon__ra_st_brown"},
		{"alias is case sensitive", "travis etienne jr.", "travis_etienne_jr"},
		{"alias is whitespace sensitive", "Travis Etienne Jr. ", "travis_etienne_jr_"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestTransformIdempotent(t *testing.T) {
	names := []string{"Justin Jefferson", "A.J. Brown", "Odell Beckham Jr.", "D'Andre Swift", "Kenneth Walker III"}
	for _, name := range names {
		once := identity.Transform(name)
		assert.Equal(t, once, identity.Transform(string(once)), name)
	}
}

func TestAliasVariantsConverge(t *testing.T) {
	n := identity.NewDefaultNormalizer()
	byKey := map[identity.Key][]string{}
	for name, key := range n.Aliases() {
		byKey[key] = append(byKey[key], name)
	}
	for key, names := range byKey {
		assert.GreaterOrEqual(t, len(names), 2, "key %s should have at least two variants", key)
		for _, name := range names {
			assert.Equal(t, key, n.Normalize(name))
		}
	}
}

func TestNilNormalizerUsesTransform(t *testing.T) {
	var n *identity.Normalizer
	assert.Equal(t, identity.Key("travis_etienne_jr"), n.Normalize("Travis Etienne Jr."))
}

func TestNormalizerCopiesTable(t *testing.T) {
	table := map[string]identity.Key{"Gabe Davis": "gabe_davis"}
	n := identity.NewNormalizer(table)
	table["Gabe Davis"] = "changed"
	assert.Equal(t, identity.Key("gabe_davis"), n.Normalize("Gabe Davis"))
}

func TestFavorites(t *testing.T) {
	favs := identity.DefaultFavorites()
	assert.True(t, favs.Contains("jalen_hurts"))
	assert.True(t, favs.Contains("michael_pittman_jr"))
	assert.False(t, favs.Contains("justin_jefferson"))
	assert.Equal(t, 9, favs.Len())

	var empty identity.Set
	assert.False(t, empty.Contains("jalen_hurts"))
	assert.Empty(t, empty.Keys())
}

func TestLoadFileExtendsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.yaml")
	content := `aliases:
  Hollywood Brown: marquise_brown
  Marquise Brown: marquise_brown
favorites:
  - Puka Nacua
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := identity.LoadFile(path)
	require.NoError(t, err)

	n := f.Normalizer()
	assert.Equal(t, identity.Key("marquise_brown"), n.Normalize("Hollywood Brown"))
	assert.Equal(t, identity.Key("travis_etienne"), n.Normalize("Travis Etienne Jr."))

	favs := f.FavoriteSet()
	assert.True(t, favs.Contains("puka_nacua"))
	assert.True(t, favs.Contains("jalen_hurts"))
}

func TestLoadFileReplace(t *testing.T) {
	f, err := identity.ParseFile("inline.yaml", []byte(`replace: true
aliases:
  Gabe Davis: gabe_davis
favorites: []
`))
	require.NoError(t, err)

	n := f.Normalizer()
	assert.Equal(t, identity.Key("travis_etienne_jr"), n.Normalize("Travis Etienne Jr."))
	assert.Equal(t, 0, f.FavoriteSet().Len())
}

func TestFileKeysTransformedWhenBuilt(t *testing.T) {
	f, err := identity.ParseFile("inline.yaml", []byte(`aliases:
  Hollywood Brown: Marquise Brown
favorites:
  - Puka Nacua
`))
	require.NoError(t, err)
	assert.Equal(t, "Marquise Brown", f.Aliases["Hollywood Brown"], "parsed as written")
	assert.Equal(t, "Puka Nacua", f.Favorites[0])

	assert.Equal(t, identity.Key("marquise_brown"), f.Normalizer().Normalize("Hollywood Brown"))
	assert.True(t, f.FavoriteSet().Contains("puka_nacua"))
}

func TestLoadFileErrors(t *testing.T) {
	_, err := identity.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)

	_, err = identity.ParseFile("bad.yaml", []byte("aliases: [unterminated"))
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = identity.ParseFile("empty.yaml", []byte("aliases:\n  Gabe Davis: \"\"\n"))
	assert.True(t, errors.IsValidationError(err))
}
