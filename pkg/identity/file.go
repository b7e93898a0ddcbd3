package identity

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/draftboard/pkg/errors"
)

// File is the on-disk form of the alias table and favorites list.
//
//	aliases:
//	  Gabriel Davis: gabe_davis
//	favorites:
//	  - gabe_davis
//
// When Replace is false the file extends the built-in tables instead of
// replacing them.
type File struct {
	Replace   bool              `yaml:"replace"`
	Aliases   map[string]string `yaml:"aliases"`
	Favorites []string          `yaml:"favorites"`
}

// LoadFile reads an identity file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseFile(path, data)
}

// ParseFile decodes identity file contents and checks alias entries are non-empty.
func ParseFile(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	for name, key := range f.Aliases {
		if name == "" || key == "" {
			return nil, errors.NewValidationError("aliases", name, "alias name and key must be non-empty")
		}
	}
	return &f, nil
}

// Normalizer builds a Normalizer from the file. Alias targets are run through
// Transform so hand-written keys cannot drift from the key format.
func (f *File) Normalizer() *Normalizer {
	aliases := map[string]Key{}
	if !f.Replace {
		aliases = DefaultAliases()
	}
	for name, key := range f.Aliases {
		aliases[name] = Transform(key)
	}
	return NewNormalizer(aliases)
}

// FavoriteSet builds the favorites Set from the file. Keys are run through
// Transform like alias targets.
func (f *File) FavoriteSet() Set {
	var keys []Key
	if !f.Replace {
		keys = DefaultFavorites().Keys()
	}
	for _, k := range f.Favorites {
		keys = append(keys, Transform(k))
	}
	return NewSet(keys...)
}
