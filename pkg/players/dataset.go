package players

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentstation/draftboard/pkg/identity"
)

// Dataset maps identity keys to players and remembers first-insertion order.
// The zero value is not usable; call NewDataset.
type Dataset struct {
	order   []identity.Key
	players map[identity.Key]*Player
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{players: make(map[identity.Key]*Player)}
}

// Put stores p under key. It returns true when an existing record was
// replaced; the key keeps its original position.
func (d *Dataset) Put(key identity.Key, p *Player) (replaced bool) {
	if _, ok := d.players[key]; ok {
		d.players[key] = p
		return true
	}
	d.order = append(d.order, key)
	d.players[key] = p
	return false
}

// Get returns the player for key.
func (d *Dataset) Get(key identity.Key) (*Player, bool) {
	p, ok := d.players[key]
	return p, ok
}

// Has reports whether key is present.
func (d *Dataset) Has(key identity.Key) bool {
	_, ok := d.players[key]
	return ok
}

// Len returns the number of players.
func (d *Dataset) Len() int {
	return len(d.order)
}

// Keys returns the keys in insertion order.
func (d *Dataset) Keys() []identity.Key {
	keys := make([]identity.Key, len(d.order))
	copy(keys, d.order)
	return keys
}

// Each calls fn for every player in insertion order until fn returns false.
func (d *Dataset) Each(fn func(identity.Key, *Player) bool) {
	for _, k := range d.order {
		if !fn(k, d.players[k]) {
			return
		}
	}
}

// Players returns the players in insertion order.
func (d *Dataset) Players() []*Player {
	out := make([]*Player, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.players[k])
	}
	return out
}

// MarshalJSON encodes the dataset as a JSON object whose members follow
// insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.players[k])
		if err != nil {
			return nil, fmt.Errorf("encoding player %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping member order.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dataset: expected JSON object, got %v", tok)
	}

	fresh := NewDataset()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("dataset: expected string key, got %v", tok)
		}
		var p Player
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("dataset: decoding %s: %w", key, err)
		}
		fresh.Put(identity.Key(key), &p)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = *fresh
	return nil
}
