// Package players defines unified player records and the insertion-ordered
// dataset the merge pipeline accumulates them in.
package players

import (
	"math"
	"strings"
)

// Player is a unified record. The primary fields come from the ADP source;
// the pointer fields are set only by the enrichment stage that owns them.
type Player struct {
	PlayerID     int     `json:"player_id" yaml:"player_id"`
	Name         string  `json:"name" yaml:"name"`
	Position     string  `json:"position" yaml:"position"`
	Team         string  `json:"team" yaml:"team"`
	ADP          float64 `json:"adp" yaml:"adp"`
	ADPFormatted string  `json:"adp_formatted,omitempty" yaml:"adp_formatted,omitempty"`
	TimesDrafted int     `json:"times_drafted,omitempty" yaml:"times_drafted,omitempty"`
	High         int     `json:"high,omitempty" yaml:"high,omitempty"`
	Low          int     `json:"low,omitempty" yaml:"low,omitempty"`
	Stdev        float64 `json:"stdev,omitempty" yaml:"stdev,omitempty"`
	Bye          int     `json:"bye,omitempty" yaml:"bye,omitempty"`

	// Rankings
	Rank  *int  `json:"rank,omitempty" yaml:"rank,omitempty"`
	Andy  *int  `json:"andy,omitempty" yaml:"andy,omitempty"`
	Mike  *int  `json:"mike,omitempty" yaml:"mike,omitempty"`
	Jason *int  `json:"jason,omitempty" yaml:"jason,omitempty"`
	MyGuy *bool `json:"my_guy,omitempty" yaml:"my_guy,omitempty"`

	// Depth chart
	DepthOrder        *int `json:"depth_order,omitempty" yaml:"depth_order,omitempty"`
	DepthDisplayOrder *int `json:"depth_display_order,omitempty" yaml:"depth_display_order,omitempty"`
}

// HasValidADP reports whether ADP is finite and positive.
func (p *Player) HasValidADP() bool {
	return !math.IsNaN(p.ADP) && !math.IsInf(p.ADP, 0) && p.ADP > 0
}

// PositionKey returns the lowercased position.
func (p *Player) PositionKey() string {
	return strings.ToLower(strings.TrimSpace(p.Position))
}

// IsFavorite reports whether the favorite flag is set and true.
func (p *Player) IsFavorite() bool {
	return p.MyGuy != nil && *p.MyGuy
}

// HasRankings reports whether the ranking stage populated the numeric fields.
func (p *Player) HasRankings() bool {
	return p.Rank != nil
}

// SetRankings sets all four ranking values together.
func (p *Player) SetRankings(rank, andy, mike, jason int) {
	p.Rank, p.Andy, p.Mike, p.Jason = &rank, &andy, &mike, &jason
}

// SetFavorite sets the favorite flag.
func (p *Player) SetFavorite(favorite bool) {
	p.MyGuy = &favorite
}

// SetDepth sets both depth-chart fields. Nil values stay unset.
func (p *Player) SetDepth(order, displayOrder *int) {
	p.DepthOrder = cloneInt(order)
	p.DepthDisplayOrder = cloneInt(displayOrder)
}

// Clone returns a deep copy.
func (p *Player) Clone() *Player {
	c := *p
	c.Rank = cloneInt(p.Rank)
	c.Andy = cloneInt(p.Andy)
	c.Mike = cloneInt(p.Mike)
	c.Jason = cloneInt(p.Jason)
	c.DepthOrder = cloneInt(p.DepthOrder)
	c.DepthDisplayOrder = cloneInt(p.DepthDisplayOrder)
	if p.MyGuy != nil {
		v := *p.MyGuy
		c.MyGuy = &v
	}
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
