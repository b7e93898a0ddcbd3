// Package league describes the league settings a draft board is built for.
package league

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agentstation/draftboard/pkg/errors"
)

// Format is a fantasy scoring format.
type Format string

// Supported scoring formats.
const (
	FormatPPR      Format = "ppr"
	FormatHalfPPR  Format = "half-ppr"
	FormatStandard Format = "standard"
)

// Formats lists every supported scoring format.
var Formats = []Format{FormatPPR, FormatHalfPPR, FormatStandard}

// TeamCounts lists every supported league size.
var TeamCounts = []int{8, 10, 12, 14}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a scoring format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.NewValidationError("scoring", s, fmt.Sprintf("must be one of %s", formatList()))
	}
	return f, nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Settings identifies one board build.
type Settings struct {
	Format Format
	Teams  int
	Year   int
}

// New validates and returns settings. A zero year means the current year.
func New(format string, teams, year int) (Settings, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return Settings{}, err
	}
	if year == 0 {
		year = time.Now().Year()
	}
	s := Settings{Format: f, Teams: teams, Year: year}
	return s, s.Validate()
}

// Validate checks the settings against the supported values.
func (s Settings) Validate() error {
	if !slices.Contains(Formats, s.Format) {
		return errors.NewValidationError("scoring", s.Format, fmt.Sprintf("must be one of %s", formatList()))
	}
	if !slices.Contains(TeamCounts, s.Teams) {
		return errors.NewValidationError("teams", s.Teams, "must be one of 8, 10, 12, 14")
	}
	if s.Year < 2000 || s.Year > 2100 {
		return errors.NewValidationError("year", s.Year, "out of range")
	}
	return nil
}

// Signature is the cache key for these settings: <scoring>_<teams>_<year>.
func (s Settings) Signature() string {
	return fmt.Sprintf("%s_%d_%d", s.Format, s.Teams, s.Year)
}

// String implements fmt.Stringer.
func (s Settings) String() string {
	return fmt.Sprintf("%s scoring, %d teams, %d", s.Format, s.Teams, s.Year)
}
