// Package globals provides the flag sets shared by the board commands.
package globals

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/draftboard/pkg/league"
)

// LeagueFlags selects the board a command works on.
type LeagueFlags struct {
	Scoring string
	Teams   int
	Year    int
}

// AddLeagueFlags adds --scoring, --teams and --year to cmd. Scoring and
// teams are marked required.
func AddLeagueFlags(cmd *cobra.Command) *LeagueFlags {
	flags := &LeagueFlags{}

	cmd.Flags().StringVarP(&flags.Scoring, "scoring", "s", "",
		"Scoring format: "+formats())
	cmd.Flags().IntVarP(&flags.Teams, "teams", "t", 0,
		"League size: 8, 10, 12 or 14")
	cmd.Flags().IntVar(&flags.Year, "year", 0,
		"Draft year (default: current year)")

	_ = cmd.MarkFlagRequired("scoring")
	_ = cmd.MarkFlagRequired("teams")
	_ = cmd.RegisterFlagCompletionFunc("scoring", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(formats(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return flags
}

// Settings validates the flags.
func (f *LeagueFlags) Settings() (league.Settings, error) {
	return league.New(f.Scoring, f.Teams, f.Year)
}

func formats() string {
	names := make([]string, len(league.Formats))
	for i, f := range league.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// PathFlags override the configured directories for one invocation.
type PathFlags struct {
	RankingsDir string
	OutputDir   string
	CacheDir    string
}

// AddPathFlags adds the directory override flags to cmd. --output-dir is
// only added for commands that render.
func AddPathFlags(cmd *cobra.Command, renders bool) *PathFlags {
	flags := &PathFlags{}

	cmd.Flags().StringVar(&flags.RankingsDir, "rankings-dir", "",
		"Directory holding <scoring>/{qb,rb,wr,te}.csv")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", "",
		"Directory for JSON snapshots")
	if renders {
		cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "",
			"Directory for rendered boards")
	}

	return flags
}

// Override returns value when set, fallback otherwise.
func Override(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// Describe is a short human label for settings, e.g. "ppr/12 teams/2023".
func Describe(s league.Settings) string {
	return fmt.Sprintf("%s/%d teams/%d", s.Format, s.Teams, s.Year)
}
