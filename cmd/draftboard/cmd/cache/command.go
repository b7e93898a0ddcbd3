// Package cache provides the cache command for managing JSON snapshots.
package cache

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/draftboard/internal/appcontext"
	snapshots "github.com/agentstation/draftboard/internal/cache"
	"github.com/agentstation/draftboard/internal/cmd/globals"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/league"
)

// NewCommand creates the cache command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		GroupID: "management",
		Short:   "Manage cached snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewClearCommand(app))
	return cmd
}

// NewClearCommand creates the cache clear subcommand.
func NewClearCommand(app appcontext.Interface) *cobra.Command {
	var (
		scoring    string
		teams      int
		year       int
		depthChart bool
		cacheDir   string
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the dataset and/or depth chart snapshot",
		Example: `  draftboard cache clear -s ppr -t 12
  draftboard cache clear --depth-chart
  draftboard cache clear -s ppr -t 12 --year 2023 --depth-chart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset := scoring != "" || teams != 0
			if !dataset && !depthChart {
				return errors.NewValidationError("scoring", "", "give --scoring and --teams, --depth-chart, or both")
			}

			store := snapshots.New(globals.Override(cacheDir, app.PipelineOptions().CacheDir))
			w := cmd.OutOrStdout()

			if dataset {
				settings, err := league.New(scoring, teams, year)
				if err != nil {
					return err
				}
				removed, err := store.ClearDataset(settings.Signature())
				if err != nil {
					return err
				}
				report(w, store.DatasetPath(settings.Signature()), removed)
			}
			if depthChart {
				removed, err := store.ClearDepthChart()
				if err != nil {
					return err
				}
				report(w, store.DepthChartPath(), removed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scoring, "scoring", "s", "", "Scoring format of the dataset snapshot")
	cmd.Flags().IntVarP(&teams, "teams", "t", 0, "League size of the dataset snapshot")
	cmd.Flags().IntVar(&year, "year", 0, "Year of the dataset snapshot (default: current year)")
	cmd.Flags().BoolVar(&depthChart, "depth-chart", false, "Remove the depth chart snapshot")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory for JSON snapshots")

	return cmd
}

func report(w io.Writer, path string, removed bool) {
	if removed {
		fmt.Fprintf(w, "removed %s\n", path)
		return
	}
	fmt.Fprintf(w, "no snapshot at %s\n", path)
}
