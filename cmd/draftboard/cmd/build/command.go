// Package build provides the build command.
package build

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/draftboard/internal/appcontext"
	"github.com/agentstation/draftboard/internal/cmd/globals"
	"github.com/agentstation/draftboard/internal/pipeline"
	"github.com/agentstation/draftboard/pkg/logging"
)

// NewCommand creates the build command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		clearCache      bool
		clearDepthCache bool
		aliasesFile     string
		metricsFile     string
	)

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "core",
		Short:   "Fetch, merge and render a draft board",
		Long: `Build fetches ADP data for the league, merges the local ranking CSVs and
the depth chart (when SPORTSDATA_KEY is set), and writes the HTML, PDF and
Markdown boards.

The merged dataset is cached per scoring/teams/year; later builds reuse it
unless --clear-cache is given.`,
		Example: `  draftboard build -s ppr -t 12
  draftboard build --scoring half-ppr --teams 10 --clear-cache
  draftboard build -s standard -t 8 --year 2023 --output-dir ./boards`,
		Args: cobra.NoArgs,
	}

	league := globals.AddLeagueFlags(cmd)
	paths := globals.AddPathFlags(cmd, true)
	cmd.Flags().BoolVarP(&clearCache, "clear-cache", "c", false,
		"Rebuild the merged dataset instead of using the snapshot")
	cmd.Flags().BoolVar(&clearDepthCache, "clear-depth-cache", false,
		"Refetch the depth chart instead of using the snapshot")
	cmd.Flags().StringVar(&aliasesFile, "aliases-file", "",
		"YAML file extending the name aliases and favorites")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "",
		"Write run metrics to this Prometheus textfile")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		settings, err := league.Settings()
		if err != nil {
			return err
		}

		opts := app.PipelineOptions()
		opts.Settings = settings
		opts.RankingsDir = globals.Override(paths.RankingsDir, opts.RankingsDir)
		opts.OutputDir = globals.Override(paths.OutputDir, opts.OutputDir)
		opts.CacheDir = globals.Override(paths.CacheDir, opts.CacheDir)
		opts.AliasesFile = globals.Override(aliasesFile, opts.AliasesFile)
		opts.MetricsFile = globals.Override(metricsFile, opts.MetricsFile)
		opts.ClearCache = clearCache
		opts.ClearDepthCache = clearDepthCache

		ctx := logging.WithLogger(cmd.Context(), app.Logger())
		out, err := pipeline.Run(ctx, opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, path := range out.Artifacts {
			fmt.Fprintln(w, path)
		}
		source := "fresh data"
		if out.FromCache {
			source = "cached data"
		}
		fmt.Fprintf(w, "%s: %d players from %s, %s\n",
			globals.Describe(settings), out.Board.Len(), source, out.Report.Summary())
		return nil
	}

	return cmd
}
