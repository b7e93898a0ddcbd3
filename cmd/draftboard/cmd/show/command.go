// Package show provides the show command.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/draftboard/internal/appcontext"
	"github.com/agentstation/draftboard/internal/cmd/globals"
	"github.com/agentstation/draftboard/internal/cmd/output"
	"github.com/agentstation/draftboard/internal/pipeline"
	"github.com/agentstation/draftboard/pkg/logging"
)

// NewCommand creates the show command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		GroupID: "core",
		Short:   "Print the organized board",
		Long: `Show prints the board for a league without rendering files. It uses the
cached dataset when one exists and fetches it otherwise.

Table output is the default on a terminal; piped output defaults to JSON.`,
		Example: `  draftboard show -s ppr -t 12
  draftboard show -s ppr -t 12 -o wide
  draftboard show -s half-ppr -t 10 -o yaml`,
		Args: cobra.NoArgs,
	}

	league := globals.AddLeagueFlags(cmd)
	paths := globals.AddPathFlags(cmd, false)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		format, err := output.ParseFormat(app.OutputFormat())
		if err != nil {
			return err
		}
		format = output.DetectFormat(string(format))

		settings, err := league.Settings()
		if err != nil {
			return err
		}

		opts := app.PipelineOptions()
		opts.Settings = settings
		opts.RankingsDir = globals.Override(paths.RankingsDir, opts.RankingsDir)
		opts.CacheDir = globals.Override(paths.CacheDir, opts.CacheDir)
		opts.SkipRender = true
		opts.MetricsFile = ""

		ctx := logging.WithLogger(cmd.Context(), app.Logger())
		out, err := pipeline.Run(ctx, opts)
		if err != nil {
			return err
		}
		return output.FormatBoard(cmd.OutOrStdout(), format, out.Board, settings, out.Report)
	}

	return cmd
}
