package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/strmsync/strmsync/internal/cmd/output"
)

// NewRunCommand creates the run command: one reconciliation pass.
func (a *App) NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute one reconciliation pass",
		Long: `Run fetches every configured library mapping, merges them, and brings
the pointer-file tree under the media root in line with the result. The
pass report is printed to stdout in the selected format.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Strmsync()
			if err != nil {
				return err
			}

			report, err := client.Run(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := output.NewFormatter(output.Format(a.config.Format))
			if err != nil {
				return err
			}
			return formatter.Format(cmd.OutOrStdout(), report)
		},
	}
}

// NewWatchCommand creates the watch command: reconcile now, then on an interval.
func (a *App) NewWatchCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconcile continuously on a fixed interval",
		Long: `Watch runs one reconciliation pass immediately, then repeats on the
configured interval until interrupted. A trigger that fires while the
previous pass is still running is skipped, not queued.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval > 0 {
				a.config.Interval = interval
			}

			client, err := a.Strmsync()
			if err != nil {
				return err
			}

			// Initial pass at startup; its failures are already isolated
			// and reported, so only the guard error can surface here.
			if _, err := client.Run(cmd.Context()); err != nil {
				return err
			}

			if err := client.ScheduleOn(); err != nil {
				return err
			}
			defer client.ScheduleOff() //nolint:errcheck

			a.logger.Info().
				Dur("interval", a.config.Interval).
				Msg("Watching for changes")

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "override the reconciliation interval (e.g. 30m)")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strmsync %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
