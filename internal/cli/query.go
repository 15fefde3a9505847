package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/internal/stats"
	"github.com/spf13/cobra"
)

const noEventsMessage = "no events recorded yet"

// NewPercentCommand creates the percent command.
func NewPercentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "percent <member>",
		Short: "Show a member's attendance percentage",
		Long: `Show the share of all distinct ledger events the member attended.

Member names match exactly, including case.

Example:
  ledgerctl percent Bob`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPercent(opts, args[0], cmd)
		},
	}
}

func runPercent(opts *RootOptions, member string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	return opts.withLedger(cmd.Context(), out, func(adapter *ledger.Adapter) error {
		engine := stats.NewEngineWithClock(adapter, opts.env.Logger, opts.env.Clock)
		result, err := engine.Percentage(cmd.Context(), member)
		if errors.Is(err, stats.ErrNoEventsRecorded) {
			return out.Success(models.PercentageResult{Member: member}, noEventsMessage, nil)
		}
		if err != nil {
			return fail(out, err)
		}
		return out.Success(result, "", func(w io.Writer) {
			fmt.Fprintf(w, "%s attended %d of %d events (%.2f%%)\n", result.Member, result.Attended, result.Total, result.Percent)
		})
	})
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "stats <member>",
		Short: "Show a member's attendance over time",
		Long: `Show distinct events attended overall, in the last 15 days and in the
current calendar month (UTC).

Example:
  ledgerctl stats Bob --at 2025-11-20T12:00:00Z`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, args[0], at, cmd)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate windows at this RFC 3339 instant instead of now")

	return cmd
}

func runStats(opts *RootOptions, member, at string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	now := opts.env.Clock.Now()
	if raw := strings.TrimSpace(at); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = out.Error(CodeRejected, fmt.Sprintf("invalid --at %q: expected RFC 3339", raw), nil)
			return WrapExitError(ExitFailure, "invalid --at", err)
		}
		now = parsed.UTC()
	}

	return opts.withLedger(cmd.Context(), out, func(adapter *ledger.Adapter) error {
		engine := stats.NewEngineWithClock(adapter, opts.env.Logger, opts.env.Clock)
		result, err := engine.TimeWindowedStats(cmd.Context(), member, now)
		if err != nil {
			return fail(out, err)
		}
		return out.Success(result, "", func(w io.Writer) {
			fmt.Fprintf(w, "Member:        %s\n", result.Member)
			fmt.Fprintf(w, "Total events:  %d\n", result.TotalEvents)
			fmt.Fprintf(w, "Attended:      %d\n", result.Attended)
			fmt.Fprintf(w, "Last 15 days:  %d\n", result.Last15Days)
			fmt.Fprintf(w, "This month:    %d\n", result.ThisMonth)
		})
	})
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank every member by attendance",
		Long: `Rank every member by attendance percentage. Ties are ordered by name.

Example:
  ledgerctl leaderboard --limit 10`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(opts, limit, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the top N entries (0 shows all)")

	return cmd
}

func runLeaderboard(opts *RootOptions, limit int, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	return opts.withLedger(cmd.Context(), out, func(adapter *ledger.Adapter) error {
		engine := stats.NewEngineWithClock(adapter, opts.env.Logger, opts.env.Clock)
		report, err := engine.LeaderboardReport(cmd.Context(), engine.Now())
		if errors.Is(err, stats.ErrNoEventsRecorded) {
			report.Entries = []models.LeaderboardEntry{}
			return out.Success(report, noEventsMessage, nil)
		}
		if err != nil {
			return fail(out, err)
		}
		if limit > 0 && len(report.Entries) > limit {
			report.Entries = report.Entries[:limit]
		}
		return out.Success(report, "", func(w io.Writer) {
			fmt.Fprintf(w, "Leaderboard (%d events)\n", report.TotalEvents)
			for _, e := range report.Entries {
				fmt.Fprintf(w, "%3d. %-24s %4d  %6.2f%%\n", e.Rank, e.Member, e.Attended, e.Percent)
			}
		})
	})
}
