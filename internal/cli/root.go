// Package cli implements ledgerctl, the operator command line for the
// attendance ledger.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhima/attendance-ledger/internal/checkin"
	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/pkg/clock"
	"github.com/spf13/cobra"
)

// Ledger is a row source the CLI opens per invocation.
type Ledger interface {
	ledger.RowSource
	Close() error
}

// Env carries the process dependencies commands run against.
type Env struct {
	Open      func(ctx context.Context) (Ledger, error)
	Publisher checkin.EventPublisher
	Logger    logging.Logger
	Clock     clock.Clock
	JWTSecret []byte
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	env    Env
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for ledgerctl.
func NewRootCommand(env Env) *cobra.Command {
	if env.Logger == nil {
		env.Logger = logging.NewNoOpLogger()
	}
	if env.Clock == nil {
		env.Clock = clock.RealClock{}
	}
	opts := &RootOptions{env: env}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Attendance ledger operator tool",
		Long:  "Query attendance statistics and record check-ins directly against the configured ledger backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPercentCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewLeaderboardCommand(opts))
	cmd.AddCommand(NewCheckInCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// withLedger opens the ledger, runs fn and closes it again.
func (o *RootOptions) withLedger(ctx context.Context, out *OutputFormatter, fn func(adapter *ledger.Adapter) error) error {
	if o.env.Open == nil {
		return fail(out, errors.New("no ledger backend configured"))
	}
	rows, err := o.env.Open(ctx)
	if err != nil {
		return fail(out, fmt.Errorf("%w: open ledger: %w", ledger.ErrStoreUnavailable, err))
	}
	defer rows.Close()
	return fn(ledger.NewAdapter(rows, o.env.Logger))
}

// fail reports err in the selected format and converts it to an ExitError.
func fail(out *OutputFormatter, err error) error {
	var validation checkin.ValidationError
	switch {
	case errors.Is(err, ledger.ErrStoreUnavailable):
		_ = out.Error(CodeUnavailable, err.Error(), nil)
		return WrapExitError(ExitCommandError, "ledger unavailable", err)
	case errors.As(err, &validation),
		errors.Is(err, checkin.ErrSessionNotActive),
		errors.Is(err, checkin.ErrNoAttendeesSpecified),
		errors.Is(err, checkin.ErrTooManyAttendees):
		_ = out.Error(CodeRejected, err.Error(), nil)
		return WrapExitError(ExitFailure, "rejected", err)
	default:
		_ = out.Error(CodeInternal, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed", err)
	}
}
