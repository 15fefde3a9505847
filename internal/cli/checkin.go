package cli

import (
	"fmt"
	"io"

	"github.com/dhima/attendance-ledger/internal/checkin"
	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/internal/sessions"
	"github.com/spf13/cobra"
)

// CheckInOptions holds flags for the checkin command.
type CheckInOptions struct {
	*RootOptions
	Event    string
	By       string
	Evidence string
	Scope    string
}

// NewCheckInCommand creates the checkin command.
func NewCheckInCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckInOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "checkin <attendee>...",
		Short: "Record attendance for up to six members",
		Long: `Record attendance for an event. Members already credited for the event
are reported as duplicates and not written again.

The scope is opened for this invocation only.

Example:
  ledgerctl checkin --event raid-night --by Alice --evidence https://cdn.example.com/raid.png Bob Carol`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckIn(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Event, "event", "", "event name (required)")
	cmd.Flags().StringVar(&opts.By, "by", "", "who is recording the check-in (required)")
	cmd.Flags().StringVar(&opts.Evidence, "evidence", "", "evidence reference, e.g. an image URL (required)")
	cmd.Flags().StringVar(&opts.Scope, "scope", "", "activation scope (defaults to the event)")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("by")
	_ = cmd.MarkFlagRequired("evidence")

	return cmd
}

func runCheckIn(opts *CheckInOptions, attendees []string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	req := models.CheckInRequest{
		Scope:       opts.Scope,
		Event:       opts.Event,
		RecordedBy:  opts.By,
		EvidenceRef: opts.Evidence,
		Attendees:   attendees,
	}

	return opts.withLedger(cmd.Context(), out, func(adapter *ledger.Adapter) error {
		registry := sessions.NewRegistry()
		registry.Activate(req.ActivationScope())
		svc := checkin.NewServiceWithClock(adapter, registry, opts.env.Publisher, opts.env.Logger, opts.env.Clock)

		outcomes, err := svc.CheckIn(cmd.Context(), req)
		if err != nil {
			if len(outcomes) > 0 {
				renderOutcomes(cmd.ErrOrStderr(), checkin.NewResponse(req, outcomes))
			}
			return fail(out, err)
		}

		resp := checkin.NewResponse(req, outcomes)
		message := fmt.Sprintf("%d recorded, %d already present", resp.Recorded, resp.Duplicates)
		return out.Success(resp, message, func(w io.Writer) {
			renderOutcomes(w, resp)
		})
	})
}

func renderOutcomes(w io.Writer, resp models.CheckInResponse) {
	for _, o := range resp.Outcomes {
		fmt.Fprintf(w, "  %-24s %s\n", o.Member, o.Outcome)
	}
}
