// Package checkin records attendance without duplicating (event, member) pairs.
package checkin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/pkg/clock"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
	"go.uber.org/zap"
)

// Service records check-ins against the ledger.
//
// Uniqueness of (event, member) is enforced at write time: every check-in
// re-reads the full ledger before deciding what to append. Check-ins for
// the same event are serialized inside this process; writers in other
// processes can still race and produce a duplicate row.
type Service struct {
	store     LedgerStore
	sessions  SessionChecker
	publisher EventPublisher
	clock     clock.Clock
	logger    logging.Logger
	locks     *eventLocks
}

// NewService creates a recorder using the real clock. publisher may be nil.
func NewService(store LedgerStore, sessions SessionChecker, publisher EventPublisher, logger logging.Logger) *Service {
	return NewServiceWithClock(store, sessions, publisher, logger, clock.RealClock{})
}

// NewServiceWithClock creates a recorder with an injected clock.
func NewServiceWithClock(store LedgerStore, sessions SessionChecker, publisher EventPublisher, logger logging.Logger, clk clock.Clock) *Service {
	return &Service{
		store:     store,
		sessions:  sessions,
		publisher: publisher,
		clock:     clk,
		logger:    logger.With(zap.String("service", "checkin")),
		locks:     newEventLocks(),
	}
}

// CheckIn records each attendee of req for req.Event and returns one outcome
// per attendee in input order.
//
// If an append fails, the outcomes collected so far are returned together
// with an error wrapping ledger.ErrStoreUnavailable; rows already appended
// stay in the ledger.
func (s *Service) CheckIn(ctx context.Context, req models.CheckInRequest) ([]models.AttendeeOutcome, error) {
	event := strings.TrimSpace(req.Event)
	recordedBy := strings.TrimSpace(req.RecordedBy)
	evidence := strings.TrimSpace(req.EvidenceRef)
	switch {
	case event == "":
		return nil, NewValidationError("event is required")
	case recordedBy == "":
		return nil, NewValidationError("recorded_by is required")
	case evidence == "":
		return nil, NewValidationError("evidence_ref is required")
	}

	scope := req.ActivationScope()
	if !s.sessions.IsActive(scope) {
		s.logger.Info("check-in rejected, session not active",
			zap.String("scope", scope),
			zap.String("event", event),
		)
		return nil, ErrSessionNotActive
	}

	attendees := normalizeAttendees(req.Attendees)
	if len(attendees) == 0 {
		return nil, ErrNoAttendeesSpecified
	}
	if len(attendees) > models.MaxAttendeesPerCheckIn {
		return nil, ErrTooManyAttendees
	}

	unlock := s.locks.lock(event)
	defer unlock()

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	present := membersOf(records, event)

	timestamp := models.FormatTimestamp(s.clock.Now())
	outcomes := make([]models.AttendeeOutcome, 0, len(attendees))
	for _, member := range attendees {
		if _, dup := present[member]; dup {
			outcomes = append(outcomes, models.AttendeeOutcome{Member: member, Outcome: models.OutcomeDuplicate})
			s.logger.Debug("duplicate attendee",
				zap.String("event", event),
				zap.String("member", member),
			)
			continue
		}

		rec := models.AttendanceRecord{
			Timestamp:   timestamp,
			RecordedBy:  recordedBy,
			Member:      member,
			EvidenceRef: evidence,
			Event:       event,
		}
		if err := s.store.Append(ctx, rec); err != nil {
			s.logger.Error("failed to append attendance",
				zap.String("event", event),
				zap.String("member", member),
				zap.Int("recorded_before_failure", len(outcomes)),
				zap.Error(err),
			)
			return outcomes, fmt.Errorf("record %s: %w", member, err)
		}
		present[member] = struct{}{}
		outcomes = append(outcomes, models.AttendeeOutcome{Member: member, Outcome: models.OutcomeRecorded})
		s.publish(ctx, rec)
	}

	s.logger.Info("check-in processed",
		zap.String("event", event),
		zap.String("recorded_by", recordedBy),
		zap.Int("attendees", len(attendees)),
		zap.Int("recorded", countOutcome(outcomes, models.OutcomeRecorded)),
	)
	return outcomes, nil
}

// publish is best effort: the row is already in the ledger.
func (s *Service) publish(ctx context.Context, rec models.AttendanceRecord) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, platformEvents.RecordedEnvelope(rec, s.clock.Now())); err != nil {
		s.logger.Warn("failed to publish attendance event",
			zap.String("event", rec.Event),
			zap.String("member", rec.Member),
			zap.Error(err),
		)
	}
}

// NewResponse summarizes a check-in for the presentation layer.
func NewResponse(req models.CheckInRequest, outcomes []models.AttendeeOutcome) models.CheckInResponse {
	return models.CheckInResponse{
		Event:        strings.TrimSpace(req.Event),
		RecordedBy:   strings.TrimSpace(req.RecordedBy),
		EvidenceRef:  strings.TrimSpace(req.EvidenceRef),
		EvidenceName: req.EvidenceName,
		Outcomes:     outcomes,
		Recorded:     countOutcome(outcomes, models.OutcomeRecorded),
		Duplicates:   countOutcome(outcomes, models.OutcomeDuplicate),
	}
}

// membersOf returns the members already credited for event.
func membersOf(records []models.AttendanceRecord, event string) map[string]struct{} {
	members := make(map[string]struct{})
	for _, rec := range records {
		if rec.Event == event {
			members[rec.Member] = struct{}{}
		}
	}
	return members
}

func normalizeAttendees(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func countOutcome(outcomes []models.AttendeeOutcome, want models.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Outcome == want {
			n++
		}
	}
	return n
}
