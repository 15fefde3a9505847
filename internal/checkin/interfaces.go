package checkin

import (
	"context"

	"github.com/dhima/attendance-ledger/internal/models"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
)

// LedgerStore is the read-then-append access the recorder needs.
type LedgerStore interface {
	ReadAll(ctx context.Context) ([]models.AttendanceRecord, error)
	Append(ctx context.Context, rec models.AttendanceRecord) error
}

// SessionChecker reports whether a scope currently accepts check-ins.
type SessionChecker interface {
	IsActive(scope string) bool
}

// EventPublisher abstracts the Kafka publisher for testability.
type EventPublisher interface {
	Publish(ctx context.Context, env platformEvents.Envelope) error
}
