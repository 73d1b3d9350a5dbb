package booking_session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/workflow"
)

// WorkflowManager drives booking sessions through their steps
type WorkflowManager interface {
	Start(ctx context.Context) *workflow.Snapshot
	Get(id uuid.UUID) (*workflow.Snapshot, error)
	SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*workflow.Snapshot, error)
	SelectSlot(ctx context.Context, id uuid.UUID, hour int) (*workflow.Snapshot, error)
	SubmitDetails(ctx context.Context, id uuid.UUID, name, email, phone, serviceType, message string) (*workflow.Snapshot, error)
	Confirm(ctx context.Context, id uuid.UUID) (*workflow.Snapshot, error)
	Back(ctx context.Context, id uuid.UUID) (*workflow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
