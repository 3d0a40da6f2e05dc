package output

import (
	"context"

	"recruitbot/internal/domain/entities"
)

// ScheduleSource fetches the conference day currently in progress.
// Failures are reported inside the result, never as a panic or a bare error.
type ScheduleSource interface {
	FetchCurrentDay(ctx context.Context) entities.ScheduleResult
}
