package output

import "context"

// Ledger is the durable set of event IDs already announced.
// Entries are never removed.
type Ledger interface {
	HasNotified(ctx context.Context, eventID string) (bool, error)
	MarkNotified(ctx context.Context, eventID string) error
}
