package auditlog

import (
	"context"
	"encoding/json"
)

// Entry is one append-only audit row: the raw ask plus booking, preferences
// and final response serialized as JSON text. Rows are write-once and never
// read back by this service.
type Entry struct {
	RequestID   string
	NLUQuery    string
	Booking     json.RawMessage
	Preferences json.RawMessage
	Response    json.RawMessage
}

// Repository persists audit entries. Callers treat failures as observability
// events only; an insert error must never alter the client response.
type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
}
