package domain

import (
	"context"
	"strings"
	"time"
)

// SavedRecordsKey is the storage key holding the saved summaries list.
const SavedRecordsKey = "summaries"

// SavedRecord is a summary the user kept for later.
type SavedRecord struct {
	URL     string
	Summary string
	Date    time.Time
}

// Validate checks that the record can be stored.
func (r SavedRecord) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return NewValidationErr("summary cannot be empty")
	}
	if r.Date.IsZero() {
		return NewValidationErr("date cannot be empty")
	}
	return nil
}

// Matches reports whether the record URL or summary contains the query, ignoring case.
// An empty query matches everything.
func (r SavedRecord) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.URL), q) ||
		strings.Contains(strings.ToLower(r.Summary), q)
}

// FilterSavedRecords returns the records matching the query, keeping their order.
func FilterSavedRecords(records []SavedRecord, query string) []SavedRecord {
	out := make([]SavedRecord, 0, len(records))
	for _, r := range records {
		if r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}

// SavedRecordRepository persists the saved summaries list. The list is append-only and
// returned most-recent-first.
type SavedRecordRepository interface {
	// Prepend stores a record at the head of the list.
	Prepend(ctx context.Context, record SavedRecord) error
	// List returns every stored record, most recent first.
	List(ctx context.Context) ([]SavedRecord, error)
	// Clear empties the list.
	Clear(ctx context.Context) error
}

// MarkdownExport renders a summary as a markdown document.
func MarkdownExport(summary string) string {
	return "# SmartRead Summary\n\n" + summary
}

// ExportFileName is the file name exported summaries are downloaded as.
const ExportFileName = "summary.md"

// CurrentTimeProvider dates new saved records.
type CurrentTimeProvider interface {
	Now() time.Time
}
