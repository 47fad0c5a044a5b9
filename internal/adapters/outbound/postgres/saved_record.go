package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/araddon/dateparse"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// storedRecord is the JSON shape of a saved summary inside the kv_store list.
type storedRecord struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
}

// SavedRecordRepository is a PostgreSQL implementation of domain.SavedRecordRepository.
// The whole list lives in one kv_store row as a JSON array, most recent first.
type SavedRecordRepository struct {
	db    *sql.DB
	key   string
	pqsql squirrel.StatementBuilderType
}

// NewSavedRecordRepository creates a new instance of SavedRecordRepository.
func NewSavedRecordRepository(db *sql.DB) SavedRecordRepository {
	return SavedRecordRepository{
		db:    db,
		key:   domain.SavedRecordsKey,
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// Prepend stores a record at the head of the list. The concatenation runs in the
// database, so concurrent saves never overwrite each other.
func (r SavedRecordRepository) Prepend(ctx context.Context, record domain.SavedRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("key", r.key),
		attribute.String("url", record.URL),
	))
	defer span.End()

	head, err := json.Marshal([]storedRecord{{
		URL:     record.URL,
		Summary: record.Summary,
		Date:    record.Date.UTC().Format(time.RFC3339Nano),
	}})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal saved record: %w", err)
	}

	_, err = r.pqsql.
		Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(r.key, squirrel.Expr("?::jsonb", head), squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
            value = EXCLUDED.value || kv_store.value,
            updated_at = EXCLUDED.updated_at`).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to prepend saved record: %w", err)
	}
	return nil
}

// List returns every stored record, most recent first.
func (r SavedRecordRepository) List(ctx context.Context) ([]domain.SavedRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("key", r.key),
	))
	defer span.End()

	var raw []byte
	err := r.pqsql.
		Select("value").
		From("kv_store").
		Where(squirrel.Eq{"key": r.key}).
		QueryRowContext(spanCtx).
		Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return []domain.SavedRecord{}, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to query saved records: %w", err)
	}

	var stored []storedRecord
	err = json.Unmarshal(raw, &stored)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to unmarshal saved records: %w", err)
	}

	records := make([]domain.SavedRecord, 0, len(stored))
	for _, s := range stored {
		records = append(records, domain.SavedRecord{
			URL:     s.URL,
			Summary: s.Summary,
			Date:    parseStoredDate(s.Date),
		})
	}
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// Clear empties the list.
func (r SavedRecordRepository) Clear(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("key", r.key),
	))
	defer span.End()

	_, err := r.pqsql.
		Delete("kv_store").
		Where(squirrel.Eq{"key": r.key}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to clear saved records: %w", err)
	}
	return nil
}

// parseStoredDate reads the date of a stored record. Records written by older clients
// may carry locale-formatted dates; unreadable dates become the zero time.
func parseStoredDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// InitSavedRecordRepository is a Symbiont initializer for SavedRecordRepository.
type InitSavedRecordRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SavedRecordRepository in the dependency container.
func (i InitSavedRecordRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SavedRecordRepository](NewSavedRecordRepository(i.DB))
	return ctx, nil
}
