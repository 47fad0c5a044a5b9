package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSavedRecord_Validate(t *testing.T) {
	date := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		record    SavedRecord
		expectErr bool
	}{
		"valid": {
			record: SavedRecord{URL: "https://example.com", Summary: "* point", Date: date},
		},
		"valid-without-url": {
			record: SavedRecord{Summary: "* point", Date: date},
		},
		"empty-summary": {
			record:    SavedRecord{URL: "https://example.com", Summary: "  ", Date: date},
			expectErr: true,
		},
		"missing-date": {
			record:    SavedRecord{URL: "https://example.com", Summary: "* point"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.expectErr {
				assert.Equal(t, ErrorKind_InvalidInput, KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterSavedRecords(t *testing.T) {
	records := []SavedRecord{
		{URL: "https://news.example.com/ai", Summary: "* On-device models are getting faster"},
		{URL: "https://blog.example.com/go", Summary: "* Go 1.24 released"},
		{URL: "https://example.com/AI-safety", Summary: "* Alignment research"},
	}

	tests := map[string]struct {
		query    string
		expected []SavedRecord
	}{
		"empty-query-matches-all": {
			query:    " ",
			expected: records,
		},
		"matches-url-ignoring-case": {
			query:    "ai",
			expected: []SavedRecord{records[0], records[2]},
		},
		"matches-summary": {
			query:    "released",
			expected: []SavedRecord{records[1]},
		},
		"no-match": {
			query:    "rust",
			expected: []SavedRecord{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterSavedRecords(records, tt.query))
		})
	}
}

func TestMarkdownExport(t *testing.T) {
	assert.Equal(t, "# SmartRead Summary\n\n* First\n* Second", MarkdownExport("* First\n* Second"))
}
