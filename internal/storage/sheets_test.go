package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordsFromValues(t *testing.T) {
	tests := []struct {
		name   string
		values [][]interface{}
		want   []map[string]string
	}{
		{
			name:   "empty sheet",
			values: nil,
			want:   nil,
		},
		{
			name:   "header only",
			values: [][]interface{}{{"Timestamp", "Recorder", "Member", "EvidenceRef", "Event"}},
			want:   []map[string]string{},
		},
		{
			name: "short row padded with empty cells",
			values: [][]interface{}{
				{"Timestamp", "Recorder", "Member", "EvidenceRef", "Event"},
				{"2025-11-05 10:30:00", "Alice", "Bob"},
			},
			want: []map[string]string{{
				"Timestamp":   "2025-11-05 10:30:00",
				"Recorder":    "Alice",
				"Member":      "Bob",
				"EvidenceRef": "",
				"Event":       "",
			}},
		},
		{
			name: "blank rows dropped and non-string cells rendered",
			values: [][]interface{}{
				{"Member", "Event", ""},
				{"", ""},
				{"Carol", 42.0, "ignored"},
			},
			want: []map[string]string{{"Member": "Carol", "Event": "42"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recordsFromValues(tt.values))
		})
	}
}

func TestCellsFromStrings_WhenValues_ThenSameOrder(t *testing.T) {
	cells := cellsFromStrings([]string{"a", "b"})

	assert.Equal(t, []interface{}{"a", "b"}, cells)
}
