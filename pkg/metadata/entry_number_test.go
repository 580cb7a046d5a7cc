package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEntryNumber(t *testing.T) {
	tests := []struct {
		name      string
		entryType EntryType
		date      time.Time
		sequence  int
		expected  string
	}{
		{
			name:      "First Issue Of The Day",
			entryType: EntryTypeIssue,
			date:      time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC),
			sequence:  1,
			expected:  "ISSUE-20250101-0001",
		},
		{
			name:      "Receipt With Wide Sequence",
			entryType: EntryTypeReceipt,
			date:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			sequence:  342,
			expected:  "RECEIPT-20251231-0342",
		},
		{
			name:      "Correction",
			entryType: EntryTypeCorrection,
			date:      time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC),
			sequence:  12,
			expected:  "CORRECTION-20260901-0012",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number := NewEntryNumber(tt.entryType, tt.date, tt.sequence)
			assert.Equal(t, tt.expected, number.Generate())
		})
	}
}
