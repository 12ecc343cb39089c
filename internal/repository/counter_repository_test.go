package repository

import (
	"testing"
)

func TestFormatOrderID(t *testing.T) {
	testCases := []struct {
		year     int
		seq      int64
		expected string
	}{
		{2025, 1, "ORD-2025-00001"},
		{2025, 42, "ORD-2025-00042"},
		{2025, 99999, "ORD-2025-99999"},
		{2026, 100000, "ORD-2026-100000"}, // widens past the padding
	}

	for _, tc := range testCases {
		if got := FormatOrderID(tc.year, tc.seq); got != tc.expected {
			t.Errorf("FormatOrderID(%d, %d): expected %s, got %s", tc.year, tc.seq, tc.expected, got)
		}
	}
}
