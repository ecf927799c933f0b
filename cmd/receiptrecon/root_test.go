package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateWindow(t *testing.T) {
	t.Run("explicit window", func(t *testing.T) {
		start, end, err := parseDateWindow("2026-03-14", "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("defaults to yesterday", func(t *testing.T) {
		start, end, err := parseDateWindow("", "")
		require.NoError(t, err)

		wantYear, wantMonth, wantDay := time.Now().AddDate(0, 0, -1).Date()
		gotYear, gotMonth, gotDay := start.Date()
		assert.Equal(t, wantYear, gotYear)
		assert.Equal(t, wantMonth, gotMonth)
		assert.Equal(t, wantDay, gotDay)
		assert.Equal(t, start, end)
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, _, err := parseDateWindow("03/14/2026", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid start date")
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, _, err := parseDateWindow("", "tomorrow")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid end date")
	})
}

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact width kept", input: "7000000001", want: "7000000001"},
		{name: "surrounding whitespace trimmed", input: " 7000000001 ", want: "7000000001"},
		{name: "short filter dropped", input: "700001", want: ""},
		{name: "long filter dropped", input: "70000000011", want: ""},
		{name: "empty filter dropped", input: "", want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, normalizeFilter(test.input))
		})
	}
}
