package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

func TestDate(t *testing.T) {
	tests := []struct {
		setting string
		want    string
	}{
		{"", "23.01.2024"},
		{"dd.mm.yyyy", "23.01.2024"},
		{"dd/mm/yyyy", "23/01/2024"},
		{"mm/dd/yyyy", "01/23/2024"},
		{"yyyy-mm-dd", "2024-01-23"},
		{"Jan 02", "Jan 23"},
		{"Monday", "Tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.setting, func(t *testing.T) {
			require.Equal(t, tt.want, Date(testTime, tt.setting))
		})
	}
}

func TestTime(t *testing.T) {
	require.Equal(t, "15:04:05", Time(testTime, "24h"))
	require.Equal(t, "15:04:05", Time(testTime, ""))
	require.Equal(t, "15:04:05", Time(testTime, "bogus"))
	require.Equal(t, "3:04:05 PM", Time(testTime, "12h"))
}
