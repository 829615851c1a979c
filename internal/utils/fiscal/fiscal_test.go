package fiscal_test

import (
	"testing"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	assert.Equal(t, 2025, fiscal.Current(date(2025, time.April, 1)))
	assert.Equal(t, 2025, fiscal.Current(date(2025, time.December, 31)))
	assert.Equal(t, 2025, fiscal.Current(date(2026, time.March, 31)))
	assert.Equal(t, 2024, fiscal.Current(date(2025, time.March, 31)))
	assert.Equal(t, 2025, fiscal.Current(date(2026, time.January, 1)))
}

func TestRange(t *testing.T) {
	start, end := fiscal.Range(2024)
	assert.Equal(t, "2024-04-01", start)
	assert.Equal(t, "2025-03-31", end)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "FY 2024-25", fiscal.Label(2024))
	assert.Equal(t, "FY 2029-30", fiscal.Label(2029))
	assert.Equal(t, "FY 2099-00", fiscal.Label(2099))
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		idx   int
		start string
		end   string
	}{
		{0, "2024-04-01", "2024-05-01"},  // April
		{8, "2024-12-01", "2025-01-01"},  // December
		{9, "2025-01-01", "2025-02-01"},  // January spills into next year
		{11, "2025-03-01", "2025-04-01"}, // March
	}
	for _, tt := range tests {
		start, end := fiscal.MonthRange(2024, tt.idx)
		assert.Equal(t, tt.start, start, "month %d", tt.idx)
		assert.Equal(t, tt.end, end, "month %d", tt.idx)
	}
}
