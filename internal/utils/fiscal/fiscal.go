// Package fiscal implements Indian financial-year (April to March) date
// math used to build transaction list filters.
package fiscal

import (
	"fmt"
	"time"
)

// Current returns the financial year containing now, identified by its
// starting calendar year: Jan–Mar belong to the previous year's FY.
func Current(now time.Time) int {
	if now.Month() < time.April {
		return now.Year() - 1
	}
	return now.Year()
}

// Range returns the inclusive start and end dates of a financial year in
// wire format.
func Range(fy int) (start, end string) {
	return fmt.Sprintf("%d-04-01", fy), fmt.Sprintf("%d-03-31", fy+1)
}

// Label renders a financial year as "FY 2024-25".
func Label(fy int) string {
	return fmt.Sprintf("FY %d-%02d", fy, (fy+1)%100)
}

// MonthRange returns the start date and exclusive end date of the n-th
// month of a financial year (0 = April, 11 = March).
func MonthRange(fy, monthIdx int) (start, end string) {
	year := fy
	if monthIdx >= 9 { // Jan, Feb, Mar spill into the next calendar year
		year = fy + 1
	}
	month := (monthIdx+3)%12 + 1

	nextMonth, nextYear := month+1, year
	if month == 12 {
		nextMonth, nextYear = 1, year+1
	}
	return fmt.Sprintf("%d-%02d-01", year, month), fmt.Sprintf("%d-%02d-01", nextYear, nextMonth)
}
