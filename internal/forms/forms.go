// Package forms coerces raw text form input into ledger records. Numeric
// fields parse leniently (invalid or empty text becomes zero); the only
// hard rule is that a record needs a shipment and its primary descriptive
// field, otherwise the submission is skipped and the caller keeps the draft.
package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateFormat is the calendar-date input format.
	DateFormat = "2006-01-02"
	// TimeFormat is the timestamp input format for parking intervals.
	TimeFormat = "2006-01-02 15:04"
)

// parseAmount parses a decimal text field, yielding zero for anything
// unparseable. Accepts a decimal comma.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseInt parses an integer text field, yielding zero when unparseable.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseDate parses a calendar date, yielding the zero time when unparseable.
func parseDate(s string) time.Time {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseTime parses a timestamp, yielding the zero time when unparseable or
// empty. A zero time means "not recorded".
func parseTime(s string) time.Time {
	t, err := time.Parse(TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func missing(s string) bool {
	return strings.TrimSpace(s) == ""
}
