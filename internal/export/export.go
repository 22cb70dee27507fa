// Package export serializes collection views to delimited text and parses
// them back. Column order is fixed per collection; encoding/csv supplies
// RFC 4180 quoting, so free-text fields with commas or quotes survive a
// round trip.
package export

// Collection names, used for export filenames and user-facing labels.
const (
	CollectionExpenses = "expenses"
	CollectionFuel     = "fuel"
	CollectionParking  = "parking"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02 15:04"
)

// Filename returns the download name for a collection export.
func Filename(collection string) string {
	return collection + "_export.csv"
}
