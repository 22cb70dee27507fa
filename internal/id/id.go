package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Collection prefixes for record identifiers.
const (
	PrefixExpense = "EXP"
	PrefixFuel    = "FUEL"
	PrefixParking = "PARK"
)

// FormatRecordID returns a record ID like "EXP-00042".
func FormatRecordID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%05d", prefix, seq)
}

// ParseRecordID parses "EXP-00042" into prefix and sequence.
func ParseRecordID(recordID string) (prefix string, seq int, err error) {
	i := strings.LastIndex(recordID, "-")
	if i <= 0 || i == len(recordID)-1 {
		return "", 0, fmt.Errorf("invalid record ID format: %q", recordID)
	}

	seq, err = strconv.Atoi(recordID[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in record ID %q: %w", recordID, err)
	}

	return recordID[:i], seq, nil
}
