// Package query produces filtered, sorted views over collection snapshots.
// Views never mutate or alias store state; callers pass in the snapshot a
// Store list method returned and get back an independent ordered slice.
package query

import (
	"sort"
	"time"
)

// All is the sentinel filter value meaning "no constraint on this dimension".
const All = ""

// Direction selects the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ordered sorts in place with a stable sort, so records comparing equal keep
// the snapshot's insertion order in both directions.
func ordered[T any](records []T, cmp func(a, b T) int, dir Direction) []T {
	sort.SliceStable(records, func(i, j int) bool {
		c := cmp(records[i], records[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return records
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
