package srs

import (
	"sort"
	"time"
)

// DueBy returns the items whose due time is at or before cutoff, ordered by
// ascending due time with ties broken by ID. The input slice is not
// modified, and calling DueBy twice with the same inputs yields the same
// sequence.
func DueBy(items []Item, cutoff time.Time) []Item {
	var due []Item
	for _, it := range items {
		if !it.Due.After(cutoff) {
			due = append(due, it)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].Due.Equal(due[j].Due) {
			return due[i].Due.Before(due[j].Due)
		}
		return due[i].ID < due[j].ID
	})
	return due
}
