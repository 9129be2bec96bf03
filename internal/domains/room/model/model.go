package model

import (
	"slices"

	"roombook/shared/model"
)

const (
	FieldName = "name"
)

type Room struct {
	ID           string
	Name         string
	Capacity     int
	Category     Category
	Equipment    []string
	Reservations []Interval
	model.Metadata
}

// Conflict returns the first reservation overlapping candidate.
func (r *Room) Conflict(candidate Interval) (Interval, bool) {
	for _, reservation := range r.Reservations {
		if reservation.Overlaps(candidate) {
			return reservation, true
		}
	}

	return Interval{}, false
}

// IsFreeDuring reports whether no reservation overlaps candidate.
func (r *Room) IsFreeDuring(candidate Interval) bool {
	_, busy := r.Conflict(candidate)

	return !busy
}

// Clone returns a copy that shares no slices with r.
func (r Room) Clone() Room {
	r.Equipment = slices.Clone(r.Equipment)
	r.Reservations = slices.Clone(r.Reservations)

	return r
}
