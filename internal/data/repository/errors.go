package repository

import "errors"

// ErrBedTaken is returned when a conditional reservation write finds a
// confirmed reservation already holding the bed for an overlapping range.
// This is the losing side of the admission race, not a store failure.
var ErrBedTaken = errors.New("bed already reserved for an overlapping date range")
