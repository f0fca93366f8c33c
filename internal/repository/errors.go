// Package repository implements data access over the key-value store.
// This file defines the sentinel errors shared by the repositories so that
// higher layers such as handlers can distinguish failure scenarios with
// errors.Is.  For example, ErrSlotTaken is a legitimate business conflict
// that handlers translate into an HTTP 409 response, while
// ErrAllocationExhausted is a capacity alarm worth operational attention.
package repository

import "errors"

// ErrSlotTaken is returned when a (date, time-slot) pair is already locked
// by a different booking.  The conflict is about slot ownership, not id
// collision — retrying with a new id would not change the outcome.
var ErrSlotTaken = errors.New("slot already booked")

// ErrAllocationExhausted is returned when no free sequential id could be
// found within the probe bound for a date.
var ErrAllocationExhausted = errors.New("could not allocate a unique id for this date")

// ErrNotFound is returned when a requested record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")
