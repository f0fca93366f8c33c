package model

import "time"

// Appointment statuses.  An appointment starts as requested, may be
// confirmed by an administrator, and may be cancelled from either state.
// Cancelled is terminal: no transition ever leaves it.
const (
    StatusRequested = "requested"
    StatusConfirmed = "confirmed"
    StatusCancelled = "cancelled"
)

// Appointment is a booked (or requested) visit for one date/time slot.
// Its id is the human-readable sequential form "<YYYYMMDD>-<N>" where N is
// the smallest positive integer not yet used for that date.  N values may
// have gaps (a booking that lost the slot race deletes its shell) but are
// never reused while the matching slot lock exists.
//
// Fields:
//  ID              – sequential identifier, e.g. "20260125-1".
//  Name            – patient name.
//  Email           – patient e-mail address.
//  Phone           – patient phone number.
//  Service         – requested service (e.g. "Cardiology").
//  Date            – calendar day in YYYY-MM-DD form.
//  TimeSlot        – display slot label, e.g. "10:30 AM".
//  SlotKey         – back-reference to the slot-lock key this booking owns.
//  Status          – requested, confirmed or cancelled.
//  AdminNotes      – free-form notes set by an administrator.
//  CreatedAt       – creation timestamp (UTC).
//  ExpiryTimestamp – epoch seconds TTL hint for passive garbage collection.
type Appointment struct {
    ID              string    `json:"id"`
    Name            string    `json:"name"`
    Email           string    `json:"email"`
    Phone           string    `json:"phone"`
    Service         string    `json:"service"`
    Date            string    `json:"date"`
    TimeSlot        string    `json:"time_slot"`
    SlotKey         string    `json:"slot_key"`
    Status          string    `json:"status"`
    AdminNotes      string    `json:"admin_notes"`
    CreatedAt       time.Time `json:"created_at"`
    ExpiryTimestamp int64     `json:"expiry_timestamp"`
}

// SlotLock is the record stored under a slot-lock key.  Its existence is
// the exclusivity guarantee: a slot lock for (date, slot) exists exactly
// while a non-cancelled appointment owns that slot.  Locks are created with
// a conditional put, never updated in place, and deleted on cancellation.
type SlotLock struct {
    AppointmentID string `json:"appointment_id"`
}
