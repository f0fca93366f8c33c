package repository

import (
    "strings"
    "time"
)

// Key prefixes.  The store has no schema separation, so every record family
// lives under its own disjoint prefix; a broad scan can always tell an
// appointment from a slot lock from a counter.
const (
    apptPrefix    = "appt:"
    slotPrefix    = "slot:"
    counterPrefix = "counter:"
    inquiryPrefix = "inquiry:"
    blogPrefix    = "blog:"
    photoPrefix   = "gallery:photo:"
    videoPrefix   = "gallery:video:"
)

// CleanDate collapses a YYYY-MM-DD date into the YYYYMMDD form used in
// appointment ids and lock keys.
func CleanDate(date string) string {
    return strings.ReplaceAll(date, "-", "")
}

func apptKey(id string) string { return apptPrefix + id }

// slotKey derives the deterministic lock key for a (date, slot) pair.
// Slot labels are stored without spaces ("10:30 AM" -> "10:30AM") so that
// the encoding is one-to-one regardless of how the caller spaces the label.
func slotKey(date, slot string) string {
    return slotPrefix + CleanDate(date) + "#" + strings.ReplaceAll(slot, " ", "")
}

func counterKey(metric string, day time.Time) string {
    return counterPrefix + day.UTC().Format("20060102") + ":" + metric
}

func inquiryKey(id string) string { return inquiryPrefix + id }

// ttlUntil converts an epoch-seconds expiry hint into a store TTL.  A zero
// or past expiry yields no TTL, matching records that should never expire.
func ttlUntil(expiryTimestamp int64) time.Duration {
    if expiryTimestamp <= 0 {
        return 0
    }
    d := time.Until(time.Unix(expiryTimestamp, 0))
    if d <= 0 {
        return 0
    }
    return d
}
