package service

import (
    "fmt"
    "strings"
    "time"
)

// Services offered on the booking page.
var Services = []string{
    "General Checkup",
    "Cardiology",
    "Dermatology",
    "Neurology",
    "Pediatrics",
    "Orthopedics",
    "Dental Care",
}

// SlotLabels generates the bookable slot labels for date: half-hourly from
// 10:30 AM through 9:30 PM.  When date is today (relative to now), slots
// whose start time has already passed are omitted.  This is presentation
// pre-filtering only — exclusivity is enforced by the slot lock regardless.
func SlotLabels(date time.Time, now time.Time) []string {
    isToday := date.Year() == now.Year() && date.YearDay() == now.YearDay()
    var labels []string
    for h := 10; h <= 21; h++ {
        minutes := []int{0, 30}
        if h == 10 {
            minutes = []int{30} // day opens at 10:30
        }
        for _, m := range minutes {
            if isToday {
                slot := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
                if !slot.After(now) {
                    continue
                }
            }
            period := "AM"
            display := h
            if h >= 12 {
                period = "PM"
                if h > 12 {
                    display = h - 12
                }
            }
            labels = append(labels, formatSlot(display, m, period))
        }
    }
    return labels
}

func formatSlot(h, m int, period string) string {
    return fmt.Sprintf("%d:%02d %s", h, m, period)
}

// SlotDisplayToKeyLabel compacts a display label into the form stored in
// lock keys: "10:30 AM" -> "10:30AM".
func SlotDisplayToKeyLabel(label string) string {
    return strings.ReplaceAll(label, " ", "")
}

// SlotKeyLabelToDisplay re-inserts the space before the AM/PM suffix:
// "10:30AM" -> "10:30 AM".  Labels without a recognizable suffix pass
// through unchanged.
func SlotKeyLabelToDisplay(label string) string {
    if strings.Contains(label, " ") {
        return label
    }
    for _, suffix := range []string{"AM", "PM"} {
        if strings.HasSuffix(label, suffix) {
            return strings.TrimSuffix(label, suffix) + " " + suffix
        }
    }
    return label
}
