package service

import (
    "testing"
    "time"
)

func TestSlotLabels_FullDay(t *testing.T) {
    date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
    now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

    labels := SlotLabels(date, now)
    // 10:30 AM through 9:30 PM, half-hourly: 23 slots.
    if len(labels) != 23 {
        t.Fatalf("expected 23 slots, got %d: %v", len(labels), labels)
    }
    if labels[0] != "10:30 AM" {
        t.Fatalf("expected first slot 10:30 AM, got %q", labels[0])
    }
    if labels[len(labels)-1] != "9:30 PM" {
        t.Fatalf("expected last slot 9:30 PM, got %q", labels[len(labels)-1])
    }
}

func TestSlotLabels_NoonIsPM(t *testing.T) {
    date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
    now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

    found := false
    for _, l := range SlotLabels(date, now) {
        if l == "12:00 PM" {
            found = true
        }
        if l == "12:00 AM" || l == "0:00 PM" {
            t.Fatalf("noon mislabelled as %q", l)
        }
    }
    if !found {
        t.Fatal("expected 12:00 PM in the slot list")
    }
}

func TestSlotLabels_TodayHidesPastSlots(t *testing.T) {
    now := time.Date(2026, 1, 25, 14, 15, 0, 0, time.UTC) // 2:15 PM
    labels := SlotLabels(now, now)

    if len(labels) == 0 {
        t.Fatal("expected remaining slots for the afternoon")
    }
    if labels[0] != "2:30 PM" {
        t.Fatalf("expected first remaining slot 2:30 PM, got %q", labels[0])
    }
    for _, l := range labels {
        if l == "10:30 AM" || l == "2:00 PM" {
            t.Fatalf("past slot %q not filtered", l)
        }
    }
}

func TestSlotLabelRoundTrip(t *testing.T) {
    for _, display := range []string{"10:30 AM", "12:00 PM", "9:30 PM"} {
        key := SlotDisplayToKeyLabel(display)
        if key != "" && key == display {
            t.Fatalf("key label for %q not compacted: %q", display, key)
        }
        if got := SlotKeyLabelToDisplay(key); got != display {
            t.Fatalf("round trip of %q gave %q", display, got)
        }
    }
    // Unrecognized labels pass through both directions unchanged.
    if got := SlotKeyLabelToDisplay("afternoon"); got != "afternoon" {
        t.Fatalf("pass-through broken: %q", got)
    }
}
