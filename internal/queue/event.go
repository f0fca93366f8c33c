// Package queue defines the notification events exchanged over the message
// broker and the fire-and-forget publisher/consumer around them.  The
// broker stands in for direct e-mail delivery: the intake workflows publish
// an event once the record is durable, and whatever consumes the queue owns
// the actual outreach.  Publish failures are logged and swallowed so a
// broker outage can never fail a booking or inquiry.
package queue

// Queue names.  Durable, declared idempotently by both ends.
const (
    AppointmentQueue = "appointment.requested"
    InquiryQueue     = "inquiry.received"
)

// AppointmentRequestedEvent is published when a booking wins its slot.  It
// carries enough for a downstream notifier to mail both the patient and the
// clinic without querying the store.
type AppointmentRequestedEvent struct {
    AppointmentID string `json:"appointment_id"`
    Name          string `json:"name"`
    Email         string `json:"email"`
    Phone         string `json:"phone"`
    Service       string `json:"service"`
    Date          string `json:"date"`
    TimeSlot      string `json:"time_slot"`
    RequestedAt   string `json:"requested_at"`
}

// InquiryReceivedEvent is published for each non-suppressed inquiry.
type InquiryReceivedEvent struct {
    InquiryID   string `json:"inquiry_id"`
    Name        string `json:"name"`
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    Description string `json:"description"`
    ReceivedAt  string `json:"received_at"`
}
