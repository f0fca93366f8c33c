package service

import (
    "context"

    "github.com/k2arthik/clinic-intake/internal/model"
)

// Notifier receives domain events after the corresponding record is durable.
// Implementations are fire-and-forget from the workflows' point of view:
// returned errors are logged and swallowed, never failing the parent
// operation — booking and inquiry durability must not depend on
// notification success.
type Notifier interface {
    AppointmentRequested(ctx context.Context, a model.Appointment) error
    InquiryReceived(ctx context.Context, inq model.Inquiry) error
}

// NopNotifier discards all events.  Used in tests and when the broker is
// not configured.
type NopNotifier struct{}

func (NopNotifier) AppointmentRequested(context.Context, model.Appointment) error { return nil }
func (NopNotifier) InquiryReceived(context.Context, model.Inquiry) error          { return nil }
