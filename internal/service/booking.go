// Package service orchestrates the intake workflows on top of the
// repositories.  Each request is handled by an independent goroutine with
// no shared in-process mutable state; all coordination goes through the
// key-value store's conditional writes, so the service stays correct when
// several stateless replicas run side by side.
package service

import (
    "context"
    "log"
    "time"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
)

// appointmentTTL is the passive-expiry hint written on every appointment
// record, matching the store-level garbage collection policy.
const appointmentTTL = 72 * time.Hour

// BookingRequest carries the fields of a public booking submission.
// Date is YYYY-MM-DD; TimeSlot is a display label such as "10:30 AM".
type BookingRequest struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    Phone    string `json:"phone"`
    Service  string `json:"service"`
    Date     string `json:"date"`
    TimeSlot string `json:"time_slot"`
}

// BookingService implements the booking workflow: reserve a sequential id,
// claim the slot lock, bump the daily counter, notify.  The id reservation
// is itself the appointment's durable write and happens before slot
// exclusivity is confirmed; on a slot conflict the wasted shell is deleted
// as a compensating action.  Ordering it this way keeps conflicts cheap —
// the reverse order would mean holding a slot lock for an id that does not
// exist yet.
type BookingService struct {
    alloc    *repository.SequentialIDAllocator
    locks    *repository.SlotLockRepo
    appts    *repository.AppointmentRepo
    counters *repository.DailyCounterRepo
    notifier Notifier
    now      func() time.Time
}

// NewBookingService wires the workflow.  notifier may be a NopNotifier.
func NewBookingService(alloc *repository.SequentialIDAllocator, locks *repository.SlotLockRepo, appts *repository.AppointmentRepo, counters *repository.DailyCounterRepo, notifier Notifier) *BookingService {
    if alloc == nil || locks == nil || appts == nil || counters == nil {
        panic("nil dependency passed to NewBookingService")
    }
    if notifier == nil {
        notifier = NopNotifier{}
    }
    return &BookingService{
        alloc:    alloc,
        locks:    locks,
        appts:    appts,
        counters: counters,
        notifier: notifier,
        now:      func() time.Time { return time.Now().UTC() },
    }
}

// Book validates the request, reserves the next sequential id for the date
// and claims the slot lock.  Exactly one of two concurrent requests for the
// same (date, slot) succeeds; the other gets repository.ErrSlotTaken.  An
// exhausted id probe bound surfaces as repository.ErrAllocationExhausted
// without any slot lock being attempted.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (model.Appointment, error) {
    if err := validateBooking(req); err != nil {
        return model.Appointment{}, err
    }
    if _, err := time.Parse("2006-01-02", req.Date); err != nil {
        return model.Appointment{}, &ValidationError{Field: "date"}
    }

    now := s.now()
    clean := repository.CleanDate(req.Date)
    shell := model.Appointment{
        Name:            req.Name,
        Email:           req.Email,
        Phone:           req.Phone,
        Service:         req.Service,
        Date:            req.Date,
        TimeSlot:        req.TimeSlot,
        SlotKey:         SlotDisplayToKeyLabel(req.TimeSlot),
        Status:          model.StatusRequested,
        CreatedAt:       now,
        ExpiryTimestamp: now.Add(appointmentTTL).Unix(),
    }

    appt, err := s.alloc.Allocate(ctx, clean, shell)
    if err != nil {
        return model.Appointment{}, err
    }

    if err := s.locks.Claim(ctx, req.Date, req.TimeSlot, appt.ID); err != nil {
        if err == repository.ErrSlotTaken {
            // The sequential id is wasted: delete the shell so the number
            // can be reused once its lock-free window closes.  Best effort;
            // an orphaned shell holds no slot lock and expires passively.
            if delErr := s.appts.Delete(ctx, appt.ID); delErr != nil {
                log.Printf("booking: failed to delete shell %s after slot conflict: %v", appt.ID, delErr)
            }
            return model.Appointment{}, repository.ErrSlotTaken
        }
        return model.Appointment{}, err
    }

    if _, cErr := s.counters.Increment(ctx, "appointments", now); cErr != nil {
        log.Printf("booking: counter increment failed: %v", cErr)
    }
    if nErr := s.notifier.AppointmentRequested(ctx, appt); nErr != nil {
        log.Printf("booking: notify failed for %s: %v", appt.ID, nErr)
    }
    return appt, nil
}

// UpdateStatus applies an administrative status transition with optional
// notes.  Allowed: requested→confirmed, requested→cancelled,
// confirmed→cancelled.  Cancelling releases the slot lock; any other target
// status never touches it.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status, notes string) (model.Appointment, error) {
    a, err := s.appts.GetByID(ctx, id)
    if err != nil {
        return model.Appointment{}, err
    }
    switch status {
    case model.StatusConfirmed:
        if a.Status != model.StatusRequested {
            return model.Appointment{}, ErrInvalidTransition
        }
    case model.StatusCancelled:
        // cancel is allowed from requested and confirmed; re-cancelling is
        // tolerated so retried admin actions stay idempotent
    default:
        return model.Appointment{}, ErrInvalidTransition
    }
    a.Status = status
    if notes != "" {
        a.AdminNotes = notes
    }
    if err := s.appts.Save(ctx, a); err != nil {
        return model.Appointment{}, err
    }
    if status == model.StatusCancelled {
        if err := s.locks.Release(ctx, a.Date, a.TimeSlot); err != nil {
            return model.Appointment{}, err
        }
    }
    return a, nil
}

// Cancel marks the appointment cancelled, persists notes and releases its
// slot lock so the slot becomes bookable again.
func (s *BookingService) Cancel(ctx context.Context, id, notes string) error {
    _, err := s.UpdateStatus(ctx, id, model.StatusCancelled, notes)
    return err
}

// Delete removes the appointment record entirely.  When the appointment is
// not already cancelled it still owns its slot lock, which must be released
// first so the slot never ends up locked by a record that no longer exists.
func (s *BookingService) Delete(ctx context.Context, id string) error {
    a, err := s.appts.GetByID(ctx, id)
    if err != nil {
        return err
    }
    if a.Status != model.StatusCancelled {
        if err := s.locks.Release(ctx, a.Date, a.TimeSlot); err != nil {
            return err
        }
    }
    return s.appts.Delete(ctx, id)
}

// Get returns one appointment by id.
func (s *BookingService) Get(ctx context.Context, id string) (model.Appointment, error) {
    return s.appts.GetByID(ctx, id)
}

// List returns appointments for the optional date/status filters.
func (s *BookingService) List(ctx context.Context, date, status string) ([]model.Appointment, error) {
    return s.appts.List(ctx, date, status)
}

// TakenSlots lists the display labels of slots already locked on date.
func (s *BookingService) TakenSlots(ctx context.Context, date string) ([]string, error) {
    raw, err := s.locks.TakenSlots(ctx, date)
    if err != nil {
        return nil, err
    }
    out := make([]string, 0, len(raw))
    for _, r := range raw {
        out = append(out, SlotKeyLabelToDisplay(r))
    }
    return out, nil
}

func validateBooking(req BookingRequest) error {
    fields := []struct {
        name  string
        value string
    }{
        {"name", req.Name},
        {"email", req.Email},
        {"phone", req.Phone},
        {"service", req.Service},
        {"date", req.Date},
        {"time_slot", req.TimeSlot},
    }
    for _, f := range fields {
        if f.value == "" {
            return &ValidationError{Field: f.name}
        }
    }
    return nil
}
