package repository

import (
    "context"
    "encoding/json"
    "errors"
    "sort"
    "strings"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// AppointmentRepo provides read/update/delete access to appointment
// records.  Creation goes through SequentialIDAllocator, which is where the
// conditional put lives; everything here operates on records that already
// won their id.
type AppointmentRepo struct {
    kv store.Store
}

// NewAppointmentRepo returns an appointment repo backed by kv.
func NewAppointmentRepo(kv store.Store) *AppointmentRepo { return &AppointmentRepo{kv: kv} }

// GetByID fetches one appointment or ErrNotFound.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (model.Appointment, error) {
    b, err := r.kv.Get(ctx, apptKey(id))
    if err != nil {
        if errors.Is(err, store.ErrNotFound) {
            return model.Appointment{}, ErrNotFound
        }
        return model.Appointment{}, err
    }
    var a model.Appointment
    if err := json.Unmarshal(b, &a); err != nil {
        return model.Appointment{}, err
    }
    return a, nil
}

// Save overwrites the appointment record.  Status and notes updates come
// from a single administrative actor, so a plain put is sufficient here;
// only the booking path needs conditional writes.
func (r *AppointmentRepo) Save(ctx context.Context, a model.Appointment) error {
    b, err := json.Marshal(a)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, apptKey(a.ID), b, ttlUntil(a.ExpiryTimestamp))
}

// Delete removes the appointment record.  Deleting a missing record is a
// no-op so compensating deletes can be retried safely.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
    return r.kv.Delete(ctx, apptKey(id))
}

// List scans all appointment records, optionally filtered to one date
// (YYYY-MM-DD) and/or one status, sorted by id so sequential numbers read
// in booking order.  The scan is eventually consistent; it backs admin
// listings and dashboards, not correctness decisions.
func (r *AppointmentRepo) List(ctx context.Context, date, status string) ([]model.Appointment, error) {
    items, err := r.kv.ScanPrefix(ctx, apptPrefix)
    if err != nil {
        return nil, err
    }
    out := make([]model.Appointment, 0, len(items))
    for k, b := range items {
        if !strings.HasPrefix(k, apptPrefix) {
            continue
        }
        var a model.Appointment
        if err := json.Unmarshal(b, &a); err != nil {
            continue
        }
        if date != "" && a.Date != date {
            continue
        }
        if status != "" && a.Status != status {
            continue
        }
        out = append(out, a)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
    return out, nil
}
