package repository

import (
    "context"
    "encoding/json"
    "errors"
    "strings"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// SlotLockRepo guarantees at most one booking per (date, time-slot) pair.
// A lock is one record at a deterministic key; claiming it is a single
// conditional put, so when two requests race for the same slot the store
// lets exactly one through and the other observes the key already taken.
type SlotLockRepo struct {
    kv store.Store
}

// NewSlotLockRepo returns a lock repo backed by kv.
func NewSlotLockRepo(kv store.Store) *SlotLockRepo { return &SlotLockRepo{kv: kv} }

// Claim attempts to take the lock for (date, slot) on behalf of ownerID.
// Returns ErrSlotTaken when another booking already holds it.
func (r *SlotLockRepo) Claim(ctx context.Context, date, slot, ownerID string) error {
    b, err := json.Marshal(model.SlotLock{AppointmentID: ownerID})
    if err != nil {
        return err
    }
    err = r.kv.PutIfAbsent(ctx, slotKey(date, slot), b, 0)
    if errors.Is(err, store.ErrKeyExists) {
        return ErrSlotTaken
    }
    return err
}

// Release frees the lock for (date, slot).  Releasing a lock that does not
// exist is a no-op: cancellations can race or be retried, so release must
// stay idempotent.
func (r *SlotLockRepo) Release(ctx context.Context, date, slot string) error {
    return r.kv.Delete(ctx, slotKey(date, slot))
}

// TakenSlots lists the slot labels currently locked on date.  Labels come
// back in the compact lock-key form, e.g. "10:30AM"; display formatting is
// up to the caller.  The scan is eventually consistent, which is fine for
// painting the booking page — the conditional put still arbitrates the race.
func (r *SlotLockRepo) TakenSlots(ctx context.Context, date string) ([]string, error) {
    prefix := slotPrefix + CleanDate(date) + "#"
    items, err := r.kv.ScanPrefix(ctx, prefix)
    if err != nil {
        return nil, err
    }
    taken := make([]string, 0, len(items))
    for k := range items {
        taken = append(taken, strings.TrimPrefix(k, prefix))
    }
    return taken, nil
}
