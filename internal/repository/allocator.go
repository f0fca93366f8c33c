package repository

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// maxIDProbes bounds how many candidate ids Allocate tries for one date
// before giving up.  Exhausting it means the day already carries that many
// appointments and should be treated as a capacity alarm.
const maxIDProbes = 50

// SequentialIDAllocator assigns the human-readable ids "<YYYYMMDD>-<N>".
// The store cannot atomically read-then-increment a list of taken ids, so
// the allocator probes candidates in order and lets the conditional put
// itself act as the test-and-set: the first candidate whose conditional put
// succeeds belongs to this request and to nobody else.  Probing restarts at
// 1 on every call — there is no persisted next-counter — so a day with K
// existing appointments costs O(K) attempts.  Acceptable at clinic volume.
type SequentialIDAllocator struct {
    kv        store.Store
    maxProbes int
}

// NewSequentialIDAllocator returns an allocator with the default probe bound.
func NewSequentialIDAllocator(kv store.Store) *SequentialIDAllocator {
    return &SequentialIDAllocator{kv: kv, maxProbes: maxIDProbes}
}

// Allocate reserves the smallest free id for datePrefix (YYYYMMDD) and
// durably writes shell under it in the same conditional put.  The returned
// appointment carries the won id.  Concurrent callers may collide on the
// same candidate; the loser simply moves to the next one, so contention
// costs extra probes but can never hand out a duplicate id.
func (a *SequentialIDAllocator) Allocate(ctx context.Context, datePrefix string, shell model.Appointment) (model.Appointment, error) {
    for n := 1; n <= a.maxProbes; n++ {
        shell.ID = fmt.Sprintf("%s-%d", datePrefix, n)
        b, err := json.Marshal(shell)
        if err != nil {
            return model.Appointment{}, err
        }
        err = a.kv.PutIfAbsent(ctx, apptKey(shell.ID), b, ttlUntil(shell.ExpiryTimestamp))
        if err == nil {
            return shell, nil
        }
        if errors.Is(err, store.ErrKeyExists) {
            continue
        }
        return model.Appointment{}, err
    }
    return model.Appointment{}, ErrAllocationExhausted
}
