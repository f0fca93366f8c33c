package repository

import (
    "context"
    "strconv"
    "time"

    "github.com/k2arthik/clinic-intake/internal/store"
)

// DailyCounterRepo keeps per-day, per-metric counters for the admin
// dashboard.  Each increment is one native atomic add against the store —
// never a read-modify-write — so N concurrent increments always land at
// exactly N.  Counters are created lazily on first increment, are never
// decremented and never deleted.
type DailyCounterRepo struct {
    kv store.Store
}

// NewDailyCounterRepo returns a counter repo backed by kv.
func NewDailyCounterRepo(kv store.Store) *DailyCounterRepo { return &DailyCounterRepo{kv: kv} }

// Increment adds one to metric's counter for day and returns the new value.
// Counters are best-effort telemetry: callers log failures and move on, and
// must never roll back the parent operation because of one.
func (r *DailyCounterRepo) Increment(ctx context.Context, metric string, day time.Time) (int64, error) {
    return r.kv.IncrBy(ctx, counterKey(metric, day), 1)
}

// Get reads metric's counter for day, returning 0 when it was never
// incremented.
func (r *DailyCounterRepo) Get(ctx context.Context, metric string, day time.Time) (int64, error) {
    b, err := r.kv.Get(ctx, counterKey(metric, day))
    if err != nil {
        if err == store.ErrNotFound {
            return 0, nil
        }
        return 0, err
    }
    return strconv.ParseInt(string(b), 10, 64)
}
