package repository

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/k2arthik/clinic-intake/internal/store"
)

func TestIncrement_ConcurrentNoLostUpdates(t *testing.T) {
    counters := NewDailyCounterRepo(store.NewMemory())
    ctx := context.Background()
    day := time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC)

    const n = 100
    var wg sync.WaitGroup
    for i := 0; i < n; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            if _, err := counters.Increment(ctx, "appointments", day); err != nil {
                t.Errorf("Increment failed: %v", err)
            }
        }()
    }
    wg.Wait()

    got, err := counters.Get(ctx, "appointments", day)
    if err != nil {
        t.Fatalf("Get failed: %v", err)
    }
    if got != n {
        t.Fatalf("expected counter %d, got %d", n, got)
    }
}

func TestIncrement_SeparateMetricsAndDays(t *testing.T) {
    counters := NewDailyCounterRepo(store.NewMemory())
    ctx := context.Background()
    day1 := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
    day2 := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)

    if _, err := counters.Increment(ctx, "appointments", day1); err != nil {
        t.Fatalf("Increment failed: %v", err)
    }
    if _, err := counters.Increment(ctx, "inquiries", day1); err != nil {
        t.Fatalf("Increment failed: %v", err)
    }

    if v, _ := counters.Get(ctx, "appointments", day1); v != 1 {
        t.Fatalf("expected 1, got %d", v)
    }
    if v, _ := counters.Get(ctx, "inquiries", day1); v != 1 {
        t.Fatalf("expected 1, got %d", v)
    }
    if v, _ := counters.Get(ctx, "appointments", day2); v != 0 {
        t.Fatalf("expected untouched day to read 0, got %d", v)
    }
}
