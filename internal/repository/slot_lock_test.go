package repository

import (
    "context"
    "errors"
    "sync"
    "testing"

    "github.com/k2arthik/clinic-intake/internal/store"
)

func TestClaim_ConflictOnSecondClaim(t *testing.T) {
    locks := NewSlotLockRepo(store.NewMemory())
    ctx := context.Background()

    if err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "20260125-1"); err != nil {
        t.Fatalf("first claim failed: %v", err)
    }
    err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "20260125-2")
    if !errors.Is(err, ErrSlotTaken) {
        t.Fatalf("expected ErrSlotTaken, got %v", err)
    }
    // A different slot on the same date does not contend.
    if err := locks.Claim(ctx, "2026-01-25", "11:00 AM", "20260125-2"); err != nil {
        t.Fatalf("claim of different slot failed: %v", err)
    }
}

func TestClaim_SpacingDoesNotDodgeTheLock(t *testing.T) {
    locks := NewSlotLockRepo(store.NewMemory())
    ctx := context.Background()

    if err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "a"); err != nil {
        t.Fatalf("claim failed: %v", err)
    }
    // The compact form maps to the same key.
    if err := locks.Claim(ctx, "2026-01-25", "10:30AM", "b"); !errors.Is(err, ErrSlotTaken) {
        t.Fatalf("expected ErrSlotTaken for equivalent label, got %v", err)
    }
}

func TestRelease_Idempotent(t *testing.T) {
    locks := NewSlotLockRepo(store.NewMemory())
    ctx := context.Background()

    // Releasing a slot that was never claimed must not error.
    if err := locks.Release(ctx, "2026-01-25", "10:30 AM"); err != nil {
        t.Fatalf("release of unclaimed slot errored: %v", err)
    }
    if err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "x"); err != nil {
        t.Fatalf("claim failed: %v", err)
    }
    if err := locks.Release(ctx, "2026-01-25", "10:30 AM"); err != nil {
        t.Fatalf("first release failed: %v", err)
    }
    if err := locks.Release(ctx, "2026-01-25", "10:30 AM"); err != nil {
        t.Fatalf("second release failed: %v", err)
    }
    // The slot is claimable again after release.
    if err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "y"); err != nil {
        t.Fatalf("re-claim after release failed: %v", err)
    }
}

func TestTakenSlots(t *testing.T) {
    locks := NewSlotLockRepo(store.NewMemory())
    ctx := context.Background()

    _ = locks.Claim(ctx, "2026-01-25", "10:30 AM", "a")
    _ = locks.Claim(ctx, "2026-01-25", "2:00 PM", "b")
    _ = locks.Claim(ctx, "2026-01-26", "10:30 AM", "c") // other date

    taken, err := locks.TakenSlots(ctx, "2026-01-25")
    if err != nil {
        t.Fatalf("TakenSlots failed: %v", err)
    }
    if len(taken) != 2 {
        t.Fatalf("expected 2 taken slots, got %d: %v", len(taken), taken)
    }
    found := map[string]bool{}
    for _, s := range taken {
        found[s] = true
    }
    if !found["10:30AM"] || !found["2:00PM"] {
        t.Fatalf("unexpected taken slots: %v", taken)
    }
}

func TestClaim_ConcurrentExactlyOneWinner(t *testing.T) {
    locks := NewSlotLockRepo(store.NewMemory())
    ctx := context.Background()

    const workers = 25
    var wg sync.WaitGroup
    var mu sync.Mutex
    var successes, conflicts int
    for i := 0; i < workers; i++ {
        wg.Add(1)
        go func(n int) {
            defer wg.Done()
            err := locks.Claim(ctx, "2026-01-25", "10:30 AM", "owner")
            mu.Lock()
            defer mu.Unlock()
            switch {
            case err == nil:
                successes++
            case errors.Is(err, ErrSlotTaken):
                conflicts++
            default:
                t.Errorf("unexpected error: %v", err)
            }
        }(i)
    }
    wg.Wait()

    if successes != 1 {
        t.Fatalf("expected exactly 1 successful claim, got %d", successes)
    }
    if conflicts != workers-1 {
        t.Fatalf("expected %d conflicts, got %d", workers-1, conflicts)
    }
}
