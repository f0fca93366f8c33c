package service

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// recordingNotifier counts events so tests can assert that suppressed or
// failed operations never notify.
type recordingNotifier struct {
    mu           sync.Mutex
    appointments int
    inquiries    int
}

func (n *recordingNotifier) AppointmentRequested(context.Context, model.Appointment) error {
    n.mu.Lock()
    defer n.mu.Unlock()
    n.appointments++
    return nil
}

func (n *recordingNotifier) InquiryReceived(context.Context, model.Inquiry) error {
    n.mu.Lock()
    defer n.mu.Unlock()
    n.inquiries++
    return nil
}

type bookingFixture struct {
    kv       *store.Memory
    locks    *repository.SlotLockRepo
    appts    *repository.AppointmentRepo
    counters *repository.DailyCounterRepo
    notifier *recordingNotifier
    svc      *BookingService
}

func newBookingFixture() *bookingFixture {
    kv := store.NewMemory()
    f := &bookingFixture{
        kv:       kv,
        locks:    repository.NewSlotLockRepo(kv),
        appts:    repository.NewAppointmentRepo(kv),
        counters: repository.NewDailyCounterRepo(kv),
        notifier: &recordingNotifier{},
    }
    f.svc = NewBookingService(repository.NewSequentialIDAllocator(kv), f.locks, f.appts, f.counters, f.notifier)
    return f
}

func bookingReq(slot string) BookingRequest {
    return BookingRequest{
        Name:     "Asha Rao",
        Email:    "asha@example.com",
        Phone:    "555-0100",
        Service:  "Cardiology",
        Date:     "2026-01-25",
        TimeSlot: slot,
    }
}

func TestBook_MissingFieldNamesField(t *testing.T) {
    f := newBookingFixture()
    req := bookingReq("10:30 AM")
    req.Phone = ""

    _, err := f.svc.Book(context.Background(), req)
    var ve *ValidationError
    if !errors.As(err, &ve) {
        t.Fatalf("expected ValidationError, got %v", err)
    }
    if ve.Field != "phone" {
        t.Fatalf("expected field phone, got %q", ve.Field)
    }
    // Validation failures must not write anything.
    appts, _ := f.appts.List(context.Background(), "", "")
    if len(appts) != 0 {
        t.Fatalf("expected no appointments after validation failure, got %d", len(appts))
    }
}

func TestBook_SequentialIdsForDistinctSlots(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    want := []string{"20260125-1", "20260125-2", "20260125-3"}
    slots := []string{"10:30 AM", "11:00 AM", "11:30 AM"}
    for i, slot := range slots {
        a, err := f.svc.Book(ctx, bookingReq(slot))
        if err != nil {
            t.Fatalf("booking %d failed: %v", i+1, err)
        }
        if a.ID != want[i] {
            t.Fatalf("expected id %s, got %s", want[i], a.ID)
        }
        if a.Status != model.StatusRequested {
            t.Fatalf("expected status requested, got %s", a.Status)
        }
    }
    if f.notifier.appointments != 3 {
        t.Fatalf("expected 3 notifications, got %d", f.notifier.appointments)
    }
}

func TestBook_SameSlotConflictDeletesShell(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    if _, err := f.svc.Book(ctx, bookingReq("10:30 AM")); err != nil {
        t.Fatalf("first booking failed: %v", err)
    }
    _, err := f.svc.Book(ctx, bookingReq("10:30 AM"))
    if !errors.Is(err, repository.ErrSlotTaken) {
        t.Fatalf("expected ErrSlotTaken, got %v", err)
    }

    // The losing booking's id shell must be compensated away.
    appts, _ := f.appts.List(ctx, "", "")
    if len(appts) != 1 {
        t.Fatalf("expected 1 surviving appointment, got %d", len(appts))
    }
    if appts[0].ID != "20260125-1" {
        t.Fatalf("expected the winner to survive, got %s", appts[0].ID)
    }
    // The loser must not notify.
    if f.notifier.appointments != 1 {
        t.Fatalf("expected 1 notification, got %d", f.notifier.appointments)
    }
}

func TestBook_ConcurrentSameSlotExactlyOneWinner(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    const workers = 16
    var wg sync.WaitGroup
    var mu sync.Mutex
    var successes int
    for i := 0; i < workers; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            _, err := f.svc.Book(ctx, bookingReq("10:30 AM"))
            if err == nil {
                mu.Lock()
                successes++
                mu.Unlock()
                return
            }
            if !errors.Is(err, repository.ErrSlotTaken) {
                t.Errorf("unexpected error: %v", err)
            }
        }()
    }
    wg.Wait()

    if successes != 1 {
        t.Fatalf("expected exactly one winning booking, got %d", successes)
    }
    appts, _ := f.appts.List(ctx, "", "")
    if len(appts) != 1 {
        t.Fatalf("expected 1 durable appointment, got %d", len(appts))
    }
}

func TestCancel_FreesSlotForRebooking(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    a, err := f.svc.Book(ctx, bookingReq("10:30 AM"))
    if err != nil {
        t.Fatalf("booking failed: %v", err)
    }
    if err := f.svc.Cancel(ctx, a.ID, "patient called to cancel"); err != nil {
        t.Fatalf("cancel failed: %v", err)
    }
    got, _ := f.svc.Get(ctx, a.ID)
    if got.Status != model.StatusCancelled {
        t.Fatalf("expected cancelled, got %s", got.Status)
    }
    if got.AdminNotes != "patient called to cancel" {
        t.Fatalf("notes not persisted: %q", got.AdminNotes)
    }

    b, err := f.svc.Book(ctx, bookingReq("10:30 AM"))
    if err != nil {
        t.Fatalf("rebooking after cancel failed: %v", err)
    }
    // The cancelled record still holds 20260125-1, so the new booking
    // takes the next free number.
    if b.ID != "20260125-2" {
        t.Fatalf("expected 20260125-2, got %s", b.ID)
    }
}

func TestUpdateStatus_Transitions(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    a, _ := f.svc.Book(ctx, bookingReq("10:30 AM"))

    confirmed, err := f.svc.UpdateStatus(ctx, a.ID, model.StatusConfirmed, "")
    if err != nil {
        t.Fatalf("requested->confirmed failed: %v", err)
    }
    if confirmed.Status != model.StatusConfirmed {
        t.Fatalf("expected confirmed, got %s", confirmed.Status)
    }
    // Confirming does not release the lock: the slot stays taken.
    if _, err := f.svc.Book(ctx, bookingReq("10:30 AM")); !errors.Is(err, repository.ErrSlotTaken) {
        t.Fatalf("expected slot still taken after confirm, got %v", err)
    }

    // confirmed -> confirmed is not a legal transition.
    if _, err := f.svc.UpdateStatus(ctx, a.ID, model.StatusConfirmed, ""); !errors.Is(err, ErrInvalidTransition) {
        t.Fatalf("expected ErrInvalidTransition, got %v", err)
    }

    if _, err := f.svc.UpdateStatus(ctx, a.ID, model.StatusCancelled, "done"); err != nil {
        t.Fatalf("confirmed->cancelled failed: %v", err)
    }
    // Nothing leaves cancelled.
    if _, err := f.svc.UpdateStatus(ctx, a.ID, model.StatusConfirmed, ""); !errors.Is(err, ErrInvalidTransition) {
        t.Fatalf("expected ErrInvalidTransition out of cancelled, got %v", err)
    }
}

func TestDelete_RemovesRecordAndLock(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    a, _ := f.svc.Book(ctx, bookingReq("10:30 AM"))
    if err := f.svc.Delete(ctx, a.ID); err != nil {
        t.Fatalf("delete failed: %v", err)
    }

    if _, err := f.svc.Get(ctx, a.ID); !errors.Is(err, repository.ErrNotFound) {
        t.Fatalf("expected record gone, got %v", err)
    }
    taken, _ := f.svc.TakenSlots(ctx, "2026-01-25")
    if len(taken) != 0 {
        t.Fatalf("expected no taken slots after delete, got %v", taken)
    }
    // The slot books again immediately.
    if _, err := f.svc.Book(ctx, bookingReq("10:30 AM")); err != nil {
        t.Fatalf("rebooking after delete failed: %v", err)
    }
}

func TestTakenSlots_DisplayLabels(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    _, _ = f.svc.Book(ctx, bookingReq("10:30 AM"))
    _, _ = f.svc.Book(ctx, bookingReq("2:00 PM"))

    taken, err := f.svc.TakenSlots(ctx, "2026-01-25")
    if err != nil {
        t.Fatalf("TakenSlots failed: %v", err)
    }
    found := map[string]bool{}
    for _, s := range taken {
        found[s] = true
    }
    if !found["10:30 AM"] || !found["2:00 PM"] {
        t.Fatalf("expected display labels, got %v", taken)
    }
}

func TestBook_CountsAppointmentsPerDay(t *testing.T) {
    f := newBookingFixture()
    ctx := context.Background()

    _, _ = f.svc.Book(ctx, bookingReq("10:30 AM"))
    _, _ = f.svc.Book(ctx, bookingReq("11:00 AM"))

    got, err := f.counters.Get(ctx, "appointments", time.Now().UTC())
    if err != nil {
        t.Fatalf("counter read failed: %v", err)
    }
    if got != 2 {
        t.Fatalf("expected counter 2, got %d", got)
    }
}
