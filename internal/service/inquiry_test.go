package service

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/store"
)

func newInquiryFixture() (*InquiryIntake, *repository.InquiryRepo, *recordingNotifier) {
    kv := store.NewMemory()
    repo := repository.NewInquiryRepo(kv)
    notifier := &recordingNotifier{}
    return NewInquiryIntake(repo, repository.NewDailyCounterRepo(kv), notifier), repo, notifier
}

func inquiryReq() InquiryRequest {
    return InquiryRequest{
        Name:        "Ben Okafor",
        Email:       "Ben@Example.com",
        Phone:       "555-0101",
        Description: "  Do you take walk-ins on Saturdays?  ",
    }
}

func TestSubmit_MissingFieldNamesField(t *testing.T) {
    intake, repo, _ := newInquiryFixture()
    req := inquiryReq()
    req.Description = ""

    _, _, err := intake.Submit(context.Background(), req)
    var ve *ValidationError
    if !errors.As(err, &ve) {
        t.Fatalf("expected ValidationError, got %v", err)
    }
    if ve.Field != "description" {
        t.Fatalf("expected field description, got %q", ve.Field)
    }
    all, _ := repo.All(context.Background())
    if len(all) != 0 {
        t.Fatalf("expected no inquiries after validation failure, got %d", len(all))
    }
}

func TestSubmit_NormalizesStoredFields(t *testing.T) {
    intake, _, _ := newInquiryFixture()

    inq, suppressed, err := intake.Submit(context.Background(), inquiryReq())
    if err != nil || suppressed {
        t.Fatalf("unexpected result: suppressed=%v err=%v", suppressed, err)
    }
    if inq.Email != "ben@example.com" {
        t.Fatalf("email not lower-cased: %q", inq.Email)
    }
    if inq.Description != "Do you take walk-ins on Saturdays?" {
        t.Fatalf("description not trimmed: %q", inq.Description)
    }
    if inq.ContentHash == "" {
        t.Fatal("content hash not set")
    }
}

func TestSubmit_DuplicateWithinWindowSuppressed(t *testing.T) {
    intake, repo, notifier := newInquiryFixture()
    ctx := context.Background()

    base := time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC)
    intake.now = func() time.Time { return base }

    if _, suppressed, err := intake.Submit(ctx, inquiryReq()); err != nil || suppressed {
        t.Fatalf("first submit: suppressed=%v err=%v", suppressed, err)
    }

    // Five minutes later, identical content modulo casing and whitespace.
    intake.now = func() time.Time { return base.Add(5 * time.Minute) }
    dup := inquiryReq()
    dup.Email = "BEN@example.com"
    dup.Description = "Do you take walk-ins on Saturdays?"
    _, suppressed, err := intake.Submit(ctx, dup)
    if err != nil {
        t.Fatalf("duplicate submit failed: %v", err)
    }
    if !suppressed {
        t.Fatal("expected duplicate within window to be suppressed")
    }

    all, _ := repo.All(ctx)
    if len(all) != 1 {
        t.Fatalf("expected 1 persisted inquiry, got %d", len(all))
    }
    if notifier.inquiries != 1 {
        t.Fatalf("expected 1 notification, got %d", notifier.inquiries)
    }
}

func TestSubmit_DuplicateAfterWindowPersists(t *testing.T) {
    intake, repo, _ := newInquiryFixture()
    ctx := context.Background()

    base := time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC)
    intake.now = func() time.Time { return base }
    if _, _, err := intake.Submit(ctx, inquiryReq()); err != nil {
        t.Fatalf("first submit failed: %v", err)
    }

    intake.now = func() time.Time { return base.Add(11 * time.Minute) }
    _, suppressed, err := intake.Submit(ctx, inquiryReq())
    if err != nil {
        t.Fatalf("second submit failed: %v", err)
    }
    if suppressed {
        t.Fatal("expected submit outside window to persist")
    }
    all, _ := repo.All(ctx)
    if len(all) != 2 {
        t.Fatalf("expected 2 persisted inquiries, got %d", len(all))
    }
}

func TestSubmit_DifferentContentSameEmailPersists(t *testing.T) {
    intake, repo, _ := newInquiryFixture()
    ctx := context.Background()

    if _, _, err := intake.Submit(ctx, inquiryReq()); err != nil {
        t.Fatalf("first submit failed: %v", err)
    }
    other := inquiryReq()
    other.Description = "What insurance do you accept?"
    _, suppressed, err := intake.Submit(ctx, other)
    if err != nil || suppressed {
        t.Fatalf("distinct content must persist: suppressed=%v err=%v", suppressed, err)
    }
    all, _ := repo.All(ctx)
    if len(all) != 2 {
        t.Fatalf("expected 2 inquiries, got %d", len(all))
    }
}

func TestFingerprint_CaseAndWhitespaceInsensitive(t *testing.T) {
    a := Fingerprint("Ben@Example.com", "  hello  ")
    b := Fingerprint("ben@example.com", "hello")
    if a != b {
        t.Fatalf("fingerprints differ: %s vs %s", a, b)
    }
    c := Fingerprint("ben@example.com", "hello there")
    if a == c {
        t.Fatal("different content must not collide")
    }
}
