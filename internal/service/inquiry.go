package service

import (
    "context"
    "crypto/md5"
    "encoding/hex"
    "log"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
)

// dedupWindow is the trailing interval within which a resubmission of the
// same content is treated as the same inquiry (a double-clicked submit or a
// replayed network retry) and suppressed.
const dedupWindow = 10 * time.Minute

// inquiryTTL is the passive-expiry hint on inquiry records.
const inquiryTTL = 48 * time.Hour

// InquiryRequest carries the fields of a public contact-form submission.
type InquiryRequest struct {
    Name        string `json:"name"`
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    Description string `json:"description"`
}

// InquiryIntake persists contact-form submissions and suppresses near
// duplicates.  The fingerprint is an unsalted md5 over the lower-cased
// e-mail plus the trimmed description; a collision between genuinely
// different submissions is an accepted false-suppression risk, traded
// against duplicate-flood prevention.
type InquiryIntake struct {
    inquiries *repository.InquiryRepo
    counters  *repository.DailyCounterRepo
    notifier  Notifier
    now       func() time.Time
}

// NewInquiryIntake wires the intake.  notifier may be a NopNotifier.
func NewInquiryIntake(inquiries *repository.InquiryRepo, counters *repository.DailyCounterRepo, notifier Notifier) *InquiryIntake {
    if inquiries == nil || counters == nil {
        panic("nil dependency passed to NewInquiryIntake")
    }
    if notifier == nil {
        notifier = NopNotifier{}
    }
    return &InquiryIntake{
        inquiries: inquiries,
        counters:  counters,
        notifier:  notifier,
        now:       func() time.Time { return time.Now().UTC() },
    }
}

// Fingerprint computes the dedup hash for an e-mail/description pair.
func Fingerprint(email, description string) string {
    email = strings.ToLower(email)
    description = strings.TrimSpace(description)
    sum := md5.Sum([]byte(email + description))
    return hex.EncodeToString(sum[:])
}

// Submit persists the inquiry unless an inquiry with the same fingerprint
// was created within the dedup window.  Suppressed submissions perform no
// write and no notification, which makes the operation idempotent for the
// common retry case.  The scan over existing inquiries is a full prefix
// scan — fine at clinic volume, a known scaling limit beyond it.
func (s *InquiryIntake) Submit(ctx context.Context, req InquiryRequest) (model.Inquiry, bool, error) {
    for _, f := range []struct{ name, value string }{
        {"name", req.Name},
        {"email", req.Email},
        {"description", req.Description},
    } {
        if f.value == "" {
            return model.Inquiry{}, false, &ValidationError{Field: f.name}
        }
    }

    now := s.now()
    hash := Fingerprint(req.Email, req.Description)

    existing, err := s.inquiries.All(ctx)
    if err != nil {
        return model.Inquiry{}, false, err
    }
    for _, inq := range existing {
        if inq.ContentHash == hash && now.Sub(inq.CreatedAt) < dedupWindow {
            return model.Inquiry{}, true, nil
        }
    }

    inq := model.Inquiry{
        ID:              uuid.NewString(),
        Name:            req.Name,
        Email:           strings.ToLower(req.Email),
        Phone:           req.Phone,
        Description:     strings.TrimSpace(req.Description),
        ContentHash:     hash,
        Status:          model.InquiryUnresolved,
        CreatedAt:       now,
        ExpiryTimestamp: now.Add(inquiryTTL).Unix(),
    }
    if err := s.inquiries.Create(ctx, inq); err != nil {
        return model.Inquiry{}, false, err
    }
    if _, cErr := s.counters.Increment(ctx, "inquiries", now); cErr != nil {
        log.Printf("inquiry: counter increment failed: %v", cErr)
    }
    if nErr := s.notifier.InquiryReceived(ctx, inq); nErr != nil {
        log.Printf("inquiry: notify failed for %s: %v", inq.ID, nErr)
    }
    return inq, false, nil
}
