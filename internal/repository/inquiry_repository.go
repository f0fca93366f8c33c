package repository

import (
    "context"
    "encoding/json"
    "errors"
    "sort"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// InquiryRepo stores contact-form inquiries.  Duplicate detection happens a
// layer up (service.InquiryIntake); this repo only persists and scans.
type InquiryRepo struct {
    kv store.Store
}

// NewInquiryRepo returns an inquiry repo backed by kv.
func NewInquiryRepo(kv store.Store) *InquiryRepo { return &InquiryRepo{kv: kv} }

// Create persists a new inquiry under its opaque id.
func (r *InquiryRepo) Create(ctx context.Context, inq model.Inquiry) error {
    b, err := json.Marshal(inq)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, inquiryKey(inq.ID), b, ttlUntil(inq.ExpiryTimestamp))
}

// GetByID fetches one inquiry or ErrNotFound.
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (model.Inquiry, error) {
    b, err := r.kv.Get(ctx, inquiryKey(id))
    if err != nil {
        if errors.Is(err, store.ErrNotFound) {
            return model.Inquiry{}, ErrNotFound
        }
        return model.Inquiry{}, err
    }
    var inq model.Inquiry
    if err := json.Unmarshal(b, &inq); err != nil {
        return model.Inquiry{}, err
    }
    return inq, nil
}

// All scans every inquiry record, newest first.  A full scan is acceptable
// at clinic volume; past a small working set this should become a
// fingerprint-keyed index instead.
func (r *InquiryRepo) All(ctx context.Context) ([]model.Inquiry, error) {
    items, err := r.kv.ScanPrefix(ctx, inquiryPrefix)
    if err != nil {
        return nil, err
    }
    out := make([]model.Inquiry, 0, len(items))
    for _, b := range items {
        var inq model.Inquiry
        if err := json.Unmarshal(b, &inq); err != nil {
            continue
        }
        out = append(out, inq)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
    return out, nil
}

// UpdateStatus marks an inquiry resolved or unresolved.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id, status string) error {
    inq, err := r.GetByID(ctx, id)
    if err != nil {
        return err
    }
    inq.Status = status
    b, err := json.Marshal(inq)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, inquiryKey(id), b, ttlUntil(inq.ExpiryTimestamp))
}

// Delete removes an inquiry; missing ids are a no-op.
func (r *InquiryRepo) Delete(ctx context.Context, id string) error {
    return r.kv.Delete(ctx, inquiryKey(id))
}
