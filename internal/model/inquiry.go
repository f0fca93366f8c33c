package model

import "time"

// Inquiry statuses used for admin filtering.
const (
    InquiryUnresolved = "unresolved"
    InquiryResolved   = "resolved"
)

// Inquiry is a contact-form submission.  Two inquiries carrying the same
// ContentHash created less than the dedup window apart are treated as the
// same submission; only the first is persisted and notified.
//
// Fields:
//  ID              – opaque UUID.
//  Name            – submitter name.
//  Email           – lower-cased e-mail address.
//  Phone           – submitter phone number.
//  Description     – trimmed message body.
//  ContentHash     – md5 over normalized e-mail + description.
//  Status          – unresolved or resolved.
//  CreatedAt       – creation timestamp (UTC).
//  ExpiryTimestamp – epoch seconds TTL hint for passive garbage collection.
type Inquiry struct {
    ID              string    `json:"id"`
    Name            string    `json:"name"`
    Email           string    `json:"email"`
    Phone           string    `json:"phone"`
    Description     string    `json:"description"`
    ContentHash     string    `json:"content_hash"`
    Status          string    `json:"status"`
    CreatedAt       time.Time `json:"created_at"`
    ExpiryTimestamp int64     `json:"expiry_timestamp"`
}
