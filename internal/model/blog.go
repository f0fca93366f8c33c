package model

import "time"

// Blog is a site article stored as a single record.  Draft posts are
// hidden from the public listing.  The slug is unique per post in practice
// (explicit slug wins, otherwise it is derived from the title) and is the
// public lookup handle.
type Blog struct {
    ID              string    `json:"id"`
    Title           string    `json:"title"`
    Slug            string    `json:"slug"`
    Body            string    `json:"body"`
    Thumbnail       string    `json:"thumbnail"`
    Draft           bool      `json:"draft"`
    Category        string    `json:"category"`
    MetaDescription string    `json:"meta_description"`
    Datetime        time.Time `json:"datetime"`
    UpdatedAt       time.Time `json:"updated_at"`
}
