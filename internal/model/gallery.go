package model

import "time"

// GalleryPhoto is an image shown on the public gallery page.  Upload
// processing happens outside this service; only the resulting URL is stored.
type GalleryPhoto struct {
    ID          string    `json:"id"`
    ImageURL    string    `json:"image_url"`
    Title       string    `json:"title"`
    Description string    `json:"description"`
    CreatedAt   time.Time `json:"created_at"`
}

// GalleryVideo references a YouTube video by its 11-character id.  The
// thumbnail URL is derived from the id when not supplied explicitly.
type GalleryVideo struct {
    ID           string    `json:"id"`
    VideoID      string    `json:"video_id"`
    Title        string    `json:"title"`
    Description  string    `json:"description"`
    ThumbnailURL string    `json:"thumbnail_url"`
    CreatedAt    time.Time `json:"created_at"`
}
