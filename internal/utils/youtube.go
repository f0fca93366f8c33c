package utils

import "regexp"

var youtubeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ValidYouTubeID reports whether s is an 11-character YouTube video id.
func ValidYouTubeID(s string) bool {
    return youtubeIDPattern.MatchString(s)
}

// YouTubeThumbnailURL returns the maxresdefault thumbnail URL for a video id.
func YouTubeThumbnailURL(videoID string) string {
    return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
