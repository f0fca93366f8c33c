package utils

import "strings"

// Slugify lowers a title and reduces it to hyphen-separated alphanumeric
// runs, e.g. "Heart Health 101!" -> "heart-health-101".  Non-ASCII letters
// are dropped; blog titles on this site are English.
func Slugify(s string) string {
    s = strings.ToLower(strings.TrimSpace(s))
    var b strings.Builder
    lastHyphen := true // suppress leading hyphens
    for _, r := range s {
        switch {
        case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
            b.WriteRune(r)
            lastHyphen = false
        default:
            if !lastHyphen {
                b.WriteByte('-')
                lastHyphen = true
            }
        }
    }
    return strings.TrimSuffix(b.String(), "-")
}
