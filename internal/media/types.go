// Package media defines shared types for the prehrajto resolver.
package media

// SearchResult represents a single candidate found on the search page.
// It has not yet been resolved to a direct stream URL.
type SearchResult struct {
	ID       string // Site-specific resolver ID (the detail page path, e.g., "/film-xyz/abc123")
	Title    string // Display title
	URL      string // Absolute detail page URL
	Duration int    // Runtime in seconds
	Format   string // File format tag (e.g., "mkv"), empty when the site omits it
	Size     int64  // File size in bytes
}

// Subtitle represents one captions track attached to a stream.
type Subtitle struct {
	ID   string // Display label, e.g., "CZ tit."
	URL  string // URL to the subtitle file (usually VTT)
	Lang string // Language code, e.g., "cs"
}

// StreamDetails holds what stream extraction produced for one candidate.
type StreamDetails struct {
	Video     string     // Direct playable video URL
	Subtitles []Subtitle // Captions tracks, possibly empty
}

// ResolvedStream is a SearchResult merged with its extracted StreamDetails,
// the final output of a resolve call.
type ResolvedStream struct {
	SearchResult
	StreamDetails
}

// HistoryEntry represents one recorded resolution.
type HistoryEntry struct {
	ID         string // Resolver ID of the candidate
	Title      string
	Format     string
	Size       int64  // Bytes
	Video      string // Resolved video URL
	ResolvedAt int64  // Unix seconds
}
