package resolver

import (
	"fmt"
	"strings"

	"prehrajto/internal/media"
)

// FormatDisplayTitle creates a one-line display string for fzf selection.
func FormatDisplayTitle(r media.SearchResult) string {
	parts := []string{r.Title}
	if r.Duration > 0 {
		parts = append(parts, formatDuration(r.Duration))
	}
	if r.Size > 0 {
		parts = append(parts, formatSize(r.Size))
	}
	if r.Format != "" {
		parts = append(parts, strings.ToUpper(r.Format))
	}
	return strings.Join(parts, "  ")
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.0f MB", float64(bytes)/float64(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(bytes)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
