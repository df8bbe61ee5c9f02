package httputil

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ValidateURL checks that a URL is well-formed and uses HTTPS.
// Plain HTTP is permitted for loopback hosts only.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		host := u.Hostname()
		if host == "localhost" || host == "127.0.0.1" || host == "::1" {
			return nil
		}
		return fmt.Errorf("plain HTTP is only allowed for loopback, got host %q", host)
	default:
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
}

// SanitizeFilename removes path traversal and dangerous characters from a
// filename. Returns just the base name, stripped of directory components.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	replacer := strings.NewReplacer(
		"..", "_",
		"/", "_",
		"\\", "_",
		"\x00", "",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	name = replacer.Replace(name)

	if name == "" || name == "." || name == ".." {
		return "untitled"
	}

	return name
}

// SafeDownloadPath resolves and validates a download path, ensuring it
// stays within the target directory.
func SafeDownloadPath(dir, filename string) (string, error) {
	sanitized := SanitizeFilename(filename)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	full, err := filepath.Abs(filepath.Join(absDir, sanitized))
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	if !strings.HasPrefix(full, absDir+string(filepath.Separator)) && full != absDir {
		return "", fmt.Errorf("path traversal detected: %q escapes %q", full, absDir)
	}

	return full, nil
}

// EncodeTitle percent-encodes a search title for use as a single path
// segment of the search URL.
func EncodeTitle(title string) string {
	return url.PathEscape(title)
}
