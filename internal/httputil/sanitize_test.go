package httputil

import (
	"path/filepath"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://prehraj.to/hledej/matrix", false},
		{"loopback http", "http://127.0.0.1:8080/page", false},
		{"localhost http", "http://localhost:9999/", false},
		{"remote http", "http://prehraj.to/", true},
		{"no host", "https://", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"garbage", "://not-a-url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"movie.mp4", "movie.mp4"},
		{"../../etc/passwd", "passwd"},
		{"a:b*c?.mkv", "a_b_c_.mkv"},
		{"", "untitled"},
		{".", "untitled"},
		{"dir/inner.mp4", "inner.mp4"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncodeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"matrix", "matrix"},
		{"star wars", "star%20wars"},
		{"50%", "50%25"},
		{"a/b", "a%2Fb"},
	}

	for _, tt := range tests {
		if got := EncodeTitle(tt.input); got != tt.want {
			t.Errorf("EncodeTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSafeDownloadPath(t *testing.T) {
	dir := t.TempDir()

	path, err := SafeDownloadPath(dir, "movie.mp4")
	if err != nil {
		t.Fatalf("SafeDownloadPath: %v", err)
	}
	if path == dir {
		t.Error("expected a file path inside the directory")
	}

	// Traversal attempts collapse to the base name inside the directory.
	path, err = SafeDownloadPath(dir, "../../escape.mp4")
	if err != nil {
		t.Fatalf("SafeDownloadPath traversal: %v", err)
	}
	if got := filepath.Base(path); got != "escape.mp4" {
		t.Errorf("traversal path base = %q, want escape.mp4", got)
	}
}
