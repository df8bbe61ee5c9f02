// Package subtitle handles captions-track selection and secure temp
// file management for the player.
package subtitle

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"prehrajto/internal/httputil"
	"prehrajto/internal/media"
)

// Filter returns tracks matching the preferred language, comparing both
// the language code and the display label case-insensitively.
func Filter(subtitles []media.Subtitle, language string) []media.Subtitle {
	if language == "" {
		return subtitles
	}

	lang := strings.ToLower(language)
	var matched []media.Subtitle
	for _, sub := range subtitles {
		if strings.EqualFold(sub.Lang, lang) ||
			strings.Contains(strings.ToLower(sub.ID), lang) {
			matched = append(matched, sub)
		}
	}
	return matched
}

// BestMatch returns the preferred track for the language: an exact
// language-code match if there is one, otherwise the first label match,
// otherwise nil.
func BestMatch(subtitles []media.Subtitle, language string) *media.Subtitle {
	filtered := Filter(subtitles, language)
	if len(filtered) == 0 {
		return nil
	}

	for i, sub := range filtered {
		if strings.EqualFold(sub.Lang, language) {
			return &filtered[i]
		}
	}
	return &filtered[0]
}

// TempDir manages a randomized temporary directory for subtitle files.
type TempDir struct {
	path string
}

// NewTempDir creates the directory.
func NewTempDir() (*TempDir, error) {
	dir, err := os.MkdirTemp("", "prehrajto-subs-*")
	if err != nil {
		return nil, fmt.Errorf("creating subtitle temp dir: %w", err)
	}
	return &TempDir{path: dir}, nil
}

// Cleanup removes the temporary directory and all contents.
func (t *TempDir) Cleanup() {
	if t.path != "" {
		os.RemoveAll(t.path)
	}
}

// Download fetches a subtitle file into the temp directory and returns
// the local path.
func (t *TempDir) Download(sub media.Subtitle) (string, error) {
	if err := httputil.ValidateURL(sub.URL); err != nil {
		return "", fmt.Errorf("invalid subtitle URL: %w", err)
	}

	filename := "subtitle.vtt"
	if parts := strings.Split(sub.URL, "/"); len(parts) > 0 {
		last := parts[len(parts)-1]
		if idx := strings.Index(last, "?"); idx != -1 {
			last = last[:idx]
		}
		if last != "" {
			filename = httputil.SanitizeFilename(last)
		}
	}

	localPath := filepath.Join(t.path, filename)

	client := httputil.NewClient()
	resp, err := httputil.Get(client, sub.URL, nil)
	if err != nil {
		return "", fmt.Errorf("downloading subtitle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("subtitle download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("creating subtitle file: %w", err)
	}
	defer f.Close()

	// Limit subtitle file size to 10MB
	if _, err := io.Copy(f, io.LimitReader(resp.Body, 10*1024*1024)); err != nil {
		return "", fmt.Errorf("writing subtitle file: %w", err)
	}

	return localPath, nil
}
