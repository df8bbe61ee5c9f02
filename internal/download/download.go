// Package download saves a resolved stream to a local file. Resolved
// URLs point at direct video files, so a plain HTTP GET suffices.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"prehrajto/internal/httputil"
	"prehrajto/internal/media"
)

// Download fetches the resolved video to outputDir and returns the
// local path. The filename is derived from the candidate's title and
// format tag.
func Download(stream media.ResolvedStream, outputDir string) (string, error) {
	if err := httputil.ValidateURL(stream.Video); err != nil {
		return "", fmt.Errorf("invalid stream URL: %w", err)
	}

	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath, err := httputil.SafeDownloadPath(absDir, filename(stream))
	if err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}

	// Long-running transfer; the hardened client's 30s timeout would
	// cut it off.
	client := httputil.NewClient()
	client.Timeout = 0

	resp, err := httputil.Get(client, stream.Video, nil)
	if err != nil {
		return "", fmt.Errorf("fetching stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	tmpPath := outputPath + ".part"
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing stream: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing output file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("finalizing download: %w", err)
	}

	return outputPath, nil
}

// filename builds the output name from the candidate's title, preferring
// its format tag and falling back to the URL's extension.
func filename(stream media.ResolvedStream) string {
	ext := stream.Format
	if ext == "" {
		if idx := strings.LastIndex(stream.Video, "."); idx != -1 && len(stream.Video)-idx <= 5 {
			ext = stream.Video[idx+1:]
		} else {
			ext = "mp4"
		}
	}

	title := stream.Title
	if title == "" {
		title = fmt.Sprintf("prehrajto-%d", time.Now().Unix())
	}

	return httputil.SanitizeFilename(title) + "." + ext
}
