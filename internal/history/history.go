// Package history records resolved streams in a TSV file.
// Uses atomic writes (temp+rename) to prevent data corruption.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"prehrajto/internal/config"
	"prehrajto/internal/media"
)

// TSV columns: id, title, format, size, video, resolvedAt
const numColumns = 6

// Load reads the history file and returns all entries.
func Load() ([]media.HistoryEntry, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var entries []media.HistoryEntry
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			continue // Skip malformed lines
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return entries, nil
}

// Save writes or updates an entry in the history file.
// Uses atomic write (write to temp file, then rename).
func Save(entry media.HistoryEntry) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	entries, _ := Load()

	// Re-resolving the same candidate refreshes its entry.
	found := false
	for i, e := range entries {
		if e.ID == entry.ID {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, entry)
	}

	return writeAll(path, entries)
}

// Remove deletes an entry from the history.
func Remove(id string) error {
	entries, err := Load()
	if err != nil {
		return err
	}

	var filtered []media.HistoryEntry
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}

	path, err := config.HistoryPath()
	if err != nil {
		return err
	}
	return writeAll(path, filtered)
}

// writeAll atomically replaces the history file with the given entries.
func writeAll(path string, entries []media.HistoryEntry) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	for _, e := range entries {
		if _, err := writer.WriteString(formatLine(e) + "\n"); err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing history: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing history: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming history file: %w", err)
	}

	return nil
}

// parseLine parses a TSV line into a HistoryEntry.
func parseLine(line string) (media.HistoryEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numColumns {
		return media.HistoryEntry{}, fmt.Errorf("expected %d columns, got %d", numColumns, len(fields))
	}

	size, _ := strconv.ParseInt(fields[3], 10, 64)
	resolvedAt, _ := strconv.ParseInt(fields[5], 10, 64)

	return media.HistoryEntry{
		ID:         fields[0],
		Title:      fields[1],
		Format:     fields[2],
		Size:       size,
		Video:      fields[4],
		ResolvedAt: resolvedAt,
	}, nil
}

// formatLine converts a HistoryEntry to a TSV line. Tabs cannot appear
// in the stored fields; titles are sanitized on write.
func formatLine(e media.HistoryEntry) string {
	return strings.Join([]string{
		e.ID,
		strings.ReplaceAll(e.Title, "\t", " "),
		e.Format,
		strconv.FormatInt(e.Size, 10),
		e.Video,
		strconv.FormatInt(e.ResolvedAt, 10),
	}, "\t")
}
