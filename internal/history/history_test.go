package history

import (
	"testing"

	"prehrajto/internal/media"
)

func entryFixture() media.HistoryEntry {
	return media.HistoryEntry{
		ID:         "/matrix-1999/abc123",
		Title:      "Matrix (1999) CZ dabing",
		Format:     "mkv",
		Size:       1503238553,
		Video:      "https://cdn.example/1080.mp4",
		ResolvedAt: 1756600000,
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := entryFixture()
	if err := Save(entry); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0] != entry {
		t.Errorf("round-tripped entry = %+v, want %+v", entries[0], entry)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := entryFixture()
	if err := Save(entry); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entry.Video = "https://cdn.example/refreshed.mp4"
	entry.ResolvedAt += 60
	if err := Save(entry); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after update, got %d", len(entries))
	}
	if entries[0].Video != entry.Video {
		t.Errorf("Video = %q, want refreshed URL", entries[0].Video)
	}
}

func TestRemove(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	first := entryFixture()
	second := entryFixture()
	second.ID = "/other-film/def456"

	for _, e := range []media.HistoryEntry{first, second} {
		if err := Save(e); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	if err := Remove(first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != second.ID {
		t.Errorf("entries after remove = %+v", entries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %+v", entries)
	}
}

func TestTitleWithTab(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := entryFixture()
	entry.Title = "Matrix\tReloaded"
	if err := Save(entry); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Matrix Reloaded" {
		t.Errorf("Title = %q, tab should be collapsed on write", entries[0].Title)
	}
}
