package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"prehrajto/internal/download"
	"prehrajto/internal/history"
	"prehrajto/internal/logger"
	"prehrajto/internal/media"
	"prehrajto/internal/player"
	"prehrajto/internal/resolver"
	"prehrajto/internal/session"
	"prehrajto/internal/subtitle"
	"prehrajto/internal/ui"
)

// searchRun is the default command: prehrajto <query>
func searchRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if query == "" {
		var err error
		query, err = ui.Input("Search")
		if err != nil {
			return fmt.Errorf("no search query provided")
		}
	}

	r := resolver.New(cfg.Origin())
	if err := r.Init(); err != nil {
		return fmt.Errorf("initializing resolver: %w", err)
	}

	cred := session.Credential{Username: cfg.Username, Password: cfg.Password}

	results, err := r.Search(query, cred)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no results found for %q", query)
	}

	items := make([]string, len(results))
	for i, res := range results {
		items[i] = resolver.FormatDisplayTitle(res)
	}

	idx, err := ui.Select("Select", items)
	if err != nil {
		return err
	}
	selected := results[idx]
	logger.Debug("selected", "id", selected.ID, "title", selected.Title)

	resolved, err := r.Resolve(selected, cred)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}
	logger.Debug("resolved", "video", resolved.Video, "subtitles", len(resolved.Subtitles))

	if cfg.History {
		entry := media.HistoryEntry{
			ID:         resolved.ID,
			Title:      resolved.Title,
			Format:     resolved.Format,
			Size:       resolved.Size,
			Video:      resolved.Video,
			ResolvedAt: time.Now().Unix(),
		}
		if err := history.Save(entry); err != nil {
			logger.Warn("saving history failed", "err", err)
		}
	}

	// JSON output mode
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"title":     resolved.Title,
			"url":       resolved.Video,
			"format":    resolved.Format,
			"size":      resolved.Size,
			"duration":  resolved.Duration,
			"subtitles": resolved.Subtitles,
		})
	}

	// Subtitles for player/download modes
	var subFile string
	if !flagNoSubs && len(resolved.Subtitles) > 0 {
		if best := subtitle.BestMatch(resolved.Subtitles, cfg.SubsLanguage); best != nil {
			tmpDir, err := subtitle.NewTempDir()
			if err == nil {
				defer tmpDir.Cleanup()
				subFile, err = tmpDir.Download(*best)
				if err != nil {
					logger.Warn("subtitle download failed", "err", err)
					subFile = "" // Continue without subs
				}
			}
		}
	}

	// Download mode
	if flagDownload != "" {
		outputPath, err := download.Download(resolved, flagDownload)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Downloaded: %s\n", outputPath)
		return nil
	}

	// Play
	p := player.New(cfg.Player)
	if !p.Available() {
		return fmt.Errorf("player %q not found in PATH", cfg.Player)
	}
	if err := p.Play(resolved.Video, resolved.Title, subFile); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	return nil
}
