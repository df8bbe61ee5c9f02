// Package player launches a local media player on a resolved stream.
package player

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Player wraps one supported media player binary.
type Player struct {
	name string
}

// New returns a Player for the configured name ("mpv" or "vlc").
func New(name string) *Player {
	return &Player{name: strings.ToLower(name)}
}

// Available reports whether the player binary is in PATH.
func (p *Player) Available() bool {
	_, err := exec.LookPath(p.name)
	return err == nil
}

// Play launches the player on the stream URL, blocking until playback
// ends. subFile, when non-empty, is a local subtitle file to load.
func (p *Player) Play(videoURL, title, subFile string) error {
	var args []string
	switch p.name {
	case "mpv":
		args = []string{
			"--force-media-title=" + title,
			videoURL,
		}
		if subFile != "" {
			args = append([]string{"--sub-file=" + subFile}, args...)
		}
	case "vlc":
		args = []string{
			"--meta-title", title,
			videoURL,
		}
		if subFile != "" {
			args = append([]string{"--sub-file", subFile}, args...)
		}
	default:
		return fmt.Errorf("unsupported player %q", p.name)
	}

	cmd := exec.Command(p.name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", p.name, err)
	}
	return nil
}
