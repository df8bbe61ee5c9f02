// Package extract turns a candidate's detail page into a playable
// stream URL plus captions tracks. The page embeds its player setup in
// an inline script; extraction works on that script text, never by
// executing it.
package extract

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prehrajto/internal/httputil"
	"prehrajto/internal/media"
)

var (
	// ErrNoPlayerScript means no script on the page declares a sources array.
	ErrNoPlayerScript = errors.New("no player script found on detail page")
	// ErrNoVideo means every video extraction strategy came up empty.
	ErrNoVideo = errors.New("no video URL could be extracted")
)

var (
	sourcesRe = regexp.MustCompile(`(?s)var sources\s*=\s*(\[.*?\])\s*;`)
	srcRe     = regexp.MustCompile(`(?s)src:\s*"(.*?)"`)
	tracksRe  = regexp.MustCompile(`(?s)var tracks\s*=\s*(\[.*?\])\s*;`)
)

// Extractor resolves detail pages into stream details.
type Extractor struct {
	client *http.Client
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{client: httputil.NewClient()}
}

// Resolve fetches the detail page with the session's headers and
// extracts the stream details from its player script.
func (e *Extractor) Resolve(detailURL string, headers map[string]string) (media.StreamDetails, error) {
	resp, err := httputil.Get(e.client, detailURL, headers)
	if err != nil {
		return media.StreamDetails{}, fmt.Errorf("fetching detail page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return media.StreamDetails{}, fmt.Errorf("detail page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return media.StreamDetails{}, fmt.Errorf("parsing detail page: %w", err)
	}

	script, err := findPlayerScript(doc)
	if err != nil {
		return media.StreamDetails{}, err
	}

	return FromScript(script)
}

// findPlayerScript returns the text of the first script element that
// declares a sources array.
func findPlayerScript(doc *goquery.Document) (string, error) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := s.Text(); strings.Contains(text, "sources =") {
			script = text
			return false
		}
		return true
	})

	if script == "" {
		return "", ErrNoPlayerScript
	}
	return script, nil
}

// videoStrategy is one way of reading a video URL out of the script.
// Strategies are ordered; a later one is a different parse of the same
// text, not a retry of the previous one.
type videoStrategy struct {
	name string
	run  func(script string) (string, error)
}

var videoStrategies = []videoStrategy{
	{"sources-array", videoFromSources},
	{"bare-src", videoFromBareSrc},
}

// FromScript extracts stream details from player script text. Video
// extraction failing everywhere is an error; track extraction failing is
// a soft degradation to no subtitles.
func FromScript(script string) (media.StreamDetails, error) {
	video, err := extractVideo(script)
	if err != nil {
		return media.StreamDetails{}, err
	}

	return media.StreamDetails{
		Video:     video,
		Subtitles: extractTracks(script),
	}, nil
}

// extractVideo tries each strategy in order and fails only when all are
// exhausted.
func extractVideo(script string) (string, error) {
	var failures []string
	for _, strat := range videoStrategies {
		video, err := strat.run(script)
		if err == nil {
			return video, nil
		}
		failures = append(failures, strat.name+": "+err.Error())
	}
	return "", fmt.Errorf("%w (%s)", ErrNoVideo, strings.Join(failures, "; "))
}

// videoFromSources parses the declared sources array and takes the last
// entry's file field. The site lists the preferred quality last.
func videoFromSources(script string) (string, error) {
	m := sourcesRe.FindStringSubmatch(script)
	if m == nil {
		return "", errors.New("no sources declaration")
	}

	items, err := parseObjectArray(m[1])
	if err != nil {
		return "", fmt.Errorf("parsing sources array: %w", err)
	}
	if len(items) == 0 {
		return "", errors.New("sources array is empty")
	}

	file := items[len(items)-1]["file"]
	if file == "" {
		return "", errors.New("last sources entry has no file field")
	}
	return file, nil
}

// videoFromBareSrc matches a bare src: "..." assignment anywhere in the
// script text.
func videoFromBareSrc(script string) (string, error) {
	m := srcRe.FindStringSubmatch(script)
	if m == nil || m[1] == "" {
		return "", errors.New("no src assignment")
	}
	return m[1], nil
}

// extractTracks reads the captions tracks out of the declared tracks
// array. Any failure yields an empty list; missing subtitles never fail
// a resolve.
func extractTracks(script string) []media.Subtitle {
	m := tracksRe.FindStringSubmatch(script)
	if m == nil {
		return nil
	}

	items, err := parseObjectArray(m[1])
	if err != nil {
		return nil
	}

	var subs []media.Subtitle
	for _, item := range items {
		if item["kind"] != "captions" {
			continue
		}
		subs = append(subs, media.Subtitle{
			ID:   item["label"],
			URL:  item["src"],
			Lang: item["srclang"],
		})
	}
	return subs
}
