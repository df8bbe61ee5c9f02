package resolver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prehrajto/internal/convert"
	"prehrajto/internal/media"
)

// parseSearchResults extracts candidates from a search results page, in
// document order. Unparsable duration or size tags leave the numeric
// fields zero rather than dropping the candidate.
func parseSearchResults(doc *goquery.Document, origin string) []media.SearchResult {
	var results []media.SearchResult

	doc.Find("a.video--link").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}

		result := media.SearchResult{
			ID:    href,
			Title: s.AttrOr("title", ""),
			URL:   origin + href,
		}

		timeText := strings.TrimSpace(s.Find(".video__tag--time").First().Text())
		if seconds, err := convert.TimeToSeconds(timeText); err == nil {
			result.Duration = seconds
		}

		sizeText := strings.ToUpper(strings.TrimSpace(s.Find(".video__tag--size").First().Text()))
		if bytes, err := convert.SizeToBytes(sizeText); err == nil {
			result.Size = bytes
		}

		// The format badge is an SVG sprite reference; the tag name is
		// the fragment. Absent badge means an unknown format, not an error.
		// Inside <svg> the HTML parser stores xlink:href as a namespaced
		// attribute with bare key "href", so that spelling is tried first.
		use := s.Find(".video__tag--format use").First()
		ref, ok := use.Attr("href")
		if !ok {
			ref, ok = use.Attr("xlink:href")
		}
		if ok {
			result.Format = ref[strings.LastIndex(ref, "#")+1:]
		}

		results = append(results, result)
	})

	return results
}
