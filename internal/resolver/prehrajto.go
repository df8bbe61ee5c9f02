package resolver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prehrajto/internal/extract"
	"prehrajto/internal/httputil"
	"prehrajto/internal/logger"
	"prehrajto/internal/media"
	"prehrajto/internal/session"
)

// DefaultOrigin is the production site origin.
const DefaultOrigin = "https://prehraj.to"

// PrehrajTo implements Resolver for the prehraj.to file host.
type PrehrajTo struct {
	origin    string
	client    *http.Client
	sessions  *session.Cache
	extractor *extract.Extractor
}

// New creates a PrehrajTo resolver for the given origin
// (DefaultOrigin outside of tests).
func New(origin string) *PrehrajTo {
	origin = strings.TrimRight(origin, "/")
	acquirer := session.NewAcquirer(origin)
	return &PrehrajTo{
		origin:    origin,
		client:    httputil.NewClient(),
		sessions:  session.NewCache(acquirer.Acquire),
		extractor: extract.New(),
	}
}

// Name identifies the backend.
func (p *PrehrajTo) Name() string { return "PrehrajTo" }

// Init is a readiness no-op; the resolver holds no startup state.
func (p *PrehrajTo) Init() error { return nil }

// ValidateConfig reports false for missing credential fields, otherwise
// whether a session was obtained. A header-bearing response proves only
// that the site answered, not that the credentials are correct; the
// login endpoint gives no observable verdict either way.
func (p *PrehrajTo) ValidateConfig(cred session.Credential) (bool, error) {
	if cred.Username == "" || cred.Password == "" {
		return false, nil
	}

	sess, err := p.sessions.GetOrAcquire(cred)
	if err != nil {
		return false, fmt.Errorf("acquiring session: %w", err)
	}
	return sess.OK(), nil
}

// Search fetches the first results page for the title and parses every
// candidate on it. No pagination.
func (p *PrehrajTo) Search(title string, cred session.Credential) ([]media.SearchResult, error) {
	sess, err := p.sessions.GetOrAcquire(cred)
	if err != nil {
		return nil, fmt.Errorf("acquiring session: %w", err)
	}

	searchURL := fmt.Sprintf("%s/hledej/%s?vp-page=0", p.origin, httputil.EncodeTitle(title))
	logger.Debug("searching", "url", searchURL)

	doc, err := p.fetchDocument(searchURL, sess.Headers())
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", title, err)
	}

	results := parseSearchResults(doc, p.origin)
	logger.Debug("search finished", "title", title, "results", len(results))
	return results, nil
}

// Resolve extracts the stream for a candidate and merges the extracted
// details onto the candidate's fields.
func (p *PrehrajTo) Resolve(result media.SearchResult, cred session.Credential) (media.ResolvedStream, error) {
	sess, err := p.sessions.GetOrAcquire(cred)
	if err != nil {
		return media.ResolvedStream{}, fmt.Errorf("acquiring session: %w", err)
	}

	logger.Debug("resolving", "id", result.ID, "url", result.URL)
	details, err := p.extractor.Resolve(result.URL, sess.Headers())
	if err != nil {
		return media.ResolvedStream{}, fmt.Errorf("resolving %q: %w", result.ID, err)
	}

	return media.ResolvedStream{SearchResult: result, StreamDetails: details}, nil
}

// fetchDocument fetches a URL with the session's headers and parses it
// into a goquery document.
func (p *PrehrajTo) fetchDocument(url string, headers map[string]string) (*goquery.Document, error) {
	resp, err := httputil.Get(p.client, url, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
