// Package session acquires and caches the request headers that make
// calls against prehraj.to look like an authenticated (or at least
// initialized anonymous) browser visit.
package session

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"prehrajto/internal/httputil"
)

// consentCookie is sent on the acquisition request itself; the site
// refuses to issue a session cookie without the consent banner answered.
const consentCookie = "AC=C"

// Credential identifies a site account. Both fields empty means
// "anonymous visitor".
type Credential struct {
	Username string
	Password string
}

// Anonymous reports whether this credential takes the anonymous path.
// An empty username forces it regardless of password.
func (c Credential) Anonymous() bool {
	return c.Username == ""
}

// key is the cache identity of the pair. The separator cannot occur in
// form-submitted values, so distinct pairs never collide.
func (c Credential) key() string {
	return c.Username + "\n" + c.Password
}

// Session is the immutable set of outgoing headers a login produced.
// It is shared read-only by every request that uses it.
type Session struct {
	headers map[string]string
}

// Headers returns the outgoing headers to apply to a request.
func (s *Session) Headers() map[string]string {
	if s == nil {
		return nil
	}
	return s.headers
}

// OK reports whether the acquisition produced a usable header set.
// Note this proves only that the server answered with cookies, not that
// supplied credentials were correct: a rejected login and a fresh
// anonymous visit both set cookies and are indistinguishable here.
func (s *Session) OK() bool {
	return s != nil && s.headers["Cookie"] != ""
}

// Acquirer performs a single login round-trip against the site.
type Acquirer struct {
	origin string
	client *http.Client
}

// NewAcquirer creates an Acquirer for the given site origin,
// e.g. "https://prehraj.to".
func NewAcquirer(origin string) *Acquirer {
	return &Acquirer{
		origin: strings.TrimRight(origin, "/"),
		// The login response is a redirect carrying the authenticated
		// cookie; it must not be followed.
		client: httputil.NewNoRedirectClient(),
	}
}

// Acquire performs one authentication round-trip and returns the
// resulting session. It fails only on transport errors; the server's
// verdict on the credentials is not observable (see Session.OK).
func (a *Acquirer) Acquire(cred Credential) (*Session, error) {
	if cred.Anonymous() {
		return a.acquireAnonymous()
	}
	return a.acquireCredentialed(cred)
}

// acquireAnonymous grabs whatever session cookie the site issues to a
// fresh visitor on the front page.
func (a *Acquirer) acquireAnonymous() (*Session, error) {
	req, err := httputil.NewRequest(http.MethodGet, a.origin+"/", map[string]string{
		"Cookie":  consentCookie,
		"Referer": a.origin + "/",
	})
	if err != nil {
		return nil, fmt.Errorf("building anonymous request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anonymous visit: %w", err)
	}
	defer resp.Body.Close()

	return sessionFromResponse(resp), nil
}

// acquireCredentialed submits the login form and collects the cookies
// from the redirect response.
func (a *Acquirer) acquireCredentialed(cred Credential) (*Session, error) {
	form := url.Values{}
	form.Set("email", cred.Username)
	form.Set("password", cred.Password)
	form.Set("remember", "on")
	form.Set("_submit", "Přihlásit se")
	form.Set("_do", "login-loginForm-submit")

	loginURL := a.origin + "/?login-gtm_action=login"
	req, err := http.NewRequest(http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", consentCookie)
	req.Header.Set("Referer", a.origin+"/")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting login form: %w", err)
	}
	defer resp.Body.Close()

	return sessionFromResponse(resp), nil
}

// sessionFromResponse materializes the response's Set-Cookie headers
// into a single outgoing Cookie header.
func sessionFromResponse(resp *http.Response) *Session {
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return &Session{headers: map[string]string{}}
	}

	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}

	return &Session{headers: map[string]string{
		"Cookie": strings.Join(pairs, "; "),
	}}
}
