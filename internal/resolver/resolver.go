// Package resolver implements the prehraj.to search/stream resolver:
// the four operations an orchestrator drives a site backend with.
package resolver

import (
	"prehrajto/internal/media"
	"prehrajto/internal/session"
)

// Resolver is the surface a site backend exposes to an orchestrator.
type Resolver interface {
	// Name identifies the backend.
	Name() string

	// Init performs any startup work. It must be cheap and idempotent.
	Init() error

	// ValidateConfig reports whether the credential is usable: false
	// when required fields are missing, otherwise whether a session
	// could be obtained with it.
	ValidateConfig(cred session.Credential) (bool, error)

	// Search returns candidates for a title, in page order.
	Search(title string, cred session.Credential) ([]media.SearchResult, error)

	// Resolve turns a previously returned candidate into a playable
	// stream merged onto the candidate's fields.
	Resolve(result media.SearchResult, cred session.Credential) (media.ResolvedStream, error)
}
