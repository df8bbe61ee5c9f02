package session

import "sync"

// AcquireFunc performs one authentication round-trip.
type AcquireFunc func(Credential) (*Session, error)

// Cache memoizes acquisition results for the process lifetime, keyed by
// the exact credential pair. Entries never expire: once a session is
// cached it is reused even if the upstream session has since gone stale.
type Cache struct {
	acquire AcquireFunc

	mu    sync.Mutex
	calls map[string]*call
}

// call is a per-key acquisition record. Callers that miss while the
// acquisition is in flight wait on done and share its outcome, so at
// most one login runs per distinct credential pair.
type call struct {
	done chan struct{}
	sess *Session
	err  error
}

// NewCache creates a Cache backed by the given acquire function.
func NewCache(acquire AcquireFunc) *Cache {
	return &Cache{
		acquire: acquire,
		calls:   make(map[string]*call),
	}
}

// GetOrAcquire returns the cached session for the credential pair,
// acquiring it first if no call for that pair has run yet. Failed
// acquisitions are cached too; a new login is never triggered for a key
// that already has a result.
func (c *Cache) GetOrAcquire(cred Credential) (*Session, error) {
	key := cred.key()

	c.mu.Lock()
	if cl, ok := c.calls[key]; ok {
		c.mu.Unlock()
		<-cl.done
		return cl.sess, cl.err
	}
	cl := &call{done: make(chan struct{})}
	c.calls[key] = cl
	c.mu.Unlock()

	cl.sess, cl.err = c.acquire(cred)
	close(cl.done)
	return cl.sess, cl.err
}
