package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetOrAcquireSingleFlight(t *testing.T) {
	var acquisitions atomic.Int32
	cache := NewCache(func(cred Credential) (*Session, error) {
		acquisitions.Add(1)
		// Widen the race window so concurrent misses overlap.
		time.Sleep(20 * time.Millisecond)
		return &Session{headers: map[string]string{"Cookie": "sid=" + cred.Username}}, nil
	})

	const n = 32
	cred := Credential{Username: "user", Password: "pw"}

	var wg sync.WaitGroup
	sessions := make([]*Session, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess, err := cache.GetOrAcquire(cred)
			if err != nil {
				t.Errorf("GetOrAcquire: %v", err)
			}
			sessions[i] = sess
		}(i)
	}
	wg.Wait()

	if got := acquisitions.Load(); got != 1 {
		t.Fatalf("%d concurrent misses triggered %d acquisitions, want 1", n, got)
	}
	for i := 1; i < n; i++ {
		if sessions[i] != sessions[0] {
			t.Fatal("concurrent callers should share the same session")
		}
	}
}

func TestGetOrAcquireDistinctKeys(t *testing.T) {
	var acquisitions atomic.Int32
	cache := NewCache(func(cred Credential) (*Session, error) {
		acquisitions.Add(1)
		return &Session{headers: map[string]string{"Cookie": "sid=x"}}, nil
	})

	pairs := []Credential{
		{},
		{Username: "a", Password: "b"},
		{Username: "ab", Password: ""},
		{Username: "a", Password: "b2"},
	}
	for _, cred := range pairs {
		if _, err := cache.GetOrAcquire(cred); err != nil {
			t.Fatalf("GetOrAcquire(%v): %v", cred, err)
		}
	}

	if got := acquisitions.Load(); got != int32(len(pairs)) {
		t.Errorf("distinct pairs triggered %d acquisitions, want %d", got, len(pairs))
	}
}

func TestGetOrAcquireCachesFailure(t *testing.T) {
	var acquisitions atomic.Int32
	wantErr := errors.New("network down")
	cache := NewCache(func(Credential) (*Session, error) {
		acquisitions.Add(1)
		return nil, wantErr
	})

	cred := Credential{Username: "u", Password: "p"}
	for i := 0; i < 3; i++ {
		if _, err := cache.GetOrAcquire(cred); !errors.Is(err, wantErr) {
			t.Fatalf("GetOrAcquire error = %v, want %v", err, wantErr)
		}
	}

	// The failure marker is cached; no re-login for a known key.
	if got := acquisitions.Load(); got != 1 {
		t.Errorf("repeated calls triggered %d acquisitions, want 1", got)
	}
}

func TestAnonymousForcedByEmptyUsername(t *testing.T) {
	cred := Credential{Username: "", Password: "ignored"}
	if !cred.Anonymous() {
		t.Error("empty username must force the anonymous path regardless of password")
	}
	if (Credential{Username: "u"}).Anonymous() {
		t.Error("non-empty username must take the credentialed path")
	}
}
