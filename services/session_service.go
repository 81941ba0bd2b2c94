package services

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/Modeva-Ecommerce/modeva-storefront/store"
	"github.com/google/uuid"
)

const sessionStripes = 64

// SessionManager opens per-session stores over one shared backend.
// Requests of the same session are serialized for the whole
// load-mutate-persist-notify cycle; different sessions run concurrently.
type SessionManager struct {
	base  storage.Store
	locks [sessionStripes]sync.Mutex
}

func NewSessionManager(base storage.Store) *SessionManager {
	return &SessionManager{base: base}
}

// NewSessionID returns a fresh, time-ordered session id.
func NewSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Shared is the un-namespaced backend holding cross-session keys (users).
func (m *SessionManager) Shared() storage.Store {
	return m.base
}

// Storage is the namespaced backend of one session.
func (m *SessionManager) Storage(sessionID string) storage.Store {
	return storage.Namespace(m.base, storage.SessionPrefix(sessionID))
}

// Open locks the session and loads its store. The caller must call
// release once the request is done with it.
func (m *SessionManager) Open(ctx context.Context, sessionID string) (st *store.Store, release func(), err error) {
	mu := m.lockFor(sessionID)
	mu.Lock()

	st, err = store.Open(ctx, m.Storage(sessionID))
	if err != nil {
		mu.Unlock()
		return nil, nil, err
	}

	var once sync.Once
	return st, func() { once.Do(mu.Unlock) }, nil
}

func (m *SessionManager) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &m.locks[h.Sum32()%sessionStripes]
}
