package havenly

import (
	"encoding/json"
	"os"
	"sync"
)

// TokenKey is the single storage key the SDK uses for the bearer credential.
// Earlier clients spread the token across several keys; everything now goes
// through this one.
const TokenKey = "auth_token"

// TokenStore is a process-wide slot for a single bearer credential. Set is
// called on successful login or registration, Get on every authenticated
// request, and Clear on logout or when the server rejects the token.
type TokenStore interface {
	Set(token string)
	Get() string
	Clear()
}

// MemoryTokenStore keeps the token in memory. It is the default store and
// matches session-scoped semantics: the credential does not outlive the
// process.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryTokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// FileTokenStore persists the token to a JSON file under TokenKey, for CLI
// tools that want the credential to survive between runs. Read and write
// failures degrade to an empty token rather than erroring: a missing or
// unreadable file means "logged out".
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(map[string]string{TokenKey: token})
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0o600)
}

func (s *FileTokenStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var stored map[string]string
	if err := json.Unmarshal(raw, &stored); err != nil {
		return ""
	}
	return stored[TokenKey]
}

func (s *FileTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}
