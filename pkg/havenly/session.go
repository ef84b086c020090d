package havenly

import (
	"context"
	"net/http"
	"sync"
)

// State is the session lifecycle state.
type State int

const (
	// StateInitializing means the startup verification has not resolved yet.
	StateInitializing State = iota
	// StateAuthenticated means the stored token was verified and a user is held.
	StateAuthenticated
	// StateAnonymous means there is no valid session.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Session is the auth state machine. It starts in StateInitializing and moves
// to StateAuthenticated or StateAnonymous after Bootstrap resolves the stored
// token against the server; Login, Register and Logout cycle it between the
// two resolved states for the life of the process.
//
// A nil user and StateAnonymous are the sole "logged out" representation. The
// user record is only ever derived from a server response, never fabricated
// from local data.
type Session struct {
	client *Client

	mu    sync.RWMutex
	state State
	user  *User
	// epoch increments on every login/logout transition. A verification
	// response carrying an older epoch is stale and gets discarded instead
	// of resurrecting a session the user already left.
	epoch uint64

	bootstrapOnce sync.Once
}

// NewSession wraps a client in a fresh session in StateInitializing.
func NewSession(client *Client) *Session {
	return &Session{client: client, state: StateInitializing}
}

// Bootstrap runs the startup verification exactly once. Concurrent callers
// block until the first invocation resolves; later calls return immediately.
// Use RefreshAuth to re-verify after the first run.
func (s *Session) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		s.verify(ctx)
	})
}

// RefreshAuth re-runs the same verification flow as Bootstrap. Used after the
// token changed underneath the session.
func (s *Session) RefreshAuth(ctx context.Context) {
	s.verify(ctx)
}

// verify resolves the stored token into a user record. A missing token is
// "logged out", not an error. A rejected token or transport failure clears
// the token and resolves to StateAnonymous: verification fails closed.
func (s *Session) verify(ctx context.Context) {
	if s.client.Tokens.Get() == "" {
		s.transition(StateAnonymous, nil)
		return
	}

	s.mu.RLock()
	started := s.epoch
	s.mu.RUnlock()

	res := callAuth[AuthPayload](ctx, s.client, http.MethodGet, "/auth/me", nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != started {
		// The session changed while the request was in flight.
		return
	}
	if res.Success && res.Data.User != nil && res.Data.User.ID != "" {
		s.state = StateAuthenticated
		s.user = normaliseUser(res.Data.User)
		return
	}
	s.client.Tokens.Clear()
	s.state = StateAnonymous
	s.user = nil
}

// Login exchanges credentials for a token. On success the token is stored and
// the session moves to StateAuthenticated before Login returns; on failure
// the session is left untouched and the failure is reported in the Result.
func (s *Session) Login(ctx context.Context, email, password string) Result[AuthPayload] {
	body := map[string]string{"email": email, "password": password}
	res := call[AuthPayload](ctx, s.client, http.MethodPost, "/auth/login", body)
	if res.Success {
		s.adopt(res.Data)
	}
	return res
}

// RegisterInput is the payload for self-service registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account and, like Login, adopts the returned session on
// success.
func (s *Session) Register(ctx context.Context, in RegisterInput) Result[AuthPayload] {
	res := call[AuthPayload](ctx, s.client, http.MethodPost, "/auth/register", in)
	if res.Success {
		s.adopt(res.Data)
	}
	return res
}

// Logout clears the session locally and immediately, then best-effort revokes
// the token server-side. The local transition never waits on the network.
func (s *Session) Logout(ctx context.Context) {
	token := s.client.Tokens.Get()
	s.client.Tokens.Clear()
	s.transition(StateAnonymous, nil)

	if token == "" {
		return
	}
	if resp, err := s.client.do(ctx, http.MethodPost, "/auth/logout", token, nil); err == nil {
		resp.Body.Close()
	}
}

// adopt installs a freshly issued token and user.
func (s *Session) adopt(payload AuthPayload) {
	if payload.Token == "" || payload.User == nil {
		return
	}
	s.client.Tokens.Set(payload.Token)
	s.transition(StateAuthenticated, normaliseUser(payload.User))
}

func (s *Session) transition(state State, user *User) {
	s.mu.Lock()
	s.epoch++
	s.state = state
	s.user = user
	s.mu.Unlock()
}

// CurrentUser returns the held user, or nil when the session is not
// authenticated.
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the startup verification is still unresolved.
func (s *Session) Loading() bool {
	return s.State() == StateInitializing
}

// normaliseUser lower-cases the role into the closed set where possible so
// downstream checks never compare raw strings.
func normaliseUser(u *User) *User {
	out := *u
	if role, ok := ParseRole(string(u.Role)); ok {
		out.Role = role
	}
	return &out
}
