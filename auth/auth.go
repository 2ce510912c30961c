package auth

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"community-fund/models"
	"community-fund/storage"
)

const sessionKey = "user"

// ErrInvalidCredentials is returned for any failed login. It deliberately
// does not reveal whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Store holds the authenticated identity. At most one session is active at
// a time; it is mirrored to the persisted store under the "user" key on
// every change and restored from there on startup.
type Store struct {
	mu      sync.Mutex
	kv      storage.Store
	creds   []models.Credential
	current *models.Session
}

func NewStore(kv storage.Store, creds []models.Credential) *Store {
	s := &Store{kv: kv, creds: creds}
	s.restore()
	return s
}

// Login matches the username case-insensitively and the password against
// the stored bcrypt hash. On success the identity (minus the secret)
// becomes the current session and is persisted.
func (s *Store) Login(username, password string) (models.Session, error) {
	for _, c := range s.creds {
		if !strings.EqualFold(c.Username, strings.TrimSpace(username)) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
			return models.Session{}, ErrInvalidCredentials
		}
		sess := models.Session{ID: c.ID, Username: c.Username, Name: c.Name, Role: c.Role}
		raw, err := json.Marshal(sess)
		if err != nil {
			return models.Session{}, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.kv.Put(sessionKey, string(raw)); err != nil {
			return models.Session{}, err
		}
		s.current = &sess
		return sess, nil
	}
	return models.Session{}, ErrInvalidCredentials
}

// Logout clears the current session and its persisted copy. Calling it
// while logged out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return s.kv.Delete(sessionKey)
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// restore reads the persisted session on startup. Absent or malformed data
// leaves the store logged out; it never fails hard.
func (s *Store) restore() {
	raw, ok, err := s.kv.Get(sessionKey)
	if err != nil || !ok {
		return
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return
	}
	if sess.ID == "" || sess.Username == "" {
		return
	}
	if sess.Role != models.RoleMahaMantri && sess.Role != models.RoleMantri {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
}
