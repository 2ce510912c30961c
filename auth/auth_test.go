package auth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"community-fund/models"
	"community-fund/storage"
)

// Hashing the seed passwords is slow, so do it once for the package.
var testCreds = models.SeedCredentials()

func TestLoginSuccess(t *testing.T) {
	store := storage.NewMemStore()
	s := NewStore(store, testCreds)

	sess, err := s.Login("admin", "admin@123")
	require.NoError(t, err)
	require.Equal(t, "Parth Kacha", sess.Name)
	require.Equal(t, models.RoleMahaMantri, sess.Role)

	current := s.Current()
	require.NotNil(t, current)
	require.Equal(t, sess, *current)

	raw, ok, err := store.Get("user")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted models.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Equal(t, sess, persisted)
	require.NotContains(t, strings.ToLower(raw), "password")
}

func TestLoginUsernameCaseInsensitive(t *testing.T) {
	s := NewStore(storage.NewMemStore(), testCreds)

	sess, err := s.Login("ADMIN", "admin@123")
	require.NoError(t, err)
	require.Equal(t, "admin", sess.Username)
}

func TestLoginPasswordCaseSensitive(t *testing.T) {
	s := NewStore(storage.NewMemStore(), testCreds)

	_, err := s.Login("admin", "ADMIN@123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, s.Current())
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	store := storage.NewMemStore()
	s := NewStore(store, testCreds)

	_, err := s.Login("admin", "admin@123")
	require.NoError(t, err)

	_, err = s.Login("admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("nobody", "admin@123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	current := s.Current()
	require.NotNil(t, current)
	require.Equal(t, "admin", current.Username)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := storage.NewMemStore()
	s := NewStore(store, testCreds)

	_, err := s.Login("vimalchauhan", "Vimal@123")
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	require.Nil(t, s.Current())
	_, ok, err := store.Get("user")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Logout())
	require.Nil(t, s.Current())
}

func TestRestoreValidSession(t *testing.T) {
	store := storage.NewMemStore()
	raw, err := json.Marshal(models.Session{ID: "2", Username: "vimalchauhan", Name: "Vimal Chauhan", Role: models.RoleMantri})
	require.NoError(t, err)
	require.NoError(t, store.Put("user", string(raw)))

	s := NewStore(store, testCreds)
	current := s.Current()
	require.NotNil(t, current)
	require.Equal(t, "vimalchauhan", current.Username)
}

func TestRestoreMalformedSessionFailsOpen(t *testing.T) {
	cases := map[string]string{
		"garbage":      "{not json",
		"empty object": "{}",
		"missing id":   `{"username":"admin","name":"x","role":"Mantri"}`,
		"bad role":     `{"id":"1","username":"admin","name":"x","role":"Emperor"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemStore()
			require.NoError(t, store.Put("user", raw))

			s := NewStore(store, testCreds)
			require.Nil(t, s.Current())
		})
	}
}

func TestRestoreAbsentSession(t *testing.T) {
	s := NewStore(storage.NewMemStore(), testCreds)
	require.Nil(t, s.Current())
}
