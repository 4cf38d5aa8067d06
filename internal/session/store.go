// Package session persists the client-side auth state the way the web app
// keeps it in localStorage: a raw bearer token plus a legacy cached user
// record, in a small SQLite key/value table under the user's data dir.
//
// Unlike localStorage, the store is observable: components subscribe once and
// a logout anywhere is visible everywhere without waiting for a re-render.
package session

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sevent-cli/internal/model"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"
)

const (
	keyToken = "authToken"
	// keyUser is the legacy cached user record; only ever deleted on logout,
	// kept for compatibility with state written by older builds.
	keyUser = "user"
)

type Store struct {
	db *sql.DB

	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Open creates (if needed) and opens the local state db under dir.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("session: empty data dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "state.sqlite"))
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(context.Background(),
		`CREATE TABLE IF NOT EXISTS local_state (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, subs: map[int]func(){}}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Subscribe registers fn to run after every write and returns a function
// that removes the registration. Callbacks run on the writer's goroutine;
// keep them cheap.
func (s *Store) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) get(key string) string {
	var v string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT v FROM local_state WHERE k = ?`, key).Scan(&v)
	if err != nil {
		return ""
	}
	return v
}

func (s *Store) set(key, val string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT OR REPLACE INTO local_state(k, v) VALUES(?, ?)`, key, val)
	return err
}

func (s *Store) del(keys ...string) error {
	for _, k := range keys {
		if _, err := s.db.ExecContext(context.Background(),
			`DELETE FROM local_state WHERE k = ?`, k); err != nil {
			return err
		}
	}
	return nil
}

// Token returns the raw bearer token, empty when logged out.
func (s *Store) Token() string { return s.get(keyToken) }

func (s *Store) SetToken(tok string) error {
	if err := s.set(keyToken, tok); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Logout clears the token and the legacy cached user record. Purely local:
// there is no server logout endpoint to call.
func (s *Store) Logout() error {
	if err := s.del(keyToken, keyUser); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Session derives the current auth state. LoggedIn follows token presence;
// Claims stays nil when the token does not decode. Decode failures are
// swallowed, so a corrupt token reads as "logged in, no claims".
func (s *Store) Session() model.Session {
	tok := s.Token()
	sess := model.Session{Token: tok, LoggedIn: tok != ""}
	if tok == "" {
		return sess
	}
	sess.Claims = DecodeClaims(tok)
	return sess
}

// DecodeClaims parses the token payload without verifying the signature —
// the client has no key material and the server re-verifies every request.
// Returns nil on any parse error.
func DecodeClaims(tok string) *model.Claims {
	var claims model.Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return nil
	}
	return &claims
}
