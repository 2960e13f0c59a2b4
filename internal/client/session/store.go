// Package session persists dashctl's ambient credentials (the bearer token
// and the selected store id) in a bbolt key-value file, and hands them to
// the domain adapters through the Source interface.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
	keyStoreID    = []byte("store_id")
)

// storeIDPattern matches the gateway's allow-list for store identifiers.
var storeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// Source supplies the credentials a domain adapter needs before it calls
// the gateway. Both methods fail with a *domain.Error: NOT_AUTHENTICATED
// for a missing or expired token, NO_STORE when no store is selected.
type Source interface {
	BearerToken() (string, error)
	StoreID() (string, error)
}

// Store is the bbolt-backed Source.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (creating if needed) the session file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// OpenReadOnly opens an existing session file under a shared lock, so
// several readers can hold it at once. A missing file fails with an error
// matching os.ErrNotExist.
func OpenReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetToken validates that token is a well-formed, unexpired JWT and stores it.
func (s *Store) SetToken(token string) error {
	info, err := Inspect(token)
	if err != nil {
		return err
	}
	if info.Expired(s.now()) {
		return errors.New("token has already expired")
	}
	return s.put(keyToken, token)
}

// SetStoreID validates id against the store identifier pattern and stores it.
func (s *Store) SetStoreID(id string) error {
	if !storeIDPattern.MatchString(id) {
		return fmt.Errorf("invalid store id %q: must be 1-32 letters, digits, '-' or '_'", id)
	}
	return s.put(keyStoreID, id)
}

// Clear removes the token and the selected store.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyStoreID)
	})
}

// BearerToken returns the stored token. A missing, unreadable or expired
// token is NOT_AUTHENTICATED.
func (s *Store) BearerToken() (string, error) {
	token, err := s.get(keyToken)
	if err != nil {
		return "", domain.Wrap(err, domain.CodeNotAuthenticated, "reading session")
	}
	if token == "" {
		return "", domain.New(domain.CodeNotAuthenticated, "not signed in")
	}
	info, err := Inspect(token)
	if err != nil {
		return "", domain.Wrap(err, domain.CodeNotAuthenticated, "stored token is malformed")
	}
	if info.Expired(s.now()) {
		return "", domain.New(domain.CodeNotAuthenticated, "session expired")
	}
	return token, nil
}

// StoreID returns the selected store, or NO_STORE.
func (s *Store) StoreID() (string, error) {
	id, err := s.get(keyStoreID)
	if err != nil {
		return "", domain.Wrap(err, domain.CodeNoStore, "reading session")
	}
	if id == "" {
		return "", domain.New(domain.CodeNoStore, "no store selected")
	}
	return id, nil
}

func (s *Store) put(key []byte, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(key, []byte(value))
	})
	if err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func (s *Store) get(key []byte) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			value = string(v)
		}
		return nil
	})
	return value, err
}

// Static is a fixed Source, used where credentials come from somewhere
// other than the session file.
type Static struct {
	Token string
	Store string
}

// BearerToken returns the token or NOT_AUTHENTICATED.
func (s Static) BearerToken() (string, error) {
	if s.Token == "" {
		return "", domain.New(domain.CodeNotAuthenticated, "not signed in")
	}
	return s.Token, nil
}

// StoreID returns the store or NO_STORE.
func (s Static) StoreID() (string, error) {
	if s.Store == "" {
		return "", domain.New(domain.CodeNoStore, "no store selected")
	}
	return s.Store, nil
}
