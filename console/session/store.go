package session

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"trackadmin/console/client"
)

const (
	bucketSession  = "session"
	keyCurrentUser = "currentUser"
)

// Store persists the login session between console runs. It satisfies
// the client's session provider so every request reads the stored
// token.
type Store struct {
	storage *bbolt.DB
}

func Open(path string) (*Store, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	}); err != nil {
		_ = instance.Close()
		return nil, err
	}
	return &Store{storage: instance}, nil
}

// Session returns the stored session, if one exists.
func (s *Store) Session() (client.Session, bool) {
	var session client.Session
	found := false
	_ = s.storage.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketSession)).Get([]byte(keyCurrentUser))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &session); err != nil {
			return err
		}
		found = session.Token != ""
		return nil
	})
	if !found {
		return client.Session{}, false
	}
	return session, true
}

// Set replaces the stored session.
func (s *Store) Set(session client.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Put([]byte(keyCurrentUser), raw)
	})
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	return s.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Delete([]byte(keyCurrentUser))
	})
}

func (s *Store) Close() error {
	return s.storage.Close()
}
