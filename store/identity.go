// Package store owns the application state: who is known and logged in
// (Identity) and everything sellable and sold (Catalog). Each store holds
// its collections in memory and mirrors them through a storage.Records port
// after every mutation.
package store

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

// ErrInvalidCredentials is the single failure for bad logins. Unknown email
// and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Identity tracks the known users and the current session.
type Identity struct {
	mu         sync.Mutex
	records    storage.Records
	seeded     []models.User
	registered []models.User
	current    *models.User
}

// NewIdentity restores registered users and the persisted session from the
// records port. The session is trusted as-is, with no credential re-check.
func NewIdentity(records storage.Records, seeded []models.User) *Identity {
	s := &Identity{records: records, seeded: seeded}

	var registered []models.User
	if err := records.Load(storage.KeyLocalUsers, &registered); err == nil {
		s.registered = registered
	}
	var current models.User
	if err := records.Load(storage.KeySession, &current); err == nil {
		s.current = &current
	}
	return s
}

// Login scans seeded users first, then registered ones, for the first exact
// email+password match. Case-sensitive, plaintext. With duplicate emails the
// earliest matching entry wins, whatever was registered later.
func (s *Identity) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.seeded {
		if u.Email == email && u.Password == password {
			s.setCurrent(u)
			return u, nil
		}
	}
	for _, u := range s.registered {
		if u.Email == email && u.Password == password {
			s.setCurrent(u)
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Register appends a new user and logs them in. Duplicate emails are not
// rejected; both accounts are kept and login resolves by scan order.
func (s *Identity) Register(draft models.User) (models.User, error) {
	switch {
	case draft.Name == "":
		return models.User{}, errors.New("name is required")
	case draft.Email == "":
		return models.User{}, errors.New("email is required")
	case draft.Password == "":
		return models.User{}, errors.New("password is required")
	}
	if draft.Role == "" {
		draft.Role = models.RoleStudent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	s.registered = append(s.registered, draft)
	s.persist(storage.KeyLocalUsers, s.registered)
	s.setCurrent(draft)
	return draft, nil
}

// Logout clears the current session. Nothing else is touched.
func (s *Identity) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.records.Delete(storage.KeySession); err != nil {
		log.Printf("identity: clearing session record: %v", err)
	}
}

// Current returns the session user, if any.
func (s *Identity) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Find looks a user up by id across seeded and registered users.
func (s *Identity) Find(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.seeded {
		if u.ID == id {
			return u, true
		}
	}
	for _, u := range s.registered {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AllUsers returns seeded users followed by registered ones, no dedup.
func (s *Identity) AllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.User, 0, len(s.seeded)+len(s.registered))
	all = append(all, s.seeded...)
	return append(all, s.registered...)
}

func (s *Identity) setCurrent(u models.User) {
	s.current = &u
	s.persist(storage.KeySession, u)
}

// persist is best-effort: a failed mirror write is logged, never fatal.
func (s *Identity) persist(key string, value any) {
	if err := s.records.Save(key, value); err != nil {
		log.Printf("identity: saving %s: %v", key, err)
	}
}
