package store

import (
	"testing"

	"campus-eats-api/models"
	"campus-eats-api/seed"
	"campus-eats-api/storage"

	"github.com/stretchr/testify/assert"
)

func TestLoginMatchesSeededUser(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	user, err := s.Login("john@student.com", "user")
	assert.NoError(t, err)
	assert.Equal(t, "student1", user.ID)

	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "student1", current.ID)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	_, wrongPass := s.Login("john@student.com", "nope")
	_, unknownEmail := s.Login("ghost@student.com", "user")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	// Wrong password and unknown email must be indistinguishable.
	assert.Equal(t, wrongPass, unknownEmail)

	_, ok := s.Current()
	assert.False(t, ok, "failed logins never establish a session")
}

func TestLoginIsCaseSensitive(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	_, err := s.Login("John@Student.com", "user")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("john@student.com", "User")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAutoLogsIn(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	user, err := s.Register(models.User{
		Name:     "Priya",
		Email:    "priya@student.com",
		Password: "secret",
		Phone:    "5550001111",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)

	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	_, err := s.Register(models.User{Email: "x@y.com", Password: "p"})
	assert.EqualError(t, err, "name is required")

	_, err = s.Register(models.User{Name: "X", Password: "p"})
	assert.EqualError(t, err, "email is required")

	_, err = s.Register(models.User{Name: "X", Email: "x@y.com"})
	assert.EqualError(t, err, "password is required")

	assert.Len(t, s.AllUsers(), len(seed.Users()), "rejected drafts leave state unchanged")
}

func TestRegisterKeepsDuplicateEmails(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	first, err := s.Register(models.User{Name: "First", Email: "dup@student.com", Password: "one"})
	assert.NoError(t, err)
	_, err = s.Register(models.User{Name: "Second", Email: "dup@student.com", Password: "two"})
	assert.NoError(t, err)

	assert.Len(t, s.AllUsers(), len(seed.Users())+2, "both duplicate accounts are retained")

	// Scan order decides: the earlier registration wins for its password.
	user, err := s.Login("dup@student.com", "one")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestLoginPrefersSeededOverRegistered(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	// Same email and password as the seeded student.
	_, err := s.Register(models.User{Name: "Impostor", Email: "john@student.com", Password: "user"})
	assert.NoError(t, err)

	user, err := s.Login("john@student.com", "user")
	assert.NoError(t, err)
	assert.Equal(t, "student1", user.ID, "seeded users are scanned first")
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	records := storage.NewMemory()
	s := NewIdentity(records, seed.Users())

	_, err := s.Login("john@student.com", "user")
	assert.NoError(t, err)
	s.Logout()

	_, ok := s.Current()
	assert.False(t, ok)

	var session models.User
	assert.ErrorIs(t, records.Load(storage.KeySession, &session), storage.ErrNoRecord)
}

func TestSessionRestoreTrustsStoredRecord(t *testing.T) {
	records := storage.NewMemory()

	first := NewIdentity(records, seed.Users())
	registered, err := first.Register(models.User{Name: "Priya", Email: "priya@student.com", Password: "secret"})
	assert.NoError(t, err)

	// A fresh store on the same records sees the session and the
	// registered users without any credential re-check.
	second := NewIdentity(records, seed.Users())
	current, ok := second.Current()
	assert.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)

	_, err = second.Login("priya@student.com", "secret")
	assert.NoError(t, err)
}

func TestAllUsersOrderIsSeededThenRegistered(t *testing.T) {
	s := NewIdentity(storage.NewMemory(), seed.Users())

	registered, err := s.Register(models.User{Name: "Priya", Email: "priya@student.com", Password: "secret"})
	assert.NoError(t, err)

	all := s.AllUsers()
	assert.Len(t, all, len(seed.Users())+1)
	assert.Equal(t, "admin1", all[0].ID)
	assert.Equal(t, registered.ID, all[len(all)-1].ID)
}

func TestIdentityVariants(t *testing.T) {
	users := seed.Users()

	assert.IsType(t, models.SuperAdmin{}, users[0].Identity())
	assert.Equal(t, models.RestaurantAdmin{RestaurantID: "r1"}, users[1].Identity())
	assert.IsType(t, models.Student{}, users[2].Identity())
}
