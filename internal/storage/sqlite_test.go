package storage

import (
	"testing"

	"userctl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.AutoMigrate())
	return store
}

func seedUsers(t *testing.T, store *SQLiteStore, users ...*models.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, store.CreateUser(u))
	}
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)

	created := &models.User{Username: "alice", Email: "alice@mail.com", Password: "alicepass"}
	require.NoError(t, store.CreateUser(created))
	assert.NotZero(t, created.ID)

	got, err := store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@mail.com", got.Email)
	assert.Equal(t, "alicepass", got.Password)
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUser("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store, &models.User{Username: "alice", Email: "alice@mail.com", Password: "pw"})

	tests := []struct {
		name string
		user *models.User
	}{
		{"duplicate username", &models.User{Username: "alice", Email: "other@mail.com", Password: "pw"}},
		{"duplicate email", &models.User{Username: "other", Email: "alice@mail.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreateUser(tt.user)
			assert.ErrorIs(t, err, ErrDuplicate)

			count, err := store.CountUsers()
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestUpdateEmail(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store, &models.User{Username: "alice", Email: "alice@mail.com", Password: "pw"})

	user, err := store.UpdateEmail("alice", "new@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "new@mail.com", user.Email)

	got, err := store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "new@mail.com", got.Email)
}

func TestUpdateEmailNotFound(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store, &models.User{Username: "alice", Email: "alice@mail.com", Password: "pw"})

	_, err := store.UpdateEmail("missing", "new@mail.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// No write happened anywhere.
	got, err := store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@mail.com", got.Email)

	count, err := store.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUser(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store,
		&models.User{Username: "alice", Email: "alice@mail.com", Password: "pw"},
		&models.User{Username: "carol", Email: "carol@mail.com", Password: "pw"},
	)

	require.NoError(t, store.DeleteUser("alice"))

	_, err := store.GetUser("alice")
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := store.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteUser("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchUsers(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store,
		&models.User{Username: "bob", Email: "bob@mail.com", Password: "pw"},
		&models.User{Username: "alice", Email: "alice@example.org", Password: "pw"},
		&models.User{Username: "carol", Email: "bobby@example.org", Password: "pw"},
	)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"username substring", "bob", []string{"bob", "carol"}},
		{"email substring", "example.org", []string{"alice", "carol"}},
		{"exact username", "alice", []string{"alice"}},
		{"case sensitive", "Bob", nil},
		{"no matches", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := store.SearchUsers(tt.query)
			require.NoError(t, err)

			var names []string
			for _, u := range users {
				names = append(names, u.Username)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestListPaginated(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store,
		&models.User{Username: "u1", Email: "u1@mail.com", Password: "pw"},
		&models.User{Username: "u2", Email: "u2@mail.com", Password: "pw"},
		&models.User{Username: "u3", Email: "u3@mail.com", Password: "pw"},
		&models.User{Username: "u4", Email: "u4@mail.com", Password: "pw"},
	)

	first, err := store.ListPaginated(2, 0)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := store.ListPaginated(2, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)

	// The two pages are disjoint and together cover the whole table.
	seen := map[string]bool{}
	for _, u := range append(first, second...) {
		assert.False(t, seen[u.Username])
		seen[u.Username] = true
	}
	assert.Len(t, seen, 4)

	empty, err := store.ListPaginated(10, 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDropAllIdempotent(t *testing.T) {
	store, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// No tables exist yet; dropping must still succeed.
	require.NoError(t, store.DropAll())

	require.NoError(t, store.AutoMigrate())
	seedUsers(t, store, &models.User{Username: "alice", Email: "alice@mail.com", Password: "pw"})

	require.NoError(t, store.DropAll())
	require.NoError(t, store.AutoMigrate())

	count, err := store.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
