package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberportal/internal/domain/user"
)

func newUser(username, email string) *user.User {
	return &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$12$notarealhashbutopaque",
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	u := newUser("alice", "a@x.com")
	require.NoError(t, repo.Create(u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, user.RoleUser, u.Role, "role must default to user")
	assert.False(t, u.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", byEmail.Username)
	assert.Equal(t, user.RoleUser, byEmail.Role)

	byUsername, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byUsername.ID)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetByEmail("nobody@x.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "a@x.com")))

	err := repo.Create(newUser("alice2", "a@x.com"))
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)

	// The pre-existing record is untouched.
	existing, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", existing.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "a@x.com")))

	err := repo.Create(newUser("alice", "other@x.com"))
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestUserRepository_SetRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "a@x.com")))

	require.NoError(t, repo.SetRole("a@x.com", user.RoleAdmin))
	u, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)

	require.NoError(t, repo.SetRole("a@x.com", user.RoleUser))
	u, err = repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, u.Role)

	err = repo.SetRole("nobody@x.com", user.RoleAdmin)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "a@x.com")))
	require.NoError(t, repo.Create(newUser("bob", "b@x.com")))

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
