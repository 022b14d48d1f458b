package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/internal/models"
	"miniblog/internal/session"
)

func TestListUsersNonAdminGetsEmpty(t *testing.T) {
	svc := newTestService(t)
	alice := registerUser(t, svc, "alice")
	registerUser(t, svc, "bob")

	users, err := svc.ListUsers(alice)
	require.NoError(t, err)
	assert.Empty(t, users)

	users, err = svc.ListUsers(session.New())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsersAsAdmin(t *testing.T) {
	svc := newTestService(t)
	alice := registerUser(t, svc, "alice")
	registerUser(t, svc, "bob")
	registerUser(t, svc, "carol")

	promoteToAdmin(t, svc, alice.UserID())
	alice.CacheProfile(nil) // drop the memo so the new role is visible

	users, err := svc.ListUsers(alice)
	require.NoError(t, err)
	require.Len(t, users, 3)
	// newest first
	assert.Equal(t, "carol", users[0].UserName)
	assert.Equal(t, "bob", users[1].UserName)
	assert.Equal(t, "alice", users[2].UserName)
}

func TestSetUserRole(t *testing.T) {
	svc := newTestService(t)
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")

	// non-admin cannot touch roles
	assert.ErrorIs(t, svc.SetUserRole(alice, bob.UserID(), models.RoleAdmin), ErrNotAuthorized)

	promoteToAdmin(t, svc, alice.UserID())
	alice.CacheProfile(nil)

	// enum gate runs before everything else
	assert.ErrorIs(t, svc.SetUserRole(alice, bob.UserID(), "superuser"), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetUserRole(alice, bob.UserID()+100, models.RoleAdmin), ErrNotFound)

	require.NoError(t, svc.SetUserRole(alice, bob.UserID(), models.RoleAdmin))
	var row models.User
	require.NoError(t, svc.db.First(&row, bob.UserID()).Error)
	assert.Equal(t, models.RoleAdmin, row.Role)
}

func TestSetUserRoleSelfDemotion(t *testing.T) {
	svc := newTestService(t)
	alice := registerUser(t, svc, "alice")
	promoteToAdmin(t, svc, alice.UserID())
	alice.CacheProfile(nil)
	require.True(t, svc.IsAdmin(alice))

	require.NoError(t, svc.SetUserRole(alice, alice.UserID(), models.RoleUser))

	// the memoized profile was dropped, so the demotion is visible at once
	assert.False(t, svc.IsAdmin(alice))
	assert.ErrorIs(t, svc.SetUserRole(alice, alice.UserID(), models.RoleAdmin), ErrNotAuthorized)
}
