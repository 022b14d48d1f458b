package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/internal/models"
	"miniblog/internal/session"
)

func TestRegisterBindsSession(t *testing.T) {
	svc := newTestService(t)

	sess := session.New()
	require.NoError(t, svc.Register(sess, testInput("alice")))

	id, name, ok := sess.Identity()
	require.True(t, ok)
	assert.NotZero(t, id)
	assert.Equal(t, "alice", name)

	// both rows of the pair exist
	var users, creds int64
	require.NoError(t, svc.db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, svc.db.Model(&models.Credential{}).Count(&creds).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, creds)

	var cred models.Credential
	require.NoError(t, svc.db.Take(&cred).Error)
	assert.Equal(t, id, cred.UserID)
	assert.NotContains(t, cred.PasswordHash, "alice-secret")
}

func TestRegisterDuplicateLeavesNothingBehind(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "alice")

	cases := map[string]RegisterInput{
		"same user name": func() RegisterInput {
			in := testInput("alice")
			in.Email = "other@example.com"
			return in
		}(),
		"same email": func() RegisterInput {
			in := testInput("alice2")
			in.Email = "alice@example.com"
			return in
		}(),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			sess := session.New()
			err := svc.Register(sess, in)
			assert.ErrorIs(t, err, ErrDuplicate)
			assert.False(t, sess.Active())

			var users, creds int64
			require.NoError(t, svc.db.Model(&models.User{}).Count(&users).Error)
			require.NoError(t, svc.db.Model(&models.Credential{}).Count(&creds).Error)
			assert.EqualValues(t, 1, users)
			assert.EqualValues(t, 1, creds)
		})
	}
}

func TestRegisterDuplicateKeepsPriorSession(t *testing.T) {
	svc := newTestService(t)
	sess := registerUser(t, svc, "alice")

	in := testInput("alice")
	in.Email = "other@example.com"
	assert.ErrorIs(t, svc.Register(sess, in), ErrDuplicate)

	_, name, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, "alice", name)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "alice")

	sess := session.New()
	assert.ErrorIs(t, svc.Authenticate(sess, "nobody", "alice-secret"), ErrNotFound)
	assert.False(t, sess.Active())

	assert.ErrorIs(t, svc.Authenticate(sess, "alice", "wrong"), ErrNotFound)
	assert.False(t, sess.Active())

	require.NoError(t, svc.Authenticate(sess, "alice", "alice-secret"))
	_, name, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, "alice", name)
}

func TestProfileMemoizedPerSession(t *testing.T) {
	svc := newTestService(t)
	sess := registerUser(t, svc, "alice")

	first, err := svc.Profile(sess)
	require.NoError(t, err)
	assert.Equal(t, "alice", first.UserName)
	assert.Equal(t, models.RoleUser, first.Role)

	// a role change behind the session's back is not observed by the memo
	promoteToAdmin(t, svc, sess.UserID())
	memoized, err := svc.Profile(sess)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, memoized.Role)
	assert.False(t, svc.IsAdmin(sess))

	// re-authenticating drops the memo
	require.NoError(t, svc.Authenticate(sess, "alice", "alice-secret"))
	fresh, err := svc.Profile(sess)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, fresh.Role)
	assert.True(t, svc.IsAdmin(sess))
}

func TestProfileWithoutSession(t *testing.T) {
	svc := newTestService(t)

	sess := session.New()
	_, err := svc.Profile(sess)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, svc.IsAdmin(sess))
}

func TestClearSession(t *testing.T) {
	svc := newTestService(t)
	sess := registerUser(t, svc, "alice")
	_, err := svc.Profile(sess)
	require.NoError(t, err)

	sess.Clear()
	sess.Clear() // idempotent

	assert.False(t, sess.Active())
	assert.Nil(t, sess.CachedProfile())
	_, err = svc.Profile(sess)
	assert.ErrorIs(t, err, ErrNoSession)
}
