package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miniblog/internal/models"
)

func TestLifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.Active())
	_, _, ok := s.Identity()
	assert.False(t, ok)

	s.Bind(7, "alice")
	id, name, ok := s.Identity()
	assert.True(t, ok)
	assert.EqualValues(t, 7, id)
	assert.Equal(t, "alice", name)

	s.CacheProfile(&models.User{ID: 7, UserName: "alice"})
	assert.NotNil(t, s.CachedProfile())

	// rebinding drops the memo
	s.Bind(9, "bob")
	assert.Nil(t, s.CachedProfile())

	s.Clear()
	s.Clear()
	assert.False(t, s.Active())
	assert.Zero(t, s.UserID())
	assert.Empty(t, s.UserName())
}

func TestNilReceiverIsInactive(t *testing.T) {
	var s *Session
	assert.False(t, s.Active())
	assert.Zero(t, s.UserID())
	assert.Nil(t, s.CachedProfile())
}
