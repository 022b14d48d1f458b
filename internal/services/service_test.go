package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"miniblog/internal/session"
	"miniblog/internal/store"
)

// newTestService runs the service against an in-memory sqlite store with the
// same migrated schema. One connection keeps the memory database alive and
// matches the client's serialized-operations contract.
func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, store.Migrate(db))
	return New(db, zap.NewNop())
}

func testInput(name string) RegisterInput {
	return RegisterInput{
		FirstName: name,
		LastName:  "Tester",
		Contact:   "555-0100",
		Email:     name + "@example.com",
		Bio:       "just testing",
		UserName:  name,
		Password:  name + "-secret",
	}
}

// registerUser registers a fresh user and returns their bound session.
func registerUser(t *testing.T, svc *Service, name string) *session.Session {
	t.Helper()
	sess := session.New()
	require.NoError(t, svc.Register(sess, testInput(name)))
	return sess
}

// promoteToAdmin flips the role directly in the store, the way an existing
// admin would have done it out of band.
func promoteToAdmin(t *testing.T, svc *Service, userID uint) {
	t.Helper()
	require.NoError(t, svc.db.Table("user_info").
		Where("id = ?", userID).
		Update("role", "admin").Error)
}
