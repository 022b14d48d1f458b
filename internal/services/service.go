// Package services implements the data-access operations of the blogging
// client: registration and login, blog CRUD with soft delete, comments,
// reactions, dashboard statistics and admin role management. Every operation
// takes the caller's *session.Session explicitly and runs as one synchronous
// store transaction.
package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, log: log}
}

// storeErr logs the underlying failure for operators and collapses it into
// the ErrUnavailable kind the caller sees.
func (s *Service) storeErr(op string, err error) error {
	s.log.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return ErrUnavailable
}
