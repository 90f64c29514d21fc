package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared across services. Handlers translate these into the
// matching HTTP status; everything else surfaces as a generic failure.
var (
	ErrNotFound    = errors.New("record not found")
	ErrNotEditable = errors.New("purchase order is not editable")
	ErrConflict    = errors.New("conflicting state change")
)

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound normalizes GORM's record-not-found into the service sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
