// Package store owns the canonical collections of pages, plans, and users.
// It enforces per-entity invariants and performs no role checks; access
// policy runs in the calling layer.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store wraps the database handle shared by all entity operations.
type Store struct {
	db *gorm.DB
}

// New builds a Store on top of an initialised database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
