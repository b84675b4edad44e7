package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a new row a time-ordered UUID when the caller did not set one.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}

// BeforeCreate assigns the primary key.
func (m *LocationModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *PlatformCredentialModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *ListingModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *ReviewModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *ReviewResponseModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// All returns every model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&LocationModel{},
		&PlatformCredentialModel{},
		&ListingModel{},
		&ReviewModel{},
		&ReviewResponseModel{},
	}
}
