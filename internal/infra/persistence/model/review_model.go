package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	LocationID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_identity"`
	Platform    string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_reviews_identity"`
	ExternalID  string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_reviews_identity"`
	AuthorName  string            `gorm:"type:varchar(255)"`
	AuthorImage string            `gorm:"type:text"`
	Rating      int               `gorm:"not null;default:0;index"`
	Content     string            `gorm:"type:text"`
	PublishedAt time.Time         `gorm:"index"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Response *ReviewResponseModel `gorm:"foreignKey:ReviewID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewResponseModel is the GORM-specific struct for the 'review_responses' table.
type ReviewResponseModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReviewID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	UserID          *uuid.UUID `gorm:"type:uuid"`
	Content         string     `gorm:"type:text;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	AIGenerated     bool       `gorm:"column:ai_generated;not null;default:false"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason string `gorm:"type:text"`
	PublishedAt     *time.Time
	PlatformSynced  bool `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewResponseModel) TableName() string {
	return "review_responses"
}
