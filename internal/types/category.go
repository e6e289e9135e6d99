package types

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	NameNormalized string    `gorm:"uniqueIndex;not null;column:name_normalized" json:"-"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (Category) TableName() string {
	return "category"
}
