package model

import "time"

// OwnerModel mirrors the 'owners' table. The phone number is the identity key.
type OwnerModel struct {
	Phone     string `gorm:"type:varchar(32);primaryKey"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(255)"`
	JoinedAt  time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "owners"
}

// All returns every model managed by auto-migration.
func All() []any {
	return []any{&OwnerModel{}, &ListingModel{}}
}
