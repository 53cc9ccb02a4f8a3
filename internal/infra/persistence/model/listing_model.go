package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ListingModel mirrors the 'listings' table. IDs are generated by the application so the
// same schema works on Postgres and SQLite.
type ListingModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerPhone   string      `gorm:"type:varchar(32);not null;index"`
	Title        string      `gorm:"type:varchar(255);not null"`
	Desc         string      `gorm:"column:desc_text;type:text"`
	AreaLandmark string      `gorm:"type:varchar(255)"`
	Lat          float64     `gorm:"not null;index:idx_listings_lat_lng"`
	Lng          float64     `gorm:"not null;index:idx_listings_lat_lng"`
	AddressText  string      `gorm:"type:text"`
	Length       float64     `gorm:"not null;default:0"`
	Breadth      float64     `gorm:"not null;default:0"`
	PriceHourly  float64     `gorm:"not null;default:0"`
	PriceDaily   float64     `gorm:"not null;default:0"`
	PriceMonthly float64     `gorm:"not null;default:0"`
	Amenities    StringSlice `gorm:"type:text"`
	IsSold       bool        `gorm:"not null;default:false"`
	GmapLink     string      `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// StringSlice stores a list of strings as a JSON text column.
type StringSlice []string

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, errors.Wrap(err, "marshal string slice")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = StringSlice{}

		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Errorf("unsupported amenities column type %T", src)
	}

	if len(raw) == 0 {
		*s = StringSlice{}

		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return errors.Wrap(err, "unmarshal string slice")
	}
	*s = out

	return nil
}
