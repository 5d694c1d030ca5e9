package schema

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// Class represents the class table - token metadata shared by every contract of one token family
type Class struct {
	ID               int64            `gorm:"column:id;primaryKey;autoIncrement:false"`
	Type             domain.ClassType `gorm:"column:type;not null;type:text"`
	Name             string           `gorm:"column:name;not null;type:text"`
	Symbol           string           `gorm:"column:symbol;not null;type:text"`
	Owner            *string          `gorm:"column:owner;type:text"`
	Description      string           `gorm:"column:description;not null;type:text;default:''"`
	CoverImageURI    string           `gorm:"column:cover_image_uri;not null;type:text;default:''"`
	ImageURITemplate *string          `gorm:"column:image_uri_template;type:text"`
	CreatedAt        time.Time        `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Class model
func (Class) TableName() string {
	return "class"
}
