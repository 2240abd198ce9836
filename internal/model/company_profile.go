package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile holds the company details a user prints on their purchase
// orders. At most one row exists per user (create-or-update semantics,
// backed by the unique index on user_id).
type CompanyProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string    `gorm:"type:varchar(255);not null" json:"company_name"`
	Address     string    `gorm:"type:text" json:"address"`
	Mobile      string    `gorm:"type:varchar(20)" json:"mobile"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	GSTNumber   string    `gorm:"column:gst_number;type:varchar(50)" json:"gst_number"`
	BankDetails string    `gorm:"type:text" json:"bank_details"`
	LogoPath    string    `gorm:"type:varchar(255)" json:"logo_path"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the singular table name used by the original schema.
func (CompanyProfile) TableName() string { return "company_profile" }

func (p *CompanyProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
