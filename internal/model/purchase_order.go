package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrder is a purchase order owned by the user who created it.
// CreatedBy is stamped from the authenticated identity on create and every
// read/mutation path filters on it; the column itself stays nullable so the
// admin isolation-repair pass can detect and fix legacy rows.
type PurchaseOrder struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNo         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_no"`
	OrderDate       time.Time       `gorm:"type:date;not null" json:"order_date"`
	Customer        string          `gorm:"type:varchar(255);not null" json:"customer"`
	Broker          string          `gorm:"type:varchar(255)" json:"broker"`
	Mill            string          `gorm:"type:varchar(255)" json:"mill"`
	Weight          decimal.Decimal `gorm:"type:decimal(12,3);default:0" json:"weight"`
	Bags            int             `gorm:"default:0" json:"bags"`
	Product         string          `gorm:"type:varchar(255)" json:"product"`
	Rate            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"rate"`
	TermsConditions string          `gorm:"type:text" json:"terms_conditions"`
	CreatedBy       uuid.UUID       `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (o *PurchaseOrder) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
