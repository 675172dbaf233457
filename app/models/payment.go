package models

import (
	"time"
)

const (
	PAYMENT_STATUS_COMPLETED = "completed"
)

// Payment is a recorded checkout submission. Records are created once and
// never updated; card data is not part of the record.
type Payment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	ServiceID string    `gorm:"type:varchar(100);index;not null" json:"serviceId"`
	PackageID string    `gorm:"type:varchar(50);not null" json:"packageId"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Company   *string   `gorm:"type:varchar(255);default:null" json:"company,omitempty"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Status    string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
