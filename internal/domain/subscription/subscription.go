package subscription

import "github.com/mycofresh/backend/internal/domain/shared"

// StatusActive marks subscriptions that still receive deliveries
const StatusActive = "Active"

// Subscription is a recurring box-delivery customer
type Subscription struct {
	shared.BaseEntity
	InvoiceNumber        string `gorm:"size:50;column:invoice_number;uniqueIndex" json:"invoiceNumber"`
	Name                 string `gorm:"size:100;not null" json:"name"`
	Email                string `gorm:"size:100;not null" json:"email"`
	Phone                string `gorm:"size:20" json:"phone"`
	Address              string `gorm:"size:200" json:"address"`
	FlatNo               string `gorm:"size:50;column:flat_no" json:"flatNo"`
	Plan                 string `gorm:"size:100;not null" json:"plan"`
	Status               string `gorm:"size:50;not null" json:"status"`
	StartDate            string `gorm:"size:50;column:start_date;not null" json:"startDate"`
	PreferredDeliveryDay string `gorm:"size:20;column:preferred_delivery_day;default:'Any Day'" json:"preferredDeliveryDay"`
	BoxesPerMonth        int    `gorm:"column:boxes_per_month;default:1" json:"boxesPerMonth"`
}

// TableName returns the database table name
func (Subscription) TableName() string {
	return "subscriptions"
}

// IsActive reports whether the subscription should appear in delivery planning
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}
