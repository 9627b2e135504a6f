package catalog

import "github.com/mycofresh/backend/internal/domain/shared"

// Warehouse is a physical storage location
type Warehouse struct {
	shared.BaseEntity
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// TableName returns the database table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(name string) (*Warehouse, error) {
	if name == "" {
		return nil, shared.NewValidationError("Warehouse name is required")
	}
	return &Warehouse{
		BaseEntity: shared.NewBaseEntity("wh"),
		Name:       name,
	}, nil
}
