// Package orderrepo provides the GORM-backed order store and the mapping
// between order entities and their database representation.
package orderrepo

import (
	"orderprocessing/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Orders are indexed by owner so a batch can be fetched per user.
type OrderDTO struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64   `gorm:"index;not null"`
	Type     string  `gorm:"type:varchar(16);not null"`
	Amount   float64 `gorm:"type:double precision;not null"`
	Flag     bool    `gorm:"not null"`
	Status   string  `gorm:"type:varchar(32);not null"`
	Priority string  `gorm:"type:varchar(8);not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(userID int64, o *order.Order) OrderDTO {
	return OrderDTO{
		ID:       o.ID(),
		UserID:   userID,
		Type:     o.Type().String(),
		Amount:   o.Amount(),
		Flag:     o.Flag(),
		Status:   o.Status().String(),
		Priority: o.Priority().String(),
	}
}

// toDomain builds the order a processing pass starts from. Status and priority
// are outcomes of the previous pass and are not read back.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.NewOrder(dto.ID, order.Type(dto.Type), dto.Amount, dto.Flag)
}
