package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a user's orders straight from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns the user's orders sorted by ID. A user without orders yields an empty slice.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			amount,
			flag,
			status,
			priority
		FROM orders
		WHERE user_id = ?
		ORDER BY id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserOrdersQueryResponse

		if err = rows.Scan(
			&resp.ID,
			&resp.Type,
			&resp.Amount,
			&resp.Flag,
			&resp.Status,
			&resp.Priority,
		); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
