package courier

import (
	"fulfillment/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Active:    c.Active,
		Region:    c.Region,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
