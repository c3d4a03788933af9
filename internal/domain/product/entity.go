package product

import "time"

type Product struct {
	ID           uint
	Name         string
	CategoryID   uint
	CategoryName string
	Description  string
	Price        int
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
