package product

import "context"

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID uint) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	GetActiveByCategory(ctx context.Context, categoryID uint) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	UpdateStatus(ctx context.Context, productID uint, status bool) error
	Delete(ctx context.Context, productID uint) error
}
