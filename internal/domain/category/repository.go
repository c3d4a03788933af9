package category

import "context"

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Exists(ctx context.Context, categoryID uint) (bool, error)
	Update(ctx context.Context, category *Category) error
	GetAll(ctx context.Context) ([]*Category, error)
	// GetAllWithActiveProducts returns categories referenced by at least one active product.
	GetAllWithActiveProducts(ctx context.Context) ([]*Category, error)
}
