package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainProduct "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/product"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// ProductRepository implements domainProduct.Repository interface
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) domainProduct.Repository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domainProduct.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	dbModel := toProductModel(p)
	if err := r.db.DB.WithContext(ctx).Omit("Category").Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	p.ID = dbModel.ID
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID uint) (*domainProduct.Product, error) {
	var dbModel models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Preload("Category").
		Where("id = ?", productID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainProduct.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return toProductEntity(&dbModel), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domainProduct.Product, error) {
	var dbModels []models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Preload("Category").
		Order("id").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return toProductEntities(dbModels), nil
}

func (r *ProductRepository) GetActiveByCategory(ctx context.Context, categoryID uint) ([]*domainProduct.Product, error) {
	var dbModels []models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Preload("Category").
		Where("category_id = ? AND status = ?", categoryID, true).
		Order("id").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	return toProductEntities(dbModels), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domainProduct.Product) error {
	p.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"category_id": p.CategoryID,
			"description": p.Description,
			"price":       p.Price,
			"updated_at":  p.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProduct.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) UpdateStatus(ctx context.Context, productID uint, status bool) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProduct.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID uint) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProduct.ErrProductNotFound
	}

	return nil
}

func toProductModel(p *domainProduct.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductEntity(m *models.ProductModel) *domainProduct.Product {
	return &domainProduct.Product{
		ID:           m.ID,
		Name:         m.Name,
		CategoryID:   m.CategoryID,
		CategoryName: m.Category.Name,
		Description:  m.Description,
		Price:        m.Price,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProductEntities(dbModels []models.ProductModel) []*domainProduct.Product {
	products := make([]*domainProduct.Product, len(dbModels))
	for i := range dbModels {
		products[i] = toProductEntity(&dbModels[i])
	}
	return products
}
