package postgres

import (
	"context"
	"fmt"
	"time"

	domainCategory "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/category"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres/models"
)

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) domainCategory.Repository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domainCategory.Category) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	dbModel := toCategoryModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.ID = dbModel.ID
	return nil
}

func (r *CategoryRepository) Exists(ctx context.Context, categoryID uint) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}

	return count > 0, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domainCategory.Category) error {
	c.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":       c.Name,
			"updated_at": c.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainCategory.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domainCategory.Category, error) {
	var dbModels []models.CategoryModel
	if err := r.db.DB.WithContext(ctx).Order("name").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return toCategoryEntities(dbModels), nil
}

func (r *CategoryRepository) GetAllWithActiveProducts(ctx context.Context) ([]*domainCategory.Category, error) {
	session := r.db.DB.WithContext(ctx)
	activeCategoryIDs := session.
		Model(&models.ProductModel{}).
		Select("category_id").
		Where("status = ?", true)

	var dbModels []models.CategoryModel
	err := session.
		Where("id IN (?)", activeCategoryIDs).
		Order("name").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return toCategoryEntities(dbModels), nil
}

func toCategoryModel(c *domainCategory.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryEntities(dbModels []models.CategoryModel) []*domainCategory.Category {
	categories := make([]*domainCategory.Category, len(dbModels))
	for i, m := range dbModels {
		categories[i] = &domainCategory.Category{
			ID:        m.ID,
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return categories
}
