package category

import (
	"context"
	"errors"
	"strings"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainCategory "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/category"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"go.uber.org/zap"
)

const (
	MsgCategoryAdded   = "Category Added Successfully"
	MsgCategoryUpdated = "Category Updated Successfully"
)

type Service struct {
	categoryRepo domainCategory.Repository
}

func NewService(categoryRepo domainCategory.Repository) *Service {
	return &Service{categoryRepo: categoryRepo}
}

func (s *Service) Add(ctx context.Context, req *AddCategoryRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	c := &domainCategory.Category{Name: strings.TrimSpace(req.Name)}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return "", err
	}

	logger.Info("Category created",
		zap.Uint("category_id", c.ID),
		zap.String("name", c.Name),
		zap.String("admin", auth.CurrentUser(ctx)),
		zap.String("event", "category_created"),
	)

	return MsgCategoryAdded, nil
}

func (s *Service) Update(ctx context.Context, req *UpdateCategoryRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	c := &domainCategory.Category{ID: req.ID, Name: strings.TrimSpace(req.Name)}
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		if errors.Is(err, domainCategory.ErrCategoryNotFound) {
			return "", appErrors.NotFound("Category with id %d does not exist.", req.ID)
		}
		return "", err
	}

	logger.Info("Category updated",
		zap.Uint("category_id", c.ID),
		zap.String("name", c.Name),
		zap.String("event", "category_updated"),
	)

	return MsgCategoryUpdated, nil
}

// GetAll returns every category, or with filterValue "true" only those that
// have at least one active product.
func (s *Service) GetAll(ctx context.Context, filterValue string) ([]CategoryResponse, error) {
	var (
		categories []*domainCategory.Category
		err        error
	)
	if strings.EqualFold(strings.TrimSpace(filterValue), "true") {
		categories, err = s.categoryRepo.GetAllWithActiveProducts(ctx)
	} else {
		categories, err = s.categoryRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToCategoryResponse(c))
	}
	return responses, nil
}
