package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainCategory "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/category"
	domainProduct "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/product"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"go.uber.org/zap"
)

const (
	MsgProductAdded         = "Product added Successfully."
	MsgProductUpdated       = "Product updated Successfully."
	MsgProductStatusUpdated = "Product status updated Successfully."
	msgProductDeleted       = "Product with id %d deleted Successfully."
	msgProductNotFound      = "Product with id %d does not exist."
)

// Service implements product use cases
type Service struct {
	productRepo  domainProduct.Repository
	categoryRepo domainCategory.Repository
}

// NewService creates a new product service
func NewService(productRepo domainProduct.Repository, categoryRepo domainCategory.Repository) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *Service) Add(ctx context.Context, req *AddProductRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return "", err
	}

	p := &domainProduct.Product{
		Name:        strings.TrimSpace(req.Name),
		CategoryID:  req.CategoryID,
		Description: utils.SanitizeString(req.Description),
		Price:       *req.Price,
		Status:      true,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return "", err
	}

	logger.Info("Product created",
		zap.Uint("product_id", p.ID),
		zap.Uint("category_id", p.CategoryID),
		zap.String("admin", auth.CurrentUser(ctx)),
		zap.String("event", "product_created"),
	)

	return MsgProductAdded, nil
}

// Update rewrites the product's editable fields. Status is left untouched.
func (s *Service) Update(ctx context.Context, req *UpdateProductRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	if _, err := s.productRepo.GetByID(ctx, req.ID); err != nil {
		return "", s.mapNotFound(err, req.ID)
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return "", err
	}

	p := &domainProduct.Product{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		CategoryID:  req.CategoryID,
		Description: utils.SanitizeString(req.Description),
		Price:       *req.Price,
	}
	if err := s.productRepo.Update(ctx, p); err != nil {
		return "", s.mapNotFound(err, req.ID)
	}

	logger.Info("Product updated",
		zap.Uint("product_id", p.ID),
		zap.String("event", "product_updated"),
	)

	return MsgProductUpdated, nil
}

func (s *Service) Delete(ctx context.Context, productID uint) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return "", s.mapNotFound(err, productID)
	}

	logger.Info("Product deleted",
		zap.Uint("product_id", productID),
		zap.String("admin", auth.CurrentUser(ctx)),
		zap.String("event", "product_deleted"),
	)

	return fmt.Sprintf(msgProductDeleted, productID), nil
}

func (s *Service) UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	status := strings.EqualFold(req.Status, "true")
	if err := s.productRepo.UpdateStatus(ctx, req.ID, status); err != nil {
		return "", s.mapNotFound(err, req.ID)
	}

	logger.Info("Product status updated",
		zap.Uint("product_id", req.ID),
		zap.Bool("status", status),
		zap.String("event", "product_status_updated"),
	)

	return MsgProductStatusUpdated, nil
}

func (s *Service) GetAll(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses, nil
}

// GetByCategory lists the active products of a category.
func (s *Service) GetByCategory(ctx context.Context, categoryID uint) ([]ProductSummary, error) {
	products, err := s.productRepo.GetActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{ID: p.ID, Name: p.Name})
	}
	return summaries, nil
}

func (s *Service) GetByID(ctx context.Context, productID uint) (*ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, s.mapNotFound(err, productID)
	}

	response := ToProductResponse(p)
	return &response, nil
}

func (s *Service) ensureCategory(ctx context.Context, categoryID uint) error {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		logger.Warn("Product references unknown category",
			zap.Uint("category_id", categoryID),
			zap.String("event", "category_not_found"),
		)
		return appErrors.CategoryNotFound(categoryID)
	}
	return nil
}

func (s *Service) mapNotFound(err error, productID uint) error {
	if errors.Is(err, domainProduct.ErrProductNotFound) {
		return appErrors.NotFound(msgProductNotFound, productID)
	}
	return err
}
