package product

import domainProduct "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/product"

type AddProductRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
	Description string `json:"description" validate:"max=1024"`
	Price       *int   `json:"price" validate:"required,gte=0"`
}

type UpdateProductRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,notblank,max=255"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
	Description string `json:"description" validate:"max=1024"`
	Price       *int   `json:"price" validate:"required,gte=0"`
}

type UpdateStatusRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=true false TRUE FALSE True False"`
}

type ProductResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	Status       string `json:"status"`
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// ProductSummary is the shape returned when listing a category's products.
type ProductSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToProductResponse(p *domainProduct.Product) ProductResponse {
	status := "false"
	if p.Status {
		status = "true"
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Status:       status,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}
