package category

import domainCategory "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/category"

type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type UpdateCategoryRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToCategoryResponse(c *domainCategory.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
