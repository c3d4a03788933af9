package handler

import (
	"net/http"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/category"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *category.Service
}

func NewCategoryHandler(service *category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/category")
	{
		categories.GET("", h.GetAll)
		categories.POST("", h.Add)
		categories.PUT("", h.Update)
	}
}

func (h *CategoryHandler) Add(c *gin.Context) {
	var req category.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	req.Name = utils.SanitizeString(req.Name)

	message, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	req.Name = utils.SanitizeString(req.Name)

	message, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetAll(c.Request.Context(), c.Query("filterValue"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, categories)
}
