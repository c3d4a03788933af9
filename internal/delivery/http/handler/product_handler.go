package handler

import (
	"net/http"
	"strconv"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/product"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service *product.Service
}

func NewProductHandler(service *product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/product")
	{
		products.GET("", h.GetAll)
		products.GET("/:id", h.GetByID)
		products.GET("/byCategory/:id", h.GetByCategory)
		products.POST("", h.Add)
		products.PUT("", h.Update)
		products.PUT("/status", h.UpdateStatus)
		products.DELETE("/:id", h.Delete)
	}
}

func (h *ProductHandler) Add(c *gin.Context) {
	var req product.AddProductRequest
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

func (h *ProductHandler) Update(c *gin.Context) {
	var req product.UpdateProductRequest
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

func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	var req product.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	message, err := h.service.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		return
	}

	message, err := h.service.Delete(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, p)
}

func (h *ProductHandler) GetByCategory(c *gin.Context) {
	categoryID, ok := parseID(c)
	if !ok {
		return
	}

	products, err := h.service.GetByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, products)
}

// parseID reads the :id path parameter and writes a 400 when it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondWithError(c, appErrors.InvalidData(err))
		return 0, false
	}
	return uint(id), true
}
