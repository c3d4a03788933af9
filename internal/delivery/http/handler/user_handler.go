package handler

import (
	"errors"
	"net/http"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/user"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/user")
	{
		userGroup.POST("/signup", h.SignUp)
		userGroup.POST("/login", h.Login)
		userGroup.GET("/forgotPassword", h.ForgotPassword)
		userGroup.POST("/forgotPassword", h.ForgotPassword)
	}
}

// RegisterProtectedRoutes expects a group that already requires authentication.
func (h *UserHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/user")
	{
		userGroup.GET("", h.GetAllUsers)
		userGroup.PUT("", h.UpdateStatus)
		userGroup.GET("/checkToken", h.CheckToken)
		userGroup.POST("/changePassword", h.ChangePassword)
	}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)
	req.ContactNumber = utils.SanitizePhone(req.ContactNumber)

	message, err := h.service.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.ErrBadCredentials)
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, token)
}

// ForgotPassword accepts the email either as a JSON body or as a query parameter.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	message, err := h.service.ForgotPassword(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		if errors.Is(err, appErrors.ErrUnauthorized) {
			utils.DataResponse(c, http.StatusUnauthorized, []user.UserResponse{})
			return
		}
		respondWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, users)
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req user.UpdateStatusRequest
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

func (h *UserHandler) CheckToken(c *gin.Context) {
	message, err := h.service.CheckToken(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, appErrors.InvalidData(err))
		return
	}

	message, err := h.service.ChangePassword(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}
