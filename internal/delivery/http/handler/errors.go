package handler

import (
	"errors"
	"net/http"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/middleware"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const MsgSomethingWentWrong = "Something went wrong"

var statusByCode = map[appErrors.Code]int{
	appErrors.CodeUnauthorized:         http.StatusUnauthorized,
	appErrors.CodeInvalidData:          http.StatusBadRequest,
	appErrors.CodeNotFound:             http.StatusNotFound,
	appErrors.CodeCategoryNotFound:     http.StatusBadRequest,
	appErrors.CodeInvalidSignature:     http.StatusUnauthorized,
	appErrors.CodeIncorrectOldPassword: http.StatusBadRequest,
	appErrors.CodeAlreadyExists:        http.StatusBadRequest,
	appErrors.CodeBadCredentials:       http.StatusBadRequest,
	appErrors.CodePendingApproval:      http.StatusBadRequest,
}

// StatusFor maps an error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	if code, ok := appErrors.CodeOf(err); ok {
		if status, known := statusByCode[code]; known {
			return status
		}
	}
	return http.StatusInternalServerError
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	status := StatusFor(err)
	if status != http.StatusInternalServerError {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, status, appErr.Message)
			return
		}
	}

	logger.WithRequestID(middleware.GetRequestID(c)).Error("Internal server error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, MsgSomethingWentWrong)
}
