package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors to HTTP responses.
// Every controller funnels its errors through here so the envelope and
// status mapping stay uniform. Raw driver detail never reaches clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Order not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrProductNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Product not found")
	case errors.Is(err, apperrors.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Category not found")
	case errors.Is(err, apperrors.ErrReviewNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Review not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrStudentIDExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student ID already exists")
	case errors.Is(err, apperrors.ErrEmailExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrCategoryExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Category already exists")
	case errors.Is(err, apperrors.ErrReviewExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Product already reviewed by this user")
	case errors.Is(err, apperrors.ErrCourseCodeExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course code already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")

	case errors.Is(err, apperrors.ErrInvalidStudentID):
		respondValidation(c, err, "student_id")
	case errors.Is(err, apperrors.ErrOrderNoItems):
		respondValidation(c, err, "items")
	case errors.Is(err, apperrors.ErrInvalidStatus):
		respondValidation(c, err, "status")
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondValidation(c, err, "")

	case errors.Is(err, apperrors.ErrConnectionFailed) || dberrors.IsConnectionError(err):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Database unreachable")
		respondError(c, http.StatusServiceUnavailable, dto.ErrorCodeConnectionError, "Database connection failed")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// respondValidation keeps the sentinel's own message; validation text is
// written for clients, unlike driver errors.
func respondValidation(c *gin.Context, err error, field string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	if field != "" {
		detail = detail.WithField(field)
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
