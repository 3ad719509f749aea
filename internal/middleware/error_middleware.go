package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// HandleAPIError translates application errors into the standard error
// envelope. Controllers call this instead of mapping status codes
// themselves, so the taxonomy lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondValidationError(c, validationErrs)
		return
	}

	status, code := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Request failed")
	}

	errorDetail := dto.NewErrorDetail(code, message)
	if customErr != nil && customErr.Details != nil {
		errorDetail = errorDetail.WithDetails(customErr.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	// 400
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed

	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.ErrorCodeTokenNotFound

	// 403
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.ErrorCodeAccountDisabled
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden

	// 404
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrHostelNotFound),
		errors.Is(err, apperrors.ErrRoomNotFound),
		errors.Is(err, apperrors.ErrRoomRequestNotFound),
		errors.Is(err, apperrors.ErrCampaignNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	// 409
	case errors.Is(err, apperrors.ErrRoomFull):
		return http.StatusConflict, dto.ErrorCodeRoomFull
	case errors.Is(err, apperrors.ErrAlreadyResolved),
		errors.Is(err, apperrors.ErrCampaignAlreadySent):
		return http.StatusConflict, dto.ErrorCodeAlreadyResolved
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrCapacityBelowUse),
		errors.Is(err, apperrors.ErrHostelHasRooms),
		errors.Is(err, apperrors.ErrNoRecipients),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeConflict

	// 5xx
	case errors.Is(err, apperrors.ErrStorage):
		return http.StatusInternalServerError, dto.ErrorCodeStorageError
	case errors.Is(err, apperrors.ErrAggregation):
		return http.StatusInternalServerError, dto.ErrorCodeAggregationError
	case errors.Is(err, apperrors.ErrUpstreamService):
		return http.StatusBadGateway, dto.ErrorCodeExternalServiceError

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}

func respondValidationError(c *gin.Context, errs validator.ValidationErrors) {
	details := make([]map[string]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, map[string]string{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(details)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
