package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/querybuilder"
	"github.com/wongco/jobly/internal/repository"
	"go.uber.org/zap"
)

// HandleRepoError maps repository errors onto HTTP statuses. Routes that
// need a non-default status for a particular error (409 on duplicate handle,
// 422 on login) check for it before falling through to here.
func HandleRepoError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCompanyNotFound),
		errors.Is(err, repository.ErrJobNotFound),
		errors.Is(err, repository.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, querybuilder.ErrInvalidParameters):
		ErrorResponse(c, http.StatusBadRequest, "Check that your parameters are correct.")
	case errors.Is(err, querybuilder.ErrUnknownColumn),
		errors.Is(err, querybuilder.ErrNoFields):
		ErrorResponse(c, http.StatusBadRequest, "Invalid fields. Check your input.")
	case errors.Is(err, repository.ErrDuplicateEntry):
		ErrorResponse(c, http.StatusConflict, "Duplicate entry.")
	default:
		logger.Error("Unhandled repository error", zap.Error(err))
		ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
	}
}
