package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/repository"
	"github.com/wongco/jobly/internal/utils"
	"go.uber.org/zap"
)

func Login(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type loginRequest struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}

		var request loginRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			ErrorResponse(c, http.StatusBadRequest, "Username and password are required.")
			return
		}

		err := ctx.Users.Authenticate(c.Request.Context(), request.Username, request.Password)
		if err != nil {
			// Missing user and wrong password are kept distinct internally
			// but must look identical to the caller.
			if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrInvalidPassword) {
				ErrorResponse(c, http.StatusUnprocessableEntity, "Invalid Credentials")
				return
			}
			ctx.Logger.Error("Failed to authenticate user", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		token, err := utils.GenerateJWT(request.Username, ctx.JWTSecret)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
