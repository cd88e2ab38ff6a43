package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/repository"
	"github.com/wongco/jobly/internal/utils"
	"go.uber.org/zap"
)

func CreateUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createUserRequest struct {
			Username  string `json:"username" binding:"required,min=1,max=55"`
			Password  string `json:"password" binding:"required,min=5"`
			FirstName string `json:"first_name" binding:"required"`
			LastName  string `json:"last_name" binding:"required"`
			Email     string `json:"email" binding:"required,email"`
			PhotoURL  string `json:"photo_url"`
			IsAdmin   bool   `json:"is_admin"`
		}

		var request createUserRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			ErrorResponse(c, http.StatusBadRequest, bindingViolations(err))
			return
		}

		digest, err := utils.HashPassword(request.Password, ctx.BcryptCost)
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		user := &entity.User{
			Username:  request.Username,
			Password:  digest,
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Email:     request.Email,
			PhotoURL:  request.PhotoURL,
			IsAdmin:   request.IsAdmin,
		}

		if err := ctx.Users.Add(c.Request.Context(), user); err != nil {
			if errors.Is(err, repository.ErrUserExists) {
				ErrorResponse(c, http.StatusBadRequest, "Username is invalid. Choose a new username.")
				return
			}
			if errors.Is(err, repository.ErrDuplicateEntry) {
				ErrorResponse(c, http.StatusBadRequest, "Email is already in use.")
				return
			}
			ctx.Logger.Error("Failed to create user", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		token, err := utils.GenerateJWT(user.Username, ctx.JWTSecret)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func GetUsers(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := ctx.Users.GetAll(c.Request.Context())
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func GetUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ctx.Users.Get(c.Request.Context(), c.Param("username"))
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func UpdateUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := bindPatchFields(c)
		if !ok {
			return
		}

		// A patched password is still plaintext at this point; only its
		// digest may reach storage.
		if password, ok := fields["password"].(string); ok {
			digest, err := utils.HashPassword(password, ctx.BcryptCost)
			if err != nil {
				ctx.Logger.Error("Failed to hash password", zap.Error(err))
				ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
				return
			}
			fields["password"] = digest
		}

		user, err := ctx.Users.Patch(c.Request.Context(), c.Param("username"), fields)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func DeleteUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctx.Users.Delete(c.Request.Context(), c.Param("username")); err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

func GetUserApplications(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := ctx.Applications.ListForUser(c.Request.Context(), c.Param("username"))
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

// bindPatchFields reads a PATCH body into a field map, strips meta keys, and
// rejects an empty update before it can reach the query builder.
func bindPatchFields(c *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid JSON body.")
		return nil, false
	}

	utils.StripMetaFields(fields)
	if len(fields) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "No fields provided to update.")
		return nil, false
	}
	return fields, true
}

// bindingViolations aggregates validator errors into one message list.
func bindingViolations(err error) interface{} {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid JSON body."
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages,
			strings.ToLower(fieldErr.Field())+" failed validation: "+fieldErr.Tag())
	}
	return messages
}
