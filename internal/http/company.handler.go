package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/repository"
	"go.uber.org/zap"
)

func GetCompanies(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := map[string]interface{}{}
		if search := c.Query("search"); search != "" {
			filters["search"] = search
		}
		for _, name := range []string{"min_employees", "max_employees"} {
			raw := c.Query(name)
			if raw == "" {
				continue
			}
			value, err := strconv.Atoi(raw)
			if err != nil {
				ErrorResponse(c, http.StatusBadRequest, "Check that your parameters are correct.")
				return
			}
			filters[name] = value
		}

		companies, err := ctx.Companies.List(c.Request.Context(), filters)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"companies": companies})
	}
}

func CreateCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createCompanyRequest struct {
			Handle       string `json:"handle" binding:"required,min=1,max=55"`
			Name         string `json:"name" binding:"required"`
			NumEmployees int    `json:"num_employees"`
			Description  string `json:"description"`
			LogoURL      string `json:"logo_url"`
		}

		var request createCompanyRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			ErrorResponse(c, http.StatusBadRequest, bindingViolations(err))
			return
		}

		company := &entity.Company{
			Handle:       request.Handle,
			Name:         request.Name,
			NumEmployees: request.NumEmployees,
			Description:  request.Description,
			LogoURL:      request.LogoURL,
		}

		if err := ctx.Companies.Add(c.Request.Context(), company); err != nil {
			if errors.Is(err, repository.ErrCompanyExists) || errors.Is(err, repository.ErrDuplicateEntry) {
				ErrorResponse(c, http.StatusConflict, request.Handle+" already exists.")
				return
			}
			ctx.Logger.Error("Failed to create company", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"company": company})
	}
}

func GetCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")

		company, err := ctx.Companies.Get(c.Request.Context(), handle)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}

		jobs, err := ctx.Jobs.ListByCompany(c.Request.Context(), handle)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		company.Jobs = jobs

		c.JSON(http.StatusOK, gin.H{"company": company})
	}
}

func UpdateCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := bindPatchFields(c)
		if !ok {
			return
		}

		company, err := ctx.Companies.Patch(c.Request.Context(), c.Param("handle"), fields)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"company": company})
	}
}

func DeleteCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctx.Companies.Delete(c.Request.Context(), c.Param("handle")); err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
	}
}
