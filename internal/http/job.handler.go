package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/repository"
	"github.com/wongco/jobly/internal/utils"
	"go.uber.org/zap"
)

func GetJobs(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := map[string]interface{}{}
		if search := c.Query("search"); search != "" {
			filters["search"] = search
		}
		for _, name := range []string{"min_salary", "min_equity"} {
			raw := c.Query(name)
			if raw == "" {
				continue
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				ErrorResponse(c, http.StatusBadRequest, "Check that your parameters are correct.")
				return
			}
			filters[name] = value
		}

		jobs, err := ctx.Jobs.List(c.Request.Context(), filters)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

func CreateJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createJobRequest struct {
			Title         string  `json:"title" binding:"required"`
			Salary        float64 `json:"salary" binding:"required"`
			Equity        float64 `json:"equity" binding:"gte=0,lte=1"`
			CompanyHandle string  `json:"company_handle" binding:"required"`
		}

		var request createJobRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			ErrorResponse(c, http.StatusBadRequest, bindingViolations(err))
			return
		}

		job := &entity.Job{
			Title:         request.Title,
			Salary:        request.Salary,
			Equity:        request.Equity,
			CompanyHandle: request.CompanyHandle,
		}

		if err := ctx.Jobs.Add(c.Request.Context(), job); err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				ErrorResponse(c, http.StatusBadRequest, err.Error())
				return
			}
			ctx.Logger.Error("Failed to create job", zap.Error(err))
			ErrorResponse(c, http.StatusInternalServerError, "Server error occurred.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"job": job})
	}
}

func GetJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}

		job, err := ctx.Jobs.Get(c.Request.Context(), id)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"job": job})
	}
}

func UpdateJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}

		fields, ok := bindPatchFields(c)
		if !ok {
			return
		}

		job, err := ctx.Jobs.Patch(c.Request.Context(), id, fields)
		if err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"job": job})
	}
}

func DeleteJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}

		if err := ctx.Jobs.Delete(c.Request.Context(), id); err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
	}
}

func ApplyToJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}

		type applyRequest struct {
			State string `json:"state" binding:"required"`
		}
		var request applyRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			ErrorResponse(c, http.StatusBadRequest, bindingViolations(err))
			return
		}
		if !entity.ValidState(request.State) {
			ErrorResponse(c, http.StatusUnprocessableEntity, "Invalid state. Check your input.")
			return
		}

		username, err := utils.GetUsernameFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get username from claims", zap.Error(err))
			ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if _, err := ctx.Jobs.Get(c.Request.Context(), id); err != nil {
			HandleRepoError(c, ctx.Logger, err)
			return
		}

		application, err := ctx.Applications.Apply(c.Request.Context(), username, id, request.State)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEntry) {
				ErrorResponse(c, http.StatusConflict, "You have already applied to this job.")
				return
			}
			HandleRepoError(c, ctx.Logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": application.State})
	}
}

// jobID parses the :id path parameter, rejecting non-numeric ids before any
// storage call.
func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusUnprocessableEntity, "Please provide a valid job ID.")
		return 0, false
	}
	return id, true
}
