// Package repository wraps storage access for each entity. Every method has
// the same shape: check the preconditions the database cannot report cleanly
// (existence, uniqueness, foreign keys), run a single storage operation, and
// translate storage failures into typed errors.
package repository

import (
	"context"

	"github.com/wongco/jobly/internal/entity"
)

type UserRepository interface {
	// Add inserts a user whose Password field already holds a digest.
	Add(ctx context.Context, user *entity.User) error
	GetAll(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, username string) (*entity.User, error)
	// Patch applies a partial update of allow-listed columns.
	Patch(ctx context.Context, username string, fields map[string]interface{}) (*entity.User, error)
	Delete(ctx context.Context, username string) error
	// Authenticate returns ErrUserNotFound or ErrInvalidPassword; callers
	// must surface both identically.
	Authenticate(ctx context.Context, username, password string) error
	IsAdmin(ctx context.Context, username string) (bool, error)
}

type CompanyRepository interface {
	// List accepts the search/min_employees/max_employees filters.
	List(ctx context.Context, filters map[string]interface{}) ([]entity.Company, error)
	Add(ctx context.Context, company *entity.Company) error
	Get(ctx context.Context, handle string) (*entity.Company, error)
	Patch(ctx context.Context, handle string, fields map[string]interface{}) (*entity.Company, error)
	Delete(ctx context.Context, handle string) error
}

type JobRepository interface {
	// List accepts the search/min_salary/min_equity filters.
	List(ctx context.Context, filters map[string]interface{}) ([]entity.Job, error)
	Add(ctx context.Context, job *entity.Job) error
	Get(ctx context.Context, id int64) (*entity.Job, error)
	Patch(ctx context.Context, id int64, fields map[string]interface{}) (*entity.Job, error)
	Delete(ctx context.Context, id int64) error
	ListByCompany(ctx context.Context, handle string) ([]entity.Job, error)
}

type ApplicationRepository interface {
	Apply(ctx context.Context, username string, jobID int64, state string) (*entity.Application, error)
	// ListForUser returns the jobs a user has applied to.
	ListForUser(ctx context.Context, username string) ([]entity.Job, error)
}
