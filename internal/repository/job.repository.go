package repository

import (
	"context"
	"errors"

	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/querybuilder"
	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) List(ctx context.Context, filters map[string]interface{}) ([]entity.Job, error) {
	query, values, err := querybuilder.BuildFilter("jobs", filters)
	if err != nil {
		return nil, err
	}

	var jobs []entity.Job
	if err := r.db.WithContext(ctx).Raw(query, values...).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Add(ctx context.Context, job *entity.Job) error {
	if err := r.companyExists(ctx, job.CompanyHandle); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Get(ctx context.Context, id int64) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*entity.Job, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	// A reassignment must point at an existing company before the update runs.
	if handle, ok := fields["company_handle"].(string); ok {
		if err := r.companyExists(ctx, handle); err != nil {
			return nil, err
		}
	}

	query, values, err := querybuilder.BuildUpdate("jobs", fields, "id", id)
	if err != nil {
		return nil, err
	}

	var job entity.Job
	if err := r.db.WithContext(ctx).Raw(query, values...).Scan(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Job{}).Error
}

func (r *jobRepository) ListByCompany(ctx context.Context, handle string) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := r.db.WithContext(ctx).Where("company_handle = ?", handle).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) companyExists(ctx context.Context, handle string) error {
	var company entity.Company
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}
