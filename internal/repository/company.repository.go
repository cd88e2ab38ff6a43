package repository

import (
	"context"
	"errors"

	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/querybuilder"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) List(ctx context.Context, filters map[string]interface{}) ([]entity.Company, error) {
	query, values, err := querybuilder.BuildFilter("companies", filters)
	if err != nil {
		return nil, err
	}

	var companies []entity.Company
	if err := r.db.WithContext(ctx).Raw(query, values...).Scan(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) Add(ctx context.Context, company *entity.Company) error {
	var existing entity.Company
	err := r.db.WithContext(ctx).Where("handle = ?", company.Handle).First(&existing).Error
	if err == nil {
		return ErrCompanyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}

func (r *companyRepository) Get(ctx context.Context, handle string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Patch(ctx context.Context, handle string, fields map[string]interface{}) (*entity.Company, error) {
	if _, err := r.Get(ctx, handle); err != nil {
		return nil, err
	}

	query, values, err := querybuilder.BuildUpdate("companies", fields, "handle", handle)
	if err != nil {
		return nil, err
	}

	var company entity.Company
	if err := r.db.WithContext(ctx).Raw(query, values...).Scan(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Delete(ctx context.Context, handle string) error {
	if _, err := r.Get(ctx, handle); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("handle = ?", handle).Delete(&entity.Company{}).Error
}
