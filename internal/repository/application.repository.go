package repository

import (
	"context"
	"errors"

	"github.com/wongco/jobly/internal/entity"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Apply(ctx context.Context, username string, jobID int64, state string) (*entity.Application, error) {
	application := &entity.Application{
		Username: username,
		JobID:    jobID,
		State:    state,
	}

	// The composite primary key rejects a second application for the same
	// (username, job) pair.
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}
	return application, nil
}

func (r *applicationRepository) ListForUser(ctx context.Context, username string) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Raw(`SELECT j.id, j.title, j.salary, j.equity, j.company_handle, j.date_posted
			FROM users AS u
			JOIN applications AS a ON u.username = a.username
			JOIN jobs AS j ON a.job_id = j.id
			WHERE u.username = $1`, username).
		Scan(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
