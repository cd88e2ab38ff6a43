// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wongco/jobly/internal/entity"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Add(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) Patch(ctx context.Context, username string, fields map[string]interface{}) (*entity.User, error) {
	args := m.Called(ctx, username, fields)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *UserRepository) Authenticate(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *UserRepository) IsAdmin(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) List(ctx context.Context, filters map[string]interface{}) ([]entity.Company, error) {
	args := m.Called(ctx, filters)
	companies, _ := args.Get(0).([]entity.Company)
	return companies, args.Error(1)
}

func (m *CompanyRepository) Add(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *CompanyRepository) Get(ctx context.Context, handle string) (*entity.Company, error) {
	args := m.Called(ctx, handle)
	company, _ := args.Get(0).(*entity.Company)
	return company, args.Error(1)
}

func (m *CompanyRepository) Patch(ctx context.Context, handle string, fields map[string]interface{}) (*entity.Company, error) {
	args := m.Called(ctx, handle, fields)
	company, _ := args.Get(0).(*entity.Company)
	return company, args.Error(1)
}

func (m *CompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) List(ctx context.Context, filters map[string]interface{}) ([]entity.Job, error) {
	args := m.Called(ctx, filters)
	jobs, _ := args.Get(0).([]entity.Job)
	return jobs, args.Error(1)
}

func (m *JobRepository) Add(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) Get(ctx context.Context, id int64) (*entity.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entity.Job)
	return job, args.Error(1)
}

func (m *JobRepository) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*entity.Job, error) {
	args := m.Called(ctx, id, fields)
	job, _ := args.Get(0).(*entity.Job)
	return job, args.Error(1)
}

func (m *JobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) ListByCompany(ctx context.Context, handle string) ([]entity.Job, error) {
	args := m.Called(ctx, handle)
	jobs, _ := args.Get(0).([]entity.Job)
	return jobs, args.Error(1)
}

type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Apply(ctx context.Context, username string, jobID int64, state string) (*entity.Application, error) {
	args := m.Called(ctx, username, jobID, state)
	application, _ := args.Get(0).(*entity.Application)
	return application, args.Error(1)
}

func (m *ApplicationRepository) ListForUser(ctx context.Context, username string) ([]entity.Job, error) {
	args := m.Called(ctx, username)
	jobs, _ := args.Get(0).([]entity.Job)
	return jobs, args.Error(1)
}
