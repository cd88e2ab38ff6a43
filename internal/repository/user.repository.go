package repository

import (
	"context"
	"errors"

	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/querybuilder"
	"github.com/wongco/jobly/internal/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Add(ctx context.Context, user *entity.User) error {
	var existing entity.User
	err := r.db.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Get(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Patch(ctx context.Context, username string, fields map[string]interface{}) (*entity.User, error) {
	if _, err := r.Get(ctx, username); err != nil {
		return nil, err
	}

	query, values, err := querybuilder.BuildUpdate("users", fields, "username", username)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := r.db.WithContext(ctx).Raw(query, values...).Scan(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.Get(ctx, username); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("username = ?", username).Delete(&entity.User{}).Error
}

func (r *userRepository) Authenticate(ctx context.Context, username, password string) error {
	user, err := r.Get(ctx, username)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(password, user.Password) {
		return ErrInvalidPassword
	}
	return nil
}

func (r *userRepository) IsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := r.Get(ctx, username)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
