package repository

import (
	"context"

	"gym-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
}
