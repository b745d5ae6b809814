package repository

import (
	"context"

	"gym-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonalInfoRepository interface {
	Create(ctx context.Context, db *gorm.DB, info *entity.PersonalInfo) error
}
