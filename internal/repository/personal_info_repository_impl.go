package repository

import (
	"context"

	"gym-portal/internal/domain/entity"
	domainRepo "gym-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type personalInfoRepository struct{}

func NewPersonalInfoRepository() domainRepo.PersonalInfoRepository {
	return &personalInfoRepository{}
}

func (r *personalInfoRepository) Create(ctx context.Context, db *gorm.DB, info *entity.PersonalInfo) error {
	return db.WithContext(ctx).Create(info).Error
}
