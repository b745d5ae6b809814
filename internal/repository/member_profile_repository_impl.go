package repository

import (
	"context"
	"errors"

	"gym-portal/internal/domain/entity"
	domainRepo "gym-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type memberProfileRepository struct{}

func NewMemberProfileRepository() domainRepo.MemberProfileRepository {
	return &memberProfileRepository{}
}

func (r *memberProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.MemberProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *memberProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.MemberProfile, error) {
	var profile entity.MemberProfile
	err := db.WithContext(ctx).
		Preload("PersonalInfo").
		Preload("HealthInfo.MedicalConditions", func(db *gorm.DB) *gorm.DB {
			return db.Order("medical_condition_id")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
