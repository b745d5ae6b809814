package repository

import (
	"context"

	"gym-portal/internal/domain/entity"
	domainRepo "gym-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type healthInfoRepository struct{}

func NewHealthInfoRepository() domainRepo.HealthInfoRepository {
	return &healthInfoRepository{}
}

func (r *healthInfoRepository) Create(ctx context.Context, db *gorm.DB, info *entity.HealthInfo) error {
	return db.WithContext(ctx).Omit("MedicalConditions").Create(info).Error
}

type medicalConditionRepository struct{}

func NewMedicalConditionRepository() domainRepo.MedicalConditionRepository {
	return &medicalConditionRepository{}
}

func (r *medicalConditionRepository) CreateBatch(ctx context.Context, db *gorm.DB, conditions []entity.MedicalCondition) error {
	if len(conditions) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&conditions).Error
}

func (r *medicalConditionRepository) FindByHealthInfoID(ctx context.Context, db *gorm.DB, healthInfoID uint) ([]entity.MedicalCondition, error) {
	var conditions []entity.MedicalCondition
	err := db.WithContext(ctx).
		Where("health_info_id = ?", healthInfoID).
		Order("medical_condition_id").
		Find(&conditions).Error
	if err != nil {
		return nil, err
	}
	return conditions, nil
}
