package repository

import (
	"context"

	"gym-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthInfoRepository interface {
	Create(ctx context.Context, db *gorm.DB, info *entity.HealthInfo) error
}

type MedicalConditionRepository interface {
	// CreateBatch inserts all conditions in one statement, preserving slice order.
	CreateBatch(ctx context.Context, db *gorm.DB, conditions []entity.MedicalCondition) error
	// FindByHealthInfoID is a read helper returning conditions in insertion order.
	FindByHealthInfoID(ctx context.Context, db *gorm.DB, healthInfoID uint) ([]entity.MedicalCondition, error)
}
