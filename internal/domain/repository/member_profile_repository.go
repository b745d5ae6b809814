package repository

import (
	"context"

	"gym-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type MemberProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.MemberProfile) error
	// FindByUserID is a read helper that loads a profile with its personal,
	// health and condition rows. No HTTP route reads profiles yet; it is used
	// to check what a signup persisted.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.MemberProfile, error)
}
