package repository

import (
	"context"

	"gym-portal/internal/domain/entity"
)

// NotificationRepository is backed by Redis rather than gorm.
type NotificationRepository interface {
	Seed(ctx context.Context, notifications []entity.Notification) error
	FindAll(ctx context.Context) ([]entity.Notification, error)
	// Delete reports whether a notification with the id existed.
	Delete(ctx context.Context, id int) (bool, error)
}
