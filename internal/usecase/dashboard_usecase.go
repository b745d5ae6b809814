package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"gym-portal/internal/converter"
	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/domain/entity"
	"gym-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	SortByDate = "date"
	SortByType = "type"
)

type DashboardUsecase interface {
	SeedNotifications(ctx context.Context) error
	ListNotifications(ctx context.Context, sortBy string) ([]dto.NotificationResponse, error)
	DeleteNotification(ctx context.Context, id int) error
	GetProgress(ctx context.Context) *dto.ProgressResponse
}

type dashboardUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewDashboardUsecase(log *logrus.Logger, notificationRepo repository.NotificationRepository) DashboardUsecase {
	return &dashboardUsecase{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// DefaultNotifications is the mock feed shown on a fresh dashboard.
func DefaultNotifications() []entity.Notification {
	return []entity.Notification{
		{ID: 1, Type: entity.NotificationTypeInfo, Message: "Your subscription renews in 5 days.", Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: entity.NotificationTypeAlert, Message: "New fitness class added: Yoga.", Date: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Type: entity.NotificationTypeSuccess, Message: "Update your profile for personalized plans.", Date: time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)},
	}
}

func (u *dashboardUsecase) SeedNotifications(ctx context.Context) error {
	if err := u.notificationRepo.Seed(ctx, DefaultNotifications()); err != nil {
		u.log.Warnf("Failed to seed notifications: %+v", err)
		return err
	}
	return nil
}

// ListNotifications sorts newest first for "date" (the default) and by type
// name for "type". Ties fall back to ascending id.
func (u *dashboardUsecase) ListNotifications(ctx context.Context, sortBy string) ([]dto.NotificationResponse, error) {
	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	if sortBy == "" {
		sortBy = SortByDate
	}
	if sortBy != SortByDate && sortBy != SortByType {
		return nil, ErrInvalidSort
	}

	notifications, err := u.notificationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find notifications: %+v", err)
		return nil, err
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		a, b := notifications[i], notifications[j]
		switch sortBy {
		case SortByType:
			if a.Type != b.Type {
				return a.Type < b.Type
			}
		default:
			if !a.Date.Equal(b.Date) {
				return a.Date.After(b.Date)
			}
		}
		return a.ID < b.ID
	})

	return converter.NotificationsToResponses(notifications), nil
}

func (u *dashboardUsecase) DeleteNotification(ctx context.Context, id int) error {
	existed, err := u.notificationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete notification %d: %+v", id, err)
		return err
	}
	if !existed {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *dashboardUsecase) GetProgress(ctx context.Context) *dto.ProgressResponse {
	return &dto.ProgressResponse{
		Title:  "Monthly Progress",
		Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Datasets: []dto.ProgressDataset{
			{Label: "Calories Burned", Data: []float64{1200, 1500, 1800, 2200}},
			{Label: "Workouts Completed", Data: []float64{2, 3, 4, 5}},
		},
	}
}
