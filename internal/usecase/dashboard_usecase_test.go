package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededDashboard(t *testing.T) (DashboardUsecase, *fakeNotificationRepo) {
	t.Helper()
	repo := newFakeNotificationRepo()
	uc := NewDashboardUsecase(testLogger(), repo)
	require.NoError(t, uc.SeedNotifications(context.Background()))
	return uc, repo
}

func TestListNotificationsSorting(t *testing.T) {
	uc, _ := newSeededDashboard(t)
	ctx := context.Background()

	tests := []struct {
		sortBy  string
		wantIDs []int
	}{
		{"", []int{3, 2, 1}},
		{"date", []int{3, 2, 1}},
		{"type", []int{2, 1, 3}},
		{" TYPE ", []int{2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			got, err := uc.ListNotifications(ctx, tt.sortBy)
			require.NoError(t, err)

			ids := make([]int, len(got))
			for i, n := range got {
				ids[i] = n.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, err := uc.ListNotifications(ctx, "priority")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestDeleteNotification(t *testing.T) {
	uc, _ := newSeededDashboard(t)
	ctx := context.Background()

	require.NoError(t, uc.DeleteNotification(ctx, 2))
	assert.ErrorIs(t, uc.DeleteNotification(ctx, 2), ErrNotificationNotFound)

	got, err := uc.ListNotifications(ctx, "date")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSeedNotificationsRunsOnce(t *testing.T) {
	uc, repo := newSeededDashboard(t)
	ctx := context.Background()

	require.NoError(t, uc.DeleteNotification(ctx, 1))
	require.NoError(t, uc.SeedNotifications(ctx))
	assert.Len(t, repo.items, 2)
}

func TestSeedNotificationsPropagatesError(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.err = errInjected
	uc := NewDashboardUsecase(testLogger(), repo)

	assert.ErrorIs(t, uc.SeedNotifications(context.Background()), errInjected)
}

func TestGetProgress(t *testing.T) {
	uc, _ := newSeededDashboard(t)

	progress := uc.GetProgress(context.Background())
	assert.Equal(t, "Monthly Progress", progress.Title)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, progress.Labels)
	require.Len(t, progress.Datasets, 2)
	assert.Equal(t, []float64{1200, 1500, 1800, 2200}, progress.Datasets[0].Data)
	assert.Equal(t, "Workouts Completed", progress.Datasets[1].Label)
	assert.Equal(t, []float64{2, 3, 4, 5}, progress.Datasets[1].Data)
}
