package converter

import (
	"encoding/json"
	"testing"
	"time"

	"gym-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersToResponsesOmitsPasswordHash(t *testing.T) {
	users := []entity.User{
		{UserID: 1, UserName: "ann", Email: "a@b.com", PasswordHashed: "$2a$10$secret", CreatedAt: time.Now()},
		{UserID: 2, UserName: "bob", Email: "b@b.com", PasswordHashed: "$2a$10$other"},
	}

	responses := UsersToResponses(users)
	require.Len(t, responses, 2)
	assert.Equal(t, uint(1), responses[0].UserID)
	assert.Equal(t, "bob", responses[1].UserName)

	raw, err := json.Marshal(responses)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$10$")
}

func TestUserToSignupResponse(t *testing.T) {
	assert.Nil(t, UserToSignupResponse(nil))

	resp := UserToSignupResponse(&entity.User{UserID: 9, UserName: "ann", Email: "a@b.com"})
	assert.Equal(t, uint(9), resp.ID)
	assert.Equal(t, "ann", resp.Username)
	assert.Equal(t, "a@b.com", resp.Email)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name                string
		first, last, user   string
		wantFirst, wantLast string
	}{
		{"explicit names win", "Ann", "Lee", "annlee", "Ann", "Lee"},
		{"only last name", "", "Lee", "ann", "", "Lee"},
		{"single word username", "", "", "ann", "ann", ""},
		{"multi word username", "", "", "Ann Marie Lee", "Ann", "Marie Lee"},
		{"blank", " ", "", "  ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.first, tt.last, tt.user)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
