package converter

import (
	"strings"

	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The password hash never leaves this package.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:    user.UserID,
		UserName:  user.UserName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UserToSignupResponse builds the minimal body returned by a successful signup
func UserToSignupResponse(user *entity.User) *dto.SignupResponse {
	if user == nil {
		return nil
	}

	return &dto.SignupResponse{
		ID:       user.UserID,
		Username: user.UserName,
		Email:    user.Email,
	}
}

// SplitName derives first and last name from explicit fields, falling back
// to splitting the username on its first run of whitespace. A single-word
// username becomes the first name with an empty last name.
func SplitName(firstName, lastName, username string) (string, string) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName != "" || lastName != "" {
		return firstName, lastName
	}

	parts := strings.Fields(username)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
