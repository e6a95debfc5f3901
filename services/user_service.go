package services

import (
	"errors"

	"github.com/BugHunter-Coder/fasting-friend/config"
	"github.com/BugHunter-Coder/fasting-friend/models"
)

type ProfileInput struct {
	DisplayName       string   `json:"display_name"`
	TargetWeight      *float64 `json:"target_weight"`
	PreferredSchedule string   `json:"preferred_schedule"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"display_name":         user.DisplayName,
		"target_weight":        user.TargetWeight,
		"preferred_schedule":   user.PreferredSchedule,
		"role":                 user.Role,
		"healthkit_connected":  user.HealthKitConnected,
		"healthkit_last_sync":  user.HealthKitLastSync,
		"google_fit_linked":    user.GoogleFitLinked,
		"google_fit_last_sync": user.GoogleFitLastSync,
		"created_at":           user.CreatedAt,
	}, nil
}

// UpdateUserProfile mutates the owner-editable fields only. Role changes go
// through the fastctl admin CLI, never this path.
func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.TargetWeight != nil {
		if *input.TargetWeight > 0 {
			user.TargetWeight = input.TargetWeight
		} else {
			user.TargetWeight = nil
		}
	}
	if input.PreferredSchedule != "" {
		user.PreferredSchedule = input.PreferredSchedule
	}

	return config.DB.Save(&user).Error
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// ListProfiles is the admin roster view.
func ListProfiles() ([]map[string]interface{}, error) {
	var users []models.User
	if err := config.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]interface{}{
			"id":           u.ID,
			"email":        u.Email,
			"display_name": u.DisplayName,
			"role":         u.Role,
			"created_at":   u.CreatedAt,
		})
	}
	return out, nil
}
