package services

import (
	"errors"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/config"
	"github.com/BugHunter-Coder/fasting-friend/models"
	"github.com/BugHunter-Coder/fasting-friend/utils"
)

func RegisterUser(email, password, displayName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       email,
		Password:    hashedPassword,
		DisplayName: displayName,
		Role:        models.RoleUser,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// BeginPasswordReset stores a short-lived code and mails it. Returns nil
// even when the email is unknown so the endpoint can't probe accounts.
func BeginPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

func CompletePasswordReset(token, newPassword string) error {
	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired reset code")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
