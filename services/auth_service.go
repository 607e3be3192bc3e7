package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/adangerfield1026/Capstone/models"
	"github.com/adangerfield1026/Capstone/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, firstName, lastName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return err
	}
	return nil
}

// Authenticate checks the credentials and returns the user; the controller
// decides between a direct token and the MFA flow.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

// StartMFA stores a 6-digit code on the user and emails it.
func (s *AuthService) StartMFA(user *models.User) error {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	user.MFACode = code
	if err := s.db.Save(user).Error; err != nil {
		return err
	}
	return utils.SendMFAEmail(user.Email, code)
}

// VerifyMFA checks the code, clears it, and signs a token.
func (s *AuthService) VerifyMFA(email, code string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return "", ErrUnauthorized
	}
	if user.MFACode == "" || user.MFACode != code {
		return "", ErrUnauthorized
	}
	user.MFACode = ""
	if err := s.db.Save(&user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// StartPasswordReset issues an expiring reset code. It succeeds silently when
// the email is unknown, so the endpoint cannot be used to probe accounts.
func (s *AuthService) StartPasswordReset(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}
	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, user.ResetToken)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrUnauthorized
	}
	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return ErrUnauthorized
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrUnauthorized
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
